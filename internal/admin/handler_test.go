package admin

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickclaim/internal/claim"
	"quickclaim/internal/notification"
	"quickclaim/pkg/testutil"
)

func newTestRouter(t *testing.T) (chi.Router, *claim.Service, notification.Store) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	claims := claim.NewService(claim.NewInMemoryStore())
	deliveries := notification.NewInMemoryStore()
	r := chi.NewRouter()
	NewHandler(claims, notification.NewService(deliveries), log).Register(r)
	return r, claims, deliveries
}

func submittedClaim(t *testing.T, claims *claim.Service) *claim.Claim {
	t.Helper()
	ctx := context.Background()
	owner := uuid.New()
	c, err := claims.Create(ctx, owner, "unemployment", "")
	require.NoError(t, err)
	_, err = claims.Submit(ctx, c.ID, owner)
	require.NoError(t, err)
	return c
}

func TestUpdateStatus(t *testing.T) {
	t.Run("approves with an amount", func(t *testing.T) {
		router, claims, _ := newTestRouter(t)
		c := submittedClaim(t, claims)

		req := testutil.NewJSONRequest(t, http.MethodPatch, "/admin/claims/"+c.ID.String()+"/status", map[string]any{
			"status": "approved",
			"amount": 1500.0,
		})
		rr := testutil.DoRequest(router, req)
		require.Equal(t, http.StatusOK, rr.Code)

		updated := testutil.UnmarshalResponse[claim.Claim](t, rr)
		assert.Equal(t, claim.StatusApproved, updated.Status)
		require.NotNil(t, updated.Amount)
		assert.Equal(t, 1500.0, *updated.Amount)
		assert.NotNil(t, updated.ReviewedAt)
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		router, claims, _ := newTestRouter(t)
		c := submittedClaim(t, claims)

		req := testutil.NewJSONRequest(t, http.MethodPatch, "/admin/claims/"+c.ID.String()+"/status", map[string]any{
			"status": "escalated",
		})
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("terminal claim conflicts", func(t *testing.T) {
		router, claims, _ := newTestRouter(t)
		c := submittedClaim(t, claims)
		_, err := claims.AdminUpdateStatus(context.Background(), c.ID, claim.StatusRejected, nil, nil)
		require.NoError(t, err)

		req := testutil.NewJSONRequest(t, http.MethodPatch, "/admin/claims/"+c.ID.String()+"/status", map[string]any{
			"status": "approved",
		})
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("missing claim is 404", func(t *testing.T) {
		router, _, _ := newTestRouter(t)
		req := testutil.NewJSONRequest(t, http.MethodPatch, "/admin/claims/"+uuid.NewString()+"/status", map[string]any{
			"status": "approved",
		})
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListClaims(t *testing.T) {
	router, claims, _ := newTestRouter(t)
	a := submittedClaim(t, claims)
	submittedClaim(t, claims)
	_, err := claims.AdminUpdateStatus(context.Background(), a.ID, claim.StatusApproved, nil, nil)
	require.NoError(t, err)

	t.Run("lists everything without a filter", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodGet, "/admin/claims", nil)
		rr := testutil.DoRequest(router, req)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, *testutil.UnmarshalResponse[[]claim.Claim](t, rr), 2)
	})

	t.Run("status filter narrows the listing", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodGet, "/admin/claims?status=approved", nil)
		rr := testutil.DoRequest(router, req)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, *testutil.UnmarshalResponse[[]claim.Claim](t, rr), 1)
	})

	t.Run("unknown filter is a validation error", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodGet, "/admin/claims?status=bogus", nil)
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeliveryLog(t *testing.T) {
	router, _, deliveries := newTestRouter(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, deliveries.Append(ctx, &notification.DeliveryEntry{
			ID:        uuid.New(),
			Kind:      notification.KindClaimSubmitted,
			Recipient: "a@b.c",
			Status:    notification.DeliverySent,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Millisecond),
		}))
	}

	req := testutil.NewJSONRequest(t, http.MethodGet, "/admin/delivery-log?limit=2", nil)
	rr := testutil.DoRequest(router, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, *testutil.UnmarshalResponse[[]notification.DeliveryEntry](t, rr), 2)

	req = testutil.NewJSONRequest(t, http.MethodGet, "/admin/delivery-log?limit=-1", nil)
	rr = testutil.DoRequest(router, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
