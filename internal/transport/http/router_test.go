package httptransport

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickclaim/internal/benefit"
	"quickclaim/internal/platform/token"
	"quickclaim/internal/user"
	"quickclaim/pkg/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, *token.Service, uuid.UUID) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := token.NewService("test-key", "quickclaim")

	users := user.NewService(user.NewInMemoryStore())
	profile, err := users.Create(t.Context(), "ada@example.com", "Ada")
	require.NoError(t, err)

	store := benefit.NewInMemoryStore()
	_, err = benefit.Seed(t.Context(), store, time.Now())
	require.NoError(t, err)
	benefits := benefit.NewService(store, users)

	router := NewRouter(RouterConfig{
		Logger:     log,
		Validator:  tokens,
		AdminToken: "test-admin-token",
		User: []Registrable{
			user.NewHandler(users, log),
			benefit.NewHandler(benefits, log),
		},
	})
	return router, tokens, profile.ID
}

func TestHealthAndMetrics(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBearerAuth(t *testing.T) {
	router, tokens, userID := newTestRouter(t)

	t.Run("missing token is rejected", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer nonsense")
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token reaches the profile", func(t *testing.T) {
		accessToken, err := tokens.GenerateAccessToken(userID, time.Hour)
		require.NoError(t, err)

		req := testutil.NewJSONRequest(t, http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		rr := testutil.DoRequest(router, req)
		require.Equal(t, http.StatusOK, rr.Code)

		profile := testutil.UnmarshalResponse[user.Profile](t, rr)
		assert.Equal(t, "ada@example.com", profile.Email)
	})

	t.Run("request id header is set", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
}

func TestEligibleBenefitsOverHTTP(t *testing.T) {
	router, tokens, userID := newTestRouter(t)
	accessToken, err := tokens.GenerateAccessToken(userID, time.Hour)
	require.NoError(t, err)

	authed := func(method, path string, body any) *http.Request {
		req := testutil.NewJSONRequest(t, method, path, body)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		return req
	}

	// No work profile declared yet: nothing to show.
	rr := testutil.DoRequest(router, authed(http.MethodGet, "/benefits/eligible", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, *testutil.UnmarshalResponse[[]benefit.Program](t, rr))

	rr = testutil.DoRequest(router, authed(http.MethodPut, "/me/profile", map[string]string{
		"name": "Ada", "region": "Texas", "work_type": "gig",
	}))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = testutil.DoRequest(router, authed(http.MethodGet, "/benefits/eligible", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	programs := testutil.UnmarshalResponse[[]benefit.Program](t, rr)
	require.Len(t, *programs, 1)
	assert.Equal(t, "Health Insurance Subsidy", (*programs)[0].Name)
}

func TestAdminTokenGuard(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(RouterConfig{
		Logger:     log,
		Validator:  rejectAll{},
		AdminToken: "secret",
		Admin:      []Registrable{pingHandler{}},
	})

	req := testutil.NewJSONRequest(t, http.MethodGet, "/admin/ping", nil)
	rr := testutil.DoRequest(router, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = testutil.NewJSONRequest(t, http.MethodGet, "/admin/ping", nil)
	req.Header.Set("X-Admin-Token", "secret")
	rr = testutil.DoRequest(router, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

type rejectAll struct{}

func (rejectAll) ValidateToken(string) (uuid.UUID, error) {
	return uuid.Nil, errors.New("no tokens accepted")
}

type pingHandler struct{}

func (pingHandler) Register(r chi.Router) {
	r.Get("/admin/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
