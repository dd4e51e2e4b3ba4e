package benefit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "quickclaim/pkg/domainerrors"
	"quickclaim/pkg/sentinel"
)

type fakeProfiles struct {
	region   string
	workType string
	err      error
}

func (f *fakeProfiles) WorkProfile(context.Context, uuid.UUID) (string, string, error) {
	return f.region, f.workType, f.err
}

func seededStore(t *testing.T) *InMemoryStore {
	t.Helper()
	store := NewInMemoryStore()
	seeded, err := Seed(context.Background(), store, time.Now())
	require.NoError(t, err)
	require.True(t, seeded)
	return store
}

func TestSeedIsIdempotent(t *testing.T) {
	store := seededStore(t)

	seeded, err := Seed(context.Background(), store, time.Now())
	require.NoError(t, err)
	assert.False(t, seeded)

	programs, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, programs, 3)
}

func TestListAll(t *testing.T) {
	svc := NewService(seededStore(t), &fakeProfiles{})

	programs, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, programs, 3)
	assert.Equal(t, "Unemployment Insurance", programs[0].Name)
}

func TestEligibleFor(t *testing.T) {
	ctx := context.Background()

	t.Run("declared profile filters the catalog", func(t *testing.T) {
		svc := NewService(seededStore(t), &fakeProfiles{region: "Texas", workType: "gig"})
		programs, err := svc.EligibleFor(ctx, uuid.New())
		require.NoError(t, err)
		require.Len(t, programs, 1)
		assert.Equal(t, "Health Insurance Subsidy", programs[0].Name)
	})

	t.Run("undeclared profile yields empty, not an error", func(t *testing.T) {
		svc := NewService(seededStore(t), &fakeProfiles{})
		programs, err := svc.EligibleFor(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, programs)
	})

	t.Run("unknown user is not accessible", func(t *testing.T) {
		svc := NewService(seededStore(t), &fakeProfiles{err: sentinel.ErrNotFound})
		_, err := svc.EligibleFor(ctx, uuid.New())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotAccessible))
	})
}
