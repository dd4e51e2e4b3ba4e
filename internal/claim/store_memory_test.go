package claim

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"quickclaim/pkg/sentinel"
)

type ClaimStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func (s *ClaimStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
}

func TestClaimStoreSuite(t *testing.T) {
	suite.Run(t, new(ClaimStoreSuite))
}

func (s *ClaimStoreSuite) TestLookup() {
	ctx := context.Background()

	s.Run("returns stored claim when found", func() {
		c := New(uuid.New(), "unemployment", "laid off", time.Now())
		s.Require().NoError(s.store.Create(ctx, c))

		found, err := s.store.FindByID(ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(c, found)
	})

	s.Run("returns ErrNotFound for an unknown id", func() {
		_, err := s.store.FindByID(ctx, uuid.New())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returned claims are copies", func() {
		c := New(uuid.New(), "health", "", time.Now())
		s.Require().NoError(s.store.Create(ctx, c))

		found, err := s.store.FindByID(ctx, c.ID)
		s.Require().NoError(err)
		found.Status = StatusPaid

		again, err := s.store.FindByID(ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(StatusDraft, again.Status)
	})
}

func (s *ClaimStoreSuite) TestListing() {
	ctx := context.Background()
	owner := uuid.New()
	base := time.Now()

	older := New(owner, "unemployment", "", base.Add(-time.Hour))
	newer := New(owner, "health", "", base)
	foreign := New(uuid.New(), "housing", "", base)
	s.Require().NoError(s.store.Create(ctx, older))
	s.Require().NoError(s.store.Create(ctx, newer))
	s.Require().NoError(s.store.Create(ctx, foreign))

	s.Run("by user, newest first", func() {
		claims, err := s.store.ListByUser(ctx, owner)
		s.Require().NoError(err)
		s.Require().Len(claims, 2)
		s.Equal(newer.ID, claims[0].ID)
		s.Equal(older.ID, claims[1].ID)
	})

	s.Run("all claims with status filter", func() {
		draft := StatusDraft
		claims, err := s.store.ListAll(ctx, &draft)
		s.Require().NoError(err)
		s.Len(claims, 3)

		paid := StatusPaid
		claims, err = s.store.ListAll(ctx, &paid)
		s.Require().NoError(err)
		s.Empty(claims)
	})
}

func (s *ClaimStoreSuite) TestExecute() {
	ctx := context.Background()

	s.Run("mutation persists when validation passes", func() {
		c := New(uuid.New(), "unemployment", "", time.Now())
		s.Require().NoError(s.store.Create(ctx, c))

		now := time.Now()
		updated, err := s.store.Execute(ctx, c.ID,
			func(c *Claim) error { return c.CanSubmit() },
			func(c *Claim) { c.ApplySubmit(now) },
		)
		s.Require().NoError(err)
		s.Equal(StatusSubmitted, updated.Status)

		stored, err := s.store.FindByID(ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(StatusSubmitted, stored.Status)
	})

	s.Run("validation failure leaves the claim untouched", func() {
		c := New(uuid.New(), "unemployment", "", time.Now())
		c.Status = StatusPaid
		s.Require().NoError(s.store.Create(ctx, c))

		_, err := s.store.Execute(ctx, c.ID,
			func(c *Claim) error { return c.CanReview(StatusApproved) },
			func(c *Claim) { c.ApplyReview(StatusApproved, nil, nil, time.Now()) },
		)
		s.Require().ErrorIs(err, sentinel.ErrInvalidState)

		stored, err := s.store.FindByID(ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(StatusPaid, stored.Status)
		s.Nil(stored.ReviewedAt)
	})

	s.Run("unknown id returns ErrNotFound", func() {
		_, err := s.store.Execute(ctx, uuid.New(),
			func(c *Claim) error { return nil },
			func(c *Claim) {},
		)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("concurrent submits produce exactly one winner", func() {
		c := New(uuid.New(), "unemployment", "", time.Now())
		s.Require().NoError(s.store.Create(ctx, c))

		const attempts = 16
		var wg sync.WaitGroup
		results := make(chan error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.store.Execute(ctx, c.ID,
					func(c *Claim) error { return c.CanSubmit() },
					func(c *Claim) { c.ApplySubmit(time.Now()) },
				)
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		var wins int
		for err := range results {
			if err == nil {
				wins++
			} else {
				s.ErrorIs(err, sentinel.ErrInvalidState)
			}
		}
		s.Equal(1, wins)
	})
}
