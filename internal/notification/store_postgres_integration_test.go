//go:build integration

package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"quickclaim/internal/notification"
	"quickclaim/pkg/testutil/containers"
)

type PostgresDeliveryLogSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *notification.PostgresStore
}

func TestPostgresDeliveryLogSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresDeliveryLogSuite))
}

func (s *PostgresDeliveryLogSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = notification.NewPostgres(s.postgres.DB)
}

func (s *PostgresDeliveryLogSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "delivery_log"))
}

func (s *PostgresDeliveryLogSuite) TestAppendAndListRecent() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	for i := 0; i < 3; i++ {
		entry := &notification.DeliveryEntry{
			ID:        uuid.New(),
			Kind:      notification.KindClaimSubmitted,
			Recipient: "ada@example.com",
			Status:    notification.DeliverySent,
			MessageID: "msg",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		s.Require().NoError(s.store.Append(ctx, entry))
	}

	entries, err := s.store.ListRecent(ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.True(entries[0].CreatedAt.After(entries[1].CreatedAt))
}

func (s *PostgresDeliveryLogSuite) TestFailedEntryKeepsError() {
	ctx := context.Background()
	entry := &notification.DeliveryEntry{
		ID:        uuid.New(),
		Kind:      notification.KindClaimStatusChanged,
		Recipient: "ada@example.com",
		Status:    notification.DeliveryFailed,
		Error:     "rate limited",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	s.Require().NoError(s.store.Append(ctx, entry))

	entries, err := s.store.ListRecent(ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(notification.DeliveryFailed, entries[0].Status)
	s.Equal("rate limited", entries[0].Error)
	s.Empty(entries[0].MessageID)
}
