package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClaimSource struct {
	info ClaimInfo
	err  error
}

func (f *fakeClaimSource) ClaimForNotification(context.Context, uuid.UUID) (ClaimInfo, error) {
	return f.info, f.err
}

type fakeUserSource struct {
	info UserInfo
	err  error
}

func (f *fakeUserSource) UserForNotification(context.Context, uuid.UUID) (UserInfo, error) {
	return f.info, f.err
}

type fakeTransport struct {
	sent []Message
	err  error
}

func (f *fakeTransport) Send(_ context.Context, msg Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, msg)
	return "msg-1", nil
}

func submittedEvent() Event {
	return Event{Kind: KindClaimSubmitted, ClaimID: uuid.New(), UserID: uuid.New(), Timestamp: time.Now()}
}

func TestDispatchSuccess(t *testing.T) {
	ctx := context.Background()
	claims := &fakeClaimSource{info: ClaimInfo{Type: "unemployment", Status: "submitted", OwnerEmail: "ada@example.com"}}
	transport := &fakeTransport{}
	log := NewInMemoryStore()
	d := NewDispatcher(claims, &fakeUserSource{}, transport, log)

	d.Dispatch(ctx, submittedEvent())

	require.Len(t, transport.sent, 1)
	assert.Equal(t, "ada@example.com", transport.sent[0].To)
	assert.Equal(t, "Claim Submitted Successfully - QuickClaim", transport.sent[0].Subject)
	assert.Contains(t, transport.sent[0].HTML, "unemployment claim has been submitted")

	entries, err := log.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DeliverySent, entries[0].Status)
	assert.Equal(t, "msg-1", entries[0].MessageID)
	assert.Equal(t, KindClaimSubmitted, entries[0].Kind)
}

func TestDispatchTransportFailure(t *testing.T) {
	ctx := context.Background()
	claims := &fakeClaimSource{info: ClaimInfo{Type: "health", Status: "submitted", OwnerEmail: "ada@example.com"}}
	transport := &fakeTransport{err: errors.New("rate limited")}
	log := NewInMemoryStore()
	d := NewDispatcher(claims, &fakeUserSource{}, transport, log)

	d.Dispatch(ctx, submittedEvent())

	entries, err := log.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DeliveryFailed, entries[0].Status)
	assert.Equal(t, "rate limited", entries[0].Error)
	assert.Empty(t, entries[0].MessageID)
}

func TestDispatchUnresolvableRecipient(t *testing.T) {
	ctx := context.Background()
	transport := &fakeTransport{}
	log := NewInMemoryStore()

	t.Run("deleted claim produces no entry", func(t *testing.T) {
		d := NewDispatcher(&fakeClaimSource{err: errors.New("not found")}, &fakeUserSource{}, transport, log)
		d.Dispatch(ctx, submittedEvent())

		entries, err := log.ListRecent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.Empty(t, transport.sent)
	})

	t.Run("missing user produces no entry for welcome", func(t *testing.T) {
		d := NewDispatcher(&fakeClaimSource{}, &fakeUserSource{err: errors.New("not found")}, transport, log)
		d.Dispatch(ctx, Event{Kind: KindWelcome, UserID: uuid.New(), Timestamp: time.Now()})

		entries, err := log.ListRecent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("empty email produces no entry", func(t *testing.T) {
		d := NewDispatcher(&fakeClaimSource{info: ClaimInfo{Type: "health", Status: "submitted"}}, &fakeUserSource{}, transport, log)
		d.Dispatch(ctx, submittedEvent())

		entries, err := log.ListRecent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestStatusUpdateTemplates(t *testing.T) {
	ctx := context.Background()

	send := func(t *testing.T, info ClaimInfo) Message {
		t.Helper()
		transport := &fakeTransport{}
		d := NewDispatcher(&fakeClaimSource{info: info}, &fakeUserSource{}, transport, NewInMemoryStore())
		d.Dispatch(ctx, Event{Kind: KindClaimStatusChanged, ClaimID: uuid.New(), Timestamp: time.Now()})
		require.Len(t, transport.sent, 1)
		return transport.sent[0]
	}

	t.Run("approved includes the amount", func(t *testing.T) {
		amount := 1500.0
		msg := send(t, ClaimInfo{Type: "unemployment", Status: "approved", Amount: &amount, OwnerEmail: "a@b.c"})
		assert.Contains(t, msg.Subject, "approved")
		assert.Contains(t, msg.HTML, "$1500.00")
	})

	t.Run("rejected includes admin notes", func(t *testing.T) {
		msg := send(t, ClaimInfo{Type: "housing", Status: "rejected", AdminNotes: "lease agreement missing", OwnerEmail: "a@b.c"})
		assert.Contains(t, msg.HTML, "lease agreement missing")
		assert.Contains(t, msg.HTML, "cannot approve")
	})

	t.Run("unknown status falls back to under review copy", func(t *testing.T) {
		msg := send(t, ClaimInfo{Type: "health", Status: "submitted", OwnerEmail: "a@b.c"})
		assert.Equal(t, "Your claim is under review", msg.Subject)
	})

	t.Run("admin notes are escaped", func(t *testing.T) {
		msg := send(t, ClaimInfo{Type: "health", Status: "rejected", AdminNotes: "<script>alert(1)</script>", OwnerEmail: "a@b.c"})
		assert.NotContains(t, msg.HTML, "<script>")
	})
}

func TestWelcomeTemplate(t *testing.T) {
	ctx := context.Background()

	send := func(t *testing.T, info UserInfo) Message {
		t.Helper()
		transport := &fakeTransport{}
		d := NewDispatcher(&fakeClaimSource{}, &fakeUserSource{info: info}, transport, NewInMemoryStore())
		d.Dispatch(ctx, Event{Kind: KindWelcome, UserID: uuid.New(), Timestamp: time.Now()})
		require.Len(t, transport.sent, 1)
		return transport.sent[0]
	}

	t.Run("greets by name", func(t *testing.T) {
		msg := send(t, UserInfo{Name: "Ada", Email: "ada@example.com"})
		assert.Contains(t, msg.HTML, "Hi Ada!")
	})

	t.Run("falls back to a generic greeting", func(t *testing.T) {
		msg := send(t, UserInfo{Email: "anon@example.com"})
		assert.Contains(t, msg.HTML, "Hi there!")
	})
}
