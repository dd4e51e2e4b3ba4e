package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"quickclaim/internal/platform/metrics"
)

// ClaimInfo is the claim state a notification needs, read fresh at send
// time so a slow queue never delivers stale amounts or statuses.
type ClaimInfo struct {
	Type       string
	Status     string
	Amount     *float64
	AdminNotes string
	OwnerEmail string
}

// UserInfo is the profile state needed to address and render a
// user-scoped notification.
type UserInfo struct {
	Name  string
	Email string
}

// ClaimSource and UserSource are satisfied by thin adapters over the
// domain stores, keeping this package free of claim/user imports.
type ClaimSource interface {
	ClaimForNotification(ctx context.Context, claimID uuid.UUID) (ClaimInfo, error)
}

type UserSource interface {
	UserForNotification(ctx context.Context, userID uuid.UUID) (UserInfo, error)
}

// Transport sends a rendered message and returns the provider's message ID.
type Transport interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Message is a rendered email ready for transport.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Dispatcher turns events into delivered messages. It never returns an
// error to its caller: transport failures become failed delivery-log
// entries, and an unresolvable recipient is a logged no-op.
type Dispatcher struct {
	claims    ClaimSource
	users     UserSource
	transport Transport
	log       Store
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type DispatcherOption func(d *Dispatcher)

func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.logger = logger }
}

func WithDispatcherMetrics(m *metrics.Metrics) DispatcherOption {
	return func(d *Dispatcher) { d.metrics = m }
}

func NewDispatcher(claims ClaimSource, users UserSource, transport Transport, log Store, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		claims:    claims,
		users:     users,
		transport: transport,
		log:       log,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Dispatch(ctx context.Context, event Event) {
	start := time.Now()
	defer func() {
		if d.metrics != nil {
			d.metrics.ObserveDispatch(start)
		}
	}()

	msg, ok := d.render(ctx, event)
	if !ok {
		return
	}

	entry := &DeliveryEntry{
		ID:        uuid.New(),
		Kind:      event.Kind,
		Recipient: msg.To,
		CreatedAt: time.Now(),
	}

	messageID, err := d.transport.Send(ctx, msg)
	if err != nil {
		entry.Status = DeliveryFailed
		entry.Error = err.Error()
		if d.metrics != nil {
			d.metrics.NotificationsFailed.Inc()
		}
		d.logger.ErrorContext(ctx, "notification delivery failed",
			"kind", event.Kind,
			"recipient", msg.To,
			"error", err,
		)
	} else {
		entry.Status = DeliverySent
		entry.MessageID = messageID
		if d.metrics != nil {
			d.metrics.NotificationsSent.Inc()
		}
	}

	if err := d.log.Append(ctx, entry); err != nil {
		d.logger.ErrorContext(ctx, "failed to append delivery log entry",
			"kind", event.Kind,
			"error", err,
		)
	}
}

// render resolves the event's subject entity and builds the message. A
// claim or user that can no longer be loaded, or one without an email
// address, yields no message and no delivery-log entry.
func (d *Dispatcher) render(ctx context.Context, event Event) (Message, bool) {
	switch event.Kind {
	case KindClaimSubmitted:
		info, err := d.claims.ClaimForNotification(ctx, event.ClaimID)
		if err != nil || info.OwnerEmail == "" {
			d.skip(ctx, event, err)
			return Message{}, false
		}
		return Message{
			To:      info.OwnerEmail,
			Subject: submittedSubject,
			HTML:    renderClaimSubmitted(info),
		}, true

	case KindClaimStatusChanged:
		info, err := d.claims.ClaimForNotification(ctx, event.ClaimID)
		if err != nil || info.OwnerEmail == "" {
			d.skip(ctx, event, err)
			return Message{}, false
		}
		return Message{
			To:      info.OwnerEmail,
			Subject: statusTemplateFor(info.Status).Subject,
			HTML:    renderStatusUpdate(info),
		}, true

	case KindWelcome:
		user, err := d.users.UserForNotification(ctx, event.UserID)
		if err != nil || user.Email == "" {
			d.skip(ctx, event, err)
			return Message{}, false
		}
		return Message{
			To:      user.Email,
			Subject: welcomeSubject,
			HTML:    renderWelcome(user),
		}, true

	default:
		d.logger.WarnContext(ctx, "unknown notification kind", "kind", event.Kind)
		return Message{}, false
	}
}

func (d *Dispatcher) skip(ctx context.Context, event Event, err error) {
	d.logger.WarnContext(ctx, "skipping notification, recipient unresolvable",
		"kind", event.Kind,
		"claim_id", event.ClaimID,
		"user_id", event.UserID,
		"error", err,
	)
}
