package notification

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Publisher hands events from request handlers to the background worker.
// Publish never blocks: when the buffer is full the event is dropped and
// counted, so a stalled mailer can't back up the request path.
type Publisher struct {
	inbox   chan Event
	logger  *slog.Logger
	dropped prometheus.Counter
}

type PublisherOption func(p *Publisher)

func WithPublisherLogger(logger *slog.Logger) PublisherOption {
	return func(p *Publisher) { p.logger = logger }
}

func WithDroppedCounter(c prometheus.Counter) PublisherOption {
	return func(p *Publisher) { p.dropped = c }
}

func NewPublisher(buffer int, opts ...PublisherOption) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	p := &Publisher{
		inbox:  make(chan Event, buffer),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Inbox is the worker's read side of the buffer.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}

func (p *Publisher) Publish(event Event) {
	select {
	case p.inbox <- event:
	default:
		if p.dropped != nil {
			p.dropped.Inc()
		}
		p.logger.Warn("notification buffer full, dropping event",
			"kind", event.Kind,
			"claim_id", event.ClaimID,
			"user_id", event.UserID,
		)
	}
}
