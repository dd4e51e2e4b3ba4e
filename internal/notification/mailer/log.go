package mailer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"quickclaim/internal/notification"
)

// Log is a development transport that records messages to the logger
// instead of sending them.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Send(ctx context.Context, msg notification.Message) (string, error) {
	id := "local-" + uuid.NewString()
	l.logger.InfoContext(ctx, "email transport disabled, logging message",
		"to", msg.To,
		"subject", msg.Subject,
		"message_id", id,
	)
	return id, nil
}
