// Package mailer provides email transports for the notification pipeline.
package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"quickclaim/internal/notification"
)

// Resend delivers messages through the Resend API.
type Resend struct {
	client *resend.Client
	from   string
}

func NewResend(apiKey, from string) *Resend {
	return &Resend{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (r *Resend) Send(ctx context.Context, msg notification.Message) (string, error) {
	sent, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    r.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}
	return sent.Id, nil
}
