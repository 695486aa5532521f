package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"rentgear-backend/internal/metrics"
)

// emailNotifier sends plain-text notifications to the operator mailbox
// through SendGrid. It backs the optional email channel for the daily
// summary.
type emailNotifier struct {
	apiKey    string
	fromEmail string
	fromName  string
	toEmail   string
}

func NewEmailNotifier(apiKey, fromEmail, fromName, toEmail string) Notifier {
	return &emailNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
	}
}

func (n *emailNotifier) Send(ctx context.Context, text string) error {
	err := n.send(ctx, text)
	metrics.IncNotification("email", err)
	return err
}

func (n *emailNotifier) send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from := mail.NewEmail(n.fromName, n.fromEmail)
	recipient := mail.NewEmail("", n.toEmail)
	subject := firstLine(text)
	message := mail.NewSingleEmailPlainText(from, subject, recipient, text)

	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

// firstLine extracts the subject from a multi-line notification body.
func firstLine(text string) string {
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			return text[:i]
		}
	}
	return text
}
