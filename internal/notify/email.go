package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailNotifier mails notifications to a fixed address via Resend.
type EmailNotifier struct {
	client *resend.Client
	from   string
	to     string
	lg     *zap.SugaredLogger
}

func NewEmailNotifier(apiKey, from, to string, lg *zap.SugaredLogger) *EmailNotifier {
	return &EmailNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
		lg:     lg,
	}
}

func (n *EmailNotifier) Publish(_ context.Context, message string) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: "New student feedback",
		Text:    message,
	}

	sent, err := n.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	n.lg.Infof("📧 notification email sent (ID: %s)", sent.Id)
	return nil
}
