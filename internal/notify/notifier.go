package notify

import (
	"context"

	"student-feedback-backend/internal/config"

	"go.uber.org/zap"
)

// Notifier publishes a message about a domain event to an external channel.
// Delivery is best-effort; callers fire it off the request path.
type Notifier interface {
	Publish(ctx context.Context, message string) error
}

// FromConfig picks the email notifier when Resend is fully configured and
// the log notifier otherwise.
func FromConfig(cfg config.Config, lg *zap.SugaredLogger) Notifier {
	if cfg.ResendAPIKey != "" && cfg.FromEmail != "" && cfg.NotifyEmail != "" {
		return NewEmailNotifier(cfg.ResendAPIKey, cfg.FromEmail, cfg.NotifyEmail, lg)
	}
	return NewLogNotifier(lg)
}
