package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier writes notifications to the log. Used when no email
// provider is configured.
type LogNotifier struct {
	lg *zap.SugaredLogger
}

func NewLogNotifier(lg *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{lg: lg}
}

func (n *LogNotifier) Publish(_ context.Context, message string) error {
	n.lg.Infof("📨 notification (email not configured): %s", message)
	return nil
}
