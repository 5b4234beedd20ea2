package notifications

import (
	"context"

	"go.uber.org/zap"

	"care-connect.backend/pkg/logger"
)

// LogMailer records outbound email notifications in the structured log.
// Actual delivery is handled by an external service consuming the log stream;
// the core only needs a fire-and-forget sink.
type LogMailer struct{}

// NewLogMailer creates a new log-backed mailer
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send records a templated notification
func (m *LogMailer) Send(ctx context.Context, recipient, template string, data map[string]interface{}) error {
	logger.Info(ctx, "Email notification",
		zap.String("recipient", recipient),
		zap.String("template", template),
		zap.Any("data", data),
	)
	return nil
}
