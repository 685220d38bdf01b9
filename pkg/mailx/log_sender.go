package mailx

import (
	"context"
	"log/slog"
)

// LogSender logs messages instead of sending them. Not meant for production
// use as it logs recipient addresses and full message contents.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a new LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the message to the logger.
func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("send email",
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
