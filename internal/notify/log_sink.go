package notify

import (
	"context"
	"log"
)

// LogSink writes events to a logger. Used when no topic is configured.
type LogSink struct {
	Logger *log.Logger
}

// Send logs e.
func (s LogSink) Send(_ context.Context, e Event) error {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("notify: %s request=%s document=%s reviewer=%s status=%s", e.Type, e.RequestID, e.DocumentID, e.ReviewerID, e.Status)
	return nil
}
