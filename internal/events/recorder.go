package events

import (
	"context"

	"go.uber.org/zap"
)

// Recorder is the consumer-side sink for the mapping-created feed.
type Recorder interface {
	Record(ctx context.Context, event *MappingCreatedEvent) error
}

// LogRecorder writes events to the structured log. It is the default sink
// until a real downstream (warehouse, audit table) is attached.
type LogRecorder struct {
	logger *zap.Logger
}

// NewLogRecorder creates a Recorder that logs every event.
func NewLogRecorder(logger *zap.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) Record(_ context.Context, event *MappingCreatedEvent) error {
	r.logger.Info("mapping created",
		zap.String("code", event.Code),
		zap.String("targetUrl", event.TargetURL),
		zap.Time("createdAt", event.CreatedAt),
		zap.String("requestId", event.RequestID),
		zap.String("clientIp", event.ClientIP),
	)

	return nil
}
