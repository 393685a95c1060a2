package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/phylsix/tinyurl/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogRecorder(t *testing.T) {
	t.Run("logs the event fields", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		recorder := events.NewLogRecorder(zap.New(core))

		err := recorder.Record(context.Background(), &events.MappingCreatedEvent{
			Code:      "QxidHT",
			TargetURL: "https://example.com/a",
			CreatedAt: time.Now(),
			RequestID: "req-1",
		})

		require.NoError(t, err)

		entries := logs.FilterMessage("mapping created").All()
		require.Len(t, entries, 1)

		fields := entries[0].ContextMap()
		assert.Equal(t, "QxidHT", fields["code"])
		assert.Equal(t, "https://example.com/a", fields["targetUrl"])
		assert.Equal(t, "req-1", fields["requestId"])
	})
}
