package events

import "time"

// TopicMappingCreated is the stream topic for newly allocated mappings.
const TopicMappingCreated = "mapping.created"

// MappingCreatedEvent is emitted after a short code has been durably
// assigned to a URL.
type MappingCreatedEvent struct {
	Code      string    `json:"code"`
	TargetURL string    `json:"targetUrl"`
	CreatedAt time.Time `json:"createdAt"`
	RequestID string    `json:"requestId,omitempty"`
	ClientIP  string    `json:"clientIp,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
}
