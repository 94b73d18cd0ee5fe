// Package queue publishes catalog announcements to RabbitMQ.
package queue

import "time"

// CatalogSeededEvent is published once per process start, after the
// repositories are seeded.  Downstream consumers (for example a frontend
// cache warmer) use it to learn that a fresh catalog is being served.
type CatalogSeededEvent struct {
	Monasteries int    `json:"monasteries"`
	Events      int    `json:"events"`
	SeededAt    string `json:"seeded_at"` // RFC 3339, UTC
}

// NewCatalogSeededEvent builds the announcement for the given collection
// sizes and seed instant.
func NewCatalogSeededEvent(monasteries, events int, seededAt time.Time) CatalogSeededEvent {
	return CatalogSeededEvent{
		Monasteries: monasteries,
		Events:      events,
		SeededAt:    seededAt.UTC().Format(time.RFC3339),
	}
}
