package ingest

import (
	"context"

	"pkmlab.dev/sensor-monitor-service/pkg/models"
)

// Source produces one complete reading per tick. Implementations must be
// safe to call from a single runner goroutine.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*models.Reading, error)
}

// Status is the connectivity flag surfaced to the presentation layer. When
// Connected is false the data shown is the last known or simulated reading.
type Status struct {
	Connected bool   `json:"connected"`
	Source    string `json:"source"`
	LastError string `json:"lastError,omitempty"`
}

// StatusReporter is what the HTTP layer reads; nil-tolerant at the caller.
type StatusReporter interface {
	Status() Status
}
