package entities

import (
	"time"

	"github.com/google/uuid"
)

// Run identifies one generation pass. Every bank published by the pass
// carries the same run.
type Run struct {
	ID        uuid.UUID // tags log lines and database rows
	StartedAt time.Time // UTC
}

// NewRun starts a run with a fresh random ID.
func NewRun() Run {
	return Run{
		ID:        uuid.New(),
		StartedAt: time.Now().UTC(),
	}
}
