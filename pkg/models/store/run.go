package store

import "time"

// RunRecord is the persisted form of one analysis run. The full report is
// kept as a JSON payload; the flat columns exist for listing and filtering.
type RunRecord struct {
	ID         string
	CreatedAt  time.Time
	DomainID   string
	Confidence float64
	RowCount   int
	Degraded   bool
	Payload    []byte
}
