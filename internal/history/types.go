// Package history provides persistent storage of completed analysis
// results so past checks can be listed and reviewed.
package history

import (
	"context"
	"io"
	"time"

	"github.com/symptom-checker-server/internal/domain"
)

// Record is one stored analysis. Records are immutable once saved;
// a duplicate save of the same ID is a no-op.
type Record struct {
	ID        string                `json:"id"`
	Language  string                `json:"language"`
	Symptoms  string                `json:"symptoms"`
	Source    domain.AnalysisSource `json:"source"`
	Diagnoses []domain.Diagnosis    `json:"diagnoses"`
	Entities  []domain.Entity       `json:"entities"`
	CreatedAt time.Time             `json:"created_at"`
}

// FromResult builds a history record from a diagnostic result and the
// source that produced it.
func FromResult(result *domain.DiagnosticResult, source domain.AnalysisSource) *Record {
	return &Record{
		ID:        result.ID,
		Language:  result.Language,
		Symptoms:  result.Symptoms,
		Source:    source,
		Diagnoses: result.Diagnoses,
		Entities:  result.Entities,
		CreatedAt: result.Timestamp,
	}
}

// Store defines the interface for analysis history storage.
type Store interface {
	// Save stores an analysis record. Saving an already stored ID
	// leaves the original record untouched.
	Save(ctx context.Context, record *Record) error

	// Get retrieves a record by ID, or nil when not found.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns records ordered newest first with pagination.
	List(ctx context.Context, limit, offset int) ([]*Record, error)

	// Count returns the total number of stored records.
	Count(ctx context.Context) (int64, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id string) error

	// ExportJSON exports all records to a JSON writer.
	ExportJSON(ctx context.Context, writer io.Writer) error

	// Close closes the store and releases resources.
	Close() error
}

// Export represents the JSON export format.
type Export struct {
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	Count      int       `json:"count"`
	Records    []*Record `json:"records"`
}
