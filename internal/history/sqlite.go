package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/symptom-checker-server/internal/domain"
)

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite history store.
// It creates the database file and schema if they don't exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// scanner is an interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRecord scans a row into a Record, decoding the JSON columns.
func scanRecord(s scanner) (*Record, error) {
	record := &Record{}
	var source, diagnosesJSON, entitiesJSON string

	err := s.Scan(
		&record.ID, &record.Language, &record.Symptoms, &source,
		&diagnosesJSON, &entitiesJSON, &record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Source = domain.AnalysisSource(source)
	if err := json.Unmarshal([]byte(diagnosesJSON), &record.Diagnoses); err != nil {
		return nil, fmt.Errorf("failed to decode diagnoses: %w", err)
	}
	if entitiesJSON != "" {
		if err := json.Unmarshal([]byte(entitiesJSON), &record.Entities); err != nil {
			return nil, fmt.Errorf("failed to decode entities: %w", err)
		}
	}
	return record, nil
}

// createSchema creates the database tables and indexes.
func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS analysis_history (
		id TEXT PRIMARY KEY,
		language TEXT NOT NULL,
		symptoms TEXT NOT NULL,
		source TEXT NOT NULL,
		diagnoses TEXT NOT NULL,
		entities TEXT DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_history_language ON analysis_history(language);
	CREATE INDEX IF NOT EXISTS idx_history_created_at ON analysis_history(created_at);
	`

	_, err := db.Exec(schema)
	return err
}

// encodeRecord serializes the JSON columns of a record.
func encodeRecord(record *Record) (diagnoses, entities string, err error) {
	diagnosesJSON, err := json.Marshal(record.Diagnoses)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode diagnoses: %w", err)
	}
	entitiesJSON, err := json.Marshal(record.Entities)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode entities: %w", err)
	}
	return string(diagnosesJSON), string(entitiesJSON), nil
}

// Save stores an analysis record.
func (s *SQLiteStore) Save(ctx context.Context, record *Record) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	diagnosesJSON, entitiesJSON, err := encodeRecord(record)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO analysis_history (
			id, language, symptoms, source, diagnoses, entities, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		record.ID,
		record.Language,
		record.Symptoms,
		string(record.Source),
		diagnosesJSON,
		entitiesJSON,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert: %w", err)
	}
	return nil
}

// Get retrieves a record by ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, language, symptoms, source, diagnoses, entities, created_at
		FROM analysis_history
		WHERE id = ?
		LIMIT 1
	`, id)

	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan: %w", err)
	}
	return record, nil
}

// List returns records ordered newest first with pagination.
func (s *SQLiteStore) List(ctx context.Context, limit, offset int) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, language, symptoms, source, diagnoses, entities, created_at
		FROM analysis_history
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	var result []*Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

// Count returns the total number of stored records.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM analysis_history").Scan(&count)
	return count, err
}

// Delete removes a record by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM analysis_history WHERE id = ?", id)
	return err
}

// maxExportLimit is the maximum number of entries to export at once.
const maxExportLimit = 1000000

// ExportJSON exports all records to a JSON writer.
func (s *SQLiteStore) ExportJSON(ctx context.Context, writer io.Writer) error {
	all, err := s.List(ctx, maxExportLimit, 0)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	export := &Export{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Count:      len(all),
		Records:    all,
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}

// Close closes the store and releases resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
