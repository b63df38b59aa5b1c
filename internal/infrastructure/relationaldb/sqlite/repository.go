// Package sqlite provides a SQLite implementation of the ResolutionLog interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/flight-desk/internal/domain/entities"
	"github.com/ersonp/flight-desk/internal/infrastructure/config"
)

const memoryPath = ":memory:"

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.ResolutionLog using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Every connection to :memory: is a separate database
	if cfg.Path == memoryPath {
		db.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- One row per resolver call
	CREATE TABLE IF NOT EXISTS resolutions (
		id TEXT PRIMARY KEY,
		raw_input TEXT NOT NULL,
		normalized_input TEXT NOT NULL,
		found INTEGER NOT NULL,
		destination_key TEXT,
		matched_alias TEXT,
		corrected INTEGER NOT NULL DEFAULT 0,
		stage TEXT NOT NULL,
		source TEXT,
		created_at INTEGER NOT NULL -- unix nanoseconds
	);
	CREATE INDEX IF NOT EXISTS idx_resolutions_created ON resolutions(created_at);
	CREATE INDEX IF NOT EXISTS idx_resolutions_unresolved ON resolutions(found, normalized_input);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Record stores one resolution. ID and CreatedAt are filled when empty.
func (r *Repository) Record(ctx context.Context, rec entities.ResolutionRecord) error {
	if rec.ID == "" {
		rec.ID = generateUUID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = timeNow()
	}

	query := `
		INSERT INTO resolutions (id, raw_input, normalized_input, found, destination_key,
			matched_alias, corrected, stage, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.RawInput,
		rec.NormalizedInput,
		rec.Found,
		nullString(rec.Key),
		nullString(rec.MatchedAlias),
		rec.Corrected,
		rec.Stage,
		nullString(rec.Source),
		rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("recording resolution: %w", err)
	}
	return nil
}

// Recent returns the newest records first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]entities.ResolutionRecord, error) {
	query := `
		SELECT id, raw_input, normalized_input, found, destination_key,
			matched_alias, corrected, stage, source, created_at
		FROM resolutions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying resolutions: %w", err)
	}
	defer rows.Close()

	records := make([]entities.ResolutionRecord, 0, max(limit, 0))
	for rows.Next() {
		var rec entities.ResolutionRecord
		var key, alias, source sql.NullString
		var createdAt int64

		if err := rows.Scan(
			&rec.ID,
			&rec.RawInput,
			&rec.NormalizedInput,
			&rec.Found,
			&key,
			&alias,
			&rec.Corrected,
			&rec.Stage,
			&source,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning resolution: %w", err)
		}

		rec.Key = key.String
		rec.MatchedAlias = alias.String
		rec.Source = source.String
		rec.CreatedAt = time.Unix(0, createdAt)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// TopUnresolved returns the most frequent unresolved normalized inputs,
// ties broken by most recent.
func (r *Repository) TopUnresolved(ctx context.Context, limit int) ([]entities.UnresolvedInput, error) {
	query := `
		SELECT normalized_input, COUNT(*) AS hits, MAX(created_at) AS last_seen
		FROM resolutions
		WHERE found = 0
		GROUP BY normalized_input
		ORDER BY hits DESC, last_seen DESC, normalized_input ASC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying unresolved inputs: %w", err)
	}
	defer rows.Close()

	var inputs []entities.UnresolvedInput
	for rows.Next() {
		var u entities.UnresolvedInput
		var lastSeen int64
		if err := rows.Scan(&u.NormalizedInput, &u.Count, &lastSeen); err != nil {
			return nil, fmt.Errorf("scanning unresolved input: %w", err)
		}
		u.LastSeen = time.Unix(0, lastSeen)
		inputs = append(inputs, u)
	}
	return inputs, rows.Err()
}

// nullString maps "" to NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
