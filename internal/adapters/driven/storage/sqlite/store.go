package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/ports/driven"
)

// Store is a SQLite-backed event archive.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.EventStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.alexandria/data/events.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".alexandria", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "events.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Save stores one event version. Saving the same (coordinate, createdAt)
// pair again replaces that version in place.
func (s *Store) Save(ctx context.Context, ev *domain.Event) error {
	if ev == nil || ev.ID == "" {
		return domain.ErrInvalidInput
	}

	tagsJSON, err := json.Marshal(ev.Tags)
	if err != nil {
		return fmt.Errorf("marshalling tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO events (id, kind, author_key, d_slug, created_at, content, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(kind, author_key, d_slug, created_at) DO UPDATE SET
			id = excluded.id,
			content = excluded.content,
			tags = excluded.tags,
			saved_at = CURRENT_TIMESTAMP
	`, ev.ID, ev.Kind, ev.AuthorKey, ev.Slug(), ev.CreatedAt, ev.Content, string(tagsJSON))

	if err != nil {
		return fmt.Errorf("saving event: %w", err)
	}
	return nil
}

// Get retrieves an event by draft ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Event, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, kind, author_key, created_at, content, tags
		FROM events WHERE id = ?
	`, id)

	return scanEvent(row)
}

// Versions returns every stored version of a coordinate, oldest first.
func (s *Store) Versions(ctx context.Context, coord domain.Coordinate) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, author_key, created_at, content, tags
		FROM events
		WHERE kind = ? AND author_key = ? AND d_slug = ?
		ORDER BY created_at
	`, coord.Kind, coord.AuthorKey, coord.Slug)
	if err != nil {
		return nil, fmt.Errorf("querying versions: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// List returns all stored events, oldest save first.
func (s *Store) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, author_key, created_at, content, tags
		FROM events
		ORDER BY saved_at, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// Delete removes an event version by draft ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	return nil
}

// scanEvent scans a single event row.
func scanEvent(row *sql.Row) (*domain.Event, error) {
	var ev domain.Event
	var tagsJSON string

	if err := row.Scan(&ev.ID, &ev.Kind, &ev.AuthorKey,
		&ev.CreatedAt, &ev.Content, &tagsJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning event: %w", err)
	}

	if err := json.Unmarshal([]byte(tagsJSON), &ev.Tags); err != nil {
		return nil, fmt.Errorf("unmarshaling tags: %w", err)
	}

	return &ev, nil
}

// scanEvents scans multiple event rows.
func scanEvents(rows *sql.Rows) ([]domain.Event, error) {
	var events []domain.Event //nolint:prealloc // size unknown from query
	for rows.Next() {
		var ev domain.Event
		var tagsJSON string
		if err := rows.Scan(&ev.ID, &ev.Kind, &ev.AuthorKey,
			&ev.CreatedAt, &ev.Content, &tagsJSON); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}

		if err := json.Unmarshal([]byte(tagsJSON), &ev.Tags); err != nil {
			return nil, fmt.Errorf("unmarshaling tags: %w", err)
		}

		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}
