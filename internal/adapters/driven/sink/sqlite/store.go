package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/specxtract/internal/adapters/driven/sink/sqlite/migrations"
	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.FeatureSink = (*Store)(nil)

// DBName is the database file created inside the data directory.
const DBName = "features.db"

// Run describes one persisted extraction run.
type Run struct {
	ID        string
	CreatedAt time.Time
	Tuples    int
}

// Store is a SQLite-backed feature sink.
type Store struct {
	db   *sql.DB
	path string

	mu      sync.Mutex
	lastRun string
}

// NewStore opens (or creates) the database in dataDir and applies pending
// migrations. If dataDir is empty, defaults to ~/.specxtract/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".specxtract", "data")
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBName)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Name returns "sqlite".
func (s *Store) Name() string {
	return string(domain.OutputSQLite)
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LastRunID returns the id of the most recent run written by this store,
// or "" before the first Write.
func (s *Store) LastRunID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun
}

// Write records a new run holding tuples in export order.
func (s *Store) Write(ctx context.Context, tuples []domain.FeatureTuple) error {
	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, tuple_count) VALUES (?, ?, ?)`,
		runID, time.Now().UTC(), len(tuples)); err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO features (run_id, seq, document_id, record_id, pattern, content, value)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range domain.SortForExport(tuples) {
		if _, err := stmt.ExecContext(ctx, runID, i, t.DocumentID, t.RecordID, t.Pattern, t.Content, t.Value); err != nil {
			return fmt.Errorf("saving feature: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}

	s.mu.Lock()
	s.lastRun = runID
	s.mu.Unlock()
	return nil
}

// Runs lists persisted runs, oldest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, tuple_count FROM runs ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Tuples); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Features returns the tuples of a run in export order.
// An unknown run returns domain.ErrNotFound.
func (s *Store) Features(ctx context.Context, runID string) ([]domain.FeatureTuple, error) {
	var exists int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, runID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("looking up run: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("run %s: %w", runID, domain.ErrNotFound)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT document_id, record_id, pattern, content, value
		FROM features WHERE run_id = ? ORDER BY seq
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing features: %w", err)
	}
	defer rows.Close()

	tuples := []domain.FeatureTuple{}
	for rows.Next() {
		var t domain.FeatureTuple
		if err := rows.Scan(&t.DocumentID, &t.RecordID, &t.Pattern, &t.Content, &t.Value); err != nil {
			return nil, fmt.Errorf("scanning feature: %w", err)
		}
		tuples = append(tuples, t)
	}
	return tuples, rows.Err()
}

// migrate applies every up migration newer than the recorded version.
func (s *Store) migrate(fsys fs.FS) error {
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil || version <= current {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(script); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
		return err
	}
	return tx.Commit()
}
