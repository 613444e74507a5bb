// Package progress persists which ayahs and words have been studied, plus
// generic UI state. It is written exactly once per completed quiz and has
// no dependency back on the quiz engine. Chat history and pronunciation
// feedback are deliberately never stored here.
package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS studied_ayahs (
	id         TEXT PRIMARY KEY,
	studied_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS studied_words (
	id         TEXT PRIMARY KEY,
	studied_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS ui_state (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Totals are the derived counters over the studied sets.
type Totals struct {
	Ayahs int `db:"ayahs"`
	Words int `db:"words"`
}

// Store is the SQLite-backed learning progress store.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at dsn, applies recommended pragmas,
// and creates the schema if missing.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// MarkAyahStudied records an ayah as studied. The insert is idempotent;
// the return value reports whether the id was newly added (and therefore
// whether the derived total grew).
func (s *Store) MarkAyahStudied(ctx context.Context, id string) (bool, error) {
	return s.mark(ctx, "studied_ayahs", id)
}

// MarkWordStudied records a word as studied, idempotently.
func (s *Store) MarkWordStudied(ctx context.Context, id string) (bool, error) {
	return s.mark(ctx, "studied_words", id)
}

func (s *Store) mark(ctx context.Context, table, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf("INSERT OR IGNORE INTO %s (id, studied_at) VALUES ($1, $2)", table),
		id, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("mark studied: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// IsAyahStudied reports whether the ayah id is in the studied set.
func (s *Store) IsAyahStudied(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM studied_ayahs WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("query studied ayah: %w", err)
	}
	return n > 0, nil
}

// StudiedAyahs returns the studied ayah ids in insertion order.
func (s *Store) StudiedAyahs(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.SelectContext(ctx, &ids, "SELECT id FROM studied_ayahs ORDER BY studied_at, id")
	if err != nil {
		return nil, fmt.Errorf("query studied ayahs: %w", err)
	}
	return ids, nil
}

// Totals returns the derived studied counts.
func (s *Store) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := s.db.GetContext(ctx, &t, `
		SELECT
			(SELECT COUNT(*) FROM studied_ayahs) AS ayahs,
			(SELECT COUNT(*) FROM studied_words) AS words
	`)
	if err != nil {
		return Totals{}, fmt.Errorf("query totals: %w", err)
	}
	return t, nil
}

// ResetProgress wipes both studied sets. It is only reached from the
// explicit user-initiated reset.
func (s *Store) ResetProgress(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"studied_ayahs", "studied_words"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// SetUIState stores a generic UI preference under key.
func (s *Store) SetUIState(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ui_state (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set ui state: %w", err)
	}
	return nil
}

// UIState returns the stored value for key, or "" if unset.
func (s *Store) UIState(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, "SELECT value FROM ui_state WHERE key = $1", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get ui state: %w", err)
	}
	return value, nil
}

// applyPragmas configures SQLite for single-user desktop use.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. TARTIL_DB environment variable
// 2. $XDG_DATA_HOME/tartil/tartil.db
// 3. ~/.local/share/tartil/tartil.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("TARTIL_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "tartil", "tartil.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
