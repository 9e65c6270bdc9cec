package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store manages game persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the archive database at the given path
// and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS games (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            away_team TEXT NOT NULL,
            home_team TEXT NOT NULL,
            source TEXT,
            saved_at TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS atbats (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
            seq INTEGER NOT NULL,
            atbat_key TEXT NOT NULL,
            inning INTEGER,
            half TEXT,
            team TEXT,
            pitcher TEXT,
            description TEXT,
            away_score INTEGER,
            home_score INTEGER,
            pitch_sequence TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS pitches (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
            seq INTEGER NOT NULL,
            atbat_key TEXT NOT NULL,
            pitch_no INTEGER,
            result TEXT,
            pitch_type TEXT,
            mph INTEGER,
            zone TEXT,
            on_1b INTEGER NOT NULL DEFAULT 0,
            on_2b INTEGER NOT NULL DEFAULT 0,
            on_3b INTEGER NOT NULL DEFAULT 0,
            field_location TEXT,
            inning INTEGER,
            half TEXT,
            team TEXT,
            pitcher TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS pitching_changes (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
            seq INTEGER NOT NULL,
            atbat_key TEXT NOT NULL,
            inning INTEGER,
            half TEXT,
            team TEXT,
            incoming TEXT,
            outgoing TEXT,
            description TEXT
        )`,
		`CREATE INDEX IF NOT EXISTS idx_atbats_game ON atbats(game_id, seq)`,
		`CREATE INDEX IF NOT EXISTS idx_pitches_game ON pitches(game_id, seq)`,
		`CREATE INDEX IF NOT EXISTS idx_changes_game ON pitching_changes(game_id, seq)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
