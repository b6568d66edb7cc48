// internal/store/sqlite.go
//
// SQLite implementation of the Store interface.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Saving and loading sessions; accepted words are kept as a JSON array.

package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type sqliteStore struct {
	db *sql.DB
}

// Open returns the Store selected by dsn: the in-memory store when dsn is
// empty, otherwise a SQLite store at dsn with migrations applied.
func Open(dsn string) (Store, error) {
	if dsn == "" {
		return NewMemoryStore(), nil
	}
	return NewSQLiteStore(dsn)
}

// NewSQLiteStore opens (and creates if missing) a SQLite database and
// applies migrations.
func NewSQLiteStore(dsn string) (Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db, migrationsFS); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// openDB opens a SQLite database file.
//
//   - Ensures parent directory exists for relative paths (e.g. ./data/app.db).
//   - Configures busy timeout and WAL journaling mode.
//   - Enforces foreign keys.
func openDB(dsn string) (*sql.DB, error) {
	if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
		dir := filepath.Dir(dsn)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", dsn+sep+"_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// One connection: every connection to ":memory:" is its own database,
	// and SQLite allows a single writer anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies *.sql files from fsys in lexical order, each inside its own
// transaction, recording applied names in _migrations.
func migrate(db *sql.DB, fsys fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Save upserts s.
func (st *sqliteStore) Save(ctx context.Context, s *game.Session) error {
	accepted, err := json.Marshal(s.Accepted)
	if err != nil {
		return fmt.Errorf("encode accepted words: %w", err)
	}
	_, err = st.db.ExecContext(ctx, `
        INSERT INTO sessions (id, mode, root, accepted, input, started_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            mode=excluded.mode,
            root=excluded.root,
            accepted=excluded.accepted,
            input=excluded.input,
            started_at=excluded.started_at,
            updated_at=excluded.updated_at`,
		s.ID, string(s.Mode), s.Root, string(accepted), s.Input,
		s.StartedAt.UTC().Format(time.RFC3339Nano), s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save session %s: %w", s.ID, err)
	}
	return nil
}

// Get loads a session by ID.
func (st *sqliteStore) Get(ctx context.Context, id string) (*game.Session, error) {
	var (
		s                game.Session
		mode, accepted   string
		started, updated string
	)
	err := st.db.QueryRowContext(ctx, `
        SELECT id, mode, root, accepted, input, started_at, updated_at
        FROM sessions WHERE id=?`, id,
	).Scan(&s.ID, &mode, &s.Root, &accepted, &s.Input, &started, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	s.Mode = game.Mode(mode)
	if err := json.Unmarshal([]byte(accepted), &s.Accepted); err != nil {
		return nil, fmt.Errorf("decode accepted words: %w", err)
	}
	if s.Accepted == nil {
		s.Accepted = []string{}
	}
	s.StartedAt = mustParse(started)
	s.UpdatedAt = mustParse(updated)
	return &s, nil
}

func (st *sqliteStore) Close() error { return st.db.Close() }

// mustParse parses RFC3339 timestamps; on error returns zero time.
func mustParse(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
