// Package storage provides SQLite-based persistence for finished runs.
// A run is the input journal of one game plus its outcome, enough to replay
// it deterministically. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Sentinel errors returned by run lookups.
var (
	ErrRunNotFound  = errors.New("storage: run not found")
	ErrAmbiguousRun = errors.New("storage: run id prefix is ambiguous")
)

// Outcome describes how a run ended.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
	OutcomeQuit Outcome = "quit"
)

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Event is one recorded input transition, applied at the start of Frame.
type Event struct {
	Frame  uint64
	Action core.Action
	Kind   core.EventKind
}

// Run is a finished game with its input journal.
type Run struct {
	ID        string
	GameID    string
	Player    string // "local" or the SSH user
	Outcome   Outcome
	Score     int
	Frames    uint64 // Step calls, paused frames included
	Ticks     uint64 // Simulated ticks
	ArenaW    int
	ArenaH    int
	Hash      uint64 // Snapshot hash of the final state
	CreatedAt time.Time
	Events    []Event // Empty in listings
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database; pragmas apply to every pooled connection
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// busyTimeout is how long a writer waits for a lock held by another
// session before failing.
const busyTimeout = 5 * time.Second

// dsn builds the driver connection string for path.
func dsn(path string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)",
		path, busyTimeout.Milliseconds())
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		PRAGMA foreign_keys = ON;

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT 'local',
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			arena_w INTEGER NOT NULL,
			arena_h INTEGER NOT NULL,
			hash TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS run_events (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			frame INTEGER NOT NULL,
			action INTEGER NOT NULL,
			kind INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun stores a run and its events in one transaction.
// A missing ID is filled with a new UUID and a zero CreatedAt with the
// current time. Returns the run ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	if run.Player == "" {
		run.Player = "local"
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO runs
		 (id, game_id, player, outcome, score, frames, ticks, arena_w, arena_h, hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.GameID,
		run.Player,
		string(run.Outcome),
		run.Score,
		int64(run.Frames), //#nosec G115 -- frame counts stay far below 2^63
		int64(run.Ticks),  //#nosec G115 -- tick counts stay far below 2^63
		run.ArenaW,
		run.ArenaH,
		formatHash(run.Hash),
		run.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	if len(run.Events) > 0 {
		stmt, err := tx.Prepare(
			"INSERT INTO run_events (run_id, seq, frame, action, kind) VALUES (?, ?, ?, ?, ?)",
		)
		if err != nil {
			return "", fmt.Errorf("storage: cannot prepare event insert: %w", err)
		}
		defer stmt.Close()

		for i, e := range run.Events {
			if _, err := stmt.Exec(run.ID, i, int64(e.Frame), int(e.Action), int(e.Kind)); err != nil { //#nosec G115 -- see above
				return "", fmt.Errorf("storage: cannot save run event %d: %w", i, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return run.ID, nil
}

// RecentRuns lists the most recent runs, newest first, without events.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// LoadRun retrieves a run with its events. The id may be a unique prefix
// of the full run ID.
func (s *Store) LoadRun(id string) (*Run, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrRunNotFound
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE id = ? OR id LIKE ? ESCAPE '\'
		 ORDER BY id = ? DESC
		 LIMIT 2`,
		id, escapeLike(id)+"%", id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	var matches []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		matches = append(matches, run)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch {
	case len(matches) == 0:
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	case len(matches) > 1 && matches[0].ID != id:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousRun, id)
	}

	run := matches[0]
	run.Events, err = s.runEvents(run.ID)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// DeleteRun removes a run and its events in one transaction.
func (s *Store) DeleteRun(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("DELETE FROM run_events WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete run events: %w", err)
	}
	res, err := tx.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// runEvents loads the journal of one run in recorded order.
func (s *Store) runEvents(id string) ([]Event, error) {
	rows, err := s.db.Query(
		"SELECT frame, action, kind FROM run_events WHERE run_id = ? ORDER BY seq",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var frame int64
		var action, kind int
		if err := rows.Scan(&frame, &action, &kind); err != nil {
			return nil, fmt.Errorf("storage: cannot scan event: %w", err)
		}
		events = append(events, Event{
			Frame:  uint64(frame), //#nosec G115 -- stored from a uint64
			Action: core.Action(action),
			Kind:   core.EventKind(kind),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return events, nil
}

// timeLayout has a fixed-width fraction so text ordering matches time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const runColumns = `id, game_id, player, outcome, score, frames, ticks, arena_w, arena_h, hash, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var outcome, hash string
	var frames, ticks int64
	var createdAt any

	if err := row.Scan(
		&run.ID,
		&run.GameID,
		&run.Player,
		&outcome,
		&run.Score,
		&frames,
		&ticks,
		&run.ArenaW,
		&run.ArenaH,
		&hash,
		&createdAt,
	); err != nil {
		return run, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	run.Outcome = Outcome(outcome)
	run.Frames = uint64(frames) //#nosec G115 -- stored from a uint64
	run.Ticks = uint64(ticks)   //#nosec G115 -- stored from a uint64
	run.CreatedAt = parseTime(createdAt)

	h, err := parseHash(hash)
	if err != nil {
		return run, fmt.Errorf("storage: run %s: %w", run.ID, err)
	}
	run.Hash = h
	return run, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// Hashes are stored as hex text; SQLite integers are signed.
func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

func parseHash(s string) (uint64, error) {
	var h uint64
	if _, err := fmt.Sscanf(s, "%x", &h); err != nil {
		return 0, fmt.Errorf("bad hash %q: %w", s, err)
	}
	return h, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
