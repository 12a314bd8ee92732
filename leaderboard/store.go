// Package leaderboard persists cumulative per-player results in SQLite.
package leaderboard

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// GameData is one player's result, either a single session or the stored total.
type GameData struct {
	Username string
	Score    int
	Count    int
}

var ErrClosed = errors.New("leaderboard: store is closed")

const schema = `CREATE TABLE IF NOT EXISTS results (
	username TEXT PRIMARY KEY,
	score    INTEGER NOT NULL DEFAULT 0,
	count    INTEGER NOT NULL DEFAULT 0
)`

// Store is a SQLite-backed leaderboard. It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	dsn    string
	db     *sql.DB
	closed bool
	log    *log.Logger
}

// Open connects to the database at dsn and creates the results table.
func Open(ctx context.Context, dsn string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{
		dsn: dsn,
		log: logger.With("component", "leaderboard"),
	}
	if err := s.connect(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) connect(ctx context.Context) error {
	db, err := sql.Open(driverName, s.dsn)
	if err != nil {
		return fmt.Errorf("open leaderboard %s: %w", s.dsn, err)
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY between them.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return fmt.Errorf("create leaderboard schema: %w", err)
	}
	s.db = db
	return nil
}

// ensureConnection pings the current handle and reopens it once if the ping fails.
func (s *Store) ensureConnection(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}
	if s.db != nil {
		err := s.db.PingContext(ctx)
		if err == nil {
			return nil
		}
		s.log.Warn("leaderboard connection lost, reconnecting", "err", err)
		_ = s.db.Close()
		s.db = nil
	}
	return s.connect(ctx)
}

// Upsert adds result's score and count to the stored totals for its username,
// inserting a new row when the name has not been seen.
func (s *Store) Upsert(ctx context.Context, result GameData) error {
	name := strings.TrimSpace(result.Username)
	if name == "" {
		return errors.New("leaderboard: empty username")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureConnection(ctx); err != nil {
		return err
	}
	err := s.upsert(ctx, name, result)
	if isConnErr(err) {
		s.log.Warn("leaderboard write failed, retrying once", "err", err)
		_ = s.db.Close()
		s.db = nil
		if cerr := s.connect(ctx); cerr != nil {
			return cerr
		}
		err = s.upsert(ctx, name, result)
	}
	if err != nil {
		return fmt.Errorf("upsert %q: %w", name, err)
	}
	s.log.Debug("result saved", "username", name, "score", result.Score, "count", result.Count)
	return nil
}

func (s *Store) upsert(ctx context.Context, name string, result GameData) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (username, score, count) VALUES (?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			score = score + excluded.score,
			count = count + excluded.count`,
		name, result.Score, result.Count)
	return err
}

// All returns every record ordered by score, then count, both descending.
func (s *Store) All(ctx context.Context) ([]GameData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureConnection(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT username, score, count FROM results ORDER BY score DESC, count DESC, username ASC`)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var out []GameData
	for rows.Next() {
		var g GameData
		if err := rows.Scan(&g.Username, &g.Score, &g.Count); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	return out, nil
}

// Get returns the stored totals for username.
func (s *Store) Get(ctx context.Context, username string) (GameData, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureConnection(ctx); err != nil {
		return GameData{}, false, err
	}
	g := GameData{}
	err := s.db.QueryRowContext(ctx,
		`SELECT username, score, count FROM results WHERE username = ?`, username).
		Scan(&g.Username, &g.Score, &g.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return GameData{}, false, nil
	}
	if err != nil {
		return GameData{}, false, fmt.Errorf("get %q: %w", username, err)
	}
	return g, true, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func isConnErr(err error) bool {
	return errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone)
}
