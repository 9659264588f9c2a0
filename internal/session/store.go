package session

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite"
)

const storeFileName = "session.sqlite"

// Store persists the parts of a session that outlive the process.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// DefaultStorePath returns the store location under the XDG state directory.
func DefaultStorePath() (string, error) {
	return xdg.StateFile(filepath.Join("bucket", storeFileName))
}

func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `
		CREATE TABLE IF NOT EXISTS recent_mailboxes (
			name TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			saved_at INTEGER NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create recent_mailboxes: %w", err)
	}

	return &Store{db: db}, nil
}

// LoadRecent returns the saved recent mailboxes, most recent first.
func (s *Store) LoadRecent(ctx context.Context) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM recent_mailboxes ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SaveRecent replaces the saved list with names.
func (s *Store) SaveRecent(ctx context.Context, names []string) error {
	if s == nil || s.db == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recent_mailboxes`); err != nil {
		return err
	}
	now := time.Now().Unix()
	for i, name := range names {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recent_mailboxes (name, position, saved_at) VALUES (?, ?, ?)`,
			name, i, now,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
