package index

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists user annotations across sessions: which conversations
// were marked cleaned and which were deleted. The two sets are written
// independently; there is no cross-key transaction.
type Store struct {
	dbPath string
	db     *sql.DB
	mu     sync.Mutex
}

func OpenStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	s := &Store{dbPath: dbPath, db: db}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	stmts := []string{
		`PRAGMA journal_mode = WAL;`,
		`CREATE TABLE IF NOT EXISTS cleaned (
			conversation_id TEXT PRIMARY KEY,
			marked_at INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS deleted (
			conversation_id TEXT PRIMARY KEY,
			deleted_at INTEGER
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("init store schema: %w", err)
		}
	}
	return nil
}

// MarkCleaned records a conversation as reviewed. Marking twice is a
// no-op.
func (s *Store) MarkCleaned(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cleaned(conversation_id, marked_at)
		VALUES(?, ?)
		ON CONFLICT(conversation_id) DO NOTHING
	`, conversationID, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("mark cleaned %s: %w", conversationID, err)
	}
	return nil
}

// UnmarkCleaned removes the reviewed marker.
func (s *Store) UnmarkCleaned(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM cleaned WHERE conversation_id = ?`, conversationID); err != nil {
		return fmt.Errorf("unmark cleaned %s: %w", conversationID, err)
	}
	return nil
}

// CleanedIDs loads the full cleaned set.
func (s *Store) CleanedIDs(ctx context.Context) (map[string]struct{}, error) {
	return s.idSet(ctx, "cleaned")
}

// DeleteConversation records a conversation as removed from the list.
func (s *Store) DeleteConversation(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO deleted(conversation_id, deleted_at)
		VALUES(?, ?)
		ON CONFLICT(conversation_id) DO NOTHING
	`, conversationID, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("delete conversation %s: %w", conversationID, err)
	}
	return nil
}

// DeletedIDs loads the full deleted set.
func (s *Store) DeletedIDs(ctx context.Context) (map[string]struct{}, error) {
	return s.idSet(ctx, "deleted")
}

func (s *Store) idSet(ctx context.Context, table string) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT conversation_id FROM `+table)
	if err != nil {
		return nil, fmt.Errorf("query %s ids: %w", table, err)
	}
	defer rows.Close()

	out := make(map[string]struct{}, 64)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s id: %w", table, err)
		}
		out[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s ids: %w", table, err)
	}
	return out, nil
}

// Reset clears all persisted annotations. This is the only way user
// state is discarded.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"cleaned", "deleted"} {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}
