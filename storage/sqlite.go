// SQLite-backed conversation store.
//
// Schema and migration details are encapsulated here; sql.DB's connection
// pooling makes the store safe for concurrent use.

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SqliteStore implements ConversationStore using a SQLite database file.
type SqliteStore struct {
	db *sql.DB
}

// OpenSqlite opens or creates a SQLite database at the given path.
// Creates parent directories if they don't exist.
func OpenSqlite(path string) (*SqliteStore, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open SQLite database: %w", err)
	}

	store := &SqliteStore{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

// NewSqliteInMemory creates an in-memory database (useful for testing).
func NewSqliteInMemory() (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("create in-memory SQLite: %w", err)
	}

	store := &SqliteStore{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *SqliteStore) Close() error {
	return s.db.Close()
}

func (s *SqliteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS turns (
			id TEXT PRIMARY KEY,
			conversation_id TEXT NOT NULL,
			content TEXT NOT NULL,
			is_user INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_turns_conversation
		ON turns(conversation_id, created_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// AppendTurn records a turn.
func (s *SqliteStore) AppendTurn(ctx context.Context, turn Turn) error {
	if turn.ID == "" {
		turn.ID = uuid.NewString()
	}
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO turns (id, conversation_id, content, is_user, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		turn.ID, turn.ConversationID, turn.Content, boolToInt(turn.IsUser),
		turn.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

// RecentTurns returns the last n turns in ascending creation order.
func (s *SqliteStore) RecentTurns(ctx context.Context, conversationID string, n int) ([]Turn, error) {
	// Select the newest n, then flip to ascending.
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, conversation_id, content, is_user, created_at
         FROM turns WHERE conversation_id = ?
         ORDER BY created_at DESC LIMIT ?`, conversationID, n)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var newest []Turn
	for rows.Next() {
		var turn Turn
		var isUser int
		var createdAt int64
		if err := rows.Scan(&turn.ID, &turn.ConversationID, &turn.Content, &isUser, &createdAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		turn.IsUser = isUser != 0
		turn.CreatedAt = time.Unix(0, createdAt)
		newest = append(newest, turn)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	turns := make([]Turn, len(newest))
	for i, turn := range newest {
		turns[len(newest)-1-i] = turn
	}
	return turns, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ConversationStore = (*SqliteStore)(nil)
