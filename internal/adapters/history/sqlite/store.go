package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/bnema/careerbot/internal/ports"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS chat_messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	role TEXT NOT NULL,
	content TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chat_messages_user ON chat_messages(user_id, id);
`

// Store keeps per-user chat history in a SQLite database. Messages are
// returned in insertion order.
type Store struct {
	db *sql.DB
}

var _ ports.HistoryStore = (*Store)(nil)

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("history path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Join(fmt.Errorf("create history schema: %w", err), db.Close())
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Save(ctx context.Context, userID domain.UserID, message domain.HistoryMessage) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	if !message.Role.Valid() {
		return fmt.Errorf("invalid message role %q", message.Role)
	}

	createdAt := message.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (user_id, role, content, created_at) VALUES (?, ?, ?, ?)`,
		string(userID), string(message.Role), message.Content, createdAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}

	return nil
}

func (s *Store) List(ctx context.Context, userID domain.UserID) ([]domain.HistoryMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT role, content, created_at FROM chat_messages WHERE user_id = ? ORDER BY id`,
		string(userID))
	if err != nil {
		return nil, fmt.Errorf("query chat messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var messages []domain.HistoryMessage
	for rows.Next() {
		var role, content, createdAt string
		if err := rows.Scan(&role, &content, &createdAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}

		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse message time %q: %w", createdAt, err)
		}
		messages = append(messages, domain.HistoryMessage{
			Role:      domain.Role(role),
			Content:   content,
			CreatedAt: parsed,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat messages: %w", err)
	}

	return messages, nil
}
