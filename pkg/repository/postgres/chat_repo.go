package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sabin7k/ukstudy/pkg/chat"
)

// ChatRepository implements chat.Repository backed by PostgreSQL (pgx).
type ChatRepository struct {
	pool *pgxpool.Pool
}

func NewChatRepository(pool *pgxpool.Pool) (*ChatRepository, error) {
	repo := &ChatRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *ChatRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS chat_sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS chat_messages (
			id UUID PRIMARY KEY,
			session_id UUID NOT NULL REFERENCES chat_sessions(id),
			user_id UUID NOT NULL REFERENCES users(id),
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_chat_sessions_user ON chat_sessions(user_id);
		CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages(session_id);
	`)
	return err
}

func (r *ChatRepository) CreateSession(ctx context.Context, s chat.Session) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO chat_sessions (id, user_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`, s.ID, s.UserID, s.Name, s.CreatedAt)
	return err
}

func (r *ChatRepository) ListSessions(ctx context.Context, userID uuid.UUID) ([]chat.Session, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, created_at
		FROM chat_sessions WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []chat.Session
	for rows.Next() {
		var s chat.Session
		var createdAt time.Time
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &createdAt); err != nil {
			return nil, err
		}
		s.CreatedAt = createdAt.UTC()
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *ChatRepository) GetSession(ctx context.Context, id, userID uuid.UUID) (chat.Session, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, created_at
		FROM chat_sessions WHERE id = $1 AND user_id = $2
	`, id, userID)
	var s chat.Session
	var createdAt time.Time
	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return chat.Session{}, chat.ErrSessionNotFound
		}
		return chat.Session{}, err
	}
	s.CreatedAt = createdAt.UTC()
	return s, nil
}

func (r *ChatRepository) RenameSession(ctx context.Context, id uuid.UUID, name string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE chat_sessions SET name = $2 WHERE id = $1
	`, id, name)
	return err
}

// DeleteSessionsByUser removes the user's sessions together with their
// messages. Messages go first to satisfy the foreign key.
func (r *ChatRepository) DeleteSessionsByUser(ctx context.Context, userID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM chat_messages WHERE user_id = $1`, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM chat_sessions WHERE user_id = $1`, userID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ChatRepository) CreateMessage(ctx context.Context, m chat.Message) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO chat_messages (id, session_id, user_id, question, answer, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, m.ID, m.SessionID, m.UserID, m.Question, m.Answer, m.CreatedAt)
	return err
}

func (r *ChatRepository) ListMessages(ctx context.Context, sessionID, userID uuid.UUID) ([]chat.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, session_id, user_id, question, answer, created_at
		FROM chat_messages WHERE session_id = $1 AND user_id = $2
		ORDER BY created_at
	`, sessionID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *ChatRepository) RecentMessages(ctx context.Context, userID uuid.UUID, limit int) ([]chat.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, session_id, user_id, question, answer, created_at
		FROM chat_messages WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func scanMessages(rows pgx.Rows) ([]chat.Message, error) {
	var messages []chat.Message
	for rows.Next() {
		var m chat.Message
		var createdAt time.Time
		if err := rows.Scan(&m.ID, &m.SessionID, &m.UserID, &m.Question, &m.Answer, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = createdAt.UTC()
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
