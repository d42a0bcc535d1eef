package chat

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrEmptyQuestion   = errors.New("question must not be empty")
)

// Repository persists chat sessions and their messages.
type Repository interface {
	CreateSession(ctx context.Context, s Session) error
	ListSessions(ctx context.Context, userID uuid.UUID) ([]Session, error)
	GetSession(ctx context.Context, id, userID uuid.UUID) (Session, error)
	RenameSession(ctx context.Context, id uuid.UUID, name string) error
	DeleteSessionsByUser(ctx context.Context, userID uuid.UUID) error

	CreateMessage(ctx context.Context, m Message) error
	ListMessages(ctx context.Context, sessionID, userID uuid.UUID) ([]Message, error)
	RecentMessages(ctx context.Context, userID uuid.UUID, limit int) ([]Message, error)
}
