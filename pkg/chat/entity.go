package chat

import (
	"time"

	"github.com/google/uuid"
)

// Session groups the messages of one conversation.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Message is one question/answer pair inside a session.
type Message struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	UserID    uuid.UUID
	Question  string
	Answer    string
	CreatedAt time.Time
}
