package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sabin7k/ukstudy/pkg/llm"
)

const (
	defaultSessionName = "New Chat"
	historyLimit       = 20

	advisorPrompt = "You are a helpful assistant specializing in UK university applications for international students. Provide accurate, helpful information about UK universities, application processes, visa requirements, and student life."

	fallbackAnswer = "I apologize, but I'm having trouble processing your request right now. Please try again later."
)

// ChatUseCase describes session and message management.
type ChatUseCase interface {
	CreateSession(ctx context.Context, userID uuid.UUID, firstMessage string) (Session, error)
	Sessions(ctx context.Context, userID uuid.UUID) ([]Session, error)
	Messages(ctx context.Context, userID, sessionID uuid.UUID) ([]Message, error)
	// Send stores the question with the model answer and returns the answer.
	Send(ctx context.Context, userID, sessionID uuid.UUID, question string) (string, error)
	History(ctx context.Context, userID uuid.UUID) ([]Message, error)
	DeleteAll(ctx context.Context, userID uuid.UUID) error
}

type chatService struct {
	repo  Repository
	model llm.ChatModel
}

// NewChatService returns default implementation of ChatUseCase.
func NewChatService(repo Repository, model llm.ChatModel) ChatUseCase {
	return &chatService{repo: repo, model: model}
}

// SessionName derives a session title from the first question: up to six
// words, capitalized, with an ellipsis when the question is longer.
func SessionName(question string) string {
	words := strings.Fields(question)
	if len(words) == 0 {
		return defaultSessionName
	}
	name := strings.Join(words[:min(len(words), 6)], " ")
	if len(words) > 6 {
		name += "..."
	}
	return capitalize(name)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func (s *chatService) CreateSession(ctx context.Context, userID uuid.UUID, firstMessage string) (Session, error) {
	session := Session{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      SessionName(firstMessage),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (s *chatService) Sessions(ctx context.Context, userID uuid.UUID) ([]Session, error) {
	return s.repo.ListSessions(ctx, userID)
}

func (s *chatService) Messages(ctx context.Context, userID, sessionID uuid.UUID) ([]Message, error) {
	if _, err := s.repo.GetSession(ctx, sessionID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, sessionID, userID)
}

func (s *chatService) Send(ctx context.Context, userID, sessionID uuid.UUID, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}
	session, err := s.repo.GetSession(ctx, sessionID, userID)
	if err != nil {
		return "", err
	}

	// Sessions keep their placeholder title until the first real question.
	if session.Name == defaultSessionName || strings.TrimSpace(session.Name) == "" {
		if err := s.repo.RenameSession(ctx, session.ID, SessionName(question)); err != nil {
			return "", err
		}
	}

	answer, err := s.model.Ask(ctx, advisorPrompt, question)
	if err != nil || strings.TrimSpace(answer) == "" {
		answer = fallbackAnswer
	}

	msg := Message{
		ID:        uuid.New(),
		SessionID: session.ID,
		UserID:    userID,
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return "", err
	}
	return answer, nil
}

func (s *chatService) History(ctx context.Context, userID uuid.UUID) ([]Message, error) {
	return s.repo.RecentMessages(ctx, userID, historyLimit)
}

func (s *chatService) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	return s.repo.DeleteSessionsByUser(ctx, userID)
}
