package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	sessions map[uuid.UUID]Session
	messages []Message
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{sessions: make(map[uuid.UUID]Session)}
}

func (r *fakeRepo) CreateSession(_ context.Context, s Session) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeRepo) ListSessions(_ context.Context, userID uuid.UUID) ([]Session, error) {
	var out []Session
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetSession(_ context.Context, id, userID uuid.UUID) (Session, error) {
	s, ok := r.sessions[id]
	if !ok || s.UserID != userID {
		return Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (r *fakeRepo) RenameSession(_ context.Context, id uuid.UUID, name string) error {
	s := r.sessions[id]
	s.Name = name
	r.sessions[id] = s
	return nil
}

func (r *fakeRepo) DeleteSessionsByUser(_ context.Context, userID uuid.UUID) error {
	for id, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, id)
		}
	}
	var kept []Message
	for _, m := range r.messages {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return nil
}

func (r *fakeRepo) CreateMessage(_ context.Context, m Message) error {
	r.messages = append(r.messages, m)
	return nil
}

func (r *fakeRepo) ListMessages(_ context.Context, sessionID, userID uuid.UUID) ([]Message, error) {
	var out []Message
	for _, m := range r.messages {
		if m.SessionID == sessionID && m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeRepo) RecentMessages(_ context.Context, userID uuid.UUID, limit int) ([]Message, error) {
	var out []Message
	for i := len(r.messages) - 1; i >= 0 && len(out) < limit; i-- {
		if r.messages[i].UserID == userID {
			out = append(out, r.messages[i])
		}
	}
	return out, nil
}

type stubModel struct {
	answer string
	err    error
}

func (m stubModel) Ask(_ context.Context, _, _ string) (string, error) {
	return m.answer, m.err
}

func TestSessionName(t *testing.T) {
	assert.Equal(t, "New Chat", SessionName(""))
	assert.Equal(t, "New Chat", SessionName("   "))
	assert.Equal(t, "What is the ielts requirement", SessionName("what is the IELTS requirement"))
	assert.Equal(t, "Tell me about tuition fees at...", SessionName("tell me about tuition fees at Bristol please"))
}

func TestSend_AnswersAndPersists(t *testing.T) {
	repo := newFakeRepo()
	svc := NewChatService(repo, stubModel{answer: "Apply before January."})
	userID := uuid.New()

	session, err := svc.CreateSession(context.Background(), userID, "")
	require.NoError(t, err)
	assert.Equal(t, "New Chat", session.Name)

	answer, err := svc.Send(context.Background(), userID, session.ID, "When should I apply?")
	require.NoError(t, err)
	assert.Equal(t, "Apply before January.", answer)

	// First question renames the placeholder session.
	renamed, err := repo.GetSession(context.Background(), session.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "When should i apply?", renamed.Name)

	messages, err := svc.Messages(context.Background(), userID, session.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "When should I apply?", messages[0].Question)
	assert.Equal(t, "Apply before January.", messages[0].Answer)
}

func TestSend_ModelFailureFallsBack(t *testing.T) {
	repo := newFakeRepo()
	svc := NewChatService(repo, stubModel{err: errors.New("upstream down")})
	userID := uuid.New()

	session, err := svc.CreateSession(context.Background(), userID, "visa question")
	require.NoError(t, err)

	answer, err := svc.Send(context.Background(), userID, session.ID, "Do I need a visa?")
	require.NoError(t, err)
	assert.Equal(t, fallbackAnswer, answer)
}

func TestSend_EmptyQuestion(t *testing.T) {
	repo := newFakeRepo()
	svc := NewChatService(repo, stubModel{answer: "x"})
	userID := uuid.New()

	session, err := svc.CreateSession(context.Background(), userID, "hello")
	require.NoError(t, err)

	_, err = svc.Send(context.Background(), userID, session.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
}

func TestSend_WrongUser(t *testing.T) {
	repo := newFakeRepo()
	svc := NewChatService(repo, stubModel{answer: "x"})

	session, err := svc.CreateSession(context.Background(), uuid.New(), "hello")
	require.NoError(t, err)

	_, err = svc.Send(context.Background(), uuid.New(), session.ID, "hi")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteAll(t *testing.T) {
	repo := newFakeRepo()
	svc := NewChatService(repo, stubModel{answer: "ok"})
	userID := uuid.New()

	session, err := svc.CreateSession(context.Background(), userID, "first")
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), userID, session.ID, "question")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAll(context.Background(), userID))

	sessions, err := svc.Sessions(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	history, err := svc.History(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestHistory_Limit(t *testing.T) {
	repo := newFakeRepo()
	svc := NewChatService(repo, stubModel{answer: "ok"})
	userID := uuid.New()

	session, err := svc.CreateSession(context.Background(), userID, "hello")
	require.NoError(t, err)
	for i := 0; i < historyLimit+5; i++ {
		_, err := svc.Send(context.Background(), userID, session.ID, "question")
		require.NoError(t, err)
	}

	history, err := svc.History(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, history, historyLimit)
}
