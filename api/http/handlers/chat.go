package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sabin7k/ukstudy/api/http/presenter"
	"github.com/sabin7k/ukstudy/pkg/chat"
)

type ChatHandler struct {
	useCase chat.ChatUseCase
}

func NewChatHandler(useCase chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{useCase: useCase}
}

type createSessionRequest struct {
	Message string `json:"message"`
}

// CreateSession opens a new chat session, named after the first message.
// @Summary Create chat session
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   input body createSessionRequest false "optional first message"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /chat/sessions [post]
func (h *ChatHandler) CreateSession(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	var req createSessionRequest
	_ = c.BodyParser(&req) // body is optional

	session, err := h.useCase.CreateSession(c.Context(), userID, req.Message)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to create session")
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"id":   session.ID.String(),
		"name": session.Name,
	})
}

// ListSessions returns the user's sessions, newest first.
// @Summary List chat sessions
// @Tags    chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /chat/sessions [get]
func (h *ChatHandler) ListSessions(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	sessions, err := h.useCase.Sessions(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list sessions")
	}
	out := make([]fiber.Map, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, fiber.Map{
			"id":        s.ID.String(),
			"name":      s.Name,
			"createdAt": s.CreatedAt,
		})
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Messages returns all messages of one session in chronological order.
// @Summary Session messages
// @Tags    chat
// @Produce json
// @Param   id path string true "session id"
// @Security BearerAuth
// @Success 200 {array} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /chat/sessions/{id}/messages [get]
func (h *ChatHandler) Messages(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid session id")
	}
	messages, err := h.useCase.Messages(c.Context(), userID, sessionID)
	if err != nil {
		if err == chat.ErrSessionNotFound {
			return presenter.Error(c, http.StatusNotFound, "session not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load messages")
	}
	return presenter.JSON(c, http.StatusOK, messagesToMaps(messages))
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

// Send stores the question, queries the model and returns the answer.
// @Summary Send message
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   id path string true "session id"
// @Param   input body sendMessageRequest true "question"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /chat/sessions/{id}/message [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid session id")
	}
	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	answer, err := h.useCase.Send(c.Context(), userID, sessionID, req.Message)
	if err != nil {
		switch err {
		case chat.ErrEmptyQuestion:
			return presenter.Error(c, http.StatusBadRequest, "message is required")
		case chat.ErrSessionNotFound:
			return presenter.Error(c, http.StatusNotFound, "session not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to process message")
		}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"answer": answer})
}

// History returns the user's most recent messages across sessions.
// @Summary Recent chat history
// @Tags    chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]any
// @Router  /chat/history [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	messages, err := h.useCase.History(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load history")
	}
	return presenter.JSON(c, http.StatusOK, messagesToMaps(messages))
}

// DeleteAll removes every session of the user together with its messages.
// @Summary Delete all sessions
// @Tags    chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router  /chat/sessions [delete]
func (h *ChatHandler) DeleteAll(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	if err := h.useCase.DeleteAll(c.Context(), userID); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete sessions")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "All sessions deleted."})
}

func messagesToMaps(messages []chat.Message) []fiber.Map {
	out := make([]fiber.Map, 0, len(messages))
	for _, m := range messages {
		out = append(out, fiber.Map{
			"id":        m.ID.String(),
			"sessionId": m.SessionID.String(),
			"message":   m.Question,
			"response":  m.Answer,
			"timestamp": m.CreatedAt,
		})
	}
	return out
}
