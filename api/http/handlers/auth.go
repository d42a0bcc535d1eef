package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sabin7k/ukstudy/api/http/presenter"
	"github.com/sabin7k/ukstudy/pkg/auth"
)

type AuthHandler struct {
	useCase  auth.AuthUseCase
	validate *validator.Validate
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase, validate: validator.New()}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "username, email and password are required")
	}

	result, err := h.useCase.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch err {
		case auth.ErrUserAlreadyExists:
			return presenter.Error(c, http.StatusConflict, "username or email already taken")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"id":        result.User.ID.String(),
		"username":  result.User.Username,
		"email":     result.User.Email,
		"createdAt": result.User.CreatedAt,
		"token":     result.Token,
	})
}

type loginRequest struct {
	// Identifier is the username or the email.
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// Login handles user login by username or email.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "identifier and password are required")
	}

	result, err := h.useCase.Login(c.Context(), req.Identifier, req.Password)
	if err != nil {
		if err == auth.ErrInvalidCredentials {
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":       result.User.ID.String(),
		"username": result.User.Username,
		"email":    result.User.Email,
		"token":    result.Token,
	})
}

// Me returns the authenticated user's profile.
// @Summary Current user
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	user, err := h.useCase.Me(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":        user.ID.String(),
		"username":  user.Username,
		"email":     user.Email,
		"createdAt": user.CreatedAt,
	})
}

// currentUserID reads the subject set by the JWT middleware.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("userId").(string)
	return uuid.Parse(raw)
}
