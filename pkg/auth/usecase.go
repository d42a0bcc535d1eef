package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase describes registration/authentication behavior.
type AuthUseCase interface {
	Register(ctx context.Context, username, email, password string) (AuthResult, error)
	// Login accepts the username or the email as identifier.
	Login(ctx context.Context, identifier, password string) (AuthResult, error)
	Me(ctx context.Context, userID uuid.UUID) (User, error)
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	tokens TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator) AuthUseCase {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (AuthResult, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	// If either identifier is taken, fail fast (best-effort checks)
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return AuthResult{}, ErrUserAlreadyExists
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrUserAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	user := User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, identifier, password string) (AuthResult, error) {
	user, err := s.repo.GetByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, userID)
}
