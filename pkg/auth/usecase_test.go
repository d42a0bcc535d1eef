package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	users map[uuid.UUID]User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[uuid.UUID]User)}
}

func (r *memoryRepo) Create(_ context.Context, user User) error {
	for _, u := range r.users {
		if u.Username == user.Username || strings.EqualFold(u.Email, user.Email) {
			return ErrUserAlreadyExists
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (User, error) {
	u, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *memoryRepo) GetByUsername(_ context.Context, username string) (User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepo) GetByIdentifier(ctx context.Context, identifier string) (User, error) {
	if u, err := r.GetByUsername(ctx, identifier); err == nil {
		return u, nil
	}
	return r.GetByEmail(ctx, identifier)
}

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, user User) (string, error) {
	return "token-" + user.Username, nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newMemoryRepo(), staticTokens{})

	reg, err := svc.Register(context.Background(), "amelia", "amelia@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "amelia", reg.User.Username)
	assert.Equal(t, "token-amelia", reg.Token)
	assert.NotEqual(t, "secret123", reg.User.PasswordHash)

	// Login by username
	byName, err := svc.Login(context.Background(), "amelia", "secret123")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, byName.User.ID)

	// Login by email
	byEmail, err := svc.Login(context.Background(), "amelia@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, byEmail.User.ID)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := NewAuthService(newMemoryRepo(), staticTokens{})

	_, err := svc.Register(context.Background(), "amelia", "amelia@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "amelia", "other@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = svc.Register(context.Background(), "other", "amelia@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegister_EmptyFields(t *testing.T) {
	svc := NewAuthService(newMemoryRepo(), staticTokens{})

	_, err := svc.Register(context.Background(), "", "a@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Register(context.Background(), "a", "a@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewAuthService(newMemoryRepo(), staticTokens{})

	_, err := svc.Register(context.Background(), "amelia", "amelia@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "amelia", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	svc := NewAuthService(newMemoryRepo(), staticTokens{})

	reg, err := svc.Register(context.Background(), "amelia", "amelia@example.com", "secret123")
	require.NoError(t, err)

	user, err := svc.Me(context.Background(), reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "amelia", user.Username)

	_, err = svc.Me(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
