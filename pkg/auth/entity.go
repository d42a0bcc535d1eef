package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered student account.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
