package models

import (
	"time"

	"github.com/google/uuid"
)

// User holds login credentials for a participant.
// A participant has at most one user; the email is unique.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// ParticipantID links the credentials to a participant.
	ParticipantID string

	// Email is the login address.
	Email string

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string

	// Active users can log in; deactivated users are rejected.
	Active bool

	// CreatedAt is the Unix timestamp when the user was created.
	CreatedAt int64
}

// NewUser creates an active user for a participant with a fresh ID.
func NewUser(participantID, email, passwordHash string) *User {
	return &User{
		ID:            uuid.New().String(),
		ParticipantID: participantID,
		Email:         email,
		PasswordHash:  passwordHash,
		Active:        true,
		CreatedAt:     time.Now().Unix(),
	}
}
