package models

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrEmptyName    = errors.New("participant name is required")
	ErrInvalidEmail = errors.New("invalid email address")
)

// Participant represents a member of the consorcio.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string

	// Name is the display name (e.g., "María González").
	Name string

	// Email is the contact address, also used to link login credentials.
	Email string

	// Phone is a free-form phone number.
	Phone string

	// Unit is the apartment label (e.g., "2A").
	Unit string

	// Active marks whether the participant currently lives in the building.
	// Inactive participants still share the average contribution.
	Active bool

	// CreatedAt is the Unix timestamp when the participant was created.
	CreatedAt int64
}

// Validate checks the fields required to store a participant.
func (p *Participant) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
