// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/consorcio/internal/models"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write would break a uniqueness or
	// reference constraint (e.g., deleting a participant with expenses).
	ErrConflict = errors.New("conflict")
)

// ParticipantStore persists consorcio members.
type ParticipantStore interface {
	// CreateParticipant persists a new participant.
	// The ID and CreatedAt fields are populated by the store when empty.
	CreateParticipant(ctx context.Context, p *models.Participant) error
	GetParticipant(ctx context.Context, id string) (*models.Participant, error)
	ListParticipants(ctx context.Context) ([]*models.Participant, error)
	UpdateParticipant(ctx context.Context, p *models.Participant) error

	// DeleteParticipant removes a participant that is not referenced by any
	// expense or payment. Referenced participants yield ErrConflict.
	DeleteParticipant(ctx context.Context, id string) error
}

// ExpenseStore persists community expenses. Expenses are immutable.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, e *models.Expense) error
	GetExpense(ctx context.Context, id string) (*models.Expense, error)
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// ListExpensesByParticipant returns expenses the participant paid or shares.
	ListExpensesByParticipant(ctx context.Context, participantID string) ([]*models.Expense, error)
}

// PaymentStore persists settlement payments. Payments are immutable.
type PaymentStore interface {
	CreatePayment(ctx context.Context, p *models.Payment) error

	// CreatePayments stores all payments atomically.
	CreatePayments(ctx context.Context, payments []*models.Payment) error
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	ListPayments(ctx context.Context) ([]*models.Payment, error)
	ListPaymentsByParticipant(ctx context.Context, participantID string) ([]*models.Payment, error)
}

// UserStore persists login credentials.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store defines every storage operation used by the services.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	ParticipantStore
	ExpenseStore
	PaymentStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}
