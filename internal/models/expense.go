package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage format of expense and payment dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrEmptyDescription = errors.New("description is required")
	ErrDescriptionLong  = errors.New("description too long (max 200 characters)")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidCategory  = errors.New("unknown category")
	ErrMissingPayer     = errors.New("payer is required")
)

// Expense represents a community cost paid by one participant.
// Expenses are immutable once created.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Description is a short text (e.g., "Mantenimiento ascensor").
	Description string

	// Amount is the positive amount paid.
	Amount decimal.Decimal

	// Date is the day the expense was incurred (UTC, no time component).
	Date time.Time

	// Category is one of the known categories (see category.go).
	Category string

	// PayerID is the participant who paid the expense.
	PayerID string

	// Participants lists the IDs of participants sharing the expense.
	Participants []string

	// Receipt is an optional reference to a stored receipt.
	Receipt string

	// CreatedBy is the participant ID who recorded the expense.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// Validate checks the expense before it is stored.
func (e *Expense) Validate() error {
	desc := strings.TrimSpace(e.Description)
	if desc == "" {
		return ErrEmptyDescription
	}
	if len(desc) > 200 {
		return ErrDescriptionLong
	}
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	if !IsValidCategory(e.Category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, e.Category)
	}
	if e.PayerID == "" {
		return ErrMissingPayer
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
