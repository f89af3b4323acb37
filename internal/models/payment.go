package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingDebtor   = errors.New("debtor is required")
	ErrMissingCreditor = errors.New("creditor is required")
	ErrSelfPayment     = errors.New("debtor and creditor must be different participants")
	ErrMissingReceipt  = errors.New("a receipt is required before submitting a payment")
)

// Payment represents a transfer between participants to clear debts.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// Description is an optional note (e.g., "Liquidación enero").
	Description string

	// Amount is the amount transferred.
	Amount decimal.Decimal

	// Date is the day of the transfer.
	Date time.Time

	// DebtorID is the participant who paid (debtor settling up).
	DebtorID string

	// CreditorID is the participant who received payment.
	CreditorID string

	// Receipt references the transfer receipt (file name or URL).
	Receipt string

	// CreatedBy is the participant ID who recorded this payment.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64
}

// Validate checks the payment before it is stored.
func (p *Payment) Validate() error {
	if !p.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if p.Date.IsZero() {
		return ErrInvalidDate
	}
	if p.DebtorID == "" {
		return ErrMissingDebtor
	}
	if p.CreditorID == "" {
		return ErrMissingCreditor
	}
	if p.DebtorID == p.CreditorID {
		return ErrSelfPayment
	}
	if p.Receipt == "" {
		return ErrMissingReceipt
	}
	return nil
}
