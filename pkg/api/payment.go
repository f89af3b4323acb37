package api

import "github.com/shopspring/decimal"

// Payment is a transfer from a debtor to a creditor.
type Payment struct {
	ID              string          `json:"id"`
	Description     string          `json:"description,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amount_formatted"`
	Date            string          `json:"date"`
	DebtorID        string          `json:"debtor_id"`
	CreditorID      string          `json:"creditor_id"`
	Receipt         string          `json:"receipt,omitempty"`
	CreatedBy       string          `json:"created_by,omitempty"`
	CreatedAt       int64           `json:"created_at,omitempty"`
}

type CreatePaymentRequest struct {
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	DebtorID    string `json:"debtor_id"`
	CreditorID  string `json:"creditor_id"`
	Receipt     string `json:"receipt"`
}

type CreatePaymentResponse struct {
	Payment *Payment `json:"payment"`
}

type GetPaymentRequest struct {
	PaymentID string `json:"payment_id"`
}

type GetPaymentResponse struct {
	Payment *Payment `json:"payment"`
}

type ListPaymentsRequest struct{}

type ListPaymentsResponse struct {
	Payments []*Payment `json:"payments"`
}

type ListPaymentsByParticipantRequest struct {
	ParticipantID string `json:"participant_id"`
}

type ListPaymentsByParticipantResponse struct {
	Payments []*Payment `json:"payments"`
}
