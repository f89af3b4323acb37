package api

import "github.com/shopspring/decimal"

// Expense is a community cost paid by one participant.
type Expense struct {
	ID              string          `json:"id"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amount_formatted"`
	Date            string          `json:"date"`
	Category        string          `json:"category"`
	CategoryLabel   string          `json:"category_label"`
	PayerID         string          `json:"payer_id"`
	Participants    []string        `json:"participants"`
	Receipt         string          `json:"receipt,omitempty"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       int64           `json:"created_at"`
}

type CreateExpenseRequest struct {
	Description string `json:"description"`
	// Amount accepts "1234.50" or "1234,50".
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	Category string `json:"category"`
	PayerID  string `json:"payer_id"`
	// Participants defaults to every registered participant when empty.
	Participants []string `json:"participants,omitempty"`
	Receipt      string   `json:"receipt,omitempty"`
}

type CreateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type GetExpenseRequest struct {
	ExpenseID string `json:"expense_id"`
}

type GetExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type ListExpensesByParticipantRequest struct {
	ParticipantID string `json:"participant_id"`
}

type ListExpensesByParticipantResponse struct {
	Expenses []*Expense `json:"expenses"`
}
