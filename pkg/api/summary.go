package api

import "github.com/shopspring/decimal"

// Balance states.
const (
	StateCreditor = "creditor"
	StateDebtor   = "debtor"
	StateSettled  = "settled"
)

// Balance is the position of one participant against the average contribution.
type Balance struct {
	ParticipantID       string          `json:"participant_id"`
	Name                string          `json:"name"`
	Unit                string          `json:"unit,omitempty"`
	TotalPaid           decimal.Decimal `json:"total_paid"`
	Contribution        decimal.Decimal `json:"contribution"`
	SettlementsPaid     decimal.Decimal `json:"settlements_paid"`
	SettlementsReceived decimal.Decimal `json:"settlements_received"`
	NetBalance          decimal.Decimal `json:"net_balance"`
	NetBalanceFormatted string          `json:"net_balance_formatted"`
	State               string          `json:"state"`
	// StateLabel is the display text ("Debe recibir", "Debe aportar", "Al día").
	StateLabel string `json:"state_label"`
}

type GetBalancesRequest struct{}

type GetBalancesResponse struct {
	Balances         []*Balance      `json:"balances"`
	Total            decimal.Decimal `json:"total"`
	TotalFormatted   string          `json:"total_formatted"`
	Average          decimal.Decimal `json:"average"`
	AverageFormatted string          `json:"average_formatted"`
	// Orphaned is the part of Total paid by ids that match no participant.
	Orphaned decimal.Decimal `json:"orphaned"`
}

type CategoryTotal struct {
	Category        string          `json:"category"`
	Label           string          `json:"label"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amount_formatted"`
	Count           int             `json:"count"`
	Percent         decimal.Decimal `json:"percent"`
}

type ParticipantTotal struct {
	ParticipantID   string          `json:"participant_id"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amount_formatted"`
	Count           int             `json:"count"`
	Percent         decimal.Decimal `json:"percent"`
}

// GetSummaryRequest restricts the summary to one month when both fields are set.
type GetSummaryRequest struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
}

type GetSummaryResponse struct {
	Total                        decimal.Decimal     `json:"total"`
	TotalFormatted               string              `json:"total_formatted"`
	ExpenseCount                 int                 `json:"expense_count"`
	AveragePerExpense            decimal.Decimal     `json:"average_per_expense"`
	AverageContribution          decimal.Decimal     `json:"average_contribution"`
	AverageContributionFormatted string              `json:"average_contribution_formatted"`
	CurrentMonthTotal            decimal.Decimal     `json:"current_month_total"`
	CurrentMonthTotalFormatted   string              `json:"current_month_total_formatted"`
	ByCategory                   []*CategoryTotal    `json:"by_category"`
	ByParticipant                []*ParticipantTotal `json:"by_participant"`
}

type ProposeSettlementRequest struct {
	DebtorID string `json:"debtor_id"`
	// Date defaults to today.
	Date string `json:"date,omitempty"`
}

// ProposeSettlementResponse lists candidate payments. They carry no ID and
// no receipt until they are submitted.
type ProposeSettlementResponse struct {
	Payments       []*Payment      `json:"payments"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
}

type SubmitSettlementRequest struct {
	Payments []*CreatePaymentRequest `json:"payments"`
}

type SubmitSettlementResponse struct {
	Payments []*Payment `json:"payments"`
}
