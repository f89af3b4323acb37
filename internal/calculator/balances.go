package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/consorcio/internal/models"
	"github.com/mmynk/consorcio/internal/money"
)

// State classifies a participant's net balance.
type State string

const (
	// StateCreditor means the participant must receive money ("debe recibir").
	StateCreditor State = "creditor"
	// StateDebtor means the participant must contribute money ("debe aportar").
	StateDebtor State = "debtor"
	// StateSettled means the participant owes and is owed nothing.
	StateSettled State = "settled"
)

// Expense represents an expense with the minimal information needed for balance calculations.
type Expense struct {
	PayerID  string
	Amount   decimal.Decimal
	Category string
}

// Payment represents a settlement with the minimal information needed for balance calculations.
type Payment struct {
	DebtorID   string // Who paid (debtor settling up)
	CreditorID string // Who received (creditor being paid)
	Amount     decimal.Decimal
}

// Participant identifies a balance holder.
type Participant struct {
	ID   string
	Name string
}

// MemberBalance represents the balance information for one participant.
type MemberBalance struct {
	ParticipantID string
	Name          string

	// TotalPaid is the sum of community expenses this participant paid.
	TotalPaid decimal.Decimal

	// Contribution is the equal share every participant must cover.
	Contribution decimal.Decimal

	SettlementsPaid     decimal.Decimal
	SettlementsReceived decimal.Decimal

	// NetBalance is rounded to cents. Positive = owed money, negative = owes money.
	NetBalance decimal.Decimal
	State      State
}

// Ledger is the result of a balance calculation.
type Ledger struct {
	// Balances holds one record per participant, in input order.
	Balances []MemberBalance

	// Total is the sum of all community expenses, orphaned ones included.
	Total decimal.Decimal

	// Average is Total divided by the participant count (zero without participants).
	Average decimal.Decimal

	// Orphaned is the part of Total paid by IDs that match no participant.
	Orphaned decimal.Decimal
}

// Find returns the balance of the given participant.
func (l Ledger) Find(participantID string) (MemberBalance, bool) {
	for _, b := range l.Balances {
		if b.ParticipantID == participantID {
			return b, true
		}
	}
	return MemberBalance{}, false
}

// CalculateBalances computes every participant's net balance against the
// equal-split average contribution.
//
// Algorithm:
//   - Settlement-category expenses are ignored
//   - Remaining expenses are summed per payer; the grand total is divided
//     by the participant count to get the average contribution
//   - net = (paid - average) - settlements received + settlements paid
//
// The result depends only on its inputs, so repeated calls on the same
// data return identical ledgers.
func CalculateBalances(expenses []Expense, payments []Payment, participants []Participant) Ledger {
	known := make(map[string]bool, len(participants))
	for _, p := range participants {
		known[p.ID] = true
	}

	paid := make(map[string]decimal.Decimal)
	total := decimal.Zero
	orphaned := decimal.Zero
	for _, e := range expenses {
		if models.IsSettlement(e.Category) {
			continue
		}
		total = total.Add(e.Amount)
		if !known[e.PayerID] {
			orphaned = orphaned.Add(e.Amount)
			continue
		}
		paid[e.PayerID] = paid[e.PayerID].Add(e.Amount)
	}

	average := decimal.Zero
	if len(participants) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(participants))))
	}

	settledOut := make(map[string]decimal.Decimal)
	settledIn := make(map[string]decimal.Decimal)
	for _, p := range payments {
		settledOut[p.DebtorID] = settledOut[p.DebtorID].Add(p.Amount)
		settledIn[p.CreditorID] = settledIn[p.CreditorID].Add(p.Amount)
	}

	balances := make([]MemberBalance, 0, len(participants))
	for _, p := range participants {
		net := paid[p.ID].Sub(average).Sub(settledIn[p.ID]).Add(settledOut[p.ID])
		net = money.RoundCents(net)

		balances = append(balances, MemberBalance{
			ParticipantID:       p.ID,
			Name:                p.Name,
			TotalPaid:           paid[p.ID],
			Contribution:        average,
			SettlementsPaid:     settledOut[p.ID],
			SettlementsReceived: settledIn[p.ID],
			NetBalance:          net,
			State:               classify(net),
		})
	}

	return Ledger{
		Balances: balances,
		Total:    total,
		Average:  average,
		Orphaned: orphaned,
	}
}

func classify(net decimal.Decimal) State {
	switch net.Sign() {
	case 1:
		return StateCreditor
	case -1:
		return StateDebtor
	default:
		return StateSettled
	}
}
