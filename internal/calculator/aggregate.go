package calculator

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/consorcio/internal/models"
	"github.com/mmynk/consorcio/internal/money"
)

// UnknownParticipantName is shown for payers that match no participant.
const UnknownParticipantName = "Participante desconocido"

// DatedExpense is an expense with the fields needed for projections.
type DatedExpense struct {
	Expense
	Date time.Time
}

// CategoryTotal aggregates community expenses of one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
	Count    int
	Percent  decimal.Decimal // share of the grand total, one decimal
}

// ParticipantTotal aggregates community expenses paid by one participant.
type ParticipantTotal struct {
	ParticipantID string
	Name          string
	Amount        decimal.Decimal
	Count         int
	Percent       decimal.Decimal
}

// Summary is the display projection of a set of expenses.
type Summary struct {
	Total             decimal.Decimal
	Count             int
	AveragePerExpense decimal.Decimal
	ByCategory        []CategoryTotal
	ByParticipant     []ParticipantTotal
}

// CommunityExpenses drops settlement entries.
func CommunityExpenses(expenses []Expense) []Expense {
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if !models.IsSettlement(e.Category) {
			out = append(out, e)
		}
	}
	return out
}

// FilterMonth keeps the expenses dated in the given year and month.
func FilterMonth(expenses []DatedExpense, year int, month time.Month) []Expense {
	var out []Expense
	for _, e := range expenses {
		if e.Date.Year() == year && e.Date.Month() == month {
			out = append(out, e.Expense)
		}
	}
	return out
}

// ByCategory groups community expenses by category, largest first.
func ByCategory(expenses []Expense) []CategoryTotal {
	expenses = CommunityExpenses(expenses)
	total := sum(expenses)

	index := make(map[string]int)
	var rows []CategoryTotal
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(rows)
			index[e.Category] = i
			rows = append(rows, CategoryTotal{Category: e.Category, Amount: decimal.Zero})
		}
		rows[i].Amount = rows[i].Amount.Add(e.Amount)
		rows[i].Count++
	}

	for i := range rows {
		rows[i].Percent = money.Percent(rows[i].Amount, total)
	}
	slices.SortStableFunc(rows, func(a, b CategoryTotal) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return rows
}

// ByParticipant groups community expenses by payer, largest first.
// Every participant gets a row, even without expenses. Payers that match
// no participant are reported under UnknownParticipantName.
func ByParticipant(expenses []Expense, participants []Participant) []ParticipantTotal {
	expenses = CommunityExpenses(expenses)
	total := sum(expenses)

	index := make(map[string]int, len(participants))
	rows := make([]ParticipantTotal, 0, len(participants))
	for _, p := range participants {
		index[p.ID] = len(rows)
		rows = append(rows, ParticipantTotal{ParticipantID: p.ID, Name: p.Name, Amount: decimal.Zero})
	}

	for _, e := range expenses {
		i, ok := index[e.PayerID]
		if !ok {
			i = len(rows)
			index[e.PayerID] = i
			rows = append(rows, ParticipantTotal{
				ParticipantID: e.PayerID,
				Name:          UnknownParticipantName,
				Amount:        decimal.Zero,
			})
		}
		rows[i].Amount = rows[i].Amount.Add(e.Amount)
		rows[i].Count++
	}

	for i := range rows {
		rows[i].Percent = money.Percent(rows[i].Amount, total)
	}
	slices.SortStableFunc(rows, func(a, b ParticipantTotal) int {
		return b.Amount.Cmp(a.Amount)
	})
	return rows
}

// Summarize builds the full projection shown on the summary screen.
func Summarize(expenses []Expense, participants []Participant) Summary {
	community := CommunityExpenses(expenses)
	total := sum(community)

	avg := decimal.Zero
	if len(community) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(community))))
	}

	return Summary{
		Total:             total,
		Count:             len(community),
		AveragePerExpense: avg,
		ByCategory:        ByCategory(community),
		ByParticipant:     ByParticipant(community, participants),
	}
}

func sum(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
