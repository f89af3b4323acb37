package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/consorcio/internal/models"
)

func d(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func assertAmount(t *testing.T, label string, got decimal.Decimal, want float64) {
	t.Helper()
	if math.Abs(got.InexactFloat64()-want) > 0.01 {
		t.Errorf("%s = %s, want %.2f", label, got, want)
	}
}

var (
	maria  = Participant{ID: "p1", Name: "María González"}
	carlos = Participant{ID: "p2", Name: "Carlos Rodriguez"}
	ana    = Participant{ID: "p3", Name: "Ana Martínez"}
	juan   = Participant{ID: "p4", Name: "Juan Pérez"}
)

func TestCalculateBalances(t *testing.T) {
	tests := []struct {
		name         string
		expenses     []Expense
		payments     []Payment
		participants []Participant
		validateFunc func(t *testing.T, l Ledger)
	}{
		{
			name:         "one payer covers everything for two participants",
			expenses:     []Expense{{PayerID: "p1", Amount: d(100), Category: models.CategoryMaintenance}},
			participants: []Participant{maria, carlos},
			validateFunc: func(t *testing.T, l Ledger) {
				assertAmount(t, "average", l.Average, 50)
				p1, _ := l.Find("p1")
				p2, _ := l.Find("p2")
				assertAmount(t, "payer balance", p1.NetBalance, 50)
				assertAmount(t, "other balance", p2.NetBalance, -50)
				if p1.State != StateCreditor {
					t.Errorf("payer state = %s, want %s", p1.State, StateCreditor)
				}
				if p2.State != StateDebtor {
					t.Errorf("other state = %s, want %s", p2.State, StateDebtor)
				}
			},
		},
		{
			name: "settlement category is ignored",
			expenses: []Expense{
				{PayerID: "p1", Amount: d(100), Category: models.CategoryCleaning},
				{PayerID: "p2", Amount: d(500), Category: models.CategorySettlement},
			},
			participants: []Participant{maria, carlos},
			validateFunc: func(t *testing.T, l Ledger) {
				assertAmount(t, "total", l.Total, 100)
				p2, _ := l.Find("p2")
				assertAmount(t, "p2 paid", p2.TotalPaid, 0)
				assertAmount(t, "p2 balance", p2.NetBalance, -50)
			},
		},
		{
			name:     "no participants yields zero average",
			expenses: []Expense{{PayerID: "p1", Amount: d(100), Category: models.CategoryOther}},
			validateFunc: func(t *testing.T, l Ledger) {
				if !l.Average.IsZero() {
					t.Errorf("average = %s, want 0", l.Average)
				}
				if len(l.Balances) != 0 {
					t.Errorf("balances = %d, want 0", len(l.Balances))
				}
				assertAmount(t, "orphaned", l.Orphaned, 100)
			},
		},
		{
			name:         "orphaned payer counts toward the average only",
			expenses:     []Expense{{PayerID: "ghost", Amount: d(100), Category: models.CategoryOther}},
			participants: []Participant{maria, carlos},
			validateFunc: func(t *testing.T, l Ledger) {
				if len(l.Balances) != 2 {
					t.Fatalf("balances = %d, want 2", len(l.Balances))
				}
				if _, ok := l.Find("ghost"); ok {
					t.Error("orphaned payer must not get a balance record")
				}
				assertAmount(t, "orphaned", l.Orphaned, 100)
				for _, b := range l.Balances {
					assertAmount(t, b.Name, b.NetBalance, -50)
				}
			},
		},
		{
			name:         "settlement payment clears the debt",
			expenses:     []Expense{{PayerID: "p1", Amount: d(100), Category: models.CategoryMaintenance}},
			payments:     []Payment{{DebtorID: "p2", CreditorID: "p1", Amount: d(50)}},
			participants: []Participant{maria, carlos},
			validateFunc: func(t *testing.T, l Ledger) {
				for _, b := range l.Balances {
					assertAmount(t, b.Name, b.NetBalance, 0)
					if b.State != StateSettled {
						t.Errorf("%s state = %s, want %s", b.Name, b.State, StateSettled)
					}
				}
			},
		},
		{
			name:         "payments without expenses",
			payments:     []Payment{{DebtorID: "p1", CreditorID: "p2", Amount: d(20)}},
			participants: []Participant{maria, carlos},
			validateFunc: func(t *testing.T, l Ledger) {
				p1, _ := l.Find("p1")
				p2, _ := l.Find("p2")
				assertAmount(t, "average", l.Average, 0)
				assertAmount(t, "p1 balance", p1.NetBalance, 20)
				assertAmount(t, "p2 balance", p2.NetBalance, -20)
			},
		},
		{
			name: "uneven three-way split rounds to cents",
			expenses: []Expense{
				{PayerID: "p1", Amount: d(100), Category: models.CategoryServices},
			},
			participants: []Participant{maria, carlos, ana},
			validateFunc: func(t *testing.T, l Ledger) {
				p1, _ := l.Find("p1")
				if !p1.NetBalance.Equal(d(66.67)) {
					t.Errorf("p1 balance = %s, want 66.67", p1.NetBalance)
				}
				p3, _ := l.Find("p3")
				if !p3.NetBalance.Equal(d(-33.33)) {
					t.Errorf("p3 balance = %s, want -33.33", p3.NetBalance)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := CalculateBalances(tt.expenses, tt.payments, tt.participants)
			tt.validateFunc(t, l)
		})
	}
}

func TestCalculateBalancesConservation(t *testing.T) {
	participants := []Participant{maria, carlos, ana, juan}
	expenses := []Expense{
		{PayerID: "p1", Amount: d(25000), Category: models.CategoryMaintenance},
		{PayerID: "p2", Amount: d(85000), Category: models.CategoryImprovements},
		{PayerID: "p3", Amount: d(15000), Category: models.CategoryCleaning},
		{PayerID: "p3", Amount: d(1234.56), Category: models.CategoryServices},
		{PayerID: "p4", Amount: d(999.99), Category: models.CategorySettlement},
	}
	payments := []Payment{
		{DebtorID: "p4", CreditorID: "p2", Amount: d(10000)},
		{DebtorID: "p3", CreditorID: "p2", Amount: d(333.33)},
	}

	l := CalculateBalances(expenses, payments, participants)

	net := decimal.Zero
	for _, b := range l.Balances {
		net = net.Add(b.NetBalance)
	}
	// Each balance is rounded to cents independently.
	if math.Abs(net.InexactFloat64()) > 0.01*float64(len(participants)) {
		t.Errorf("sum of balances = %s, want ~0", net)
	}
}

func TestCalculateBalancesIdempotent(t *testing.T) {
	participants := []Participant{maria, carlos, ana}
	expenses := []Expense{
		{PayerID: "p1", Amount: d(120), Category: models.CategoryMaintenance},
		{PayerID: "p2", Amount: d(30), Category: models.CategorySecurity},
	}
	payments := []Payment{{DebtorID: "p3", CreditorID: "p1", Amount: d(10)}}

	first := CalculateBalances(expenses, payments, participants)
	second := CalculateBalances(expenses, payments, participants)

	if len(first.Balances) != len(second.Balances) {
		t.Fatalf("balance count changed: %d vs %d", len(first.Balances), len(second.Balances))
	}
	for i := range first.Balances {
		a, b := first.Balances[i], second.Balances[i]
		if a.ParticipantID != b.ParticipantID || !a.NetBalance.Equal(b.NetBalance) || a.State != b.State {
			t.Errorf("record %d differs: %+v vs %+v", i, a, b)
		}
	}
	if !first.Total.Equal(second.Total) || !first.Average.Equal(second.Average) {
		t.Error("totals differ between runs")
	}
}

func TestProposeSettlement(t *testing.T) {
	balances := []MemberBalance{
		{ParticipantID: "p1", NetBalance: d(10)},
		{ParticipantID: "p2", NetBalance: d(20)},
		{ParticipantID: "p3", NetBalance: d(-30)},
	}

	shares, err := ProposeSettlement("p3", balances)
	if err != nil {
		t.Fatalf("ProposeSettlement failed: %v", err)
	}
	if len(shares) != 2 {
		t.Fatalf("shares = %d, want 2", len(shares))
	}
	if shares[0].CreditorID != "p1" || !shares[0].Amount.Equal(d(10)) {
		t.Errorf("first share = %+v, want p1/10", shares[0])
	}
	if shares[1].CreditorID != "p2" || !shares[1].Amount.Equal(d(20)) {
		t.Errorf("second share = %+v, want p2/20", shares[1])
	}
}

func TestProposeSettlementErrors(t *testing.T) {
	tests := []struct {
		name     string
		debtor   string
		balances []MemberBalance
		wantErr  error
	}{
		{
			name:     "unknown participant",
			debtor:   "nobody",
			balances: []MemberBalance{{ParticipantID: "p1", NetBalance: d(-5)}},
			wantErr:  ErrUnknownParticipant,
		},
		{
			name:   "creditor cannot settle",
			debtor: "p1",
			balances: []MemberBalance{
				{ParticipantID: "p1", NetBalance: d(5)},
				{ParticipantID: "p2", NetBalance: d(-5)},
			},
			wantErr: ErrNotDebtor,
		},
		{
			name:   "settled participant cannot settle",
			debtor: "p1",
			balances: []MemberBalance{
				{ParticipantID: "p1", NetBalance: decimal.Zero},
			},
			wantErr: ErrNotDebtor,
		},
		{
			name:   "no creditors",
			debtor: "p1",
			balances: []MemberBalance{
				{ParticipantID: "p1", NetBalance: d(-5)},
				{ParticipantID: "p2", NetBalance: d(-5)},
			},
			wantErr: ErrNoCreditors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProposeSettlement(tt.debtor, tt.balances)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ProposeSettlement() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProposeSettlementDropsSubCentShares(t *testing.T) {
	balances := []MemberBalance{
		{ParticipantID: "p1", NetBalance: d(1)},
		{ParticipantID: "p2", NetBalance: d(999)},
		{ParticipantID: "p3", NetBalance: d(-0.01)},
	}

	shares, err := ProposeSettlement("p3", balances)
	if err != nil {
		t.Fatalf("ProposeSettlement failed: %v", err)
	}
	if len(shares) != 1 {
		t.Fatalf("shares = %+v, want a single share", shares)
	}
	if shares[0].CreditorID != "p2" || !shares[0].Amount.Equal(d(0.01)) {
		t.Errorf("share = %+v, want p2/0.01", shares[0])
	}
}
