package service

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/consorcio/internal/calculator"
	"github.com/mmynk/consorcio/internal/models"
	"github.com/mmynk/consorcio/pkg/api"
)

func balanceOf(t *testing.T, balances []*api.Balance, participantID string) *api.Balance {
	t.Helper()
	for _, b := range balances {
		if b.ParticipantID == participantID {
			return b
		}
	}
	t.Fatalf("no balance for participant %s", participantID)
	return nil
}

func TestGetBalances(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	maria := env.mustParticipant(t, "María González", "maria@email.com", "2A")
	carlos := env.mustParticipant(t, "Carlos Rodriguez", "carlos@email.com", "1B")

	env.mustExpense(t, maria, "100", "2024-01-15", "limpieza")
	// Settlement pseudo-expenses never move balances.
	env.mustExpense(t, carlos, "500", "2024-01-16", models.CategorySettlement)

	resp, err := env.summary.GetBalances(ctx, connect.NewRequest(&api.GetBalancesRequest{}))
	if err != nil {
		t.Fatalf("GetBalances failed: %v", err)
	}

	assertAmount(t, "Total", resp.Msg.Total, "100")
	assertAmount(t, "Average", resp.Msg.Average, "50")

	mb := balanceOf(t, resp.Msg.Balances, maria.ID)
	assertAmount(t, "maria net", mb.NetBalance, "50")
	if mb.State != api.StateCreditor || mb.StateLabel != "Debe recibir" || mb.Unit != "2A" {
		t.Errorf("unexpected maria balance: %+v", mb)
	}

	cb := balanceOf(t, resp.Msg.Balances, carlos.ID)
	assertAmount(t, "carlos net", cb.NetBalance, "-50")
	if cb.State != api.StateDebtor || cb.NetBalanceFormatted != "-$50,00" {
		t.Errorf("unexpected carlos balance: %+v", cb)
	}

	// Carlos pays Maria: both become settled.
	_, err = env.payments.CreatePayment(ctx, as(carlos.ID, &api.CreatePaymentRequest{
		Amount:     "50",
		Date:       "2024-01-20",
		DebtorID:   carlos.ID,
		CreditorID: maria.ID,
		Receipt:    "transferencia.pdf",
	}))
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}

	resp, err = env.summary.GetBalances(ctx, connect.NewRequest(&api.GetBalancesRequest{}))
	if err != nil {
		t.Fatalf("GetBalances failed: %v", err)
	}
	for _, b := range resp.Msg.Balances {
		if b.State != api.StateSettled || !b.NetBalance.IsZero() {
			t.Errorf("%s: state %s net %s, want settled", b.Name, b.State, b.NetBalance)
		}
		if b.StateLabel != "Al día" {
			t.Errorf("%s: label %q", b.Name, b.StateLabel)
		}
	}
}

func TestGetBalancesIsIdempotent(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	maria := env.mustParticipant(t, "María González", "maria@email.com", "2A")
	carlos := env.mustParticipant(t, "Carlos Rodriguez", "carlos@email.com", "1B")
	env.mustParticipant(t, "Ana Martínez", "ana@email.com", "4D")
	env.mustExpense(t, maria, "100", "2024-01-15", "limpieza")
	env.mustExpense(t, carlos, "33.33", "2024-01-18", "servicios")

	first, err := env.summary.GetBalances(ctx, connect.NewRequest(&api.GetBalancesRequest{}))
	if err != nil {
		t.Fatalf("GetBalances failed: %v", err)
	}
	second, err := env.summary.GetBalances(ctx, connect.NewRequest(&api.GetBalancesRequest{}))
	if err != nil {
		t.Fatalf("GetBalances failed: %v", err)
	}

	sum := decimal.Zero
	for i, b := range first.Msg.Balances {
		if !b.NetBalance.Equal(second.Msg.Balances[i].NetBalance) {
			t.Errorf("%s: %s then %s", b.Name, b.NetBalance, second.Msg.Balances[i].NetBalance)
		}
		sum = sum.Add(b.NetBalance)
	}
	if sum.Abs().GreaterThan(decimal.New(3, -2)) {
		t.Errorf("net balances sum to %s, want ~0", sum)
	}
}

func TestGetSummary(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	maria := env.mustParticipant(t, "María González", "maria@email.com", "2A")
	carlos := env.mustParticipant(t, "Carlos Rodriguez", "carlos@email.com", "1B")

	env.mustExpense(t, maria, "300", "2024-03-01", "limpieza")
	env.mustExpense(t, carlos, "100", "2024-03-05", "seguridad")
	env.mustExpense(t, maria, "600", "2024-02-10", "limpieza")
	env.mustExpense(t, carlos, "999", "2024-03-06", models.CategorySettlement)

	t.Run("all time", func(t *testing.T) {
		resp, err := env.summary.GetSummary(ctx, connect.NewRequest(&api.GetSummaryRequest{}))
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}
		s := resp.Msg

		assertAmount(t, "Total", s.Total, "1000")
		if s.ExpenseCount != 3 {
			t.Errorf("ExpenseCount = %d, want 3", s.ExpenseCount)
		}
		assertAmount(t, "AverageContribution", s.AverageContribution, "500")
		// The clock is fixed in March 2024.
		assertAmount(t, "CurrentMonthTotal", s.CurrentMonthTotal, "400")

		if len(s.ByCategory) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(s.ByCategory))
		}
		top := s.ByCategory[0]
		if top.Category != models.CategoryCleaning || top.Label != "Limpieza" || top.Count != 2 {
			t.Errorf("unexpected top category: %+v", top)
		}
		assertAmount(t, "limpieza percent", top.Percent, "90")

		for _, c := range s.ByCategory {
			if c.Category == models.CategorySettlement {
				t.Error("settlement entries must not appear in category totals")
			}
		}

		if len(s.ByParticipant) != 2 || s.ByParticipant[0].ParticipantID != maria.ID {
			t.Fatalf("unexpected participant rows: %+v", s.ByParticipant)
		}
		assertAmount(t, "carlos amount", s.ByParticipant[1].Amount, "100")
	})

	t.Run("single month", func(t *testing.T) {
		resp, err := env.summary.GetSummary(ctx, connect.NewRequest(&api.GetSummaryRequest{Year: 2024, Month: 2}))
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}
		assertAmount(t, "Total", resp.Msg.Total, "600")
		assertAmount(t, "AverageContribution", resp.Msg.AverageContribution, "300")
		if resp.Msg.ExpenseCount != 1 {
			t.Errorf("ExpenseCount = %d, want 1", resp.Msg.ExpenseCount)
		}
	})

	t.Run("current month follows UTC", func(t *testing.T) {
		restore := env.summarySvc.now
		t.Cleanup(func() { env.summarySvc.now = restore })
		// Already April locally, still March 31 in UTC.
		east := time.FixedZone("UTC+3", 3*60*60)
		env.summarySvc.now = func() time.Time { return time.Date(2024, 4, 1, 1, 0, 0, 0, east) }

		resp, err := env.summary.GetSummary(ctx, connect.NewRequest(&api.GetSummaryRequest{}))
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}
		assertAmount(t, "CurrentMonthTotal", resp.Msg.CurrentMonthTotal, "400")
	})

	t.Run("invalid period", func(t *testing.T) {
		for _, req := range []*api.GetSummaryRequest{{Year: 2024}, {Month: 3}, {Year: 2024, Month: 13}} {
			_, err := env.summary.GetSummary(ctx, connect.NewRequest(req))
			wantCode(t, err, connect.CodeInvalidArgument)
		}
	})
}

func TestGetSummaryUnknownPayer(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	maria := env.mustParticipant(t, "María González", "maria@email.com", "2A")
	env.mustExpense(t, maria, "100", "2024-03-01", "limpieza")

	// Imported history may reference payers that are no longer participants.
	legacy := &models.Expense{
		Description: "Gasto importado",
		Amount:      decimal.NewFromInt(100),
		Date:        time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Category:    models.CategoryCleaning,
		PayerID:     "legacy-payer",
	}
	if err := env.store.CreateExpense(ctx, legacy); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	summary, err := env.summary.GetSummary(ctx, connect.NewRequest(&api.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	var unknown *api.ParticipantTotal
	for _, row := range summary.Msg.ByParticipant {
		if row.ParticipantID == legacy.PayerID {
			unknown = row
		}
	}
	if unknown == nil || unknown.Name != calculator.UnknownParticipantName {
		t.Fatalf("expected unknown payer row, got %+v", summary.Msg.ByParticipant)
	}
	assertAmount(t, "unknown percent", unknown.Percent, "50")

	balances, err := env.summary.GetBalances(ctx, connect.NewRequest(&api.GetBalancesRequest{}))
	if err != nil {
		t.Fatalf("GetBalances failed: %v", err)
	}
	if len(balances.Msg.Balances) != 1 {
		t.Fatalf("expected 1 balance, got %d", len(balances.Msg.Balances))
	}
	assertAmount(t, "Orphaned", balances.Msg.Orphaned, "100")
	assertAmount(t, "Average", balances.Msg.Average, "200")
	assertAmount(t, "maria net", balances.Msg.Balances[0].NetBalance, "-100")
}

func TestProposeAndSubmitSettlement(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	maria := env.mustParticipant(t, "María González", "maria@email.com", "2A")
	carlos := env.mustParticipant(t, "Carlos Rodriguez", "carlos@email.com", "1B")
	ana := env.mustParticipant(t, "Ana Martínez", "ana@email.com", "4D")

	// Average 30: Maria +10, Carlos +20, Ana -30.
	env.mustExpense(t, maria, "40", "2024-01-10", "limpieza")
	env.mustExpense(t, carlos, "50", "2024-01-11", "seguridad")

	proposal, err := env.summary.ProposeSettlement(ctx, connect.NewRequest(&api.ProposeSettlementRequest{
		DebtorID: ana.ID,
		Date:     "2024-01-31",
	}))
	if err != nil {
		t.Fatalf("ProposeSettlement failed: %v", err)
	}

	want := map[string]string{maria.ID: "10", carlos.ID: "20"}
	if len(proposal.Msg.Payments) != len(want) {
		t.Fatalf("expected %d candidate payments, got %d", len(want), len(proposal.Msg.Payments))
	}
	for _, p := range proposal.Msg.Payments {
		assertAmount(t, "share for "+p.CreditorID, p.Amount, want[p.CreditorID])
		if p.ID != "" || p.Receipt != "" || p.Date != "2024-01-31" || p.DebtorID != ana.ID {
			t.Errorf("unexpected candidate: %+v", p)
		}
	}
	assertAmount(t, "Total", proposal.Msg.Total, "30")

	t.Run("creditor cannot propose", func(t *testing.T) {
		_, err := env.summary.ProposeSettlement(ctx, connect.NewRequest(&api.ProposeSettlementRequest{DebtorID: maria.ID}))
		wantCode(t, err, connect.CodeFailedPrecondition)
	})

	t.Run("unknown debtor", func(t *testing.T) {
		_, err := env.summary.ProposeSettlement(ctx, connect.NewRequest(&api.ProposeSettlementRequest{DebtorID: "ghost"}))
		wantCode(t, err, connect.CodeNotFound)
	})

	submission := make([]*api.CreatePaymentRequest, len(proposal.Msg.Payments))
	for i, p := range proposal.Msg.Payments {
		submission[i] = &api.CreatePaymentRequest{
			Description: p.Description,
			Amount:      p.Amount.String(),
			Date:        p.Date,
			DebtorID:    p.DebtorID,
			CreditorID:  p.CreditorID,
		}
	}

	t.Run("receipts are required", func(t *testing.T) {
		_, err := env.summary.SubmitSettlement(ctx, as(ana.ID, &api.SubmitSettlementRequest{Payments: submission}))
		wantCode(t, err, connect.CodeInvalidArgument)

		list, err := env.payments.ListPayments(ctx, connect.NewRequest(&api.ListPaymentsRequest{}))
		if err != nil {
			t.Fatalf("ListPayments failed: %v", err)
		}
		if len(list.Msg.Payments) != 0 {
			t.Errorf("expected no stored payments, got %d", len(list.Msg.Payments))
		}
	})

	t.Run("empty submission", func(t *testing.T) {
		_, err := env.summary.SubmitSettlement(ctx, as(ana.ID, &api.SubmitSettlementRequest{}))
		wantCode(t, err, connect.CodeInvalidArgument)
	})

	for _, p := range submission {
		p.Receipt = "transferencia-" + p.CreditorID + ".pdf"
	}
	submitted, err := env.summary.SubmitSettlement(ctx, as(ana.ID, &api.SubmitSettlementRequest{Payments: submission}))
	if err != nil {
		t.Fatalf("SubmitSettlement failed: %v", err)
	}
	if len(submitted.Msg.Payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(submitted.Msg.Payments))
	}
	for _, p := range submitted.Msg.Payments {
		if p.ID == "" || p.CreatedBy != ana.ID {
			t.Errorf("unexpected stored payment: %+v", p)
		}
	}

	balances, err := env.summary.GetBalances(ctx, connect.NewRequest(&api.GetBalancesRequest{}))
	if err != nil {
		t.Fatalf("GetBalances failed: %v", err)
	}
	for _, b := range balances.Msg.Balances {
		if b.State != api.StateSettled {
			t.Errorf("%s: state %s net %s, want settled", b.Name, b.State, b.NetBalance)
		}
	}
}
