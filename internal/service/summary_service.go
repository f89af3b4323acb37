package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/consorcio/internal/calculator"
	"github.com/mmynk/consorcio/internal/events"
	"github.com/mmynk/consorcio/internal/middleware"
	"github.com/mmynk/consorcio/internal/models"
	"github.com/mmynk/consorcio/internal/money"
	"github.com/mmynk/consorcio/internal/storage"
	"github.com/mmynk/consorcio/pkg/api"
)

var (
	errMissingDebtorID = errors.New("debtor_id is required")
	errNoPayments      = errors.New("at least one payment is required")
	errInvalidPeriod   = errors.New("year and month must be set together, month between 1 and 12")
)

// SummaryService implements the Connect SummaryService. Every call
// recomputes balances from the stored expenses, payments and participants.
type SummaryService struct {
	store     storage.Store
	publisher events.Publisher
	now       func() time.Time
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(store storage.Store, publisher events.Publisher) *SummaryService {
	return &SummaryService{store: store, publisher: publisher, now: time.Now}
}

type ledgerInputs struct {
	participants []*models.Participant
	expenses     []*models.Expense
	payments     []*models.Payment
}

// load reads the three calculator inputs concurrently.
func (s *SummaryService) load(ctx context.Context) (*ledgerInputs, error) {
	var in ledgerInputs
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		in.participants, err = s.store.ListParticipants(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		in.expenses, err = s.store.ListExpenses(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		in.payments, err = s.store.ListPayments(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &in, nil
}

func (in *ledgerInputs) ledger() calculator.Ledger {
	return calculator.CalculateBalances(
		undated(toCalcExpenses(in.expenses)),
		toCalcPayments(in.payments),
		toCalcParticipants(in.participants),
	)
}

// GetBalances returns the balance of every participant against the average contribution.
func (s *SummaryService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	slog.Info("GetBalances request received")

	in, err := s.load(ctx)
	if err != nil {
		slog.Error("GetBalances failed to load data", "error", err)
		return nil, storageError(err)
	}

	units := make(map[string]string, len(in.participants))
	for _, p := range in.participants {
		units[p.ID] = p.Unit
	}

	ledger := in.ledger()
	balances := make([]*api.Balance, len(ledger.Balances))
	for i, b := range ledger.Balances {
		balances[i] = &api.Balance{
			ParticipantID:       b.ParticipantID,
			Name:                b.Name,
			Unit:                units[b.ParticipantID],
			TotalPaid:           b.TotalPaid,
			Contribution:        b.Contribution,
			SettlementsPaid:     b.SettlementsPaid,
			SettlementsReceived: b.SettlementsReceived,
			NetBalance:          b.NetBalance,
			NetBalanceFormatted: money.Format(b.NetBalance),
			State:               string(b.State),
			StateLabel:          stateLabel(b.State),
		}
	}

	if ledger.Orphaned.IsPositive() {
		slog.Warn("Expenses paid by unknown participants", "amount", ledger.Orphaned.String())
	}
	slog.Info("GetBalances successful",
		"participants", len(balances),
		"total", ledger.Total.String(),
		"average", ledger.Average.String(),
	)

	return connect.NewResponse(&api.GetBalancesResponse{
		Balances:         balances,
		Total:            ledger.Total,
		TotalFormatted:   money.Format(ledger.Total),
		Average:          ledger.Average,
		AverageFormatted: money.Format(ledger.Average),
		Orphaned:         ledger.Orphaned,
	}), nil
}

// GetSummary aggregates community expenses by category and by payer,
// optionally restricted to one month.
func (s *SummaryService) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	slog.Info("GetSummary request received", "year", req.Msg.Year, "month", req.Msg.Month)

	year, month := req.Msg.Year, req.Msg.Month
	filtered := year != 0 || month != 0
	if filtered && (year <= 0 || month < 1 || month > 12) {
		return nil, connect.NewError(connect.CodeInvalidArgument, errInvalidPeriod)
	}

	in, err := s.load(ctx)
	if err != nil {
		slog.Error("GetSummary failed to load data", "error", err)
		return nil, storageError(err)
	}

	dated := toCalcExpenses(in.expenses)
	participants := toCalcParticipants(in.participants)

	scope := undated(dated)
	if filtered {
		scope = calculator.FilterMonth(dated, year, time.Month(month))
	}

	summary := calculator.Summarize(scope, participants)
	average := calculator.CalculateBalances(scope, nil, participants).Average

	now := s.now().UTC()
	currentMonth := calculator.Summarize(calculator.FilterMonth(dated, now.Year(), now.Month()), nil).Total

	byCategory := make([]*api.CategoryTotal, len(summary.ByCategory))
	for i, c := range summary.ByCategory {
		byCategory[i] = &api.CategoryTotal{
			Category:        c.Category,
			Label:           models.CategoryLabel(c.Category),
			Amount:          c.Amount,
			AmountFormatted: money.Format(c.Amount),
			Count:           c.Count,
			Percent:         c.Percent,
		}
	}

	byParticipant := make([]*api.ParticipantTotal, len(summary.ByParticipant))
	for i, p := range summary.ByParticipant {
		byParticipant[i] = &api.ParticipantTotal{
			ParticipantID:   p.ParticipantID,
			Name:            p.Name,
			Amount:          p.Amount,
			AmountFormatted: money.Format(p.Amount),
			Count:           p.Count,
			Percent:         p.Percent,
		}
	}

	slog.Info("GetSummary successful", "expenses", summary.Count, "total", summary.Total.String())

	return connect.NewResponse(&api.GetSummaryResponse{
		Total:                        summary.Total,
		TotalFormatted:               money.Format(summary.Total),
		ExpenseCount:                 summary.Count,
		AveragePerExpense:            summary.AveragePerExpense,
		AverageContribution:          average,
		AverageContributionFormatted: money.Format(average),
		CurrentMonthTotal:            currentMonth,
		CurrentMonthTotalFormatted:   money.Format(currentMonth),
		ByCategory:                   byCategory,
		ByParticipant:                byParticipant,
	}), nil
}

// ProposeSettlement splits the debtor's debt across all creditors in
// proportion to what each is owed. The candidates need a receipt before
// they can be submitted.
func (s *SummaryService) ProposeSettlement(ctx context.Context, req *connect.Request[api.ProposeSettlementRequest]) (*connect.Response[api.ProposeSettlementResponse], error) {
	slog.Info("ProposeSettlement request received", "debtor_id", req.Msg.DebtorID)

	if req.Msg.DebtorID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingDebtorID)
	}

	date := s.now().UTC().Truncate(24 * time.Hour)
	if req.Msg.Date != "" {
		var err error
		if date, err = models.ParseDate(req.Msg.Date); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
	}

	in, err := s.load(ctx)
	if err != nil {
		slog.Error("ProposeSettlement failed to load data", "error", err)
		return nil, storageError(err)
	}

	shares, err := calculator.ProposeSettlement(req.Msg.DebtorID, in.ledger().Balances)
	switch {
	case errors.Is(err, calculator.ErrUnknownParticipant):
		return nil, connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, calculator.ErrNotDebtor), errors.Is(err, calculator.ErrNoCreditors):
		return nil, connect.NewError(connect.CodeFailedPrecondition, err)
	case err != nil:
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	total := decimal.Zero
	candidates := make([]*api.Payment, len(shares))
	for i, share := range shares {
		total = total.Add(share.Amount)
		candidates[i] = toAPIPayment(&models.Payment{
			Description: models.CategorySettlement,
			Amount:      share.Amount,
			Date:        date,
			DebtorID:    req.Msg.DebtorID,
			CreditorID:  share.CreditorID,
		})
	}

	slog.Info("ProposeSettlement successful",
		"debtor_id", req.Msg.DebtorID,
		"payments", len(candidates),
		"total", total.String(),
	)

	return connect.NewResponse(&api.ProposeSettlementResponse{
		Payments:       candidates,
		Total:          total,
		TotalFormatted: money.Format(total),
	}), nil
}

// SubmitSettlement stores a set of settlement payments, all or nothing.
// Every payment must carry a receipt.
func (s *SummaryService) SubmitSettlement(ctx context.Context, req *connect.Request[api.SubmitSettlementRequest]) (*connect.Response[api.SubmitSettlementResponse], error) {
	slog.Info("SubmitSettlement request received", "payments_count", len(req.Msg.Payments))

	createdBy := middleware.GetParticipantID(ctx)
	if createdBy == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNoCaller)
	}
	if len(req.Msg.Payments) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errNoPayments)
	}

	known, err := participantIndex(ctx, s.store)
	if err != nil {
		slog.Error("Failed to load participants", "error", err)
		return nil, storageError(err)
	}

	payments := make([]*models.Payment, len(req.Msg.Payments))
	for i, msg := range req.Msg.Payments {
		payment, err := newPayment(msg, createdBy, known)
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("payment %d: %w", i+1, err))
		}
		payments[i] = payment
	}

	if err := s.store.CreatePayments(ctx, payments); err != nil {
		slog.Error("SubmitSettlement failed", "error", err)
		return nil, storageError(err)
	}

	for _, p := range payments {
		publish(ctx, s.publisher, paymentEvent(p))
	}

	slog.Info("Settlement submitted", "payments", len(payments))

	return connect.NewResponse(&api.SubmitSettlementResponse{
		Payments: toAPIPayments(payments),
	}), nil
}
