package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/consorcio/internal/events"
	"github.com/mmynk/consorcio/internal/middleware"
	"github.com/mmynk/consorcio/internal/models"
	"github.com/mmynk/consorcio/internal/money"
	"github.com/mmynk/consorcio/internal/storage"
	"github.com/mmynk/consorcio/pkg/api"
)

var (
	errNoCaller           = errors.New("an authenticated participant is required")
	errUnknownParticipant = errors.New("unknown participant")
	errMissingExpenseID   = errors.New("expense_id is required")
)

// ExpenseService implements the Connect ExpenseService.
type ExpenseService struct {
	store     storage.Store
	publisher events.Publisher
}

// NewExpenseService creates a new ExpenseService. Created expenses are
// announced through publisher.
func NewExpenseService(store storage.Store, publisher events.Publisher) *ExpenseService {
	return &ExpenseService{store: store, publisher: publisher}
}

// CreateExpense records a community expense paid by one participant.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	slog.Info("CreateExpense request received",
		"description", req.Msg.Description,
		"amount", req.Msg.Amount,
		"payer_id", req.Msg.PayerID,
		"participants_count", len(req.Msg.Participants),
	)

	createdBy := middleware.GetParticipantID(ctx)
	if createdBy == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNoCaller)
	}

	amount, err := money.Parse(req.Msg.Amount)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, models.ErrInvalidAmount)
	}
	date, err := models.ParseDate(req.Msg.Date)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	expense := &models.Expense{
		Description: strings.TrimSpace(req.Msg.Description),
		Amount:      amount,
		Date:        date,
		Category:    req.Msg.Category,
		PayerID:     req.Msg.PayerID,
		Receipt:     strings.TrimSpace(req.Msg.Receipt),
		CreatedBy:   createdBy,
	}
	if err := expense.Validate(); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	known, err := participantIndex(ctx, s.store)
	if err != nil {
		slog.Error("Failed to load participants", "error", err)
		return nil, storageError(err)
	}
	if _, ok := known[expense.PayerID]; !ok {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: payer %s", errUnknownParticipant, expense.PayerID))
	}

	expense.Participants, err = shareholders(req.Msg.Participants, known)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Expense created", "expense_id", expense.ID, "amount", expense.Amount.String())

	publish(ctx, s.publisher, events.Event{
		Type:       events.TypeExpenseCreated,
		ID:         expense.ID,
		Amount:     expense.Amount.String(),
		Date:       models.FormatDate(expense.Date),
		PayerID:    expense.PayerID,
		Category:   expense.Category,
		CreatedBy:  expense.CreatedBy,
		OccurredAt: time.Unix(expense.CreatedAt, 0).UTC(),
	})

	return connect.NewResponse(&api.CreateExpenseResponse{
		Expense: toAPIExpense(expense),
	}), nil
}

// GetExpense retrieves an expense by ID.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	slog.Info("GetExpense request received", "expense_id", req.Msg.ExpenseID)

	if req.Msg.ExpenseID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingExpenseID)
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		slog.Error("GetExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.GetExpenseResponse{
		Expense: toAPIExpense(expense),
	}), nil
}

// ListExpenses retrieves all expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received")

	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("ListExpenses successful", "count", len(expenses))

	return connect.NewResponse(&api.ListExpensesResponse{
		Expenses: toAPIExpenses(expenses),
	}), nil
}

// ListExpensesByParticipant retrieves the expenses a participant paid or shares.
func (s *ExpenseService) ListExpensesByParticipant(ctx context.Context, req *connect.Request[api.ListExpensesByParticipantRequest]) (*connect.Response[api.ListExpensesByParticipantResponse], error) {
	slog.Info("ListExpensesByParticipant request received", "participant_id", req.Msg.ParticipantID)

	if req.Msg.ParticipantID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingParticipantID)
	}

	expenses, err := s.store.ListExpensesByParticipant(ctx, req.Msg.ParticipantID)
	if err != nil {
		slog.Error("ListExpensesByParticipant failed", "participant_id", req.Msg.ParticipantID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.ListExpensesByParticipantResponse{
		Expenses: toAPIExpenses(expenses),
	}), nil
}

// participantIndex loads every participant keyed by ID.
func participantIndex(ctx context.Context, store storage.ParticipantStore) (map[string]*models.Participant, error) {
	participants, err := store.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]*models.Participant, len(participants))
	for _, p := range participants {
		index[p.ID] = p
	}
	return index, nil
}

// shareholders validates the requested participant IDs, dropping
// duplicates. An empty request means every known participant.
func shareholders(requested []string, known map[string]*models.Participant) ([]string, error) {
	if len(requested) == 0 {
		ids := make([]string, 0, len(known))
		for id := range known {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		return ids, nil
	}

	seen := make(map[string]bool, len(requested))
	ids := make([]string, 0, len(requested))
	for _, id := range requested {
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("%w: %s", errUnknownParticipant, id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

// publish sends an event without failing the request; the record is
// already stored.
func publish(ctx context.Context, publisher events.Publisher, event events.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish event", "type", event.Type, "id", event.ID, "error", err)
	}
}
