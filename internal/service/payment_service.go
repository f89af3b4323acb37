package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
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

var errMissingPaymentID = errors.New("payment_id is required")

// PaymentService implements the Connect PaymentService.
type PaymentService struct {
	store     storage.Store
	publisher events.Publisher
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(store storage.Store, publisher events.Publisher) *PaymentService {
	return &PaymentService{store: store, publisher: publisher}
}

// CreatePayment records a transfer from a debtor to a creditor.
func (s *PaymentService) CreatePayment(ctx context.Context, req *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error) {
	slog.Info("CreatePayment request received",
		"debtor_id", req.Msg.DebtorID,
		"creditor_id", req.Msg.CreditorID,
		"amount", req.Msg.Amount,
	)

	createdBy := middleware.GetParticipantID(ctx)
	if createdBy == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNoCaller)
	}

	known, err := participantIndex(ctx, s.store)
	if err != nil {
		slog.Error("Failed to load participants", "error", err)
		return nil, storageError(err)
	}

	payment, err := newPayment(req.Msg, createdBy, known)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreatePayment(ctx, payment); err != nil {
		slog.Error("CreatePayment failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Payment created", "payment_id", payment.ID, "amount", payment.Amount.String())
	publish(ctx, s.publisher, paymentEvent(payment))

	return connect.NewResponse(&api.CreatePaymentResponse{
		Payment: toAPIPayment(payment),
	}), nil
}

// GetPayment retrieves a payment by ID.
func (s *PaymentService) GetPayment(ctx context.Context, req *connect.Request[api.GetPaymentRequest]) (*connect.Response[api.GetPaymentResponse], error) {
	slog.Info("GetPayment request received", "payment_id", req.Msg.PaymentID)

	if req.Msg.PaymentID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingPaymentID)
	}

	payment, err := s.store.GetPayment(ctx, req.Msg.PaymentID)
	if err != nil {
		slog.Error("GetPayment failed", "payment_id", req.Msg.PaymentID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.GetPaymentResponse{
		Payment: toAPIPayment(payment),
	}), nil
}

// ListPayments retrieves all payments, newest first.
func (s *PaymentService) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	slog.Info("ListPayments request received")

	payments, err := s.store.ListPayments(ctx)
	if err != nil {
		slog.Error("ListPayments failed", "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.ListPaymentsResponse{
		Payments: toAPIPayments(payments),
	}), nil
}

// ListPaymentsByParticipant retrieves payments where the participant is debtor or creditor.
func (s *PaymentService) ListPaymentsByParticipant(ctx context.Context, req *connect.Request[api.ListPaymentsByParticipantRequest]) (*connect.Response[api.ListPaymentsByParticipantResponse], error) {
	slog.Info("ListPaymentsByParticipant request received", "participant_id", req.Msg.ParticipantID)

	if req.Msg.ParticipantID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingParticipantID)
	}

	payments, err := s.store.ListPaymentsByParticipant(ctx, req.Msg.ParticipantID)
	if err != nil {
		slog.Error("ListPaymentsByParticipant failed", "participant_id", req.Msg.ParticipantID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.ListPaymentsByParticipantResponse{
		Payments: toAPIPayments(payments),
	}), nil
}

// newPayment builds and validates a payment from a create request.
func newPayment(msg *api.CreatePaymentRequest, createdBy string, known map[string]*models.Participant) (*models.Payment, error) {
	if msg == nil {
		return nil, errors.New("payment is required")
	}

	amount, err := money.Parse(msg.Amount)
	if err != nil {
		return nil, models.ErrInvalidAmount
	}
	date, err := models.ParseDate(msg.Date)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		Description: strings.TrimSpace(msg.Description),
		Amount:      amount,
		Date:        date,
		DebtorID:    msg.DebtorID,
		CreditorID:  msg.CreditorID,
		Receipt:     strings.TrimSpace(msg.Receipt),
		CreatedBy:   createdBy,
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	for _, id := range []string{payment.DebtorID, payment.CreditorID} {
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("%w: %s", errUnknownParticipant, id)
		}
	}
	return payment, nil
}

func paymentEvent(p *models.Payment) events.Event {
	return events.Event{
		Type:       events.TypePaymentCreated,
		ID:         p.ID,
		Amount:     p.Amount.String(),
		Date:       models.FormatDate(p.Date),
		DebtorID:   p.DebtorID,
		CreditorID: p.CreditorID,
		CreatedBy:  p.CreatedBy,
		OccurredAt: time.Unix(p.CreatedAt, 0).UTC(),
	}
}
