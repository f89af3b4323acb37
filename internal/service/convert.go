package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/consorcio/internal/calculator"
	"github.com/mmynk/consorcio/internal/models"
	"github.com/mmynk/consorcio/internal/money"
	"github.com/mmynk/consorcio/internal/storage"
	"github.com/mmynk/consorcio/pkg/api"
)

// storageError maps storage sentinels to Connect codes.
func storageError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrConflict):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func toAPIParticipant(p *models.Participant) *api.Participant {
	return &api.Participant{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Unit:      p.Unit,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

func toAPIExpense(e *models.Expense) *api.Expense {
	return &api.Expense{
		ID:              e.ID,
		Description:     e.Description,
		Amount:          e.Amount,
		AmountFormatted: money.Format(e.Amount),
		Date:            models.FormatDate(e.Date),
		Category:        e.Category,
		CategoryLabel:   models.CategoryLabel(e.Category),
		PayerID:         e.PayerID,
		Participants:    e.Participants,
		Receipt:         e.Receipt,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
	}
}

func toAPIExpenses(expenses []*models.Expense) []*api.Expense {
	out := make([]*api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toAPIExpense(e)
	}
	return out
}

func toAPIPayment(p *models.Payment) *api.Payment {
	return &api.Payment{
		ID:              p.ID,
		Description:     p.Description,
		Amount:          p.Amount,
		AmountFormatted: money.Format(p.Amount),
		Date:            models.FormatDate(p.Date),
		DebtorID:        p.DebtorID,
		CreditorID:      p.CreditorID,
		Receipt:         p.Receipt,
		CreatedBy:       p.CreatedBy,
		CreatedAt:       p.CreatedAt,
	}
}

func toAPIPayments(payments []*models.Payment) []*api.Payment {
	out := make([]*api.Payment, len(payments))
	for i, p := range payments {
		out[i] = toAPIPayment(p)
	}
	return out
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:            u.ID,
		ParticipantID: u.ParticipantID,
		Email:         u.Email,
		CreatedAt:     u.CreatedAt,
	}
}

// stateLabel returns the text shown next to a balance.
func stateLabel(state calculator.State) string {
	switch state {
	case calculator.StateCreditor:
		return "Debe recibir"
	case calculator.StateDebtor:
		return "Debe aportar"
	default:
		return "Al día"
	}
}

func toCalcParticipants(participants []*models.Participant) []calculator.Participant {
	out := make([]calculator.Participant, len(participants))
	for i, p := range participants {
		out[i] = calculator.Participant{ID: p.ID, Name: p.Name}
	}
	return out
}

func toCalcExpenses(expenses []*models.Expense) []calculator.DatedExpense {
	out := make([]calculator.DatedExpense, len(expenses))
	for i, e := range expenses {
		out[i] = calculator.DatedExpense{
			Expense: calculator.Expense{PayerID: e.PayerID, Amount: e.Amount, Category: e.Category},
			Date:    e.Date,
		}
	}
	return out
}

func undated(expenses []calculator.DatedExpense) []calculator.Expense {
	out := make([]calculator.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = e.Expense
	}
	return out
}

func toCalcPayments(payments []*models.Payment) []calculator.Payment {
	out := make([]calculator.Payment, len(payments))
	for i, p := range payments {
		out[i] = calculator.Payment{DebtorID: p.DebtorID, CreditorID: p.CreditorID, Amount: p.Amount}
	}
	return out
}
