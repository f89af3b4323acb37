package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/consorcio/internal/models"
	"github.com/mmynk/consorcio/internal/storage"
)

const expenseColumns = `id, description, amount, date, category, payer_id, receipt, created_by, created_at`

func scanExpense(row rowScanner) (*models.Expense, error) {
	e := &models.Expense{}
	var date string
	if err := row.Scan(&e.ID, &e.Description, &e.Amount, &date, &e.Category,
		&e.PayerID, &e.Receipt, &e.CreatedBy, &e.CreatedAt); err != nil {
		return nil, err
	}
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid stored date %q: %w", date, err)
	}
	e.Date = d
	return e, nil
}

// CreateExpense persists a new expense and the list of participants sharing it.
func (s *SQLiteStore) CreateExpense(ctx context.Context, e *models.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (`+expenseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Description, e.Amount.String(), models.FormatDate(e.Date), e.Category,
		e.PayerID, e.Receipt, e.CreatedBy, e.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: expense %s already exists", storage.ErrConflict, e.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for _, participantID := range e.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO expense_participants (expense_id, participant_id) VALUES (?, ?)",
			e.ID, participantID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID, including its participants.
func (s *SQLiteStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	e, err := scanExpense(s.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: expense %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if err := s.attachParticipants(ctx, []*models.Expense{e}); err != nil {
		return nil, err
	}
	return e, nil
}

// ListExpenses retrieves all expenses, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	return s.queryExpenses(ctx,
		`SELECT `+expenseColumns+` FROM expenses ORDER BY date DESC, created_at DESC`,
	)
}

// ListExpensesByParticipant retrieves the expenses a participant paid or shares.
func (s *SQLiteStore) ListExpensesByParticipant(ctx context.Context, participantID string) ([]*models.Expense, error) {
	return s.queryExpenses(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		 WHERE payer_id = ?1
		    OR id IN (SELECT expense_id FROM expense_participants WHERE participant_id = ?1)
		 ORDER BY date DESC, created_at DESC`,
		participantID,
	)
}

func (s *SQLiteStore) queryExpenses(ctx context.Context, query string, args ...any) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	if err := s.attachParticipants(ctx, expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// attachParticipants loads the participant lists of the given expenses
// with a single query.
func (s *SQLiteStore) attachParticipants(ctx context.Context, expenses []*models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	byID := make(map[string]*models.Expense, len(expenses))
	args := make([]any, len(expenses))
	for i, e := range expenses {
		byID[e.ID] = e
		args[i] = e.ID
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT expense_id, participant_id FROM expense_participants
		 WHERE expense_id IN (?`+repeatPlaceholder(len(expenses)-1)+`)
		 ORDER BY expense_id, participant_id`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to get expense participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var expenseID, participantID string
		if err := rows.Scan(&expenseID, &participantID); err != nil {
			return fmt.Errorf("failed to scan expense participant: %w", err)
		}
		if e, ok := byID[expenseID]; ok {
			e.Participants = append(e.Participants, participantID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate expense participants: %w", err)
	}

	return nil
}
