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

const paymentColumns = `id, description, amount, date, debtor_id, creditor_id, receipt, created_by, created_at`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func scanPayment(row rowScanner) (*models.Payment, error) {
	p := &models.Payment{}
	var date string
	if err := row.Scan(&p.ID, &p.Description, &p.Amount, &date, &p.DebtorID,
		&p.CreditorID, &p.Receipt, &p.CreatedBy, &p.CreatedAt); err != nil {
		return nil, err
	}
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid stored date %q: %w", date, err)
	}
	p.Date = d
	return p, nil
}

func insertPayment(ctx context.Context, db execer, p *models.Payment) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO payments (`+paymentColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Description, p.Amount.String(), models.FormatDate(p.Date), p.DebtorID,
		p.CreditorID, p.Receipt, p.CreatedBy, p.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: payment %s already exists", storage.ErrConflict, p.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// CreatePayment persists a new payment to the database.
func (s *SQLiteStore) CreatePayment(ctx context.Context, p *models.Payment) error {
	return insertPayment(ctx, s.db, p)
}

// CreatePayments persists a batch of payments in one transaction.
// Either every payment is stored or none is.
func (s *SQLiteStore) CreatePayments(ctx context.Context, payments []*models.Payment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range payments {
		if err := insertPayment(ctx, tx, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetPayment retrieves a payment by ID.
func (s *SQLiteStore) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	p, err := scanPayment(s.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: payment %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return p, nil
}

// ListPayments retrieves all payments, newest first.
func (s *SQLiteStore) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	return s.queryPayments(ctx,
		`SELECT `+paymentColumns+` FROM payments ORDER BY date DESC, created_at DESC`,
	)
}

// ListPaymentsByParticipant retrieves payments where the participant is debtor or creditor.
func (s *SQLiteStore) ListPaymentsByParticipant(ctx context.Context, participantID string) ([]*models.Payment, error) {
	return s.queryPayments(ctx,
		`SELECT `+paymentColumns+` FROM payments
		 WHERE debtor_id = ?1 OR creditor_id = ?1
		 ORDER BY date DESC, created_at DESC`,
		participantID,
	)
}

func (s *SQLiteStore) queryPayments(ctx context.Context, query string, args ...any) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}
