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

const participantColumns = `id, name, email, phone, unit, active, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParticipant(row rowScanner) (*models.Participant, error) {
	p := &models.Participant{}
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Unit, &p.Active, &p.CreatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateParticipant persists a new participant.
func (s *SQLiteStore) CreateParticipant(ctx context.Context, p *models.Participant) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO participants (`+participantColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Email, p.Phone, p.Unit, p.Active, p.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: participant %s already exists", storage.ErrConflict, p.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}

	return nil
}

// GetParticipant retrieves a participant by ID.
func (s *SQLiteStore) GetParticipant(ctx context.Context, id string) (*models.Participant, error) {
	p, err := scanParticipant(s.db.QueryRowContext(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: participant %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

// ListParticipants retrieves all participants in creation order.
func (s *SQLiteStore) ListParticipants(ctx context.Context) ([]*models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+participantColumns+` FROM participants ORDER BY created_at, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

// UpdateParticipant replaces the mutable fields of an existing participant.
func (s *SQLiteStore) UpdateParticipant(ctx context.Context, p *models.Participant) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE participants SET name = ?, email = ?, phone = ?, unit = ?, active = ? WHERE id = ?`,
		p.Name, p.Email, p.Phone, p.Unit, p.Active, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update participant: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: participant %s", storage.ErrNotFound, p.ID)
	}

	return nil
}

// DeleteParticipant removes a participant not referenced by expenses or payments.
func (s *SQLiteStore) DeleteParticipant(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM participants WHERE id = ?", id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: participant %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to check participant existence: %w", err)
	}

	var refs int
	err = tx.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM expenses WHERE payer_id = ?1) +
			(SELECT COUNT(*) FROM expense_participants WHERE participant_id = ?1) +
			(SELECT COUNT(*) FROM payments WHERE debtor_id = ?1 OR creditor_id = ?1)`,
		id,
	).Scan(&refs)
	if err != nil {
		return fmt.Errorf("failed to count participant references: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: participant %s has %d associated expenses or payments", storage.ErrConflict, id, refs)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM participants WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
