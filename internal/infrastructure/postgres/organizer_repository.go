package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestor-api/internal/domain/entity"
	"github.com/jhoicas/gestor-api/internal/domain/repository"
)

var _ repository.OrganizerRepository = (*OrganizerRepo)(nil)

const organizerColumns = `id, user_id, title, amount, category, type, frequency, due_day,
		active, current_installment, total_installments, created_at`

// OrganizerRepo implementación de OrganizerRepository (usable con pool o tx).
type OrganizerRepo struct {
	q Querier
}

// NewOrganizerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrganizerRepository(q Querier) *OrganizerRepo {
	return &OrganizerRepo{q: q}
}

// Create persiste un organizador financiero.
func (r *OrganizerRepo) Create(org *entity.FinancialOrganizer) error {
	query := `
		INSERT INTO financial_organizers (` + organizerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		org.ID, org.UserID, org.Title, org.Amount, org.Category, org.Type, org.Frequency,
		org.DueDay, org.Active, org.CurrentInstallment, org.TotalInstallments, org.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert organizer: %w", err)
	}
	return nil
}

// GetByID obtiene un organizador por ID.
func (r *OrganizerRepo) GetByID(id string) (*entity.FinancialOrganizer, error) {
	query := `SELECT ` + organizerColumns + ` FROM financial_organizers WHERE id = $1`
	var o entity.FinancialOrganizer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.UserID, &o.Title, &o.Amount, &o.Category, &o.Type, &o.Frequency,
		&o.DueDay, &o.Active, &o.CurrentInstallment, &o.TotalInstallments, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organizer: %w", err)
	}
	return &o, nil
}

// ListByUser lista los organizadores de la cuenta.
func (r *OrganizerRepo) ListByUser(userID string) ([]*entity.FinancialOrganizer, error) {
	query := `SELECT ` + organizerColumns + ` FROM financial_organizers WHERE user_id = $1 ORDER BY due_day, title`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list organizers: %w", err)
	}
	defer rows.Close()
	var list []*entity.FinancialOrganizer
	for rows.Next() {
		var o entity.FinancialOrganizer
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Title, &o.Amount, &o.Category, &o.Type, &o.Frequency,
			&o.DueDay, &o.Active, &o.CurrentInstallment, &o.TotalInstallments, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan organizer: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza un organizador.
func (r *OrganizerRepo) Update(org *entity.FinancialOrganizer) error {
	query := `
		UPDATE financial_organizers SET title = $2, amount = $3, category = $4, type = $5,
			frequency = $6, due_day = $7, active = $8, current_installment = $9, total_installments = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		org.ID, org.Title, org.Amount, org.Category, org.Type, org.Frequency,
		org.DueDay, org.Active, org.CurrentInstallment, org.TotalInstallments,
	)
	if err != nil {
		return fmt.Errorf("update organizer: %w", err)
	}
	return nil
}

// Delete elimina un organizador por ID.
func (r *OrganizerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM financial_organizers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete organizer: %w", err)
	}
	return nil
}
