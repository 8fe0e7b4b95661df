package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestor-api/internal/domain/entity"
	"github.com/jhoicas/gestor-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación de AppointmentRepository (usable con pool o tx).
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste una cita.
func (r *AppointmentRepo) Create(ap *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, user_id, customer_id, title, description, date, time, type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		ap.ID, ap.UserID, ap.CustomerID, ap.Title, ap.Description, ap.Date, ap.Time, ap.Type, ap.Status, ap.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID obtiene una cita por ID.
func (r *AppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	query := `
		SELECT id, user_id, customer_id, title, description, date, time, type, status, created_at
		FROM appointments WHERE id = $1`
	var ap entity.Appointment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ap.ID, &ap.UserID, &ap.CustomerID, &ap.Title, &ap.Description, &ap.Date, &ap.Time, &ap.Type, &ap.Status, &ap.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &ap, nil
}

// ListByUser lista las citas de la cuenta ordenadas por fecha y hora.
func (r *AppointmentRepo) ListByUser(userID string) ([]*entity.Appointment, error) {
	query := `
		SELECT id, user_id, customer_id, title, description, date, time, type, status, created_at
		FROM appointments WHERE user_id = $1 ORDER BY date, time`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		var ap entity.Appointment
		if err := rows.Scan(&ap.ID, &ap.UserID, &ap.CustomerID, &ap.Title, &ap.Description, &ap.Date, &ap.Time, &ap.Type, &ap.Status, &ap.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, &ap)
	}
	return list, rows.Err()
}

// Update actualiza una cita.
func (r *AppointmentRepo) Update(ap *entity.Appointment) error {
	query := `
		UPDATE appointments SET customer_id = $2, title = $3, description = $4, date = $5,
			time = $6, type = $7, status = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ap.ID, ap.CustomerID, ap.Title, ap.Description, ap.Date, ap.Time, ap.Type, ap.Status,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// Delete elimina una cita por ID.
func (r *AppointmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}
