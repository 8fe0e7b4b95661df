package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestor-api/internal/domain/entity"
	"github.com/jhoicas/gestor-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación de TaskRepository (usable con pool o tx).
// Tags se guarda como text[] (pgx lo mapea directo a []string).
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

// Create persiste una tarjeta.
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, user_id, customer_id, idea_id, title, description, board_column, tags, deadline, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.UserID, task.CustomerID, task.IdeaID, task.Title, task.Description,
		task.Column, task.Tags, task.Deadline, task.CreatedAt, task.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarjeta por ID.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `
		SELECT id, user_id, customer_id, idea_id, title, description, board_column, tags, deadline, created_at, completed_at
		FROM tasks WHERE id = $1`
	var t entity.Task
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.UserID, &t.CustomerID, &t.IdeaID, &t.Title, &t.Description,
		&t.Column, &t.Tags, &t.Deadline, &t.CreatedAt, &t.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// ListByUser lista las tarjetas de la cuenta.
func (r *TaskRepo) ListByUser(userID string) ([]*entity.Task, error) {
	query := `
		SELECT id, user_id, customer_id, idea_id, title, description, board_column, tags, deadline, created_at, completed_at
		FROM tasks WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.CustomerID, &t.IdeaID, &t.Title, &t.Description,
			&t.Column, &t.Tags, &t.Deadline, &t.CreatedAt, &t.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una tarjeta.
func (r *TaskRepo) Update(task *entity.Task) error {
	query := `
		UPDATE tasks SET customer_id = $2, idea_id = $3, title = $4, description = $5,
			board_column = $6, tags = $7, deadline = $8, completed_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.CustomerID, task.IdeaID, task.Title, task.Description,
		task.Column, task.Tags, task.Deadline, task.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete elimina una tarjeta por ID.
func (r *TaskRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
