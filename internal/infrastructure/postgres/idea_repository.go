package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestor-api/internal/domain"
	"github.com/jhoicas/gestor-api/internal/domain/entity"
	"github.com/jhoicas/gestor-api/internal/domain/repository"
)

var _ repository.IdeaRepository = (*IdeaRepo)(nil)

const ideaColumns = `id, user_id, customer_id, task_id, title, description, category, priority,
		status, notes, share_token, share_enabled, created_at, updated_at`

// IdeaRepo implementación de IdeaRepository (usable con pool o tx).
type IdeaRepo struct {
	q Querier
}

// NewIdeaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIdeaRepository(q Querier) *IdeaRepo {
	return &IdeaRepo{q: q}
}

// Create persiste una idea.
func (r *IdeaRepo) Create(idea *entity.VideoIdea) error {
	query := `
		INSERT INTO video_ideas (` + ideaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		idea.ID, idea.UserID, idea.CustomerID, idea.TaskID, idea.Title, idea.Description,
		idea.Category, idea.Priority, idea.Status, idea.Notes, idea.ShareToken,
		idea.ShareEnabled, idea.CreatedAt, idea.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert idea: %w", err)
	}
	return nil
}

// GetByID obtiene una idea por ID.
func (r *IdeaRepo) GetByID(id string) (*entity.VideoIdea, error) {
	query := `SELECT ` + ideaColumns + ` FROM video_ideas WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByShareToken obtiene la idea dueña del token público.
func (r *IdeaRepo) GetByShareToken(token string) (*entity.VideoIdea, error) {
	query := `SELECT ` + ideaColumns + ` FROM video_ideas WHERE share_token = $1 AND share_token <> ''`
	return r.scanOne(r.q.QueryRow(context.Background(), query, token))
}

// ListByUser lista las ideas de la cuenta.
func (r *IdeaRepo) ListByUser(userID string) ([]*entity.VideoIdea, error) {
	query := `SELECT ` + ideaColumns + ` FROM video_ideas WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	defer rows.Close()
	var list []*entity.VideoIdea
	for rows.Next() {
		var i entity.VideoIdea
		if err := rows.Scan(
			&i.ID, &i.UserID, &i.CustomerID, &i.TaskID, &i.Title, &i.Description,
			&i.Category, &i.Priority, &i.Status, &i.Notes, &i.ShareToken,
			&i.ShareEnabled, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza una idea.
func (r *IdeaRepo) Update(idea *entity.VideoIdea) error {
	query := `
		UPDATE video_ideas SET customer_id = $2, task_id = $3, title = $4, description = $5,
			category = $6, priority = $7, status = $8, notes = $9, share_token = $10,
			share_enabled = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		idea.ID, idea.CustomerID, idea.TaskID, idea.Title, idea.Description, idea.Category,
		idea.Priority, idea.Status, idea.Notes, idea.ShareToken, idea.ShareEnabled, idea.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update idea: %w", err)
	}
	return nil
}

// Delete elimina una idea por ID.
func (r *IdeaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM video_ideas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete idea: %w", err)
	}
	return nil
}

func (r *IdeaRepo) scanOne(row pgx.Row) (*entity.VideoIdea, error) {
	var i entity.VideoIdea
	err := row.Scan(
		&i.ID, &i.UserID, &i.CustomerID, &i.TaskID, &i.Title, &i.Description,
		&i.Category, &i.Priority, &i.Status, &i.Notes, &i.ShareToken,
		&i.ShareEnabled, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get idea: %w", err)
	}
	return &i, nil
}
