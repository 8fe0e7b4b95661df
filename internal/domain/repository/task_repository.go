package repository

import "github.com/jhoicas/gestor-api/internal/domain/entity"

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	ListByUser(userID string) ([]*entity.Task, error)
	Update(task *entity.Task) error
	Delete(id string) error
}
