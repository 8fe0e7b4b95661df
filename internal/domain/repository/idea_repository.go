package repository

import "github.com/jhoicas/gestor-api/internal/domain/entity"

// IdeaRepository define el puerto de persistencia para VideoIdea.
type IdeaRepository interface {
	Create(idea *entity.VideoIdea) error
	GetByID(id string) (*entity.VideoIdea, error)
	GetByShareToken(token string) (*entity.VideoIdea, error)
	ListByUser(userID string) ([]*entity.VideoIdea, error)
	Update(idea *entity.VideoIdea) error
	Delete(id string) error
}
