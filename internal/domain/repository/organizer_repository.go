package repository

import "github.com/jhoicas/gestor-api/internal/domain/entity"

// OrganizerRepository define el puerto de persistencia para FinancialOrganizer.
type OrganizerRepository interface {
	Create(org *entity.FinancialOrganizer) error
	GetByID(id string) (*entity.FinancialOrganizer, error)
	ListByUser(userID string) ([]*entity.FinancialOrganizer, error)
	Update(org *entity.FinancialOrganizer) error
	Delete(id string) error
}
