package repository

import "github.com/jhoicas/gestor-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Sale, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}
