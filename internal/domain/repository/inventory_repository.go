package repository

import "github.com/jhoicas/gestor-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para InventoryItem.
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	ListByUser(userID string) ([]*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	Delete(id string) error
}
