package repository

import "github.com/jhoicas/gestor-api/internal/domain/entity"

// ContractRepository define el puerto de persistencia para Contract.
type ContractRepository interface {
	Create(contract *entity.Contract) error
	GetByID(id string) (*entity.Contract, error)
	ListByUser(userID string) ([]*entity.Contract, error)
	Update(contract *entity.Contract) error
	Delete(id string) error
}
