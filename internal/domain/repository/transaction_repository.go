package repository

import "github.com/jhoicas/gestor-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para Transaction.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	ListByUser(userID string) ([]*entity.Transaction, error)
	ListByContract(contractID string) ([]*entity.Transaction, error)
	Update(tx *entity.Transaction) error
	Delete(id string) error
}
