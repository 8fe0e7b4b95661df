package usecase

import (
	"github.com/jhoicas/gestor-api/internal/application/sync"
	"github.com/jhoicas/gestor-api/internal/domain/repository"
)

// SnapshotLoader arma el snapshot en memoria de la cuenta sobre el que el
// reducer de sincronización decide los efectos derivados. Se recarga completo
// en cada mutación: los volúmenes son de cientos de registros, no millones.
type SnapshotLoader struct {
	txRepo       repository.TransactionRepository
	contractRepo repository.ContractRepository
	saleRepo     repository.SaleRepository
	ideaRepo     repository.IdeaRepository
	taskRepo     repository.TaskRepository
}

// NewSnapshotLoader construye el loader.
func NewSnapshotLoader(
	txRepo repository.TransactionRepository,
	contractRepo repository.ContractRepository,
	saleRepo repository.SaleRepository,
	ideaRepo repository.IdeaRepository,
	taskRepo repository.TaskRepository,
) *SnapshotLoader {
	return &SnapshotLoader{
		txRepo:       txRepo,
		contractRepo: contractRepo,
		saleRepo:     saleRepo,
		ideaRepo:     ideaRepo,
		taskRepo:     taskRepo,
	}
}

// Load trae el estado actual de la cuenta. Un error aquí aborta la
// propagación: sin snapshot confiable no se decide ninguna escritura derivada.
func (l *SnapshotLoader) Load(userID string) (*sync.Snapshot, error) {
	txs, err := l.txRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	contracts, err := l.contractRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	sales, err := l.saleRepo.ListByUser(userID, 0, 0)
	if err != nil {
		return nil, err
	}
	ideas, err := l.ideaRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	tasks, err := l.taskRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return &sync.Snapshot{
		Transactions: txs,
		Contracts:    contracts,
		Sales:        sales,
		Ideas:        ideas,
		Tasks:        tasks,
	}, nil
}
