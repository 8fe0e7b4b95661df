package sync

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/gestor-api/internal/domain/repository"
)

// Executor aplica los efectos contra los repositorios, en el orden en que el
// reducer los emitió y de forma secuencial (nunca en paralelo: el orden de las
// reglas debe ser determinista).
//
// Semántica de fallo: si un efecto falla, los restantes de esa cola se
// abandonan y la mutación primaria NO se revierte. El estado "entidad primaria
// actualizada, derivada desactualizada" es aceptado y recuperable: la próxima
// mutación que toque la entidad vuelve a intentar la regla.
type Executor struct {
	txRepo       repository.TransactionRepository
	saleRepo     repository.SaleRepository
	contractRepo repository.ContractRepository
	ideaRepo     repository.IdeaRepository
	taskRepo     repository.TaskRepository
	log          zerolog.Logger
}

// NewExecutor construye el ejecutor de efectos.
func NewExecutor(
	txRepo repository.TransactionRepository,
	saleRepo repository.SaleRepository,
	contractRepo repository.ContractRepository,
	ideaRepo repository.IdeaRepository,
	taskRepo repository.TaskRepository,
	log zerolog.Logger,
) *Executor {
	return &Executor{
		txRepo:       txRepo,
		saleRepo:     saleRepo,
		contractRepo: contractRepo,
		ideaRepo:     ideaRepo,
		taskRepo:     taskRepo,
		log:          log,
	}
}

// Apply ejecuta la cola de efectos. Devuelve el error del primer efecto que
// falle; los anteriores quedan aplicados (consistencia parcial aceptada).
func (e *Executor) Apply(effects []Effect) error {
	for _, ef := range effects {
		if err := e.apply(ef); err != nil {
			e.log.Warn().Err(err).
				Str("effect", fmt.Sprintf("%T", ef)).
				Msg("efecto derivado falló; se abandona el resto de la cola")
			return err
		}
	}
	return nil
}

func (e *Executor) apply(ef Effect) error {
	switch v := ef.(type) {
	case InsertTransaction:
		return e.txRepo.Create(v.Tx)

	case UpdateTransaction:
		return e.txRepo.Update(v.Tx)

	case DeleteTransaction:
		return e.txRepo.Delete(v.ID)

	case DeleteSale:
		return e.saleRepo.Delete(v.ID)

	case UpdateContractProof:
		contract, err := e.contractRepo.GetByID(v.ContractID)
		if err != nil {
			return err
		}
		if contract == nil {
			return nil // contrato desapareció entre decisión y ejecución
		}
		if contract.PaymentProofURL == v.ProofURL {
			return nil
		}
		contract.PaymentProofURL = v.ProofURL
		return e.contractRepo.Update(contract)

	case SetIdeaStatus:
		idea, err := e.ideaRepo.GetByID(v.IdeaID)
		if err != nil {
			return err
		}
		if idea == nil {
			return nil
		}
		if idea.Status == v.Status {
			return nil
		}
		idea.Status = v.Status
		idea.UpdatedAt = time.Now()
		return e.ideaRepo.Update(idea)

	case InsertTask:
		return e.taskRepo.Create(v.Task)

	case LinkIdeaToTask:
		idea, err := e.ideaRepo.GetByID(v.IdeaID)
		if err != nil {
			return err
		}
		if idea == nil {
			return nil
		}
		idea.TaskID = v.TaskID
		idea.Status = v.Status
		idea.UpdatedAt = time.Now()
		return e.ideaRepo.Update(idea)

	default:
		return fmt.Errorf("efecto desconocido: %T", ef)
	}
}
