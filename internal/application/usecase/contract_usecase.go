package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestor-api/internal/application/dto"
	"github.com/jhoicas/gestor-api/internal/application/ports"
	appsync "github.com/jhoicas/gestor-api/internal/application/sync"
	"github.com/jhoicas/gestor-api/internal/domain"
	"github.com/jhoicas/gestor-api/internal/domain/entity"
	"github.com/jhoicas/gestor-api/internal/domain/repository"
)

// ContractUseCase casos de uso de contratos.
type ContractUseCase struct {
	contractRepo repository.ContractRepository
	snapshots    *SnapshotLoader
	executor     *appsync.Executor
	notifier     ports.ChangeNotifier
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(
	contractRepo repository.ContractRepository,
	snapshots *SnapshotLoader,
	executor *appsync.Executor,
	notifier ports.ChangeNotifier,
) *ContractUseCase {
	return &ContractUseCase{contractRepo: contractRepo, snapshots: snapshots, executor: executor, notifier: notifier}
}

// Create registra un contrato (el PDF ya vive en el storage).
func (uc *ContractUseCase) Create(ctx context.Context, userID string, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if in.CustomerID == "" || in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	contract := &entity.Contract{
		ID:         uuid.New().String(),
		UserID:     userID,
		CustomerID: in.CustomerID,
		Title:      in.Title,
		PDFURL:     in.PDFURL,
		CreatedAt:  time.Now(),
	}
	if err := uc.contractRepo.Create(contract); err != nil {
		return nil, err
	}
	uc.notify(ctx, "contracts")
	return toContractResponse(contract), nil
}

// AttachProof adjunta o reemplaza el comprobante de pago y lo replica a todas
// las transacciones ligadas al contrato (comprobante fluye contrato→transacciones).
func (uc *ContractUseCase) AttachProof(ctx context.Context, userID, id string, in dto.AttachProofRequest) (*dto.ContractResponse, error) {
	if in.PaymentProofURL == "" {
		return nil, domain.ErrInvalidInput
	}
	contract, err := uc.contractRepo.GetByID(id)
	if err != nil || contract == nil {
		return nil, domain.ErrNotFound
	}
	if contract.UserID != userID {
		return nil, domain.ErrForbidden
	}

	contract.PaymentProofURL = in.PaymentProofURL
	if err := uc.contractRepo.Update(contract); err != nil {
		return nil, err
	}

	if snap, err := uc.snapshots.Load(userID); err == nil {
		_ = uc.executor.Apply(appsync.ContractProofChanged(snap, contract))
	}
	uc.notify(ctx, "contracts", "transactions")
	return toContractResponse(contract), nil
}

// List lista los contratos de la cuenta.
func (uc *ContractUseCase) List(userID string) ([]*dto.ContractResponse, error) {
	contracts, err := uc.contractRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, toContractResponse(c))
	}
	return out, nil
}

// Delete borra el contrato. Las transacciones que lo referencian no se tocan:
// conservan el adjunto ya replicado.
func (uc *ContractUseCase) Delete(ctx context.Context, userID, id string) error {
	contract, err := uc.contractRepo.GetByID(id)
	if err != nil || contract == nil {
		return domain.ErrNotFound
	}
	if contract.UserID != userID {
		return domain.ErrForbidden
	}
	if err := uc.contractRepo.Delete(id); err != nil {
		return err
	}
	uc.notify(ctx, "contracts")
	return nil
}

func (uc *ContractUseCase) notify(ctx context.Context, tables ...string) {
	if uc.notifier == nil {
		return
	}
	for _, t := range tables {
		uc.notifier.Notify(ctx, t)
	}
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	return &dto.ContractResponse{
		ID:              c.ID,
		CustomerID:      c.CustomerID,
		Title:           c.Title,
		PDFURL:          c.PDFURL,
		PaymentProofURL: c.PaymentProofURL,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
}
