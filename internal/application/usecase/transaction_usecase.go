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

// TransactionUseCase casos de uso de transacciones financieras.
type TransactionUseCase struct {
	txRepo    repository.TransactionRepository
	snapshots *SnapshotLoader
	executor  *appsync.Executor
	notifier  ports.ChangeNotifier
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	txRepo repository.TransactionRepository,
	snapshots *SnapshotLoader,
	executor *appsync.Executor,
	notifier ports.ChangeNotifier,
) *TransactionUseCase {
	return &TransactionUseCase{txRepo: txRepo, snapshots: snapshots, executor: executor, notifier: notifier}
}

// Create registra una transacción manual y corre las reglas de comprobante
// (pull desde el contrato si la transacción llega sin adjunto, push hacia el
// contrato si trae uno propio distinto).
func (uc *TransactionUseCase) Create(ctx context.Context, userID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Type != entity.TransactionIncome && in.Type != entity.TransactionExpense {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	status := in.PaymentStatus
	if status == "" {
		status = entity.PaymentPaid
	}
	tx := &entity.Transaction{
		ID:            uuid.New().String(),
		UserID:        userID,
		CustomerID:    in.CustomerID,
		Type:          in.Type,
		Amount:        in.Amount,
		Category:      in.Category,
		Description:   in.Description,
		Date:          date,
		PaymentStatus: status,
		PaidAmount:    in.PaidAmount,
		ContractID:    in.ContractID,
		RecurrenceID:  in.RecurrenceID,
		AttachmentURL: in.AttachmentURL,
		CreatedAt:     time.Now(),
	}
	if in.DueDate != "" {
		due, err := parseDate(in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		tx.DueDate = &due
	}
	if err := uc.txRepo.Create(tx); err != nil {
		return nil, err
	}

	uc.propagateUpsert(userID, tx)
	uc.notify(ctx, "transactions")
	return toTransactionResponse(tx), nil
}

// Update edita la transacción y re-corre las reglas de comprobante.
func (uc *TransactionUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := uc.txRepo.GetByID(id)
	if err != nil || tx == nil {
		return nil, domain.ErrNotFound
	}
	if tx.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if in.Type != nil {
		tx.Type = *in.Type
	}
	if in.Amount != nil {
		tx.Amount = *in.Amount
	}
	if in.Category != nil {
		tx.Category = *in.Category
	}
	if in.Description != nil {
		tx.Description = *in.Description
	}
	if in.Date != nil {
		date, err := parseDate(*in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		tx.Date = date
	}
	if in.DueDate != nil {
		if *in.DueDate == "" {
			tx.DueDate = nil
		} else {
			due, err := parseDate(*in.DueDate)
			if err != nil {
				return nil, domain.ErrInvalidInput
			}
			tx.DueDate = &due
		}
	}
	if in.PaymentStatus != nil {
		tx.PaymentStatus = *in.PaymentStatus
	}
	if in.PaidAmount != nil {
		tx.PaidAmount = *in.PaidAmount
	}
	if in.ContractID != nil {
		tx.ContractID = *in.ContractID
	}
	if in.AttachmentURL != nil {
		tx.AttachmentURL = *in.AttachmentURL
	}

	if err := uc.txRepo.Update(tx); err != nil {
		return nil, err
	}

	uc.propagateUpsert(userID, tx)
	uc.notify(ctx, "transactions")
	return toTransactionResponse(tx), nil
}

// Delete borra la transacción. Si estaba ligada a una venta (SaleID o marcador
// legado), la venta se borra también para no dejarla sin rastro financiero.
func (uc *TransactionUseCase) Delete(ctx context.Context, userID, id string) error {
	tx, err := uc.txRepo.GetByID(id)
	if err != nil || tx == nil {
		return domain.ErrNotFound
	}
	if tx.UserID != userID {
		return domain.ErrForbidden
	}

	snap, snapErr := uc.snapshots.Load(userID)
	if err := uc.txRepo.Delete(id); err != nil {
		return err
	}
	if snapErr == nil {
		_ = uc.executor.Apply(appsync.TransactionDeleted(snap, tx))
	}
	uc.notify(ctx, "transactions", "sales")
	return nil
}

// List lista las transacciones de la cuenta, más recientes primero.
func (uc *TransactionUseCase) List(userID string) ([]*dto.TransactionResponse, error) {
	txs, err := uc.txRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}
	return out, nil
}

// propagateUpsert corre las reglas de comprobante tras crear o editar. Un
// fallo aquí deja el campo secundario desactualizado, nunca bloquea la
// mutación primaria.
func (uc *TransactionUseCase) propagateUpsert(userID string, tx *entity.Transaction) {
	snap, err := uc.snapshots.Load(userID)
	if err != nil {
		return
	}
	_ = uc.executor.Apply(appsync.TransactionUpserted(snap, tx))
}

func (uc *TransactionUseCase) notify(ctx context.Context, tables ...string) {
	if uc.notifier == nil {
		return
	}
	for _, t := range tables {
		uc.notifier.Notify(ctx, t)
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	resp := &dto.TransactionResponse{
		ID:            tx.ID,
		CustomerID:    tx.CustomerID,
		Type:          tx.Type,
		Amount:        tx.Amount,
		Category:      tx.Category,
		Description:   tx.Description,
		Date:          tx.Date.Format("2006-01-02"),
		PaymentStatus: tx.PaymentStatus,
		PaidAmount:    tx.PaidAmount,
		SaleID:        appsync.TransactionSaleID(tx),
		ContractID:    tx.ContractID,
		RecurrenceID:  tx.RecurrenceID,
		AttachmentURL: tx.AttachmentURL,
	}
	if tx.DueDate != nil {
		resp.DueDate = tx.DueDate.Format("2006-01-02")
	}
	return resp
}
