// Package sync implementa el propagador de consistencia: las reglas que
// mantienen coherentes los hechos financieros duplicados entre entidades que
// no tienen foreign keys con cascada (venta↔transacción, transacción↔contrato,
// idea↔tarea).
//
// El diseño separa decisión de ejecución: el reducer es una función pura que,
// dada la mutación primaria ya confirmada y el snapshot actual, devuelve la
// lista ordenada de efectos derivados. El Executor los aplica en secuencia.
// Ninguna regla dispara otra regla: cada punto de entrada emite como máximo
// los efectos que le corresponden, una sola vez.
package sync

import (
	"time"

	"github.com/jhoicas/gestor-api/internal/domain"
	"github.com/jhoicas/gestor-api/internal/domain/entity"
)

// Categoría fija de las transacciones sombra de ventas.
const saleCategory = "Vendas"

// SalePaymentStatus mapea el estado de una venta al estado de pago de su
// transacción sombra. Ventas canceladas llevan el caso explícito cancelado.
func SalePaymentStatus(saleStatus string) string {
	switch saleStatus {
	case entity.SaleCompleted:
		return entity.PaymentPaid
	case entity.SaleCancelled:
		return entity.PaymentCancelled
	default:
		return entity.PaymentPending
	}
}

// SaleCreated aplica la regla venta→transacción: crear una venta concluida o
// pendiente sintetiza exactamente una transacción receita con el marcador de
// venta. txID lo genera el caller para que el reducer quede determinista.
// Si el snapshot ya tiene la transacción sombra, no se emite nada.
func SaleCreated(snap *Snapshot, sale *entity.Sale, txID string, now time.Time) []Effect {
	if sale == nil || sale.Status == entity.SaleCancelled {
		return nil
	}
	if snap.TransactionForSale(sale.ID) != nil {
		return nil
	}
	tx := &entity.Transaction{
		ID:            txID,
		UserID:        sale.UserID,
		CustomerID:    sale.CustomerID,
		Type:          entity.TransactionIncome,
		Amount:        sale.Total,
		Category:      saleCategory,
		Description:   SaleDescription(sale.ID, len(sale.Items)),
		Date:          now,
		PaymentStatus: SalePaymentStatus(sale.Status),
		SaleID:        sale.ID,
		CreatedAt:     now,
	}
	return []Effect{InsertTransaction{Tx: tx}}
}

// SaleStatusChanged espeja el nuevo estado de la venta en su transacción
// sombra. Sin transacción ligada es un no-op silencioso.
func SaleStatusChanged(snap *Snapshot, sale *entity.Sale) []Effect {
	if sale == nil {
		return nil
	}
	tx := snap.TransactionForSale(sale.ID)
	if tx == nil {
		return nil
	}
	want := SalePaymentStatus(sale.Status)
	if tx.PaymentStatus == want {
		return nil
	}
	updated := *tx
	updated.PaymentStatus = want
	return []Effect{UpdateTransaction{Tx: &updated}}
}

// SaleDeleted elimina la transacción sombra de la venta borrada.
// Sin coincidencia es un no-op (el store puede ya estar consistente).
func SaleDeleted(snap *Snapshot, saleID string) []Effect {
	tx := snap.TransactionForSale(saleID)
	if tx == nil {
		return nil
	}
	return []Effect{DeleteTransaction{ID: tx.ID}}
}

// TransactionDeleted es el reverso: borrar una transacción ligada a venta
// borra también la venta, para no dejar una venta sin rastro financiero.
func TransactionDeleted(snap *Snapshot, tx *entity.Transaction) []Effect {
	saleID := TransactionSaleID(tx)
	if saleID == "" {
		return nil
	}
	if snap.SaleByID(saleID) == nil {
		return nil
	}
	return []Effect{DeleteSale{ID: saleID}}
}

// ContractProofChanged propaga el comprobante contrato→transacciones: toda
// transacción con ContractID igual adopta la URL. Las que ya la tienen se
// omiten, así re-aplicar la regla es un no-op.
func ContractProofChanged(snap *Snapshot, contract *entity.Contract) []Effect {
	if contract == nil || contract.PaymentProofURL == "" {
		return nil
	}
	var effects []Effect
	for _, tx := range snap.Transactions {
		if tx.ContractID != contract.ID || tx.AttachmentURL == contract.PaymentProofURL {
			continue
		}
		updated := *tx
		updated.AttachmentURL = contract.PaymentProofURL
		effects = append(effects, UpdateTransaction{Tx: &updated})
	}
	return effects
}

// TransactionUpserted cubre las dos direcciones del comprobante en el primer
// enlace transacción↔contrato:
//
//   - pull: la transacción llega con contrato pero sin adjunto y el contrato
//     ya tiene comprobante → la transacción lo hereda.
//   - push: la transacción trae adjunto propio distinto del comprobante del
//     contrato → el contrato lo adopta.
//
// El pull no re-dispara el push ni viceversa: se emite un solo efecto.
func TransactionUpserted(snap *Snapshot, tx *entity.Transaction) []Effect {
	if tx == nil || tx.ContractID == "" {
		return nil
	}
	contract := snap.ContractByID(tx.ContractID)
	if contract == nil {
		return nil
	}
	if tx.AttachmentURL == "" {
		if contract.PaymentProofURL == "" {
			return nil
		}
		updated := *tx
		updated.AttachmentURL = contract.PaymentProofURL
		return []Effect{UpdateTransaction{Tx: &updated}}
	}
	if tx.AttachmentURL != contract.PaymentProofURL {
		return []Effect{UpdateContractProof{ContractID: contract.ID, ProofURL: tx.AttachmentURL}}
	}
	return nil
}

// IdeaStatusForColumn mapea columna de tarea → estado de idea.
func IdeaStatusForColumn(column string) string {
	switch column {
	case entity.TaskInProgress:
		return entity.IdeaProcessing
	case entity.TaskDone:
		return entity.IdeaCompleted
	default:
		return entity.IdeaPending
	}
}

// TaskMoved espeja la columna de la tarea en su idea ligada. El espejo es
// unidireccional: editar la idea nunca toca la tarea. Tareas sin IdeaID no
// emiten nada.
func TaskMoved(snap *Snapshot, task *entity.Task, newColumn string) []Effect {
	if task == nil || task.IdeaID == "" {
		return nil
	}
	idea := snap.IdeaByID(task.IdeaID)
	if idea == nil {
		return nil
	}
	want := IdeaStatusForColumn(newColumn)
	if idea.Status == want {
		return nil
	}
	return []Effect{SetIdeaStatus{IdeaID: idea.ID, Status: want}}
}

// PromoteIdea convierte una idea en tarea: crea exactamente una tarea
// prellenada con título/descripción/categoría de la idea y deja la idea en
// pendente apuntando a la tarea. Una idea ya promovida (TaskID no vacío)
// rechaza promoverse de nuevo.
func PromoteIdea(snap *Snapshot, idea *entity.VideoIdea, taskID string, now time.Time) ([]Effect, error) {
	if idea == nil {
		return nil, domain.ErrNotFound
	}
	if idea.TaskID != "" {
		return nil, domain.ErrAlreadyPromoted
	}
	task := &entity.Task{
		ID:          taskID,
		UserID:      idea.UserID,
		CustomerID:  idea.CustomerID,
		IdeaID:      idea.ID,
		Title:       idea.Title,
		Description: idea.Description,
		Column:      entity.TaskTodo,
		Tags:        []string{idea.Category},
		CreatedAt:   now,
	}
	return []Effect{
		InsertTask{Task: task},
		LinkIdeaToTask{IdeaID: idea.ID, TaskID: taskID, Status: entity.IdeaPending},
	}, nil
}
