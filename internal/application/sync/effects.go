package sync

import "github.com/jhoicas/gestor-api/internal/domain/entity"

// Effect es una escritura derivada que el reducer ordena para mantener la
// consistencia entre entidades. El reducer solo decide; el Executor ejecuta.
// Cada efecto es idempotente: re-aplicar el mismo efecto deja el store igual.
type Effect interface {
	effect()
}

// InsertTransaction crea la transacción sombra de una venta.
type InsertTransaction struct {
	Tx *entity.Transaction
}

// UpdateTransaction sobreescribe campos de una transacción existente.
type UpdateTransaction struct {
	Tx *entity.Transaction
}

// DeleteTransaction elimina una transacción.
type DeleteTransaction struct {
	ID string
}

// DeleteSale elimina una venta (reverso de DeleteTransaction para ventas ligadas).
type DeleteSale struct {
	ID string
}

// UpdateContractProof adopta un comprobante de pago en el contrato.
type UpdateContractProof struct {
	ContractID string
	ProofURL   string
}

// SetIdeaStatus espeja el estado de la idea ligada a una tarea movida de columna.
type SetIdeaStatus struct {
	IdeaID string
	Status string
}

// InsertTask crea la tarea producto de promover una idea.
type InsertTask struct {
	Task *entity.Task
}

// LinkIdeaToTask deja la idea apuntando a su tarea recién creada.
type LinkIdeaToTask struct {
	IdeaID string
	TaskID string
	Status string
}

func (InsertTransaction) effect()   {}
func (UpdateTransaction) effect()   {}
func (DeleteTransaction) effect()   {}
func (DeleteSale) effect()          {}
func (UpdateContractProof) effect() {}
func (SetIdeaStatus) effect()       {}
func (InsertTask) effect()          {}
func (LinkIdeaToTask) effect()      {}
