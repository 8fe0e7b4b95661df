package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción.
const (
	TransactionIncome  = "receita"
	TransactionExpense = "despesa"
)

// Estados de pago de una transacción.
//
// PaymentCancelled es el caso explícito para la transacción sombra de una venta
// cancelada: el comportamiento original no definía qué estado debía llevar, así
// que se expone como valor propio en lugar de adivinar pendiente/pago.
const (
	PaymentPending   = "pendente"
	PaymentPaid      = "pago"
	PaymentOverdue   = "atrasado"
	PaymentPartial   = "parcial"
	PaymentCancelled = "cancelado"
)

// Transaction representa un movimiento financiero (ingreso o gasto).
//
// SaleID es el vínculo explícito con la venta que la originó. Las filas
// anteriores a la migración solo llevan el marcador "Venda #<id>" embebido en
// Description; el propagador resuelve ambos (ver application/sync).
//
// Invariante: si PaymentStatus == parcial entonces 0 < PaidAmount < Amount.
// La validación es responsabilidad del colaborador de UI, no de este núcleo.
type Transaction struct {
	ID            string
	UserID        string
	CustomerID    string // opcional
	Type          string // receita | despesa
	Amount        decimal.Decimal
	Category      string
	Description   string
	Date          time.Time
	DueDate       *time.Time
	PaymentStatus string // pendente | pago | atrasado | parcial | cancelado
	PaidAmount    decimal.Decimal // significativo solo cuando PaymentStatus == parcial
	SaleID        string          // venta que generó esta transacción (vacío = ninguna)
	ContractID    string          // contrato ligado (vacío = ninguno)
	RecurrenceID  string          // organizador financiero que liquida (vacío = ninguno)
	AttachmentURL string          // comprobante adjunto
	CreatedAt     time.Time
}
