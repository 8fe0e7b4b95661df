package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleCompleted = "concluido"
	SalePending   = "pendente"
	SaleCancelled = "cancelado"
)

// Métodos de pago del PDV.
const (
	PaymentMethodPix  = "pix"
	PaymentMethodCard = "cartao"
	PaymentMethodCash = "dinheiro"
)

// Sale representa una venta del punto de venta (PDV). Cada venta tiene
// exactamente una transacción sombra de tipo receita mientras exista.
type Sale struct {
	ID            string
	UserID        string
	CustomerID    string
	Total         decimal.Decimal
	Status        string // concluido | pendente | cancelado
	PaymentMethod string // pix | cartao | dinheiro
	Items         []SaleItem
	CreatedAt     time.Time
}

// SaleItem es una línea de venta con snapshot del nombre del producto, para
// que el histórico no cambie si el producto se renombra o elimina.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}
