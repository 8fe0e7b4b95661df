package dto

import "github.com/shopspring/decimal"

// SaleItemRequest línea de venta del PDV.
type SaleItemRequest struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest alta de venta.
type CreateSaleRequest struct {
	CustomerID    string            `json:"customer_id"`
	Status        string            `json:"status"`         // concluido | pendente | cancelado
	PaymentMethod string            `json:"payment_method"` // pix | cartao | dinheiro
	Items         []SaleItemRequest `json:"items"`
}

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// SaleResponse respuesta de venta.
type SaleResponse struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     string             `json:"created_at"`
}
