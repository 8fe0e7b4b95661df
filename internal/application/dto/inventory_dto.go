package dto

import "github.com/shopspring/decimal"

// CreateInventoryItemRequest alta de producto.
type CreateInventoryItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

// UpdateInventoryItemRequest edición de producto.
type UpdateInventoryItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Quantity    *int             `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
}

// InventoryItemResponse respuesta de producto.
type InventoryItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}
