package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un producto del inventario de la tienda.
type InventoryItem struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Quantity    int
	Price       decimal.Decimal
	Category    string
	CreatedAt   time.Time
}
