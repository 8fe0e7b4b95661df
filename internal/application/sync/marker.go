package sync

import (
	"fmt"
	"strings"
)

// saleMarkerPrefix es la convención heredada del frontend original: el ID de la
// venta viaja embebido en la descripción de su transacción sombra. Las filas
// nuevas llevan además el campo explícito SaleID; el marcador se conserva para
// que los datos anteriores a la migración sigan resolviendo.
const saleMarkerPrefix = "Venda #"

// SaleMarker devuelve la descripción estándar de la transacción sombra de una venta.
func SaleMarker(saleID string) string {
	return saleMarkerPrefix + saleID
}

// ParseSaleMarker extrae el ID de venta embebido en una descripción.
// Devuelve "" si la descripción no lleva el marcador.
func ParseSaleMarker(description string) string {
	idx := strings.Index(description, saleMarkerPrefix)
	if idx < 0 {
		return ""
	}
	rest := description[idx+len(saleMarkerPrefix):]
	// El ID termina en el primer espacio (la descripción puede llevar sufijos).
	if sp := strings.IndexByte(rest, ' '); sp >= 0 {
		rest = rest[:sp]
	}
	return strings.TrimSpace(rest)
}

// SaleDescription arma la descripción legible de la transacción sombra,
// incluyendo el marcador: "Venda #<id> - <n> itens".
func SaleDescription(saleID string, itemCount int) string {
	if itemCount <= 0 {
		return SaleMarker(saleID)
	}
	unit := "itens"
	if itemCount == 1 {
		unit = "item"
	}
	return fmt.Sprintf("%s - %d %s", SaleMarker(saleID), itemCount, unit)
}
