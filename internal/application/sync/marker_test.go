package sync_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestor-api/internal/application/sync"
	"github.com/jhoicas/gestor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Marcador de venta: la convención "Venda #<id>" embebida en la descripción de
// la transacción sombra. Las filas nuevas llevan SaleID explícito; el marcador
// sigue vigente para los datos anteriores a la migración.
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleMarker_FormatoEstandar(t *testing.T) {
	assert.Equal(t, "Venda #abc-123", sync.SaleMarker("abc-123"),
		"el marcador debe ser el prefijo Venda # seguido del ID")
}

func TestParseSaleMarker_ExtraeID(t *testing.T) {
	assert.Equal(t, "abc-123", sync.ParseSaleMarker("Venda #abc-123"))
}

func TestParseSaleMarker_ConSufijo(t *testing.T) {
	// La descripción real lleva sufijos: "Venda #<id> - 3 itens".
	assert.Equal(t, "abc-123", sync.ParseSaleMarker("Venda #abc-123 - 3 itens"),
		"el ID debe terminar en el primer espacio")
}

func TestParseSaleMarker_SinMarcador(t *testing.T) {
	assert.Equal(t, "", sync.ParseSaleMarker("Pago de servicios"),
		"una descripción sin marcador debe resolver a vacío")
	assert.Equal(t, "", sync.ParseSaleMarker(""))
}

func TestSaleDescription_Plural(t *testing.T) {
	assert.Equal(t, "Venda #s1 - 3 itens", sync.SaleDescription("s1", 3))
}

func TestSaleDescription_Singular(t *testing.T) {
	assert.Equal(t, "Venda #s1 - 1 item", sync.SaleDescription("s1", 1))
}

func TestSaleDescription_SinItems(t *testing.T) {
	assert.Equal(t, "Venda #s1", sync.SaleDescription("s1", 0),
		"sin líneas la descripción es solo el marcador")
}

// ──────────────────────────────────────────────────────────────────────────────
// TransactionSaleID: SaleID explícito primero, marcador legacy como fallback.
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionSaleID_CampoExplicitoPrimero(t *testing.T) {
	tx := &entity.Transaction{
		SaleID:      "venta-nueva",
		Description: "Venda #venta-vieja - 2 itens",
		Amount:      decimal.NewFromInt(100),
	}
	assert.Equal(t, "venta-nueva", sync.TransactionSaleID(tx),
		"el campo SaleID debe tener prioridad sobre el marcador legacy")
}

func TestTransactionSaleID_FallbackAlMarcador(t *testing.T) {
	tx := &entity.Transaction{Description: "Venda #venta-vieja - 2 itens"}
	assert.Equal(t, "venta-vieja", sync.TransactionSaleID(tx),
		"sin SaleID explícito debe resolverse el marcador de la descripción")
}

func TestTransactionSaleID_SinVinculo(t *testing.T) {
	assert.Equal(t, "", sync.TransactionSaleID(&entity.Transaction{Description: "Aluguel"}))
	assert.Equal(t, "", sync.TransactionSaleID(nil), "nil no debe causar pánico")
}
