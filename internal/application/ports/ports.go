// Package ports define las interfaces hacia colaboradores de infraestructura
// que los casos de uso consumen sin conocer la implementación.
package ports

import (
	"context"

	"github.com/jhoicas/gestor-api/internal/domain/entity"
)

// FileStore es el colaborador de archivos (PDFs de contrato, comprobantes).
// El núcleo nunca inspecciona el contenido: solo guarda y mueve URLs.
type FileStore interface {
	Upload(ctx context.Context, path string, data []byte) (publicURL string, err error)
}

// ChangeNotifier publica una notificación de cambio por tabla. Los clientes
// suscritos reaccionan refetcheando el snapshot completo; no hay modelo
// incremental.
type ChangeNotifier interface {
	Notify(ctx context.Context, table string)
}

// ReceiptPDFGenerator genera el recibo PDF de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, customer *entity.Customer) ([]byte, error)
}
