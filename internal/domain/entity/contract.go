package entity

import "time"

// Contract representa un contrato con un cliente. El PDF y el comprobante de
// pago viven en el almacenamiento de archivos; aquí solo se guardan las URLs.
type Contract struct {
	ID              string
	UserID          string
	CustomerID      string
	Title           string
	PDFURL          string
	PaymentProofURL string // comprobante de pago; se replica a las transacciones ligadas
	CreatedAt       time.Time
}
