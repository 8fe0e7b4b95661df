package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de organizador financiero.
const (
	OrganizerMonthlyBill  = "conta_mensal"
	OrganizerSubscription = "assinatura"
	OrganizerIncoming     = "recebimento"
	OrganizerOther        = "outro"
)

// Frecuencias de recurrencia.
const (
	FrequencyMonthly = "monthly"
	FrequencyWeekly  = "weekly"
)

// FinancialOrganizer es una plantilla de obligación financiera recurrente
// (cuenta mensual, suscripción o cobro esperado), no una instancia concreta.
// No lleva estado de pago: una ocurrencia se considera liquidada cuando existe
// una transacción del período con RecurrenceID igual a su ID.
//
// DueDay: 1..31 para frecuencia mensual; 1..7 para semanal (1=lunes..7=domingo).
type FinancialOrganizer struct {
	ID                 string
	UserID             string
	Title              string
	Amount             decimal.Decimal
	Category           string
	Type               string // conta_mensal | assinatura | recebimento | outro
	Frequency          string // monthly | weekly
	DueDay             int
	Active             bool
	CurrentInstallment int // 0 = sin cuotas
	TotalInstallments  int
	CreatedAt          time.Time
}
