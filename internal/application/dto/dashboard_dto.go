package dto

import "github.com/shopspring/decimal"

// OccurrenceDTO una ocurrencia proyectada de un organizador.
type OccurrenceDTO struct {
	OrganizerID string          `json:"organizer_id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Date        string          `json:"date"` // YYYY-MM-DD
	IsToday     bool            `json:"is_today"`
	IsWeekend   bool            `json:"is_weekend"`
	Label       string          `json:"label"`
}

// ProjectionDTO resultado de la proyección de recurrencias.
type ProjectionDTO struct {
	OverdueBills     []OccurrenceDTO `json:"overdue_bills"`
	OverdueIncoming  []OccurrenceDTO `json:"overdue_incoming"`
	UpcomingBills    []OccurrenceDTO `json:"upcoming_bills"`
	UpcomingIncoming []OccurrenceDTO `json:"upcoming_incoming"`
	MonthBills       decimal.Decimal `json:"month_bills"`
	MonthIncoming    decimal.Decimal `json:"month_incoming"`
}

// SummaryDTO resumen financiero del dashboard (valores pagados vs pendientes).
type SummaryDTO struct {
	Income         decimal.Decimal `json:"income"`
	PendingIncome  decimal.Decimal `json:"pending_income"`
	Expense        decimal.Decimal `json:"expense"`
	PendingExpense decimal.Decimal `json:"pending_expense"`
	Balance        decimal.Decimal `json:"balance"`
}
