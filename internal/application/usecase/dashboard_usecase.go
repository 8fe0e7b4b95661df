package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestor-api/internal/application/dto"
	"github.com/jhoicas/gestor-api/internal/application/recurrence"
	"github.com/jhoicas/gestor-api/internal/domain/entity"
	"github.com/jhoicas/gestor-api/internal/domain/repository"
)

// DefaultLookaheadDays ventana por defecto de la proyección de recurrencias.
const DefaultLookaheadDays = 7

// DashboardUseCase arma las vistas agregadas del dashboard: la proyección de
// organizadores (vencidos + próximos + impacto del mes) y el resumen financiero.
type DashboardUseCase struct {
	organizerRepo repository.OrganizerRepository
	txRepo        repository.TransactionRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso. El reloj es inyectable para
// poder fijar "hoy" en las pruebas.
func NewDashboardUseCase(organizerRepo repository.OrganizerRepository, txRepo repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{organizerRepo: organizerRepo, txRepo: txRepo, now: time.Now}
}

// Projection proyecta los organizadores activos sobre la ventana pedida y suma
// el impacto del mes calendario completo. lookaheadDays <= 0 usa la ventana
// por defecto.
func (uc *DashboardUseCase) Projection(userID string, lookaheadDays int) (*dto.ProjectionDTO, error) {
	if lookaheadDays <= 0 {
		lookaheadDays = DefaultLookaheadDays
	}
	organizers, err := uc.organizerRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	transactions, err := uc.txRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	today := uc.now()
	proj := recurrence.Project(organizers, transactions, today, lookaheadDays)
	impact := recurrence.FullMonthImpact(organizers, today)

	return &dto.ProjectionDTO{
		OverdueBills:     toOccurrenceDTOs(proj.Overdue.Bills),
		OverdueIncoming:  toOccurrenceDTOs(proj.Overdue.Incoming),
		UpcomingBills:    toOccurrenceDTOs(proj.Upcoming.Bills),
		UpcomingIncoming: toOccurrenceDTOs(proj.Upcoming.Incoming),
		MonthBills:       impact.Bills,
		MonthIncoming:    impact.Incoming,
	}, nil
}

// Summary agrega las transacciones de la cuenta en realizado vs pendiente.
// Pago suma completo al realizado; parcial reparte PaidAmount al realizado y el
// resto al pendiente; pendente y atrasado van enteros al pendiente; cancelado
// no cuenta en ningún lado.
func (uc *DashboardUseCase) Summary(userID string) (*dto.SummaryDTO, error) {
	transactions, err := uc.txRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	sum := &dto.SummaryDTO{
		Income:         decimal.Zero,
		PendingIncome:  decimal.Zero,
		Expense:        decimal.Zero,
		PendingExpense: decimal.Zero,
	}
	for _, tx := range transactions {
		var realized, pending decimal.Decimal
		switch tx.PaymentStatus {
		case entity.PaymentPaid:
			realized = tx.Amount
		case entity.PaymentPartial:
			realized = tx.PaidAmount
			pending = tx.Amount.Sub(tx.PaidAmount)
		case entity.PaymentPending, entity.PaymentOverdue:
			pending = tx.Amount
		default: // cancelado
			continue
		}
		switch tx.Type {
		case entity.TransactionIncome:
			sum.Income = sum.Income.Add(realized)
			sum.PendingIncome = sum.PendingIncome.Add(pending)
		case entity.TransactionExpense:
			sum.Expense = sum.Expense.Add(realized)
			sum.PendingExpense = sum.PendingExpense.Add(pending)
		}
	}
	sum.Balance = sum.Income.Sub(sum.Expense)
	return sum, nil
}

func toOccurrenceDTOs(occs []recurrence.Occurrence) []dto.OccurrenceDTO {
	out := make([]dto.OccurrenceDTO, 0, len(occs))
	for _, occ := range occs {
		out = append(out, dto.OccurrenceDTO{
			OrganizerID: occ.Organizer.ID,
			Title:       occ.Organizer.Title,
			Amount:      occ.Organizer.Amount,
			Category:    occ.Organizer.Category,
			Type:        occ.Organizer.Type,
			Date:        occ.Date.Format("2006-01-02"),
			IsToday:     occ.IsToday,
			IsWeekend:   occ.IsWeekend,
			Label:       occ.Label,
		})
	}
	return out
}
