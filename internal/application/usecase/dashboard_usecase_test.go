package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stubOrganizerRepo struct {
	orgs []*entity.FinancialOrganizer
}

func (r *stubOrganizerRepo) Create(org *entity.FinancialOrganizer) error { return nil }
func (r *stubOrganizerRepo) GetByID(id string) (*entity.FinancialOrganizer, error) {
	return nil, nil
}
func (r *stubOrganizerRepo) ListByUser(userID string) ([]*entity.FinancialOrganizer, error) {
	return r.orgs, nil
}
func (r *stubOrganizerRepo) Update(org *entity.FinancialOrganizer) error { return nil }
func (r *stubOrganizerRepo) Delete(id string) error                      { return nil }

type stubTxRepo struct {
	txs []*entity.Transaction
}

func (r *stubTxRepo) Create(tx *entity.Transaction) error          { return nil }
func (r *stubTxRepo) GetByID(id string) (*entity.Transaction, error) { return nil, nil }
func (r *stubTxRepo) ListByUser(userID string) ([]*entity.Transaction, error) {
	return r.txs, nil
}
func (r *stubTxRepo) ListByContract(contractID string) ([]*entity.Transaction, error) {
	return nil, nil
}
func (r *stubTxRepo) Update(tx *entity.Transaction) error { return nil }
func (r *stubTxRepo) Delete(id string) error              { return nil }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// ──────────────────────────────────────────────────────────────────────────────
// Summary
// ──────────────────────────────────────────────────────────────────────────────

func income(status string, amount, paid float64) *entity.Transaction {
	return &entity.Transaction{
		Type:          entity.TransactionIncome,
		Amount:        decimal.NewFromFloat(amount),
		PaidAmount:    decimal.NewFromFloat(paid),
		PaymentStatus: status,
	}
}

func expense(status string, amount float64) *entity.Transaction {
	return &entity.Transaction{
		Type:          entity.TransactionExpense,
		Amount:        decimal.NewFromFloat(amount),
		PaymentStatus: status,
	}
}

func TestSummary_PagoSumaCompletoAlRealizado(t *testing.T) {
	uc := NewDashboardUseCase(&stubOrganizerRepo{}, &stubTxRepo{txs: []*entity.Transaction{
		income(entity.PaymentPaid, 100, 0),
	}})

	sum, err := uc.Summary("u1")
	require.NoError(t, err)
	assert.True(t, sum.Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, sum.PendingIncome.IsZero())
}

func TestSummary_ParcialReparteEntreRealizadoYPendiente(t *testing.T) {
	uc := NewDashboardUseCase(&stubOrganizerRepo{}, &stubTxRepo{txs: []*entity.Transaction{
		income(entity.PaymentPartial, 100, 30),
	}})

	sum, err := uc.Summary("u1")
	require.NoError(t, err)
	assert.True(t, sum.Income.Equal(decimal.NewFromInt(30)),
		"del parcial solo PaidAmount cuenta como realizado")
	assert.True(t, sum.PendingIncome.Equal(decimal.NewFromInt(70)),
		"el resto del parcial queda pendiente")
}

func TestSummary_PendienteYAtrasadoVanEnterosAlPendiente(t *testing.T) {
	uc := NewDashboardUseCase(&stubOrganizerRepo{}, &stubTxRepo{txs: []*entity.Transaction{
		income(entity.PaymentPending, 40, 0),
		income(entity.PaymentOverdue, 60, 0),
	}})

	sum, err := uc.Summary("u1")
	require.NoError(t, err)
	assert.True(t, sum.Income.IsZero())
	assert.True(t, sum.PendingIncome.Equal(decimal.NewFromInt(100)))
}

func TestSummary_CanceladoNoCuentaEnNingunLado(t *testing.T) {
	uc := NewDashboardUseCase(&stubOrganizerRepo{}, &stubTxRepo{txs: []*entity.Transaction{
		income(entity.PaymentCancelled, 500, 0),
	}})

	sum, err := uc.Summary("u1")
	require.NoError(t, err)
	assert.True(t, sum.Income.IsZero())
	assert.True(t, sum.PendingIncome.IsZero(),
		"una transacción cancelada se excluye por completo del resumen")
}

func TestSummary_BalanceEsIngresoMenosGasto(t *testing.T) {
	uc := NewDashboardUseCase(&stubOrganizerRepo{}, &stubTxRepo{txs: []*entity.Transaction{
		income(entity.PaymentPaid, 1000, 0),
		expense(entity.PaymentPaid, 350),
		expense(entity.PaymentPending, 200), // pendiente no afecta el balance
	}})

	sum, err := uc.Summary("u1")
	require.NoError(t, err)
	assert.True(t, sum.Expense.Equal(decimal.NewFromInt(350)))
	assert.True(t, sum.PendingExpense.Equal(decimal.NewFromInt(200)))
	assert.True(t, sum.Balance.Equal(decimal.NewFromInt(650)),
		"el balance es realizado contra realizado, Balance = %s", sum.Balance)
}

// ──────────────────────────────────────────────────────────────────────────────
// Projection
// ──────────────────────────────────────────────────────────────────────────────

func TestProjection_UsaVentanaPorDefecto(t *testing.T) {
	// Organizador con vencimiento dentro de la ventana por defecto (7 días).
	orgs := []*entity.FinancialOrganizer{{
		ID:        "o1",
		Title:     "Internet",
		Amount:    decimal.NewFromInt(90),
		Type:      entity.OrganizerMonthlyBill,
		Frequency: entity.FrequencyMonthly,
		DueDay:    23,
		Active:    true,
	}}
	uc := NewDashboardUseCase(&stubOrganizerRepo{orgs: orgs}, &stubTxRepo{})
	uc.now = fixedClock(time.Date(2025, time.April, 20, 12, 0, 0, 0, time.UTC))

	proj, err := uc.Projection("u1", 0)
	require.NoError(t, err)
	require.Len(t, proj.UpcomingBills, 1)
	assert.Equal(t, "2025-04-23", proj.UpcomingBills[0].Date)
	assert.Equal(t, "Dia 23", proj.UpcomingBills[0].Label)
	assert.True(t, proj.MonthBills.Equal(decimal.NewFromInt(90)))
}

func TestProjection_VencidoDelMes(t *testing.T) {
	orgs := []*entity.FinancialOrganizer{{
		ID:        "o1",
		Title:     "Aluguel",
		Amount:    decimal.NewFromInt(1200),
		Type:      entity.OrganizerMonthlyBill,
		Frequency: entity.FrequencyMonthly,
		DueDay:    5,
		Active:    true,
	}}
	uc := NewDashboardUseCase(&stubOrganizerRepo{orgs: orgs}, &stubTxRepo{})
	uc.now = fixedClock(time.Date(2025, time.April, 20, 12, 0, 0, 0, time.UTC))

	proj, err := uc.Projection("u1", 7)
	require.NoError(t, err)
	require.Len(t, proj.OverdueBills, 1)
	assert.Equal(t, "2025-04-05", proj.OverdueBills[0].Date)
	assert.Empty(t, proj.UpcomingBills)
}
