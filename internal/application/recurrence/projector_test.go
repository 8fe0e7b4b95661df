package recurrence_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestor-api/internal/application/recurrence"
	"github.com/jhoicas/gestor-api/internal/domain/entity"
)

// Domingo 20 de abril de 2025 (mes de 30 días). Las fechas de los casos se
// eligen alrededor de este ancla.
var today = time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC)

func monthlyOrg(id string, dueDay int, amount float64) *entity.FinancialOrganizer {
	return &entity.FinancialOrganizer{
		ID:        id,
		Title:     "Org " + id,
		Amount:    decimal.NewFromFloat(amount),
		Type:      entity.OrganizerMonthlyBill,
		Frequency: entity.FrequencyMonthly,
		DueDay:    dueDay,
		Active:    true,
	}
}

func weeklyOrg(id string, isoDay int, amount float64) *entity.FinancialOrganizer {
	return &entity.FinancialOrganizer{
		ID:        id,
		Title:     "Org " + id,
		Amount:    decimal.NewFromFloat(amount),
		Type:      entity.OrganizerMonthlyBill,
		Frequency: entity.FrequencyWeekly,
		DueDay:    isoDay,
		Active:    true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Vencidos
// ──────────────────────────────────────────────────────────────────────────────

func TestProject_MensualConDiaPasado_EsVencido(t *testing.T) {
	orgs := []*entity.FinancialOrganizer{monthlyOrg("o1", 5, 100)}

	proj := recurrence.Project(orgs, nil, today, 7)
	require.Len(t, proj.Overdue.Bills, 1, "día 5 con hoy 20 debe marcarse vencido")
	assert.Empty(t, proj.Upcoming.Bills, "un vencido no aparece además como próximo")

	occ := proj.Overdue.Bills[0]
	assert.Equal(t, time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC), occ.Date)
	assert.Equal(t, "Dia 5", occ.Label)
	assert.True(t, occ.IsWeekend, "el 5 de abril de 2025 es sábado")
}

func TestProject_SemanalNuncaVence(t *testing.T) {
	// Lunes ISO 1: la semana pasada quedó atrás, pero semanales no generan vencidos.
	orgs := []*entity.FinancialOrganizer{weeklyOrg("o1", 1, 50)}

	proj := recurrence.Project(orgs, nil, today, 7)
	assert.Empty(t, proj.Overdue.Bills, "los semanales se corrigen solos a la semana siguiente")
	require.Len(t, proj.Upcoming.Bills, 1)
	assert.Equal(t, time.Date(2025, time.April, 21, 0, 0, 0, 0, time.UTC), proj.Upcoming.Bills[0].Date,
		"el próximo lunes dentro de la ventana es el 21")
	assert.Equal(t, "Segunda-feira", proj.Upcoming.Bills[0].Label)
}

func TestProject_LiquidadoEnElMes_SeSuprime(t *testing.T) {
	orgs := []*entity.FinancialOrganizer{monthlyOrg("o1", 5, 100)}
	txs := []*entity.Transaction{
		{ID: "tx-1", RecurrenceID: "o1", Date: time.Date(2025, time.April, 6, 0, 0, 0, 0, time.UTC)},
	}

	proj := recurrence.Project(orgs, txs, today, 7)
	assert.Empty(t, proj.Overdue.Bills,
		"una transacción del mes con RecurrenceID del organizador lo liquida")
}

func TestProject_LiquidadoEnOtroMes_NoSuprime(t *testing.T) {
	orgs := []*entity.FinancialOrganizer{monthlyOrg("o1", 5, 100)}
	txs := []*entity.Transaction{
		{ID: "tx-1", RecurrenceID: "o1", Date: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
	}

	proj := recurrence.Project(orgs, txs, today, 7)
	assert.Len(t, proj.Overdue.Bills, 1, "la liquidación de marzo no cubre abril")
}

// ──────────────────────────────────────────────────────────────────────────────
// Próximos
// ──────────────────────────────────────────────────────────────────────────────

func TestProject_VencimientoHoy_MarcaIsToday(t *testing.T) {
	orgs := []*entity.FinancialOrganizer{monthlyOrg("o1", 20, 100)}

	proj := recurrence.Project(orgs, nil, today, 7)
	require.Len(t, proj.Upcoming.Bills, 1)
	assert.True(t, proj.Upcoming.Bills[0].IsToday)
	assert.True(t, proj.Upcoming.Bills[0].IsWeekend, "el 20 de abril de 2025 es domingo")
}

func TestProject_Dia31EnMesDe30_NoCoincide(t *testing.T) {
	// Abril tiene 30 días: el día 31 simplemente no ocurre (sin rollover).
	orgs := []*entity.FinancialOrganizer{monthlyOrg("o1", 31, 100)}

	proj := recurrence.Project(orgs, nil, today, 10)
	assert.Empty(t, proj.Overdue.Bills)
	assert.Empty(t, proj.Upcoming.Bills,
		"DueDay 31 en un mes de 30 días no genera ocurrencia")
}

func TestProject_FueraDeVentana_NoAparece(t *testing.T) {
	// Día 29 con ventana de 7 (20..27): queda fuera.
	orgs := []*entity.FinancialOrganizer{monthlyOrg("o1", 29, 100)}

	proj := recurrence.Project(orgs, nil, today, 7)
	assert.Empty(t, proj.Upcoming.Bills)

	// Con ventana de 9 (20..29) sí entra.
	proj = recurrence.Project(orgs, nil, today, 9)
	assert.Len(t, proj.Upcoming.Bills, 1)
}

func TestProject_SeparaRecebimentosDeCuentas(t *testing.T) {
	incoming := monthlyOrg("o1", 22, 300)
	incoming.Type = entity.OrganizerIncoming
	orgs := []*entity.FinancialOrganizer{incoming, monthlyOrg("o2", 23, 80)}

	proj := recurrence.Project(orgs, nil, today, 7)
	require.Len(t, proj.Upcoming.Incoming, 1)
	require.Len(t, proj.Upcoming.Bills, 1)
	assert.Equal(t, "o1", proj.Upcoming.Incoming[0].Organizer.ID)
	assert.Equal(t, "o2", proj.Upcoming.Bills[0].Organizer.ID)
}

func TestProject_OrdenAscendentePorFecha(t *testing.T) {
	orgs := []*entity.FinancialOrganizer{
		monthlyOrg("o1", 25, 10),
		monthlyOrg("o2", 21, 10),
		monthlyOrg("o3", 23, 10),
	}

	proj := recurrence.Project(orgs, nil, today, 7)
	require.Len(t, proj.Upcoming.Bills, 3)
	assert.Equal(t, "o2", proj.Upcoming.Bills[0].Organizer.ID)
	assert.Equal(t, "o3", proj.Upcoming.Bills[1].Organizer.ID)
	assert.Equal(t, "o1", proj.Upcoming.Bills[2].Organizer.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros defensivos
// ──────────────────────────────────────────────────────────────────────────────

func TestProject_InactivoSeIgnora(t *testing.T) {
	org := monthlyOrg("o1", 5, 100)
	org.Active = false

	proj := recurrence.Project([]*entity.FinancialOrganizer{org}, nil, today, 7)
	assert.Empty(t, proj.Overdue.Bills)
	assert.Empty(t, proj.Upcoming.Bills)
}

func TestProject_MalformadoNoTumbaLaProyeccion(t *testing.T) {
	malo := monthlyOrg("malo", 0, 100) // DueDay fuera de rango
	raro := monthlyOrg("raro", 5, 100)
	raro.Frequency = "quincenal" // frecuencia desconocida
	bueno := monthlyOrg("bueno", 22, 100)

	proj := recurrence.Project([]*entity.FinancialOrganizer{malo, raro, nil, bueno}, nil, today, 7)
	require.Len(t, proj.Upcoming.Bills, 1, "solo el organizador válido debe proyectarse")
	assert.Equal(t, "bueno", proj.Upcoming.Bills[0].Organizer.ID)
}

func TestProject_VentanaNegativa_SeNormalizaACero(t *testing.T) {
	orgs := []*entity.FinancialOrganizer{monthlyOrg("o1", 20, 100)}
	proj := recurrence.Project(orgs, nil, today, -5)
	assert.Len(t, proj.Upcoming.Bills, 1, "ventana negativa equivale a solo hoy")
}

// ──────────────────────────────────────────────────────────────────────────────
// Impacto del mes completo
// ──────────────────────────────────────────────────────────────────────────────

func TestFullMonthImpact_MensualSumaUnaVez(t *testing.T) {
	orgs := []*entity.FinancialOrganizer{monthlyOrg("o1", 5, 100)}

	impact := recurrence.FullMonthImpact(orgs, today)
	assert.True(t, impact.Bills.Equal(decimal.NewFromInt(100)),
		"un mensual impacta una vez al mes, Bills = %s", impact.Bills)
}

func TestFullMonthImpact_SemanalMultiplicaPorCoincidencias(t *testing.T) {
	// Abril de 2025 tiene 4 lunes (7, 14, 21, 28).
	orgs := []*entity.FinancialOrganizer{weeklyOrg("o1", 1, 50)}

	impact := recurrence.FullMonthImpact(orgs, today)
	assert.True(t, impact.Bills.Equal(decimal.NewFromInt(200)),
		"4 lunes × 50 = 200, Bills = %s", impact.Bills)
}

func TestFullMonthImpact_RecebimentoVaAlOtroLado(t *testing.T) {
	incoming := monthlyOrg("o1", 10, 300)
	incoming.Type = entity.OrganizerIncoming
	orgs := []*entity.FinancialOrganizer{incoming, monthlyOrg("o2", 15, 80)}

	impact := recurrence.FullMonthImpact(orgs, today)
	assert.True(t, impact.Incoming.Equal(decimal.NewFromInt(300)))
	assert.True(t, impact.Bills.Equal(decimal.NewFromInt(80)))
}

func TestFullMonthImpact_IgnoraLiquidacion(t *testing.T) {
	// El impacto del mes es el total calendario: no recibe transacciones y por
	// tanto no suprime organizadores liquidados.
	orgs := []*entity.FinancialOrganizer{monthlyOrg("o1", 5, 100)}
	impact := recurrence.FullMonthImpact(orgs, today)
	assert.False(t, impact.Bills.IsZero())
}
