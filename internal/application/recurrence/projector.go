// Package recurrence proyecta los organizadores financieros (plantillas de
// obligaciones recurrentes) en ocurrencias concretas dentro de una ventana de
// días hacia adelante, y detecta vencidos del mes en curso.
//
// Project es una función pura y determinista sobre sus entradas: no toca el
// store, no depende del reloj y nunca lanza por datos malformados — un
// organizador ilegible se excluye del resultado en lugar de tumbar el render
// del dashboard.
package recurrence

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestor-api/internal/domain/entity"
)

// Occurrence es una instancia concreta de vencimiento generada al proyectar
// un organizador hacia adelante.
type Occurrence struct {
	Organizer *entity.FinancialOrganizer
	Date      time.Time
	IsToday   bool
	IsWeekend bool
	Label     string // "Dia N" para mensual, nombre del día para semanal
}

// Partition separa ocurrencias en cuentas (a pagar) y recebimentos (a recibir),
// cada lista ordenada ascendente por fecha.
type Partition struct {
	Bills    []Occurrence
	Incoming []Occurrence
}

// Projection es el resultado de Project.
type Projection struct {
	Overdue  Partition
	Upcoming Partition
}

// MonthImpact es el agregado de impacto del mes calendario completo, separado
// de la ventana corta de lookahead: los mensuales suman una vez, los semanales
// suman por cada día de la semana coincidente dentro del mes.
type MonthImpact struct {
	Bills    decimal.Decimal
	Incoming decimal.Decimal
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// isoWeekday remapea time.Weekday (0=domingo) a ISO (1=lunes..7=domingo),
// que es la numeración con la que se guarda DueDay semanal.
func isoWeekday(d time.Time) int {
	return (int(d.Weekday())+6)%7 + 1
}

// valid filtra defensivamente organizadores malformados (DueDay fuera de rango
// o frecuencia desconocida). Un registro malo jamás debe abortar la proyección.
func valid(org *entity.FinancialOrganizer) bool {
	if org == nil {
		return false
	}
	switch org.Frequency {
	case entity.FrequencyMonthly:
		return org.DueDay >= 1 && org.DueDay <= 31
	case entity.FrequencyWeekly:
		return org.DueDay >= 1 && org.DueDay <= 7
	default:
		return false
	}
}

// settledSet devuelve los IDs de organizador ya liquidados en el mes de
// `today`: una transacción liquida al organizador O si RecurrenceID == O.ID y
// su fecha cae dentro del mes/año en curso.
func settledSet(transactions []*entity.Transaction, today time.Time) map[string]bool {
	settled := make(map[string]bool)
	for _, tx := range transactions {
		if tx == nil || tx.RecurrenceID == "" {
			continue
		}
		if tx.Date.Year() == today.Year() && tx.Date.Month() == today.Month() {
			settled[tx.RecurrenceID] = true
		}
	}
	return settled
}

// Project expande los organizadores activos y no liquidados en ocurrencias
// vencidas y próximas dentro de [today, today+lookaheadDays].
//
//   - Mensual: vencido cuando DueDay < día de hoy (la fecha de este mes ya
//     pasó sin liquidación). Próximo cuando algún día de la ventana tiene
//     dayOfMonth == DueDay; un DueDay 31 en un mes de 30 días simplemente no
//     coincide (sin rollover, simplificación deliberada).
//   - Semanal: la detección de vencidos se omite (una semana perdida se
//     corrige sola a la siguiente); próximo cuando el día ISO coincide.
func Project(
	organizers []*entity.FinancialOrganizer,
	transactions []*entity.Transaction,
	today time.Time,
	lookaheadDays int,
) Projection {
	if lookaheadDays < 0 {
		lookaheadDays = 0
	}
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	settled := settledSet(transactions, today)

	var proj Projection
	for _, org := range organizers {
		if !valid(org) || !org.Active || settled[org.ID] {
			continue
		}

		// Vencidos del mes en curso (solo mensuales).
		if org.Frequency == entity.FrequencyMonthly && org.DueDay < today.Day() {
			due := time.Date(today.Year(), today.Month(), org.DueDay, 0, 0, 0, 0, today.Location())
			proj.Overdue.add(org, Occurrence{
				Organizer: org,
				Date:      due,
				IsWeekend: isWeekend(due),
				Label:     fmt.Sprintf("Dia %d", org.DueDay),
			})
			continue
		}

		// Próximos dentro de la ventana: se recorre cada fecha del rango y se
		// toma la primera coincidencia (una ocurrencia por período).
		for i := 0; i <= lookaheadDays; i++ {
			d := today.AddDate(0, 0, i)
			if !matches(org, d) {
				continue
			}
			proj.Upcoming.add(org, Occurrence{
				Organizer: org,
				Date:      d,
				IsToday:   i == 0,
				IsWeekend: isWeekend(d),
				Label:     label(org, d),
			})
			break
		}
	}

	proj.Overdue.sortByDate()
	proj.Upcoming.sortByDate()
	return proj
}

// FullMonthImpact suma el impacto de todo el mes calendario de `today` para
// los organizadores activos: una vez para mensuales, amount × coincidencias
// del día de la semana para semanales. No aplica supresión por liquidación —
// es el total del mes, no la alerta de la ventana corta.
func FullMonthImpact(organizers []*entity.FinancialOrganizer, today time.Time) MonthImpact {
	impact := MonthImpact{Bills: decimal.Zero, Incoming: decimal.Zero}
	daysInMonth := time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, today.Location()).Day()

	for _, org := range organizers {
		if !valid(org) || !org.Active {
			continue
		}
		var total decimal.Decimal
		switch org.Frequency {
		case entity.FrequencyMonthly:
			total = org.Amount
		case entity.FrequencyWeekly:
			count := 0
			for day := 1; day <= daysInMonth; day++ {
				d := time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, today.Location())
				if isoWeekday(d) == org.DueDay {
					count++
				}
			}
			total = org.Amount.Mul(decimal.NewFromInt(int64(count)))
		}
		if org.Type == entity.OrganizerIncoming {
			impact.Incoming = impact.Incoming.Add(total)
		} else {
			impact.Bills = impact.Bills.Add(total)
		}
	}
	return impact
}

func matches(org *entity.FinancialOrganizer, d time.Time) bool {
	switch org.Frequency {
	case entity.FrequencyMonthly:
		return d.Day() == org.DueDay
	case entity.FrequencyWeekly:
		return isoWeekday(d) == org.DueDay
	}
	return false
}

func label(org *entity.FinancialOrganizer, d time.Time) string {
	if org.Frequency == entity.FrequencyWeekly {
		return weekdayNames[d.Weekday()]
	}
	return fmt.Sprintf("Dia %d", org.DueDay)
}

func isWeekend(d time.Time) bool {
	return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
}

func (p *Partition) add(org *entity.FinancialOrganizer, occ Occurrence) {
	if org.Type == entity.OrganizerIncoming {
		p.Incoming = append(p.Incoming, occ)
	} else {
		p.Bills = append(p.Bills, occ)
	}
}

func (p *Partition) sortByDate() {
	sort.SliceStable(p.Bills, func(i, j int) bool { return p.Bills[i].Date.Before(p.Bills[j].Date) })
	sort.SliceStable(p.Incoming, func(i, j int) bool { return p.Incoming[i].Date.Before(p.Incoming[j].Date) })
}
