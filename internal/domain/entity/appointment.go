package entity

import "time"

// Tipos y estados de una cita de agenda.
const (
	AppointmentService    = "servico"
	AppointmentCommitment = "compromisso"
	AppointmentOther      = "outro"

	AppointmentPending   = "pendente"
	AppointmentCompleted = "concluido"
	AppointmentCancelled = "cancelado"
)

// Appointment representa una cita en la agenda.
type Appointment struct {
	ID          string
	UserID      string
	CustomerID  string // opcional
	Title       string
	Description string
	Date        string // YYYY-MM-DD
	Time        string // HH:mm
	Type        string // servico | compromisso | outro
	Status      string // pendente | concluido | cancelado
	CreatedAt   time.Time
}
