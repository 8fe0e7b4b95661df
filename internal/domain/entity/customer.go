package entity

import "time"

// Estados de un cliente. Los valores se guardan en portugués por compatibilidad
// con los datos ya almacenados por el frontend original.
const (
	CustomerActive  = "ativo"
	CustomerInactive = "inativo"
	CustomerOverdue = "atraso"
)

// Customer representa un cliente de la cuenta.
type Customer struct {
	ID          string
	UserID      string
	Name        string
	Email       string
	Phone       string
	Status      string // ativo | inativo | atraso
	PortalToken string // token único para el portal del cliente (vacío = portal deshabilitado)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
