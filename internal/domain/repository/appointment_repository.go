package repository

import "github.com/jhoicas/gestor-api/internal/domain/entity"

// AppointmentRepository define el puerto de persistencia para Appointment.
type AppointmentRepository interface {
	Create(ap *entity.Appointment) error
	GetByID(id string) (*entity.Appointment, error)
	ListByUser(userID string) ([]*entity.Appointment, error)
	Update(ap *entity.Appointment) error
	Delete(id string) error
}
