package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestor-api/internal/application/dto"
	"github.com/jhoicas/gestor-api/internal/application/ports"
	"github.com/jhoicas/gestor-api/internal/domain"
	"github.com/jhoicas/gestor-api/internal/domain/entity"
	"github.com/jhoicas/gestor-api/internal/domain/repository"
)

// AppointmentUseCase casos de uso de la agenda.
type AppointmentUseCase struct {
	repo     repository.AppointmentRepository
	notifier ports.ChangeNotifier
}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase(repo repository.AppointmentRepository, notifier ports.ChangeNotifier) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, notifier: notifier}
}

// Create agenda una cita. Date y Time se guardan como texto plano
// (YYYY-MM-DD / HH:mm); solo se valida el formato de fecha.
func (uc *AppointmentUseCase) Create(ctx context.Context, userID string, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.Title == "" || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := parseDate(in.Date); err != nil {
		return nil, domain.ErrInvalidInput
	}
	apType := in.Type
	if apType == "" {
		apType = entity.AppointmentService
	}
	ap := &entity.Appointment{
		ID:          uuid.New().String(),
		UserID:      userID,
		CustomerID:  in.CustomerID,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Time:        in.Time,
		Type:        apType,
		Status:      entity.AppointmentPending,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ap); err != nil {
		return nil, err
	}
	uc.notify(ctx)
	return toAppointmentResponse(ap), nil
}

// Update edita la cita (incluye transición de estado).
func (uc *AppointmentUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	ap, err := uc.repo.GetByID(id)
	if err != nil || ap == nil {
		return nil, domain.ErrNotFound
	}
	if ap.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if in.Title != nil {
		ap.Title = *in.Title
	}
	if in.Description != nil {
		ap.Description = *in.Description
	}
	if in.Date != nil {
		if _, err := parseDate(*in.Date); err != nil {
			return nil, domain.ErrInvalidInput
		}
		ap.Date = *in.Date
	}
	if in.Time != nil {
		ap.Time = *in.Time
	}
	if in.Type != nil {
		ap.Type = *in.Type
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.AppointmentPending, entity.AppointmentCompleted, entity.AppointmentCancelled:
			ap.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}

	if err := uc.repo.Update(ap); err != nil {
		return nil, err
	}
	uc.notify(ctx)
	return toAppointmentResponse(ap), nil
}

// List lista las citas de la cuenta.
func (uc *AppointmentUseCase) List(userID string) ([]*dto.AppointmentResponse, error) {
	aps, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AppointmentResponse, 0, len(aps))
	for _, ap := range aps {
		out = append(out, toAppointmentResponse(ap))
	}
	return out, nil
}

// Delete borra la cita.
func (uc *AppointmentUseCase) Delete(ctx context.Context, userID, id string) error {
	ap, err := uc.repo.GetByID(id)
	if err != nil || ap == nil {
		return domain.ErrNotFound
	}
	if ap.UserID != userID {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.notify(ctx)
	return nil
}

func (uc *AppointmentUseCase) notify(ctx context.Context) {
	if uc.notifier != nil {
		uc.notifier.Notify(ctx, "appointments")
	}
}

func toAppointmentResponse(ap *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:          ap.ID,
		CustomerID:  ap.CustomerID,
		Title:       ap.Title,
		Description: ap.Description,
		Date:        ap.Date,
		Time:        ap.Time,
		Type:        ap.Type,
		Status:      ap.Status,
	}
}
