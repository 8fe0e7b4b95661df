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

// OrganizerUseCase casos de uso del organizador financiero (plantillas de
// obligaciones recurrentes).
type OrganizerUseCase struct {
	repo     repository.OrganizerRepository
	notifier ports.ChangeNotifier
}

// NewOrganizerUseCase construye el caso de uso.
func NewOrganizerUseCase(repo repository.OrganizerRepository, notifier ports.ChangeNotifier) *OrganizerUseCase {
	return &OrganizerUseCase{repo: repo, notifier: notifier}
}

// Create registra una plantilla recurrente. DueDay se valida contra la
// frecuencia: 1..31 para mensual, 1..7 (ISO, lunes=1) para semanal.
func (uc *OrganizerUseCase) Create(ctx context.Context, userID string, in dto.CreateOrganizerRequest) (*dto.OrganizerResponse, error) {
	if in.Title == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	frequency := in.Frequency
	if frequency == "" {
		frequency = entity.FrequencyMonthly
	}
	if !validDueDay(frequency, in.DueDay) {
		return nil, domain.ErrInvalidInput
	}
	orgType := in.Type
	if orgType == "" {
		orgType = entity.OrganizerOther
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	org := &entity.FinancialOrganizer{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Title:              in.Title,
		Amount:             in.Amount,
		Category:           in.Category,
		Type:               orgType,
		Frequency:          frequency,
		DueDay:             in.DueDay,
		Active:             active,
		CurrentInstallment: in.CurrentInstallment,
		TotalInstallments:  in.TotalInstallments,
		CreatedAt:          time.Now(),
	}
	if err := uc.repo.Create(org); err != nil {
		return nil, err
	}
	uc.notify(ctx)
	return toOrganizerResponse(org), nil
}

// Update edita la plantilla. Cambiar frecuencia exige un DueDay coherente.
func (uc *OrganizerUseCase) Update(ctx context.Context, userID, id string, in dto.CreateOrganizerRequest) (*dto.OrganizerResponse, error) {
	org, err := uc.repo.GetByID(id)
	if err != nil || org == nil {
		return nil, domain.ErrNotFound
	}
	if org.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if in.Title != "" {
		org.Title = in.Title
	}
	if !in.Amount.IsZero() {
		org.Amount = in.Amount
	}
	if in.Category != "" {
		org.Category = in.Category
	}
	if in.Type != "" {
		org.Type = in.Type
	}
	if in.Frequency != "" {
		org.Frequency = in.Frequency
	}
	if in.DueDay != 0 {
		org.DueDay = in.DueDay
	}
	if in.Active != nil {
		org.Active = *in.Active
	}
	if in.CurrentInstallment != 0 {
		org.CurrentInstallment = in.CurrentInstallment
	}
	if in.TotalInstallments != 0 {
		org.TotalInstallments = in.TotalInstallments
	}
	if !validDueDay(org.Frequency, org.DueDay) {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.repo.Update(org); err != nil {
		return nil, err
	}
	uc.notify(ctx)
	return toOrganizerResponse(org), nil
}

// Toggle activa o desactiva la plantilla sin tocar el resto de campos.
func (uc *OrganizerUseCase) Toggle(ctx context.Context, userID, id string) (*dto.OrganizerResponse, error) {
	org, err := uc.repo.GetByID(id)
	if err != nil || org == nil {
		return nil, domain.ErrNotFound
	}
	if org.UserID != userID {
		return nil, domain.ErrForbidden
	}
	org.Active = !org.Active
	if err := uc.repo.Update(org); err != nil {
		return nil, err
	}
	uc.notify(ctx)
	return toOrganizerResponse(org), nil
}

// List lista las plantillas de la cuenta.
func (uc *OrganizerUseCase) List(userID string) ([]*dto.OrganizerResponse, error) {
	orgs, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrganizerResponse, 0, len(orgs))
	for _, org := range orgs {
		out = append(out, toOrganizerResponse(org))
	}
	return out, nil
}

// Delete borra la plantilla. Las transacciones que la liquidaron conservan su
// RecurrenceID colgante; la proyección lo ignora.
func (uc *OrganizerUseCase) Delete(ctx context.Context, userID, id string) error {
	org, err := uc.repo.GetByID(id)
	if err != nil || org == nil {
		return domain.ErrNotFound
	}
	if org.UserID != userID {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.notify(ctx)
	return nil
}

func (uc *OrganizerUseCase) notify(ctx context.Context) {
	if uc.notifier != nil {
		uc.notifier.Notify(ctx, "financial_organizers")
	}
}

func validDueDay(frequency string, dueDay int) bool {
	switch frequency {
	case entity.FrequencyMonthly:
		return dueDay >= 1 && dueDay <= 31
	case entity.FrequencyWeekly:
		return dueDay >= 1 && dueDay <= 7
	}
	return false
}

func toOrganizerResponse(org *entity.FinancialOrganizer) *dto.OrganizerResponse {
	return &dto.OrganizerResponse{
		ID:                 org.ID,
		Title:              org.Title,
		Amount:             org.Amount,
		Category:           org.Category,
		Type:               org.Type,
		Frequency:          org.Frequency,
		DueDay:             org.DueDay,
		Active:             org.Active,
		CurrentInstallment: org.CurrentInstallment,
		TotalInstallments:  org.TotalInstallments,
	}
}
