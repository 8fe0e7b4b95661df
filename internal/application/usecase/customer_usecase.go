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

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	notifier ports.ChangeNotifier
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, notifier ports.ChangeNotifier) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, notifier: notifier}
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, userID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.CustomerActive
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	uc.notify(ctx)
	return toCustomerResponse(customer), nil
}

// Update edita el cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if in.Name != "" {
		customer.Name = in.Name
	}
	if in.Email != "" {
		customer.Email = in.Email
	}
	if in.Phone != "" {
		customer.Phone = in.Phone
	}
	if in.Status != "" {
		customer.Status = in.Status
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	uc.notify(ctx)
	return toCustomerResponse(customer), nil
}

// TogglePortal habilita o deshabilita el portal del cliente. Devuelve el token
// cuando queda habilitado, "" cuando queda deshabilitado.
func (uc *CustomerUseCase) TogglePortal(ctx context.Context, userID, id string) (string, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return "", domain.ErrNotFound
	}
	if customer.UserID != userID {
		return "", domain.ErrForbidden
	}
	if customer.PortalToken != "" {
		customer.PortalToken = ""
	} else {
		customer.PortalToken = uuid.New().String()
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return "", err
	}
	uc.notify(ctx)
	return customer.PortalToken, nil
}

// GetByPortalToken resuelve el cliente dueño del token de portal (sin auth).
func (uc *CustomerUseCase) GetByPortalToken(token string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByPortalToken(token)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista los clientes de la cuenta.
func (uc *CustomerUseCase) List(userID string, limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Delete borra el cliente. Las entidades que lo referencian no se tocan: el
// núcleo nunca borra en cascada automáticamente.
func (uc *CustomerUseCase) Delete(ctx context.Context, userID, id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return domain.ErrNotFound
	}
	if customer.UserID != userID {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.notify(ctx)
	return nil
}

func (uc *CustomerUseCase) notify(ctx context.Context) {
	if uc.notifier != nil {
		uc.notifier.Notify(ctx, "customers")
	}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Status:      c.Status,
		PortalToken: c.PortalToken,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}
