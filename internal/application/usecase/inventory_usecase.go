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

// InventoryUseCase casos de uso del inventario de productos.
type InventoryUseCase struct {
	repo     repository.InventoryRepository
	notifier ports.ChangeNotifier
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, notifier ports.ChangeNotifier) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, notifier: notifier}
}

// Create agrega un producto.
func (uc *InventoryUseCase) Create(ctx context.Context, userID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.InventoryItem{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Category:    in.Category,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	uc.notify(ctx)
	return toInventoryItemResponse(item), nil
}

// Update edita el producto. Quantity admite cero (producto agotado) pero no
// valores negativos.
func (uc *InventoryUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil || item == nil {
		return nil, domain.ErrNotFound
	}
	if item.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.Category != nil {
		item.Category = *in.Category
	}

	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	uc.notify(ctx)
	return toInventoryItemResponse(item), nil
}

// List lista los productos de la cuenta.
func (uc *InventoryUseCase) List(userID string) ([]*dto.InventoryItemResponse, error) {
	items, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toInventoryItemResponse(item))
	}
	return out, nil
}

// Delete borra el producto. Las ventas históricas conservan sus ítems: el
// detalle de venta copia nombre y precio, no referencia al producto vivo.
func (uc *InventoryUseCase) Delete(ctx context.Context, userID, id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil || item == nil {
		return domain.ErrNotFound
	}
	if item.UserID != userID {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.notify(ctx)
	return nil
}

func (uc *InventoryUseCase) notify(ctx context.Context) {
	if uc.notifier != nil {
		uc.notifier.Notify(ctx, "inventory_items")
	}
}

func toInventoryItemResponse(item *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		Price:       item.Price,
		Category:    item.Category,
	}
}
