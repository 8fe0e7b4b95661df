package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestor-api/internal/application/dto"
	"github.com/jhoicas/gestor-api/internal/application/ports"
	appsync "github.com/jhoicas/gestor-api/internal/application/sync"
	"github.com/jhoicas/gestor-api/internal/domain"
	"github.com/jhoicas/gestor-api/internal/domain/entity"
	"github.com/jhoicas/gestor-api/internal/domain/repository"
)

// SaleTxRunner ejecuta una función con repos de venta y transacción atados a
// la misma transacción PostgreSQL. Solo el alta de venta la usa: la venta, sus
// líneas y la transacción sombra nacen juntas o no nacen. El resto de las
// propagaciones son escrituras secuenciales best-effort (el store original no
// ofrece atomicidad entre entidades y el diseño la tolera).
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// SaleUseCase casos de uso del punto de venta.
type SaleUseCase struct {
	txRunner     SaleTxRunner
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	snapshots    *SnapshotLoader
	executor     *appsync.Executor
	receipts     ports.ReceiptPDFGenerator
	notifier     ports.ChangeNotifier
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner SaleTxRunner,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	snapshots *SnapshotLoader,
	executor *appsync.Executor,
	receipts ports.ReceiptPDFGenerator,
	notifier ports.ChangeNotifier,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		snapshots:    snapshots,
		executor:     executor,
		receipts:     receipts,
		notifier:     notifier,
	}
}

// Create registra la venta con sus líneas y sintetiza la transacción sombra
// (tipo receita, marcador de venta) en la misma transacción de base de datos.
func (uc *SaleUseCase) Create(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	switch in.Status {
	case entity.SaleCompleted, entity.SalePending, entity.SaleCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.UserID != userID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		UserID:        userID,
		CustomerID:    in.CustomerID,
		Status:        in.Status,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
	}
	total := decimal.Zero
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		sale.Items = append(sale.Items, entity.SaleItem{
			ID:          uuid.New().String(),
			SaleID:      sale.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	sale.Total = total

	snap, err := uc.snapshots.Load(userID)
	if err != nil {
		return nil, err
	}
	effects := appsync.SaleCreated(snap, sale, uuid.New().String(), now)

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		txRepo repository.TransactionRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for i := range sale.Items {
			if err := saleRepo.CreateItem(&sale.Items[i]); err != nil {
				return err
			}
		}
		for _, ef := range effects {
			ins, ok := ef.(appsync.InsertTransaction)
			if !ok {
				continue
			}
			if err := txRepo.Create(ins.Tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, "sales", "transactions")
	return toSaleResponse(sale), nil
}

// UpdateStatus cambia el estado de la venta y espeja el estado de pago en la
// transacción sombra. Si la escritura derivada falla, la venta queda
// actualizada igual (consistencia parcial aceptada).
func (uc *SaleUseCase) UpdateStatus(ctx context.Context, userID, id, status string) error {
	switch status {
	case entity.SaleCompleted, entity.SalePending, entity.SaleCancelled:
	default:
		return domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil || sale == nil {
		return domain.ErrNotFound
	}
	if sale.UserID != userID {
		return domain.ErrForbidden
	}
	if err := uc.saleRepo.UpdateStatus(id, status); err != nil {
		return err
	}
	sale.Status = status

	if snap, err := uc.snapshots.Load(userID); err == nil {
		_ = uc.executor.Apply(appsync.SaleStatusChanged(snap, sale))
	}
	uc.notify(ctx, "sales", "transactions")
	return nil
}

// Delete borra la venta y su transacción sombra (localizada por SaleID o por
// el marcador legado en la descripción).
func (uc *SaleUseCase) Delete(ctx context.Context, userID, id string) error {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil || sale == nil {
		return domain.ErrNotFound
	}
	if sale.UserID != userID {
		return domain.ErrForbidden
	}

	snap, snapErr := uc.snapshots.Load(userID)
	if err := uc.saleRepo.Delete(id); err != nil {
		return err
	}
	if snapErr == nil {
		_ = uc.executor.Apply(appsync.SaleDeleted(snap, id))
	}
	uc.notify(ctx, "sales", "transactions")
	return nil
}

// List lista las ventas de la cuenta.
func (uc *SaleUseCase) List(userID string, limit, offset int) ([]*dto.SaleResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	sales, err := uc.saleRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// Get obtiene una venta con sus líneas.
func (uc *SaleUseCase) Get(userID, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil || sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return toSaleResponse(sale), nil
}

// ReceiptPDF genera el recibo PDF de la venta.
func (uc *SaleUseCase) ReceiptPDF(ctx context.Context, userID, id string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil || sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.UserID != userID {
		return nil, domain.ErrForbidden
	}
	customer, _ := uc.customerRepo.GetByID(sale.CustomerID)
	return uc.receipts.GenerateReceipt(ctx, sale, customer)
}

func (uc *SaleUseCase) notify(ctx context.Context, tables ...string) {
	if uc.notifier == nil {
		return
	}
	for _, t := range tables {
		uc.notifier.Notify(ctx, t)
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		Total:         s.Total,
		Status:        s.Status,
		PaymentMethod: s.PaymentMethod,
		Items:         make([]dto.SaleItemResponse, 0, len(s.Items)),
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
	for _, item := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return resp
}
