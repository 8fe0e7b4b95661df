package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestor-api/internal/application/dto"
	"github.com/jhoicas/gestor-api/internal/application/usecase"
	"github.com/jhoicas/gestor-api/internal/domain"
)

// SaleHandler maneja las peticiones HTTP del punto de venta (protegido).
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create POST /api/sales
// Registra la venta con sus líneas y genera la transacción sombra en la misma
// transacción de base de datos.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id, status válido y al menos un ítem son requeridos"})
		}
		return writeOwnedError(c, err, "venta")
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// List GET /api/sales?limit=20&offset=0
func (h *SaleHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(GetUserID(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Get GET /api/sales/:id
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	sale, err := h.uc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return writeOwnedError(c, err, "venta")
	}
	return c.JSON(sale)
}

// UpdateStatus PUT /api/sales/:id/status
func (h *SaleHandler) UpdateStatus(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStatus(c.UserContext(), GetUserID(c), c.Params("id"), in.Status); err != nil {
		return writeOwnedError(c, err, "venta")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt GET /api/sales/:id/receipt
// Devuelve el recibo de la venta en PDF.
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ReceiptPDF(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeOwnedError(c, err, "venta")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

// Delete DELETE /api/sales/:id
// Borra la venta y su transacción sombra.
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return writeOwnedError(c, err, "venta")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
