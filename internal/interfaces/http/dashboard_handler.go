package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestor-api/internal/application/dto"
	"github.com/jhoicas/gestor-api/internal/application/usecase"
)

// DashboardHandler maneja las vistas agregadas del dashboard (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Projection GET /api/dashboard/projection?days=7
// Proyección de organizadores: vencidos del mes, próximos en la ventana e
// impacto del mes calendario completo.
func (h *DashboardHandler) Projection(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days", "7"))
	proj, err := h.uc.Projection(GetUserID(c), days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(proj)
}

// Summary GET /api/dashboard/summary
// Resumen financiero: realizado vs pendiente por tipo, y balance.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	sum, err := h.uc.Summary(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(sum)
}
