package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestor-api/internal/application/dto"
	"github.com/jhoicas/gestor-api/internal/application/usecase"
	"github.com/jhoicas/gestor-api/internal/domain"
)

// IdeaHandler maneja las peticiones HTTP de ideas de video (protegido, salvo
// la vista pública por token).
type IdeaHandler struct {
	uc *usecase.IdeaUseCase
}

// NewIdeaHandler construye el handler.
func NewIdeaHandler(uc *usecase.IdeaUseCase) *IdeaHandler {
	return &IdeaHandler{uc: uc}
}

// Create POST /api/ideas
func (h *IdeaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIdeaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	idea, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(idea)
}

// Update PUT /api/ideas/:id
func (h *IdeaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIdeaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	idea, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeOwnedError(c, err, "idea")
	}
	return c.JSON(idea)
}

// Promote POST /api/ideas/:id/promote
// Convierte la idea en tarea del Kanban (operación de un solo disparo).
func (h *IdeaHandler) Promote(c *fiber.Ctx) error {
	task, err := h.uc.Promote(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		if err == domain.ErrAlreadyPromoted {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_PROMOTED", Message: "la idea ya fue promovida a tarea"})
		}
		return writeOwnedError(c, err, "idea")
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// ToggleShare POST /api/ideas/:id/share
func (h *IdeaHandler) ToggleShare(c *fiber.Ctx) error {
	url, err := h.uc.ToggleShare(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeOwnedError(c, err, "idea")
	}
	return c.JSON(fiber.Map{"share_url": url, "enabled": url != ""})
}

// List GET /api/ideas
func (h *IdeaHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Delete DELETE /api/ideas/:id
func (h *IdeaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return writeOwnedError(c, err, "idea")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetShared GET /p/ideas/:token (público, sin auth)
func (h *IdeaHandler) GetShared(c *fiber.Ctx) error {
	idea, err := h.uc.GetShared(c.Params("token"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "idea no encontrada o no compartida"})
	}
	return c.JSON(idea)
}
