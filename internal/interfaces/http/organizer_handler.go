package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestor-api/internal/application/dto"
	"github.com/jhoicas/gestor-api/internal/application/usecase"
	"github.com/jhoicas/gestor-api/internal/domain"
)

// OrganizerHandler maneja las peticiones HTTP del organizador financiero (protegido).
type OrganizerHandler struct {
	uc *usecase.OrganizerUseCase
}

// NewOrganizerHandler construye el handler.
func NewOrganizerHandler(uc *usecase.OrganizerUseCase) *OrganizerHandler {
	return &OrganizerHandler{uc: uc}
}

// Create POST /api/organizers
func (h *OrganizerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrganizerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	org, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title, amount y due_day coherente con frequency son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(org)
}

// Update PUT /api/organizers/:id
func (h *OrganizerHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateOrganizerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	org, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeOwnedError(c, err, "organizador")
	}
	return c.JSON(org)
}

// Toggle POST /api/organizers/:id/toggle
func (h *OrganizerHandler) Toggle(c *fiber.Ctx) error {
	org, err := h.uc.Toggle(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeOwnedError(c, err, "organizador")
	}
	return c.JSON(org)
}

// List GET /api/organizers
func (h *OrganizerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Delete DELETE /api/organizers/:id
func (h *OrganizerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return writeOwnedError(c, err, "organizador")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
