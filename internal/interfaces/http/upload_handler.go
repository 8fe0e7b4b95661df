package http

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/gestor-api/internal/application/dto"
	"github.com/jhoicas/gestor-api/internal/application/ports"
)

// maxUploadBytes límite de tamaño para archivos subidos (PDFs y comprobantes).
const maxUploadBytes = 10 << 20 // 10 MiB

var allowedUploadExt = map[string]bool{
	".pdf": true, ".png": true, ".jpg": true, ".jpeg": true, ".webp": true,
}

// UploadHandler recibe archivos (PDFs de contrato, comprobantes de pago) y
// devuelve la URL pública. El nombre final es un UUID: el nombre original del
// cliente no se confía ni se conserva.
type UploadHandler struct {
	store ports.FileStore
}

// NewUploadHandler construye el handler.
func NewUploadHandler(store ports.FileStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload POST /api/uploads?folder=contracts
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "campo multipart 'file' requerido"})
	}
	if fileHeader.Size > maxUploadBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "TOO_LARGE", Message: "el archivo supera los 10 MiB"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedUploadExt[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TYPE", Message: "solo se aceptan pdf, png, jpg, jpeg o webp"})
	}

	folder := sanitizeFolder(c.Query("folder", "misc"))

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	path := folder + "/" + uuid.New().String() + ext
	url, err := h.store.Upload(c.UserContext(), path, data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}

// sanitizeFolder deja solo un nombre plano en minúsculas (sin subrutas).
func sanitizeFolder(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "misc"
	}
	return b.String()
}
