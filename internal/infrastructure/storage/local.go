// Package storage implementa el almacenamiento de archivos subidos (PDFs de
// contrato, comprobantes de pago) en disco local, servido como estáticos por
// el propio servidor HTTP.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/gestor-api/internal/application/ports"
	"github.com/jhoicas/gestor-api/pkg/config"
)

var _ ports.FileStore = (*LocalStore)(nil)

// LocalStore guarda archivos bajo un directorio y construye la URL pública con
// la base configurada.
type LocalStore struct {
	dir       string
	publicURL string
}

// NewLocalStore construye el store y garantiza que el directorio exista.
func NewLocalStore(cfg config.StorageConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", cfg.Dir, err)
	}
	return &LocalStore{
		dir:       cfg.Dir,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Upload escribe el archivo y devuelve su URL pública. path es relativo
// (ej. "contracts/<uuid>.pdf"); cualquier intento de escapar del directorio
// base se rechaza.
func (s *LocalStore) Upload(_ context.Context, path string, data []byte) (string, error) {
	clean := filepath.Clean(path)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("storage: ruta inválida: %s", path)
	}

	full := filepath.Join(s.dir, clean)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("storage: crear subdirectorio: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: escribir %s: %w", clean, err)
	}
	return s.publicURL + "/" + filepath.ToSlash(clean), nil
}

// Dir devuelve el directorio base (lo usa el router para servir estáticos).
func (s *LocalStore) Dir() string {
	return s.dir
}
