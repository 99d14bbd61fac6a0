package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store persiste archivos subidos en un directorio plano bajo nombres
// opacos generados (uuid + extensión original). La escritura usa un nombre
// temporal y un rename final: un archivo a medio escribir nunca es visible
// bajo su nombre definitivo.
type Store struct {
	dir string
}

// New crea el directorio si no existe y devuelve el Store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir devuelve el directorio base (para servir estáticos).
func (s *Store) Dir() string { return s.dir }

// Save escribe el contenido de r bajo un nombre generado que conserva la
// extensión de originalName. Devuelve el nombre final.
func (s *Store) Save(r io.Reader, originalName string) (string, error) {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(originalName))
	tmpPath := filepath.Join(s.dir, "tmp_"+name)
	finalPath := filepath.Join(s.dir, name)

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("crear archivo temporal: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("cerrar archivo: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("finalizar archivo: %w", err)
	}
	return name, nil
}

// Remove borra un archivo de forma best-effort: un fallo del filesystem se
// registra pero nunca falla la operación padre.
func (s *Store) Remove(name string) {
	if name == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("file", name).Msg("no se pudo borrar el archivo subido")
	}
}
