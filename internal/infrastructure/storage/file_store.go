// Package storage implementa el gateway de persistencia local: un almacén
// clave-valor síncrono respaldado por archivos JSON, con capacidad finita.
// Cada dataset (catálogo, ventas, ajustes) vive bajo su clave versionada y se
// escribe siempre como un único valor atómico, nunca de forma incremental.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// Verificar en tiempo de compilación que FileStore implementa el puerto.
var _ ports.Store = (*FileStore)(nil)

// FileStore guarda cada clave en <dir>/<clave>.json. La cuota limita la suma
// de bytes persistidos; un Save que la excedería falla con ErrQuotaExceeded
// ANTES de tocar el disco, dejando intacto el valor previo.
type FileStore struct {
	dir   string
	quota int64 // 0 = sin límite
	log   *logger.Logger
}

// New crea el directorio de datos si no existe.
func New(dir string, quotaBytes int64, log *logger.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio de datos: %w", err)
	}
	return &FileStore{dir: dir, quota: quotaBytes, log: log}, nil
}

// Save serializa el valor y lo escribe atómicamente (archivo temporal +
// rename): o queda el valor nuevo completo o queda el anterior, nunca un
// estado parcial.
func (s *FileStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: serializar %q: %w", key, err)
	}
	if s.quota > 0 {
		used, err := s.usedBytesExcept(key)
		if err != nil {
			return fmt.Errorf("storage: medir uso: %w", err)
		}
		if used+int64(len(data)) > s.quota {
			s.log.Warn().
				Str("clave", key).
				Int("bytes", len(data)).
				Int64("cuota", s.quota).
				Msg("escritura rechazada por cuota")
			return domain.ErrQuotaExceeded
		}
	}

	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: escribir %q: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("storage: publicar %q: %w", key, err)
	}
	return nil
}

// Load deserializa la clave en out. Nunca falla duro: clave ausente o JSON
// corrupto devuelven found=false y el subsistema cae a su valor por defecto.
func (s *FileStore) Load(key string, out any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("storage: leer %q: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn().Str("clave", key).Err(err).Msg("dato persistido corrupto; se trata como ausente")
		return false, nil
	}
	return true, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// usedBytesExcept suma el tamaño de todos los datasets salvo el que está por
// reescribirse (su valor viejo será reemplazado, no sumado).
func (s *FileStore) usedBytesExcept(key string) (int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}
	skip := key + ".json"
	var total int64
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") || e.Name() == skip {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total, nil
}
