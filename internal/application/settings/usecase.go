// Package settings administra la configuración editable por el admin
// (número de WhatsApp, endpoint de la hoja remota), persistida como un único
// valor atómico bajo su propia clave versionada.
package settings

import (
	"sync"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// StorageKey clave versionada de los ajustes en el almacén local.
const StorageKey = "ajustes_v2"

// UseCase carga, expone y actualiza los ajustes. El valor en memoria es la
// verdad de la sesión; el almacén local es el respaldo durable.
type UseCase struct {
	mu      sync.RWMutex
	current entity.Settings
	kv      ports.Store
	// onEndpointChange permite re-apuntar el sincronizador remoto cuando el
	// admin cambia el endpoint de la hoja, sin acoplar este paquete a la
	// infraestructura.
	onEndpointChange func(endpoint string)
	log              *logger.Logger
}

// New carga los ajustes persistidos, cayendo a los defaults dados cuando no
// existen o están corruptos.
func New(kv ports.Store, defaults entity.Settings, onEndpointChange func(string), log *logger.Logger) *UseCase {
	uc := &UseCase{current: defaults, kv: kv, onEndpointChange: onEndpointChange, log: log}
	var stored entity.Settings
	if found, _ := kv.Load(StorageKey, &stored); found {
		if stored.WhatsAppPhone != "" {
			uc.current.WhatsAppPhone = stored.WhatsAppPhone
		}
		uc.current.SheetEndpoint = stored.SheetEndpoint
	}
	return uc
}

// Current devuelve los ajustes vigentes.
func (uc *UseCase) Current() entity.Settings {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current
}

// Update aplica los campos presentes y persiste. Ante cuota agotada el valor
// en memoria conserva el cambio y el error se propaga al admin.
func (uc *UseCase) Update(in dto.UpdateSettingsRequest) (entity.Settings, error) {
	uc.mu.Lock()
	endpointChanged := false
	if in.WhatsAppPhone != nil {
		uc.current.WhatsAppPhone = *in.WhatsAppPhone
	}
	if in.SheetEndpoint != nil && *in.SheetEndpoint != uc.current.SheetEndpoint {
		uc.current.SheetEndpoint = *in.SheetEndpoint
		endpointChanged = true
	}
	snapshot := uc.current
	uc.mu.Unlock()

	if endpointChanged && uc.onEndpointChange != nil {
		uc.onEndpointChange(snapshot.SheetEndpoint)
	}
	if err := uc.kv.Save(StorageKey, snapshot); err != nil {
		uc.log.Error().Err(err).Msg("persistir ajustes")
		return snapshot, err
	}
	return snapshot, nil
}
