package ports

import (
	"context"
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// SheetClient define el puerto hacia la hoja remota (espejo del catálogo).
type SheetClient interface {
	// Pull descarga el catálogo remoto. Cualquier fallo (red, payload
	// malformado, catálogo vacío) es un error; el caller degrada a
	// operación solo-local.
	Pull(ctx context.Context) ([]entity.Product, error)
	// Push sube el catálogo completo (last-writer-wins, sin resolución de
	// conflictos).
	Push(ctx context.Context, products []entity.Product) error
	// Enabled indica si hay un endpoint configurado.
	Enabled() bool
}

// Estados del sincronizador en segundo plano.
const (
	SyncStateIdle    = "idle"
	SyncStatePending = "pending"
	SyncStateSynced  = "synced"
	SyncStateFailed  = "failed"
)

// SyncStatus es la foto del estado del sincronizador, visible para el admin.
type SyncStatus struct {
	State      string    `json:"state"`
	LastError  string    `json:"lastError,omitempty"`
	LastSyncAt time.Time `json:"lastSyncAt,omitempty"`
}

// CatalogPusher encola un push del catálogo hacia el espejo remoto.
// La operación nunca bloquea ni revierte la mutación local que la originó.
type CatalogPusher interface {
	Enqueue(products []entity.Product)
	Status() SyncStatus
}
