package sheets

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// Verificar en tiempo de compilación que SyncWorker implementa el puerto.
var _ ports.CatalogPusher = (*SyncWorker)(nil)

// SyncWorker empuja el catálogo al espejo remoto en segundo plano: una sola
// goroutine, cola coalescente (solo importa el snapshot más reciente),
// reintentos con backoff exponencial y estado visible para el admin.
// Nunca bloquea ni revierte la mutación local que originó el push.
type SyncWorker struct {
	client      ports.SheetClient
	log         *logger.Logger
	maxAttempts int
	backoff     time.Duration

	queue chan []entity.Product

	mu     sync.RWMutex
	status ports.SyncStatus
}

// NewSyncWorker construye el sincronizador (sin arrancarlo).
func NewSyncWorker(client ports.SheetClient, maxAttempts int, backoff time.Duration, log *logger.Logger) *SyncWorker {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &SyncWorker{
		client:      client,
		log:         log,
		maxAttempts: maxAttempts,
		backoff:     backoff,
		queue:       make(chan []entity.Product, 1),
		status:      ports.SyncStatus{State: ports.SyncStateIdle},
	}
}

// Start corre el bucle del worker hasta que el contexto se cancele.
// Pensado para `go worker.Start(ctx)` desde main.
func (w *SyncWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case products := <-w.queue:
			w.push(ctx, products)
		}
	}
}

// Enqueue programa un push del snapshot dado. Si ya había uno pendiente se
// reemplaza: el catálogo completo se sube cada vez, así que solo el último
// snapshot importa. Sin endpoint configurado es un no-op.
func (w *SyncWorker) Enqueue(products []entity.Product) {
	if !w.client.Enabled() {
		return
	}
	w.setState(ports.SyncStatePending, "")
	for {
		select {
		case w.queue <- products:
			return
		default:
			// Descarta el snapshot pendiente más viejo y reintenta.
			select {
			case <-w.queue:
			default:
			}
		}
	}
}

// Status devuelve la foto del estado para el indicador del admin.
func (w *SyncWorker) Status() ports.SyncStatus {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.status
}

func (w *SyncWorker) push(ctx context.Context, products []entity.Product) {
	var lastErr error
	wait := w.backoff
	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		lastErr = w.client.Push(ctx, products)
		if lastErr == nil {
			w.mu.Lock()
			w.status = ports.SyncStatus{State: ports.SyncStateSynced, LastSyncAt: time.Now()}
			w.mu.Unlock()
			w.log.Info().Int("productos", len(products)).Int("intento", attempt).Msg("catálogo sincronizado al espejo remoto")
			return
		}
		w.log.Warn().Err(lastErr).Int("intento", attempt).Msg("push al espejo remoto falló")
		if attempt == w.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		wait *= 2
	}
	// Fallo definitivo: solo el indicador cambia, lo local ya quedó aplicado.
	w.setState(ports.SyncStateFailed, lastErr.Error())
}

func (w *SyncWorker) setState(state, lastErr string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status.State = state
	w.status.LastError = lastErr
}
