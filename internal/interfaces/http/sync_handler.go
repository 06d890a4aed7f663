package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
)

// SyncHandler expone el espejo remoto del catálogo (protegido): disparo
// manual de un push y consulta del estado del worker.
type SyncHandler struct {
	catalog *appcatalog.Store
	pusher  ports.CatalogPusher
	sheet   ports.SheetClient
}

// NewSyncHandler construye el handler.
func NewSyncHandler(catalog *appcatalog.Store, pusher ports.CatalogPusher, sheet ports.SheetClient) *SyncHandler {
	return &SyncHandler{catalog: catalog, pusher: pusher, sheet: sheet}
}

// Trigger godoc
// @Summary      Encolar un push manual del catálogo a la hoja
// @Tags         sync
// @Security     Bearer
// @Produce      json
// @Success      202  {object}  ports.SyncStatus
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/sync [post]
func (h *SyncHandler) Trigger(c *fiber.Ctx) error {
	if !h.sheet.Enabled() {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SYNC_DISABLED", Message: "no hay endpoint de hoja configurado"})
	}
	h.pusher.Enqueue(h.catalog.List())
	return c.Status(fiber.StatusAccepted).JSON(h.pusher.Status())
}

// Status godoc
// @Summary      Estado del worker de sincronización
// @Tags         sync
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  ports.SyncStatus
// @Router       /api/admin/sync/status [get]
func (h *SyncHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.pusher.Status())
}
