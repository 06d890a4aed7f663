// Package sales convierte carritos en registros de venta inmutables y
// mantiene el historial (libro de ventas, solo-append).
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	appcart "github.com/jhoicas/catalogo-api/internal/application/cart"
	appcatalog "github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/pricing"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// StorageKey clave versionada del historial de ventas en el almacén local.
const StorageKey = "ventas_v3"

// FinalizeUseCase cierra el carrito de una sesión como una venta:
// descuenta stock (con piso en cero), toma el snapshot de precios por nivel,
// persiste historial y catálogo, encola el espejo remoto y limpia el carrito.
type FinalizeUseCase struct {
	ledger   *appcart.Ledger
	catalog  *appcatalog.Store
	kv       ports.Store
	pusher   ports.CatalogPusher // puede ser nil
	settings SettingsReader
	log      *logger.Logger
}

// SettingsReader expone la configuración vigente (número de WhatsApp).
type SettingsReader interface {
	Current() entity.Settings
}

// NewFinalizeUseCase construye el finalizador.
func NewFinalizeUseCase(ledger *appcart.Ledger, catalog *appcatalog.Store, kv ports.Store, pusher ports.CatalogPusher, settings SettingsReader, log *logger.Logger) *FinalizeUseCase {
	return &FinalizeUseCase{ledger: ledger, catalog: catalog, kv: kv, pusher: pusher, settings: settings, log: log}
}

// Finalize construye la venta en memoria (no puede fallar una vez leído el
// carrito), muta stock e historial y devuelve el resumen con el enlace de
// entrega por WhatsApp. Los fallos de persistencia se registran pero nunca
// revierten la venta: el estado en memoria es el que vale para la sesión.
func (uc *FinalizeUseCase) Finalize(_ context.Context, sessionID, paymentMethod string) (*dto.SaleResponse, error) {
	items := uc.ledger.Items(sessionID) // ya re-ajustados contra stock vigente
	if len(items) == 0 {
		return nil, domain.ErrCartEmpty
	}
	if paymentMethod == "" {
		paymentMethod = entity.PaymentContraentrega
	}

	total := uc.ledger.Subtotal(sessionID)
	sale := entity.Sale{
		ID:            uuid.New().String(),
		Date:          time.Now(),
		Items:         make([]entity.SaleItem, 0, len(items)),
		Total:         total,
		PaymentMethod: paymentMethod,
	}
	for _, item := range items {
		// Snapshot del precio resuelto a la cantidad actual: no se recalcula
		// nunca después, aunque los precios del catálogo cambien.
		sale.Items = append(sale.Items, entity.SaleItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: pricing.ResolveUnitPrice(&item.Product, item.Quantity),
			UnitCost:  item.Product.WholesalePrice,
		})
		uc.catalog.DecrementStock(item.Product.ID, item.Quantity)
	}

	uc.appendToHistory(sale)
	uc.persistCatalog()
	uc.ledger.Clear(sessionID)

	resp := toSaleResponse(sale)
	if phone := uc.settings.Current().WhatsAppPhone; phone != "" {
		resp.WhatsAppLink = BuildWhatsAppLink(phone, BuildOrderMessage(sale))
	}
	uc.log.Info().
		Str("venta", sale.ID).
		Int("lineas", len(sale.Items)).
		Int64("total", sale.Total).
		Msg("venta finalizada")
	return resp, nil
}

func (uc *FinalizeUseCase) appendToHistory(sale entity.Sale) {
	var history []entity.Sale
	if _, err := uc.kv.Load(StorageKey, &history); err != nil {
		history = nil
	}
	history = append(history, sale)
	if err := uc.kv.Save(StorageKey, history); err != nil {
		// La venta ya ocurrió y el pedido sale por WhatsApp de todos modos;
		// solo el historial local queda corto.
		uc.log.Error().Err(err).Str("venta", sale.ID).Msg("persistir historial de ventas")
	}
}

func (uc *FinalizeUseCase) persistCatalog() {
	products := uc.catalog.List()
	if err := uc.kv.Save(appcatalog.StorageKey, products); err != nil {
		uc.log.Error().Err(err).Msg("persistir catálogo tras la venta")
		return
	}
	if uc.pusher != nil {
		uc.pusher.Enqueue(products)
	}
}

func toSaleResponse(sale entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(sale.Items))
	for _, it := range sale.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			UnitCost:  it.UnitCost,
		})
	}
	return &dto.SaleResponse{
		ID:            sale.ID,
		Date:          sale.Date,
		Items:         items,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
	}
}
