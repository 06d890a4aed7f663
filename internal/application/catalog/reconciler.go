package catalog

import (
	"context"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/ports"
	domaincatalog "github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// ReconcileUseCase produce el catálogo autoritativo al arranque:
// baseline compilado ⊕ snapshot local ⊕ (opcional) snapshot remoto.
type ReconcileUseCase struct {
	kv      ports.Store
	sheet   ports.SheetClient // puede ser nil (sin espejo remoto)
	catalog *Store
	log     *logger.Logger
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(kv ports.Store, sheet ports.SheetClient, catalog *Store, log *logger.Logger) *ReconcileUseCase {
	return &ReconcileUseCase{kv: kv, sheet: sheet, catalog: catalog, log: log}
}

// Reconcile fusiona las fuentes y deja el resultado en el Store en memoria y
// en el almacén local (el estado "efectivo" pasa a ser el nuevo snapshot).
// Es idempotente: reconciliar dos veces sin ediciones intermedias produce el
// mismo catálogo. Nunca falla duro: cualquier fuente inutilizable degrada
// hacia el baseline.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context) {
	baseline := domaincatalog.Baseline()

	// El snapshot remoto, si existe y no está vacío, manda: es la fuente más
	// nueva y la fusión local se omite por completo.
	if uc.sheet != nil && uc.sheet.Enabled() {
		remote, err := uc.sheet.Pull(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Msg("pull remoto falló; se continúa con fusión local")
		} else if len(remote) > 0 {
			merged := sanitize(remote)
			uc.commit(merged)
			uc.log.Info().Int("productos", len(merged)).Msg("catálogo tomado del snapshot remoto")
			return
		}
	}

	var local []entity.Product
	found, err := uc.kv.Load(StorageKey, &local)
	if err != nil || !found {
		// Dato corrupto o primera ejecución: se ignora y se parte del baseline.
		local = nil
	}

	merged := Merge(baseline, local)
	uc.commit(merged)
	uc.log.Info().
		Int("baseline", len(baseline)).
		Int("locales", len(local)).
		Int("resultado", len(merged)).
		Msg("catálogo reconciliado")
}

// commit publica el catálogo fusionado en memoria y lo escribe de vuelta al
// almacén local (mejor esfuerzo: un fallo de cuota aquí no detiene el arranque).
func (uc *ReconcileUseCase) commit(products []entity.Product) {
	uc.catalog.ReplaceAll(products)
	if err := uc.kv.Save(StorageKey, products); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo persistir el catálogo reconciliado")
	}
}

// Merge fusiona el baseline con el snapshot local. Reglas:
//
//  1. Se parte del baseline (con categorías ya inferidas).
//  2. Una entrada local que corresponde a una base (por id estable, o por
//     nombre normalizado para snapshots anteriores a los ids) sobrepone sus
//     campos editables: precios, stock, descripción, categoría, video y flags.
//     La imagen es la excepción: una subida local embebida (data:) se
//     conserva, pero una URL remota local cede ante la del baseline: así un
//     fix de código a una URL rota no pisa la foto que subió el admin.
//  3. Las entradas locales sin correspondencia (productos creados por el
//     admin) se agregan sin cambios.
//
// El resultado contiene cada nombre normalizado exactamente una vez.
func Merge(baseline, local []entity.Product) []entity.Product {
	byID := make(map[string]int, len(local))
	byName := make(map[string]int, len(local))
	for i, p := range local {
		if p.ID != "" {
			byID[p.ID] = i
		}
		byName[domaincatalog.NormalizeName(p.Name)] = i
	}

	consumed := make(map[int]bool, len(local))
	out := make([]entity.Product, 0, len(baseline)+len(local))

	for _, base := range baseline {
		idx, ok := byID[base.ID]
		if !ok {
			idx, ok = byName[domaincatalog.NormalizeName(base.Name)]
		}
		if !ok || consumed[idx] {
			out = append(out, base)
			continue
		}
		consumed[idx] = true
		out = append(out, overlay(base, local[idx]))
	}

	for i, p := range local {
		if consumed[i] {
			continue
		}
		// Producto creado por el admin: entra tal cual, completando lo mínimo.
		if dup := containsName(out, p.Name); dup {
			continue
		}
		out = append(out, ensureDefaults(p))
	}

	return out
}

// overlay aplica los campos editables locales sobre la entrada base.
func overlay(base, local entity.Product) entity.Product {
	merged := base
	if local.Name != "" {
		// El nombre es solo display: un renombre del admin sobrevive porque el
		// emparejamiento viaja por el id estable.
		merged.Name = local.Name
	}
	merged.WholesalePrice = local.WholesalePrice
	merged.RetailPrice = local.RetailPrice
	merged.Stock = local.Stock
	if local.Description != "" {
		merged.Description = local.Description
	}
	if entity.IsValidCategory(local.Category) {
		merged.Category = local.Category
	}
	if len(local.Features) > 0 {
		merged.Features = local.Features
	}
	if local.VideoURL != "" {
		merged.VideoURL = local.VideoURL
	}
	merged.Featured = local.Featured
	merged.Combo = local.Combo
	if local.HasUploadedImage() {
		merged.Image = local.Image
	}
	if !local.CreatedAt.IsZero() {
		merged.CreatedAt = local.CreatedAt
	}
	if !local.UpdatedAt.IsZero() {
		merged.UpdatedAt = local.UpdatedAt
	}
	return merged
}

// sanitize completa ids y categorías de un snapshot remoto, que puede venir
// de una hoja editada a mano.
func sanitize(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	seen := map[string]bool{}
	for _, p := range products {
		if p.Name == "" {
			continue
		}
		key := domaincatalog.NormalizeName(p.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ensureDefaults(p))
	}
	return out
}

// ensureDefaults completa los campos derivables cuando faltan.
func ensureDefaults(p entity.Product) entity.Product {
	if p.ID == "" {
		p.ID = domaincatalog.BaselineID(p.Name)
	}
	if !entity.IsValidCategory(p.Category) {
		p.Category = domaincatalog.InferCategory(p.Name)
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return p
}

func containsName(products []entity.Product, name string) bool {
	key := domaincatalog.NormalizeName(name)
	for _, p := range products {
		if domaincatalog.NormalizeName(p.Name) == key {
			return true
		}
	}
	return false
}
