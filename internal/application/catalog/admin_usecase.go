package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain"
	domaincatalog "github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// AdminUseCase son las mutaciones del catálogo desde el panel del admin.
// Cada mutación se aplica en memoria, se persiste localmente y, si hay
// espejo remoto configurado, se encola un push en segundo plano.
type AdminUseCase struct {
	kv       ports.Store
	catalog  *Store
	pusher   ports.CatalogPusher // puede ser nil
	enricher ports.Enricher      // puede ser nil
	log      *logger.Logger
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(kv ports.Store, catalog *Store, pusher ports.CatalogPusher, enricher ports.Enricher, log *logger.Logger) *AdminUseCase {
	return &AdminUseCase{kv: kv, catalog: catalog, pusher: pusher, enricher: enricher, log: log}
}

// Create agrega un producto nuevo al catálogo. Rechaza nombres duplicados
// (el nombre normalizado es la clave de de-duplicación entre fuentes).
func (uc *AdminUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.WholesalePrice <= 0 || in.RetailPrice <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if containsName(uc.catalog.List(), in.Name) {
		return nil, domain.ErrDuplicate
	}
	category := in.Category
	if !entity.IsValidCategory(category) {
		category = domaincatalog.InferCategory(in.Name)
	}
	stock := in.Stock
	if stock < 0 {
		stock = 0
	}
	now := time.Now()
	p := entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Category:       category,
		Description:    in.Description,
		WholesalePrice: in.WholesalePrice,
		RetailPrice:    in.RetailPrice,
		Stock:          stock,
		Image:          in.Image,
		VideoURL:       in.VideoURL,
		Features:       in.Features,
		Featured:       in.Featured,
		Combo:          in.Combo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	uc.catalog.Upsert(p)
	if err := uc.persistAndPush(); err != nil {
		return dto.ToProductResponse(&p), err
	}
	return dto.ToProductResponse(&p), nil
}

// Update modifica los campos presentes. Devuelve nil si el producto no existe.
// Ante cuota agotada la edición queda viva en memoria (el admin puede liberar
// espacio y reintentar); solo el snapshot local queda desactualizado.
func (uc *AdminUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, ok := uc.catalog.Get(id)
	if !ok {
		return nil, nil
	}
	if in.Name != nil && *in.Name != "" {
		p.Name = *in.Name
	}
	if in.Category != nil {
		if !entity.IsValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		p.Category = *in.Category
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.WholesalePrice != nil && *in.WholesalePrice > 0 {
		p.WholesalePrice = *in.WholesalePrice
	}
	if in.RetailPrice != nil && *in.RetailPrice > 0 {
		p.RetailPrice = *in.RetailPrice
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
		if p.Stock < 0 {
			p.Stock = 0
		}
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.VideoURL != nil {
		p.VideoURL = *in.VideoURL
	}
	if in.Features != nil {
		p.Features = *in.Features
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.Combo != nil {
		p.Combo = *in.Combo
	}
	p.UpdatedAt = time.Now()
	uc.catalog.Upsert(p)
	if err := uc.persistAndPush(); err != nil {
		return dto.ToProductResponse(&p), err
	}
	return dto.ToProductResponse(&p), nil
}

// Delete elimina el producto del catálogo autoritativo y del snapshot local.
func (uc *AdminUseCase) Delete(id string) error {
	if !uc.catalog.Delete(id) {
		return domain.ErrNotFound
	}
	return uc.persistAndPush()
}

// Enrich pide al modelo sugerencias por producto y aplica nombre comercial,
// categoría, descripción y características. Una respuesta vacía o un fallo
// del modelo dejan el catálogo intacto.
func (uc *AdminUseCase) Enrich(ctx context.Context) (int, error) {
	if uc.enricher == nil {
		return 0, domain.ErrSyncDisabled
	}
	products := uc.catalog.List()
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	suggestions, err := uc.enricher.EnrichProducts(ctx, names)
	if err != nil {
		return 0, fmt.Errorf("enriquecer catálogo: %w", err)
	}
	applied := 0
	for _, s := range suggestions {
		if s.OriginalIndex < 0 || s.OriginalIndex >= len(products) {
			continue
		}
		p := products[s.OriginalIndex]
		if s.Name != "" {
			p.Name = s.Name
		}
		if entity.IsValidCategory(s.Category) {
			p.Category = s.Category
		}
		if s.Description != "" {
			p.Description = s.Description
		}
		if len(s.Features) > 0 {
			p.Features = s.Features
		}
		p.UpdatedAt = time.Now()
		uc.catalog.Upsert(p)
		applied++
	}
	if applied == 0 {
		return 0, nil
	}
	return applied, uc.persistAndPush()
}

// persistAndPush escribe el catálogo al almacén local y, solo si la escritura
// local tuvo éxito, encola el espejo remoto (lo local es siempre la fuente
// durable de verdad).
func (uc *AdminUseCase) persistAndPush() error {
	products := uc.catalog.List()
	if err := uc.kv.Save(StorageKey, products); err != nil {
		uc.log.Error().Err(err).Msg("persistir catálogo")
		return err
	}
	if uc.pusher != nil {
		uc.pusher.Enqueue(products)
	}
	return nil
}
