package ports

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CatalogPDFGenerator genera la lista de precios del catálogo en PDF
// (descarga del admin para compartir por WhatsApp).
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, products []entity.Product, settings entity.Settings) ([]byte, error)
}
