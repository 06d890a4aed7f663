package ports

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

// Enricher define el puerto de enriquecimiento de productos con IA.
// Cualquier adaptador (Gemini, mock) debe implementar esta interfaz; la
// aplicación solo conoce este contrato. Una respuesta vacía o ausente
// significa "sin enriquecimiento disponible" y el catálogo sigue con los
// datos base/locales.
type Enricher interface {
	// EnrichProducts recibe los nombres del catálogo y devuelve sugerencias
	// por índice (nombre comercial, categoría, descripción, características).
	// El contexto debe llevar timeout: es una llamada externa.
	EnrichProducts(ctx context.Context, names []string) ([]dto.EnrichedProduct, error)
}
