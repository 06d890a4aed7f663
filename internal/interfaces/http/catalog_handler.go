package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

// CatalogHandler expone el catálogo público (solo lectura).
type CatalogHandler struct {
	catalog *appcatalog.Store
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalog *appcatalog.Store) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List godoc
// @Summary      Listar productos del catálogo
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría (Todos = sin filtro)"
// @Param        q         query  string  false  "Búsqueda por nombre (sin acentos)"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	category := c.Query("category")
	query := c.Query("q")
	products := h.catalog.Search(category, query)
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *dto.ToProductResponse(&products[i]))
	}
	return c.JSON(dto.ProductListResponse{Items: items, Total: len(items)})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	p, ok := h.catalog.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(dto.ToProductResponse(&p))
}
