package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	appsettings "github.com/jhoicas/catalogo-api/internal/application/settings"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// enrichTimeout límite duro para la llamada al modelo (catálogo completo).
const enrichTimeout = 60 * time.Second

// AdminProductHandler maneja las mutaciones del catálogo (protegido).
type AdminProductHandler struct {
	uc       *appcatalog.AdminUseCase
	catalog  *appcatalog.Store
	pdf      ports.CatalogPDFGenerator
	settings *appsettings.UseCase
}

// NewAdminProductHandler construye el handler.
func NewAdminProductHandler(uc *appcatalog.AdminUseCase, catalog *appcatalog.Store, pdf ports.CatalogPDFGenerator, settings *appsettings.UseCase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc, catalog: catalog, pdf: pdf, settings: settings}
}

// quotaOrInternal mapea errores de persistencia al status apropiado.
// Cuota agotada devuelve 507: la edición sigue viva en memoria pero el
// snapshot local no pudo escribirse.
func quotaOrInternal(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrQuotaExceeded) {
		return c.Status(fiber.StatusInsufficientStorage).JSON(dto.ErrorResponse{Code: "QUOTA", Message: "cuota de almacenamiento agotada; libere espacio y reintente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Create godoc
// @Summary      Crear producto
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      507   {object}  dto.ErrorResponse
// @Router       /api/admin/products [post]
func (h *AdminProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, price y retailPrice son requeridos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un producto con ese nombre"})
		default:
			return quotaOrInternal(c, err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      507   {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [put]
func (h *AdminProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoría no reconocida"})
		}
		return quotaOrInternal(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      204  "producto eliminado"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      507  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [delete]
func (h *AdminProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return quotaOrInternal(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Enrich godoc
// @Summary      Enriquecer el catálogo con IA
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int  "productos actualizados"
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/admin/products/enrich [post]
func (h *AdminProductHandler) Enrich(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), enrichTimeout)
	defer cancel()
	applied, err := h.uc.Enrich(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSyncDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AI_DISABLED", Message: "GEMINI_API_KEY no configurado"})
		}
		if errors.Is(err, domain.ErrQuotaExceeded) {
			return quotaOrInternal(c, err)
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_ERROR", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"applied": applied})
}

// CatalogPDF godoc
// @Summary      Descargar la lista de precios en PDF
// @Tags         admin
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/catalog.pdf [get]
func (h *AdminProductHandler) CatalogPDF(c *fiber.Ctx) error {
	out, err := h.pdf.GenerateCatalogPDF(c.UserContext(), h.catalog.List(), h.settings.Current())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalogo-innova.pdf"`)
	return c.Send(out)
}
