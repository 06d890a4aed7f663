package http

import (
	"github.com/gofiber/fiber/v2"

	appcart "github.com/jhoicas/catalogo-api/internal/application/cart"
	appcatalog "github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/pricing"
)

// CartHandler maneja el carrito de la sesión (identificada por X-Session-ID).
type CartHandler struct {
	ledger  *appcart.Ledger
	catalog *appcatalog.Store
}

// NewCartHandler construye el handler.
func NewCartHandler(ledger *appcart.Ledger, catalog *appcatalog.Store) *CartHandler {
	return &CartHandler{ledger: ledger, catalog: catalog}
}

// cartResponse arma la vista del carrito con precios vigentes por nivel.
func (h *CartHandler) cartResponse(sessionID string) dto.CartResponse {
	items := h.ledger.Items(sessionID)
	out := make([]dto.CartItemResponse, 0, len(items))
	for _, it := range items {
		unit := pricing.ResolveUnitPrice(&it.Product, it.Quantity)
		out = append(out, dto.CartItemResponse{
			Product:   *dto.ToProductResponse(&it.Product),
			Quantity:  it.Quantity,
			UnitPrice: unit,
			LineTotal: unit * int64(it.Quantity),
		})
	}
	return dto.CartResponse{Items: out, Subtotal: h.ledger.Subtotal(sessionID)}
}

// Get godoc
// @Summary      Ver el carrito de la sesión
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header  string  false  "ID de sesión del carrito"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.cartResponse(SessionID(c)))
}

// AddItem godoc
// @Summary      Agregar producto al carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string  false  "ID de sesión del carrito"
// @Param        body  body  dto.AddCartItemRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	sessionID := SessionID(c)
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId es requerido"})
	}
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	p, ok := h.catalog.Get(in.ProductID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	if p.Stock == 0 {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OUT_OF_STOCK", Message: "producto agotado"})
	}
	h.ledger.Add(sessionID, in.ProductID, in.Quantity)
	return c.JSON(h.cartResponse(sessionID))
}

// UpdateItem godoc
// @Summary      Ajustar cantidad de una línea (delta ±n)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string  false  "ID de sesión del carrito"
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateCartItemRequest  true  "Delta de cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	sessionID := SessionID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.ledger.UpdateQuantity(sessionID, id, in.Delta)
	return c.JSON(h.cartResponse(sessionID))
}

// RemoveItem godoc
// @Summary      Quitar una línea del carrito
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header  string  false  "ID de sesión del carrito"
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	sessionID := SessionID(c)
	h.ledger.Remove(sessionID, c.Params("id"))
	return c.JSON(h.cartResponse(sessionID))
}

// Clear godoc
// @Summary      Vaciar el carrito de la sesión
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header  string  false  "ID de sesión del carrito"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sessionID := SessionID(c)
	h.ledger.Clear(sessionID)
	return c.JSON(h.cartResponse(sessionID))
}
