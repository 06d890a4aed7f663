package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/sales"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// SalesHandler maneja el cierre de ventas (público, por sesión) y el
// historial (admin).
type SalesHandler struct {
	finalize *sales.FinalizeUseCase
	history  *sales.HistoryUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(finalize *sales.FinalizeUseCase, history *sales.HistoryUseCase) *SalesHandler {
	return &SalesHandler{finalize: finalize, history: history}
}

// Checkout godoc
// @Summary      Finalizar el carrito como venta
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string  false  "ID de sesión del carrito"
// @Param        body  body  dto.CheckoutRequest  true  "Método de pago"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *SalesHandler) Checkout(c *fiber.Ctx) error {
	sessionID := SessionID(c)
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PaymentMethod != "" && !entity.IsValidPayment(in.PaymentMethod) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "método de pago no reconocido"})
	}
	out, err := h.finalize.Finalize(c.UserContext(), sessionID, in.PaymentMethod)
	if err != nil {
		if errors.Is(err, domain.ErrCartEmpty) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CART_EMPTY", Message: "el carrito está vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de ventas (más recientes primero)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesListResponse
// @Router       /api/admin/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.history.List())
}

// Report godoc
// @Summary      Reporte agregado de ventas y márgenes
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesReportResponse
// @Router       /api/admin/sales/report [get]
func (h *SalesHandler) Report(c *fiber.Ctx) error {
	return c.JSON(h.history.Report())
}

// Clear godoc
// @Summary      Borrar el historial de ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      204  "historial vacío"
// @Failure      507  {object}  dto.ErrorResponse
// @Router       /api/admin/sales [delete]
func (h *SalesHandler) Clear(c *fiber.Ctx) error {
	if err := h.history.Clear(); err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			return c.Status(fiber.StatusInsufficientStorage).JSON(dto.ErrorResponse{Code: "QUOTA", Message: "cuota de almacenamiento agotada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
