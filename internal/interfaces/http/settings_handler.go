package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	appsettings "github.com/jhoicas/catalogo-api/internal/application/settings"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// SettingsHandler maneja los ajustes del negocio (protegido).
type SettingsHandler struct {
	uc *appsettings.UseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *appsettings.UseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

func toSettingsResponse(s entity.Settings) dto.SettingsResponse {
	return dto.SettingsResponse{
		WhatsAppPhone: s.WhatsAppPhone,
		SheetEndpoint: s.SheetEndpoint,
	}
}

// Get godoc
// @Summary      Ver ajustes del negocio
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/admin/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(toSettingsResponse(h.uc.Current()))
}

// Update godoc
// @Summary      Actualizar ajustes del negocio
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      507   {object}  dto.ErrorResponse
// @Router       /api/admin/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(in)
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			return c.Status(fiber.StatusInsufficientStorage).JSON(dto.ErrorResponse{Code: "QUOTA", Message: "cuota de almacenamiento agotada; libere espacio y reintente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toSettingsResponse(out))
}
