package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderSessionID identifica el carrito de la sesión del comprador.
// El storefront lo genera una vez y lo reenvía en cada petición; si llega
// vacío se acuña uno nuevo y se devuelve en la respuesta para que el
// cliente lo adopte.
const HeaderSessionID = "X-Session-ID"

// SessionID devuelve el id de sesión de la petición, acuñando uno si falta.
// Siempre lo refleja en la respuesta.
func SessionID(c *fiber.Ctx) string {
	id := c.Get(HeaderSessionID)
	if id == "" {
		id = uuid.New().String()
	}
	c.Set(HeaderSessionID, id)
	return id
}
