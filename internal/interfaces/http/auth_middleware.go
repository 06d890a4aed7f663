package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

// Locals keys para el usuario autenticado en Fiber.
const (
	LocalUser = "auth_user"
	LocalRole = "auth_role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae usuario y rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		user, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUser, user)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetUser devuelve el usuario del contexto (después del middleware de auth).
func GetUser(c *fiber.Ctx) string {
	v := c.Locals(LocalUser)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
