package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	"github.com/jhoicas/offerdesk-api/pkg/jwt"
)

// Locals key del principal autenticado en Fiber.
const LocalPrincipal = "principal"

// AuthMiddleware valida el Bearer Token JWT y deja el principal en c.Locals.
func AuthMiddleware(jwtSecret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header is required")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Expected format: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Empty token")
		}
		id, err := jwt.Parse(jwtSecret, issuer, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		}
		c.Locals(LocalPrincipal, entity.Principal{
			ID:           id.ID,
			Role:         entity.Role(id.Role),
			Organisation: id.Organisation,
			Email:        id.Email,
			Name:         id.Name,
		})
		return c.Next()
	}
}

// RequireRole autoriza sólo a los roles indicados. Debe ir después de AuthMiddleware.
//   - 401 MISSING_ROLE si el token no trae rol.
//   - 403 FORBIDDEN si el rol no está permitido.
func RequireRole(allowed ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetPrincipal(c).Role
		if role == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_ROLE", "Token has no role claim")
		}
		if !entity.IsAuthorized(role, allowed...) {
			return fail(c, fiber.StatusForbidden, "FORBIDDEN", "Access denied for role "+string(role))
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el principal del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) entity.Principal {
	p, _ := c.Locals(LocalPrincipal).(entity.Principal)
	return p
}

// GetUserID devuelve el id del usuario autenticado.
func GetUserID(c *fiber.Ctx) string {
	return GetPrincipal(c).ID
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	return string(GetPrincipal(c).Role)
}
