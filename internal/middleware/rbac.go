package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sparat-2NE1/delivery/internal/dto"
	"github.com/sparat-2NE1/delivery/internal/models"
	"github.com/sparat-2NE1/delivery/internal/principal"
)

// RequireRoles gates a route on the caller's role. It runs after JWTProtected
// and rejects callers whose role is not in the allow-list. Fine-grained
// ownership checks stay in the services; this is the coarse outer gate.
func RequireRoles(roles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		p, err := principal.FromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if _, ok := allowed[p.Role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Access denied.",
			})
		}

		return c.Next()
	}
}
