package principal

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sparat-2NE1/delivery/internal/models"
)

var ErrNoPrincipal = errors.New("no authenticated principal in request context")

// FromContext extracts the Principal from the JWT the auth middleware stored
// in Fiber locals. Only tokens with kind "access" are accepted; refresh tokens
// cannot be used to call protected endpoints.
func FromContext(c *fiber.Ctx) (Principal, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Principal{}, ErrNoPrincipal
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, ErrNoPrincipal
	}

	if kind, _ := claims["kind"].(string); kind != "access" {
		return Principal{}, ErrNoPrincipal
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return Principal{}, ErrNoPrincipal
	}

	roleStr, _ := claims["role"].(string)
	role, err := models.ParseRole(roleStr)
	if err != nil {
		return Principal{}, ErrNoPrincipal
	}

	return Principal{Username: username, Role: role}, nil
}
