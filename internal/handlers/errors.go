package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sparat-2NE1/delivery/internal/dto"
	"github.com/sparat-2NE1/delivery/internal/search"
	"github.com/sparat-2NE1/delivery/internal/services"
)

// respondError maps service sentinel errors onto HTTP statuses. Unknown
// errors are logged and reported as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrAddressExists),
		errors.Is(err, services.ErrAddressLimit),
		errors.Is(err, services.ErrProductExists):
		return respond(c, fiber.StatusConflict, err)

	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		return respond(c, fiber.StatusUnauthorized, err)

	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrIncorrectPassword):
		return respond(c, fiber.StatusForbidden, err)

	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrUsersNotFound),
		errors.Is(err, services.ErrStoreNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrRegionNotFound),
		errors.Is(err, services.ErrAddressNotFound):
		return respond(c, fiber.StatusNotFound, err)

	case errors.Is(err, search.ErrInvalidSortBy),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidCategory):
		return respond(c, fiber.StatusBadRequest, err)
	}

	slog.Error("unhandled service error", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

func respond(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
}
