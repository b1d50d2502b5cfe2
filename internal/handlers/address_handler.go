package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sparat-2NE1/delivery/internal/dto"
	"github.com/sparat-2NE1/delivery/internal/principal"
	"github.com/sparat-2NE1/delivery/internal/services"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

func (h *AddressHandler) Add(c *fiber.Ctx) error {
	actor, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	resp, err := h.addressService.Add(actor, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AddressHandler) List(c *fiber.Ctx) error {
	actor, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.addressService.List(actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *AddressHandler) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid address id")
	}

	actor, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.addressService.Remove(actor, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Address removed successfully"})
}
