package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sparat-2NE1/delivery/internal/dto"
	"github.com/sparat-2NE1/delivery/internal/principal"
	"github.com/sparat-2NE1/delivery/internal/services"
)

type StoreHandler struct {
	storeService *services.StoreService
}

func NewStoreHandler(storeService *services.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

func (h *StoreHandler) Create(c *fiber.Ctx) error {
	actor, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	resp, err := h.storeService.Create(actor, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid store id")
	}

	resp, err := h.storeService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *StoreHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)

	resp, err := h.storeService.List(page, size)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *StoreHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid store id")
	}

	actor, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	resp, err := h.storeService.Update(id, actor, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid store id")
	}

	actor, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.storeService.SoftDelete(id, actor); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Store deleted successfully"})
}
