package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sparat-2NE1/delivery/internal/dto"
	"github.com/sparat-2NE1/delivery/internal/principal"
	"github.com/sparat-2NE1/delivery/internal/services"
)

type RegionHandler struct {
	regionService *services.RegionService
}

func NewRegionHandler(regionService *services.RegionService) *RegionHandler {
	return &RegionHandler{regionService: regionService}
}

func (h *RegionHandler) Create(c *fiber.Ctx) error {
	actor, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.RegionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	resp, err := h.regionService.Create(actor, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *RegionHandler) ListByStore(c *fiber.Ctx) error {
	storeID, err := uuid.Parse(c.Params("storeId"))
	if err != nil {
		return badRequest(c, "Invalid store id")
	}

	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)

	resp, err := h.regionService.ListByStore(storeID, page, size)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *RegionHandler) ListAll(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)

	resp, err := h.regionService.ListAll(page, size)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *RegionHandler) Search(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	if keyword == "" {
		return badRequest(c, "keyword is required")
	}

	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)

	resp, err := h.regionService.Search(keyword, page, size)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *RegionHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid region id")
	}

	actor, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.RegionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	resp, err := h.regionService.Update(id, actor, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *RegionHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid region id")
	}

	actor, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.regionService.SoftDelete(id, actor); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Region deleted successfully"})
}
