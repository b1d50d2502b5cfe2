package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sparat-2NE1/delivery/internal/dto"
	"github.com/sparat-2NE1/delivery/internal/principal"
	"github.com/sparat-2NE1/delivery/internal/services"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) AddToStore(c *fiber.Ctx) error {
	storeID, err := uuid.Parse(c.Params("storeId"))
	if err != nil {
		return badRequest(c, "Invalid store id")
	}

	actor, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	resp, err := h.productService.AddToStore(storeID, actor, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	resp, err := h.productService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)
	sortBy := c.Query("sortBy", "createdAt")
	order := c.Query("order", "desc")

	resp, err := h.productService.List(page, size, sortBy, order)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	actor, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(c, err)
	}

	resp, err := h.productService.Update(id, actor, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *ProductHandler) Hide(c *fiber.Ctx) error {
	return h.setHidden(c, true)
}

func (h *ProductHandler) Show(c *fiber.Ctx) error {
	return h.setHidden(c, false)
}

func (h *ProductHandler) setHidden(c *fiber.Ctx, hidden bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	actor, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.productService.SetHidden(id, actor, hidden); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"hidden": hidden})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	actor, err := principal.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.productService.SoftDelete(id, actor); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
