package item

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes read-only catalog routes.
type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/item", h.listItems)
	app.Get("/api/item/name/:name", h.getItemsByName)
	app.Get("/api/item/:id<[0-9]+>", h.getItem)
}

func (h *Handler) listItems(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}

	it, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "item not found"})
	}

	return c.JSON(it)
}

func (h *Handler) getItemsByName(c *fiber.Ctx) error {
	name := c.Params("name")
	items := h.service.ListByName(name)
	if len(items) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no items found with name " + name})
	}

	return c.JSON(items)
}
