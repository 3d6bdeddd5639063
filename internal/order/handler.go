package order

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"ecommerce-backend/internal/cart"
	"ecommerce-backend/internal/user"
)

// Handler delegates order operations to the order service.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/order/submit/:username", h.submitOrder)
	app.Get("/api/order/history/:username", h.getHistory)
}

func (h *Handler) submitOrder(c *fiber.Ctx) error {
	username := c.Params("username")

	created, err := h.service.Submit(username)
	if err != nil {
		switch err {
		case user.ErrNotFound, cart.ErrNotFound:
			log.Error().Str("username", username).Msg("order submit for unknown user")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	log.Info().Str("username", username).Int("orderId", created.ID).Msg("order submitted")
	return c.JSON(created)
}

func (h *Handler) getHistory(c *fiber.Ctx) error {
	username := c.Params("username")

	orders, err := h.service.History(username)
	if err != nil {
		switch err {
		case user.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(orders)
}
