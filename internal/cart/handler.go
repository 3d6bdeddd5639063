package cart

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"ecommerce-backend/internal/item"
	"ecommerce-backend/internal/user"
)

// Handler delegates cart operations to the cart service. This keeps
// cart-specific HTTP routing isolated.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/cart/addToCart", h.addToCart)
	app.Post("/api/cart/removeFromCart", h.removeFromCart)
	app.Get("/api/cart/:username", h.getCart)
}

type modifyCartRequest struct {
	Username string `json:"username"`
	ItemID   int    `json:"itemId"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	payload := new(modifyCartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.AddToCart(payload.Username, payload.ItemID, payload.Quantity)
	if err != nil {
		return cartError(c, payload, err)
	}

	return c.JSON(updated)
}

func (h *Handler) removeFromCart(c *fiber.Ctx) error {
	payload := new(modifyCartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.RemoveFromCart(payload.Username, payload.ItemID, payload.Quantity)
	if err != nil {
		return cartError(c, payload, err)
	}

	return c.JSON(updated)
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	username := c.Params("username")

	crt, err := h.service.GetByUsername(username)
	if err != nil {
		switch err {
		case user.ErrNotFound, ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(crt)
}

func cartError(c *fiber.Ctx, payload *modifyCartRequest, err error) error {
	switch err {
	case ErrInvalidQuantity:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "quantity must be positive"})
	case user.ErrNotFound, ErrNotFound:
		log.Error().Str("username", payload.Username).Msg("cart request for unknown user")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	case item.ErrNotFound:
		log.Error().Int("itemId", payload.ItemID).Msg("cart request for unknown item")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "item not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
