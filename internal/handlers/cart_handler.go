package handlers

import (
	"errors"

	"github.com/SeloLim/naturia/internal/cart"
	"github.com/SeloLim/naturia/internal/dto"
	"github.com/SeloLim/naturia/internal/session"
	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	sessions *session.Manager
	carts    *cart.Service
}

func NewCartHandler(sessions *session.Manager, carts *cart.Service) *CartHandler {
	return &CartHandler{sessions: sessions, carts: carts}
}

func (h *CartHandler) Get(c *fiber.Ctx) error {
	userID, err := h.sessions.CurrentUserID(c)
	if err != nil {
		return unauthorized(c, "Not authenticated")
	}
	view, err := h.carts.Fetch(c.UserContext(), userID)
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(view)
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID, err := h.sessions.CurrentUserID(c)
	if err != nil {
		return unauthorized(c, "Not authenticated")
	}

	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, "Product id and a quantity of at least 1 are required")
	}

	view, err := h.carts.Add(c.UserContext(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return h.cartError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	userID, err := h.sessions.CurrentUserID(c)
	if err != nil {
		return unauthorized(c, "Not authenticated")
	}
	productID, err := c.ParamsInt("productID")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	var req dto.UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, "Quantity must be at least 1; remove the item instead")
	}

	view, err := h.carts.UpdateQuantity(c.UserContext(), userID, int64(productID), req.Quantity)
	if err != nil {
		return h.cartError(c, err)
	}
	return c.JSON(view)
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID, err := h.sessions.CurrentUserID(c)
	if err != nil {
		return unauthorized(c, "Not authenticated")
	}
	productID, err := c.ParamsInt("productID")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	view, err := h.carts.Remove(c.UserContext(), userID, int64(productID))
	if err != nil {
		return h.cartError(c, err)
	}
	return c.JSON(view)
}

func (h *CartHandler) cartError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrNotAuthenticated):
		return unauthorized(c, "Not authenticated")
	case errors.Is(err, cart.ErrQuantityTooLow):
		return badRequest(c, err.Error())
	default:
		return respondUpstream(c, err)
	}
}
