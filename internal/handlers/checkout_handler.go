package handlers

import (
	"errors"

	"github.com/SeloLim/naturia/internal/adminapi"
	"github.com/SeloLim/naturia/internal/cart"
	"github.com/SeloLim/naturia/internal/checkout"
	"github.com/SeloLim/naturia/internal/dto"
	"github.com/SeloLim/naturia/internal/profile"
	"github.com/SeloLim/naturia/internal/session"
	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	sessions  *session.Manager
	carts     *cart.Service
	checkouts *checkout.Service
	profiles  *profile.Service
}

func NewCheckoutHandler(sessions *session.Manager, carts *cart.Service, checkouts *checkout.Service, profiles *profile.Service) *CheckoutHandler {
	return &CheckoutHandler{sessions: sessions, carts: carts, checkouts: checkouts, profiles: profiles}
}

// Summary serves the payment page in one response: the user's addresses,
// the selectable payment methods, and the current cart with totals.
func (h *CheckoutHandler) Summary(c *fiber.Ctx) error {
	userID, err := h.sessions.CurrentUserID(c)
	if err != nil {
		return unauthorized(c, "Not authenticated")
	}

	addresses, err := h.profiles.Addresses(c.UserContext(), userID)
	if err != nil {
		return respondUpstream(c, err)
	}
	methods, err := h.checkouts.PaymentMethods(c.UserContext())
	if err != nil {
		return respondUpstream(c, err)
	}
	view, err := h.carts.Fetch(c.UserContext(), userID)
	if err != nil {
		return respondUpstream(c, err)
	}

	return c.JSON(dto.CheckoutView{
		Addresses:      addresses,
		PaymentMethods: methods,
		Items:          view.Items,
		Totals:         view.Totals,
	})
}

// PlaceOrder turns the two selections into a full order: the address is
// resolved from the user's own address book, the items and totals come from
// a fresh cart fetch, never from the client.
func (h *CheckoutHandler) PlaceOrder(c *fiber.Ctx) error {
	userID, err := h.sessions.CurrentUserID(c)
	if err != nil {
		return unauthorized(c, "Not authenticated")
	}

	var req dto.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, "Address and payment method selections are required")
	}

	address, err := h.profiles.AddressByID(c.UserContext(), userID, req.AddressID)
	if err != nil {
		if errors.Is(err, adminapi.ErrNotFound) {
			return badRequest(c, "Selected address not found")
		}
		return respondUpstream(c, err)
	}

	view, err := h.carts.Fetch(c.UserContext(), userID)
	if err != nil {
		return respondUpstream(c, err)
	}

	order := h.checkouts.BuildOrder(userID, address, req.PaymentMethodID, view.Items)
	orderNumber, err := h.checkouts.PlaceOrder(c.UserContext(), order)
	if err != nil {
		var vErr *checkout.ValidationError
		if errors.As(err, &vErr) {
			return badRequest(c, vErr.Error())
		}
		return respondUpstream(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PlaceOrderResponse{OrderNumber: orderNumber})
}

func (h *CheckoutHandler) PaymentMethods(c *fiber.Ctx) error {
	methods, err := h.checkouts.PaymentMethods(c.UserContext())
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(methods)
}

func (h *CheckoutHandler) Order(c *fiber.Ctx) error {
	orderNumber := c.Params("orderNumber")
	details, err := h.checkouts.OrderByNumber(c.UserContext(), orderNumber)
	if err != nil {
		if errors.Is(err, checkout.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Order not found",
			})
		}
		return respondUpstream(c, err)
	}
	return c.JSON(details)
}
