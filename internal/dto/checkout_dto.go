package dto

import (
	"github.com/SeloLim/naturia/internal/cart"
	"github.com/SeloLim/naturia/internal/models"
)

// PlaceOrderRequest carries the two checkout selections; the server builds
// the full payload (address snapshot, items, totals) itself.
type PlaceOrderRequest struct {
	AddressID       int64 `json:"address_id" validate:"required,gt=0"`
	PaymentMethodID int64 `json:"payment_method_id" validate:"required,gt=0"`
}

type PlaceOrderResponse struct {
	OrderNumber string `json:"order_number"`
}

// CheckoutView is everything the payment page needs in one response.
type CheckoutView struct {
	Addresses      []models.Address       `json:"addresses"`
	PaymentMethods []models.PaymentMethod `json:"payment_methods"`
	Items          []models.CartItem      `json:"items"`
	Totals         cart.Totals            `json:"totals"`
}
