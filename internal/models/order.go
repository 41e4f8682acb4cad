package models

import "github.com/google/uuid"

// OrderAddress is the full address snapshot embedded in an order at
// placement time, so historical orders keep the address as it was.
type OrderAddress struct {
	RecipientName string `json:"recipient_name" validate:"required"`
	PhoneNumber   string `json:"phone_number" validate:"required"`
	AddressLine1  string `json:"address_line1" validate:"required"`
	AddressLine2  string `json:"address_line2,omitempty"`
	City          string `json:"city" validate:"required"`
	Province      string `json:"province" validate:"required"`
	PostalCode    string `json:"postal_code" validate:"required"`
	Country       string `json:"country" validate:"required"`
}

// OrderRequest is the POST /api/orders payload: cart snapshot, address
// snapshot, payment method and the four computed totals.
type OrderRequest struct {
	UserID          uuid.UUID    `json:"user_id" validate:"required"`
	Address         OrderAddress `json:"address"`
	PaymentMethodID int64        `json:"payment_method_id" validate:"required,gt=0"`
	Items           []CartItem   `json:"items" validate:"required,min=1,dive"`
	Subtotal        int64        `json:"subtotal"`
	Shipping        int64        `json:"shipping"`
	Tax             int64        `json:"tax"`
	Total           int64        `json:"total"`
}

// OrderItem is one line of the denormalized order-detail view. The admin API
// nests the product name one level down.
type OrderItem struct {
	Name     NamedRef `json:"name"`
	Quantity int64    `json:"quantity"`
	Price    int64    `json:"price"`
	Image    string   `json:"image"`
}

// NamedRef carries just a display name.
type NamedRef struct {
	Name string `json:"name"`
}

// OrderShippingAddress is the confirmation view of the shipping address.
// Field casing follows the admin API response.
type OrderShippingAddress struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Province   string `json:"province"`
	Country    string `json:"country"`
}

// OrderDetails is the immutable confirmation snapshot for a placed order.
// Re-fetching the same order number always returns the same snapshot.
type OrderDetails struct {
	OrderNumber       string               `json:"orderNumber"`
	Date              string               `json:"date"`
	TotalAmount       int64                `json:"totalAmount"`
	PaymentMethod     string               `json:"paymentMethod"`
	Items             []OrderItem          `json:"items"`
	ShippingAddress   OrderShippingAddress `json:"shippingAddress"`
	EstimatedDelivery string               `json:"estimatedDelivery"`
}
