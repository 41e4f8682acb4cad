package adminapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/SeloLim/naturia/internal/models"
	"github.com/google/uuid"
)

type cartMutation struct {
	UserID    uuid.UUID `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int64     `json:"quantity,omitempty"`
}

// FetchCart returns the user's cart. A remote 404 means no cart row exists
// yet and is normalized to an empty cart, never an error.
func (c *Client) FetchCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := c.getJSON(ctx, "/api/cart?user_id="+userID.String(), "", &cart)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &models.Cart{CartID: nil, Items: []models.CartEntry{}}, nil
		}
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartEntry{}
	}
	return &cart, nil
}

func (c *Client) AddToCart(ctx context.Context, userID uuid.UUID, productID, quantity int64) error {
	return c.do(ctx, http.MethodPost, "/api/cart", "", cartMutation{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, userID uuid.UUID, productID, quantity int64) error {
	return c.do(ctx, http.MethodPatch, "/api/cart", "", cartMutation{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, userID uuid.UUID, productID int64) error {
	return c.do(ctx, http.MethodDelete, "/api/cart", "", cartMutation{
		UserID:    userID,
		ProductID: productID,
	}, nil)
}
