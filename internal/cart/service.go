// Package cart binds a user id to server-side cart state. Mutations never
// patch local state: each one issues a single request and then revalidates
// with a full re-fetch, so displayed prices and stock always come from the
// admin API.
package cart

import (
	"context"
	"errors"

	"github.com/SeloLim/naturia/internal/adminapi"
	"github.com/SeloLim/naturia/internal/models"
	"github.com/SeloLim/naturia/internal/session"
	"github.com/google/uuid"
)

// ErrQuantityTooLow guards the quantity floor: remove is the only path to
// zero items.
var ErrQuantityTooLow = errors.New("quantity must be at least 1")

type Service struct {
	api  *adminapi.Client
	calc Calculator
}

func NewService(api *adminapi.Client, calc Calculator) *Service {
	return &Service{api: api, calc: calc}
}

// View is what the cart page renders: flattened items plus derived totals.
type View struct {
	CartID *int64            `json:"cart_id"`
	Items  []models.CartItem `json:"items"`
	Totals Totals            `json:"totals"`
}

// Fetch returns the user's cart view. A user with no server-side cart row
// gets an empty view, never an error.
func (s *Service) Fetch(ctx context.Context, userID uuid.UUID) (*View, error) {
	if userID == uuid.Nil {
		return nil, session.ErrNotAuthenticated
	}
	remote, err := s.api.FetchCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := remote.Flatten()
	return &View{
		CartID: remote.CartID,
		Items:  items,
		Totals: s.calc.Compute(items),
	}, nil
}

// Add puts quantity of a product in the cart, then revalidates. The admin
// API keeps at most one row per product, so adding an existing product
// accumulates quantity server-side.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, productID, quantity int64) (*View, error) {
	if userID == uuid.Nil {
		return nil, session.ErrNotAuthenticated
	}
	if quantity < 1 {
		return nil, ErrQuantityTooLow
	}
	if err := s.api.AddToCart(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}
	return s.Fetch(ctx, userID)
}

// UpdateQuantity sets the absolute quantity of a cart row, then
// revalidates.
func (s *Service) UpdateQuantity(ctx context.Context, userID uuid.UUID, productID, quantity int64) (*View, error) {
	if userID == uuid.Nil {
		return nil, session.ErrNotAuthenticated
	}
	if quantity < 1 {
		return nil, ErrQuantityTooLow
	}
	if err := s.api.UpdateCartItem(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}
	return s.Fetch(ctx, userID)
}

// Remove deletes a cart row, then revalidates.
func (s *Service) Remove(ctx context.Context, userID uuid.UUID, productID int64) (*View, error) {
	if userID == uuid.Nil {
		return nil, session.ErrNotAuthenticated
	}
	if err := s.api.RemoveCartItem(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.Fetch(ctx, userID)
}
