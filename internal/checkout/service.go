// Package checkout aggregates cart items, the selected address snapshot and
// the selected payment method into a single order-creation request, and
// serves the immutable confirmation view afterwards.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/SeloLim/naturia/internal/adminapi"
	"github.com/SeloLim/naturia/internal/cart"
	"github.com/SeloLim/naturia/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

// ValidationError means the order payload was rejected before any request
// left the process, mirroring the disabled submit button on the checkout
// page.
type ValidationError struct {
	err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid order payload: %v", e.err)
}

func (e *ValidationError) Unwrap() error { return e.err }

type Service struct {
	api      *adminapi.Client
	calc     cart.Calculator
	validate *validator.Validate
}

func NewService(api *adminapi.Client, calc cart.Calculator) *Service {
	return &Service{
		api:      api,
		calc:     calc,
		validate: validator.New(),
	}
}

// BuildOrder assembles the placement payload. The address is embedded as a
// full snapshot so historical orders keep it as it was at order time, and
// the four totals are derived here rather than trusted from the caller.
func (s *Service) BuildOrder(userID uuid.UUID, address *models.Address, paymentMethodID int64, items []models.CartItem) *models.OrderRequest {
	req := &models.OrderRequest{
		UserID:          userID,
		PaymentMethodID: paymentMethodID,
		Items:           items,
	}
	if address != nil {
		req.Address = models.OrderAddress{
			RecipientName: address.RecipientName,
			PhoneNumber:   address.PhoneNumber,
			AddressLine1:  address.AddressLine1,
			AddressLine2:  address.AddressLine2,
			City:          address.City,
			Province:      address.Province,
			PostalCode:    address.PostalCode,
			Country:       address.Country,
		}
	}
	totals := s.calc.Compute(items)
	req.Subtotal = totals.Subtotal
	req.Shipping = totals.Shipping
	req.Tax = totals.Tax
	req.Total = totals.Total
	return req
}

// ValidateOrder is the submit-enabled predicate: it fails when the address
// or payment method selection is missing, or the item list is empty.
func (s *Service) ValidateOrder(req *models.OrderRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return &ValidationError{err: err}
	}
	return nil
}

// PlaceOrder validates and submits the order, returning the order number
// for the confirmation fetch.
func (s *Service) PlaceOrder(ctx context.Context, req *models.OrderRequest) (string, error) {
	if err := s.ValidateOrder(req); err != nil {
		return "", err
	}
	return s.api.PlaceOrder(ctx, req)
}

// OrderByNumber returns the confirmation snapshot. Unknown numbers, and
// numbers owned by someone else (the ownership check is server-side), map
// to ErrOrderNotFound.
func (s *Service) OrderByNumber(ctx context.Context, orderNumber string) (*models.OrderDetails, error) {
	details, err := s.api.OrderByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, adminapi.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return details, nil
}

// PaymentMethods returns the selectable methods: active only, sorted by
// display_order with nulls last.
func (s *Service) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	all, err := s.api.PaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]models.PaymentMethod, 0, len(all))
	for _, m := range all {
		if m.IsActive {
			active = append(active, m)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i].DisplayOrder, active[j].DisplayOrder
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return active, nil
}
