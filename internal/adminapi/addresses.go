package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SeloLim/naturia/internal/models"
	"github.com/google/uuid"
)

func addressPath(userID uuid.UUID) string {
	return fmt.Sprintf("/api/profile/%s/address", userID)
}

func (c *Client) ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	var addresses []models.Address
	if err := c.getJSON(ctx, addressPath(userID), "", &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (c *Client) AddAddress(ctx context.Context, userID uuid.UUID, address *models.Address) (*models.Address, error) {
	var created models.Address
	if err := c.do(ctx, http.MethodPost, addressPath(userID), "", address, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAddress sends a partial update; only the fields present in patch
// change.
func (c *Client) UpdateAddress(ctx context.Context, userID uuid.UUID, addressID int64, patch map[string]any) (*models.Address, error) {
	var updated models.Address
	path := fmt.Sprintf("%s/%d", addressPath(userID), addressID)
	if err := c.do(ctx, http.MethodPatch, path, "", patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteAddress(ctx context.Context, userID uuid.UUID, addressID int64) error {
	path := fmt.Sprintf("%s/%d", addressPath(userID), addressID)
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

// SetDefaultAddress flips is_default on one address; the admin API clears
// the flag on the rest so exactly one stays default.
func (c *Client) SetDefaultAddress(ctx context.Context, userID uuid.UUID, addressID int64) error {
	path := fmt.Sprintf("%s/%d", addressPath(userID), addressID)
	return c.do(ctx, http.MethodPatch, path, "", map[string]any{"is_default": true}, nil)
}
