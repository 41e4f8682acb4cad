package adminapi

import (
	"context"
	"net/http"

	"github.com/SeloLim/naturia/internal/models"
	"github.com/google/uuid"
)

func (c *Client) GetUserProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/api/profile/"+userID.String(), "", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile sends a partial profile update (full name, phone, skin type,
// birth date, avatar).
func (c *Client) UpdateProfile(ctx context.Context, userID uuid.UUID, patch map[string]any) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPatch, "/api/profile/"+userID.String(), "", patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
