// Package profile manages the signed-in user's account data and address
// book. All writes go straight to the admin API; the storefront holds no
// copy.
package profile

import (
	"context"

	"github.com/SeloLim/naturia/internal/adminapi"
	"github.com/SeloLim/naturia/internal/models"
	"github.com/google/uuid"
)

type Service struct {
	api *adminapi.Client
}

func NewService(api *adminapi.Client) *Service {
	return &Service{api: api}
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.api.GetUserProfile(ctx, userID)
}

// UpdateParams carries the editable profile fields; nil means unchanged.
type UpdateParams struct {
	FullName  *string
	Phone     *string
	SkinType  *string
	BirthDate *string
	AvatarURL *string
}

func (s *Service) Update(ctx context.Context, userID uuid.UUID, params UpdateParams) (*models.User, error) {
	patch := map[string]any{}
	if params.FullName != nil {
		patch["full_name"] = *params.FullName
	}
	if params.Phone != nil {
		patch["phone"] = *params.Phone
	}
	if params.SkinType != nil {
		patch["skin_type"] = *params.SkinType
	}
	if params.BirthDate != nil {
		patch["birth_date"] = *params.BirthDate
	}
	if params.AvatarURL != nil {
		patch["avatar_url"] = *params.AvatarURL
	}
	return s.api.UpdateProfile(ctx, userID, patch)
}

func (s *Service) Addresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	return s.api.ListAddresses(ctx, userID)
}

// AddressByID picks one address out of the user's own list, so checkout can
// only ever reference an address the authenticated user owns.
func (s *Service) AddressByID(ctx context.Context, userID uuid.UUID, addressID int64) (*models.Address, error) {
	addresses, err := s.api.ListAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range addresses {
		if addresses[i].ID == addressID {
			return &addresses[i], nil
		}
	}
	return nil, adminapi.ErrNotFound
}

// DefaultAddress returns the address flagged default, or nil when the user
// has none.
func (s *Service) DefaultAddress(ctx context.Context, userID uuid.UUID) (*models.Address, error) {
	addresses, err := s.api.ListAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range addresses {
		if addresses[i].IsDefault {
			return &addresses[i], nil
		}
	}
	return nil, nil
}

func (s *Service) AddAddress(ctx context.Context, userID uuid.UUID, address *models.Address) (*models.Address, error) {
	return s.api.AddAddress(ctx, userID, address)
}

func (s *Service) UpdateAddress(ctx context.Context, userID uuid.UUID, addressID int64, patch map[string]any) (*models.Address, error) {
	return s.api.UpdateAddress(ctx, userID, addressID, patch)
}

func (s *Service) DeleteAddress(ctx context.Context, userID uuid.UUID, addressID int64) error {
	return s.api.DeleteAddress(ctx, userID, addressID)
}

func (s *Service) SetDefaultAddress(ctx context.Context, userID uuid.UUID, addressID int64) error {
	return s.api.SetDefaultAddress(ctx, userID, addressID)
}
