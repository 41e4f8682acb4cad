package models

import (
	"github.com/google/uuid"
)

// User is the storefront profile as served by the admin API. The storefront
// never deletes users; account removal is an admin-side concern.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	SkinType  string    `json:"skin_type"`
	BirthDate string    `json:"birth_date"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}
