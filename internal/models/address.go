package models

import "github.com/google/uuid"

// Address is a user-owned shipping address. Exactly one address per user
// should carry IsDefault; the admin API enforces that on the set-default
// update, not the storefront.
type Address struct {
	ID            int64     `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Label         string    `json:"label,omitempty"`
	RecipientName string    `json:"recipient_name"`
	PhoneNumber   string    `json:"phone_number"`
	AddressLine1  string    `json:"address_line1"`
	AddressLine2  string    `json:"address_line2,omitempty"`
	City          string    `json:"city"`
	Province      string    `json:"province"`
	PostalCode    string    `json:"postal_code"`
	Country       string    `json:"country"`
	IsDefault     bool      `json:"is_default"`
}
