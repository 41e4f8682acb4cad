package dto

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	SkinType  *string `json:"skin_type,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type AddressRequest struct {
	Label         string `json:"label,omitempty"`
	RecipientName string `json:"recipient_name" validate:"required"`
	PhoneNumber   string `json:"phone_number" validate:"required"`
	AddressLine1  string `json:"address_line1" validate:"required"`
	AddressLine2  string `json:"address_line2,omitempty"`
	City          string `json:"city" validate:"required"`
	Province      string `json:"province" validate:"required"`
	PostalCode    string `json:"postal_code" validate:"required"`
	Country       string `json:"country" validate:"required"`
	IsDefault     bool   `json:"is_default"`
}
