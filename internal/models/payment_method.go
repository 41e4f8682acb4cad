package models

// PaymentMethod is read-only reference data. DisplayOrder is nullable; the
// checkout layer sorts nulls last.
type PaymentMethod struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	Description  *string `json:"description"`
	IsActive     bool    `json:"is_active"`
	DisplayOrder *int64  `json:"display_order"`
}
