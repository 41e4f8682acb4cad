package models

// ProductImage is one image of a product gallery; exactly one should be
// primary.
type ProductImage struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
	ProductID int64  `json:"product_id"`
}

// Product is read-only catalog data from the storefront's perspective.
type Product struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Slug           string         `json:"slug"`
	Description    string         `json:"description"`
	Benefits       string         `json:"benefits"`
	KeyIngredients string         `json:"key_ingredients"`
	Price          int64          `json:"price"`
	DiscountPrice  *int64         `json:"discountPrice,omitempty"`
	VolumeML       int64          `json:"volume_ml"`
	CategoryID     int64          `json:"category_id"`
	SkinTypeID     int64          `json:"skin_type_id"`
	IsActive       bool           `json:"is_active"`
	Stock          int64          `json:"stock"`
	HowToUse       string         `json:"how_to_use"`
	Images         []ProductImage `json:"product_images"`
	Category       *Category      `json:"categories,omitempty"`
	SkinType       *SkinType      `json:"skin_types,omitempty"`
	CreatedAt      string         `json:"created_at"`
	UpdatedAt      string         `json:"updated_at"`
}

// PrimaryImage returns the image flagged primary, falling back to the first
// image when the flag is missing.
func (p *Product) PrimaryImage() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.ImageURL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].ImageURL
	}
	return ""
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type SkinType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Banner is a homepage carousel entry.
type Banner struct {
	ID          int64  `json:"id"`
	Title       string `json:"title,omitempty"`
	ImageURL    string `json:"image_url"`
	RedirectURL string `json:"redirect_url,omitempty"`
	IsActive    bool   `json:"is_active"`
}
