package models

// ProductSummary is the denormalized display snapshot embedded in a cart row.
// Price reflects the current product price on every fetch; it is not locked
// at add-time.
type ProductSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"image_url"`
}

// CartEntry is the wire shape of one cart row from the admin API.
type CartEntry struct {
	ID        int64          `json:"id"`
	ProductID int64          `json:"product_id"`
	Quantity  int64          `json:"quantity"`
	AddedAt   string         `json:"added_at"`
	Product   ProductSummary `json:"products"`
}

// Cart mirrors GET /api/cart. CartID is nil when the user has no cart row
// yet; the client layer normalizes a remote 404 into that shape.
type Cart struct {
	CartID *int64      `json:"cart_id"`
	Items  []CartEntry `json:"items"`
}

// CartItem is the flattened item the storefront works with.
type CartItem struct {
	ProductID int64  `json:"product_id" validate:"gt=0"`
	Name      string `json:"name"`
	Price     int64  `json:"price" validate:"gte=0"`
	Image     string `json:"image"`
	Quantity  int64  `json:"quantity" validate:"gte=1"`
}

// Flatten maps the nested wire entries to display items.
func (c *Cart) Flatten() []CartItem {
	items := make([]CartItem, 0, len(c.Items))
	for _, e := range c.Items {
		items = append(items, CartItem{
			ProductID: e.ProductID,
			Name:      e.Product.Name,
			Price:     e.Product.Price,
			Image:     e.Product.ImageURL,
			Quantity:  e.Quantity,
		})
	}
	return items
}
