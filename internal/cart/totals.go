package cart

import (
	"github.com/SeloLim/naturia/internal/models"
	"github.com/shopspring/decimal"
)

// Totals are the four checkout figures, in whole currency units.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// Calculator derives totals from a cart snapshot: subtotal is the sum of
// price times quantity, shipping is a flat fee only when the cart is
// non-empty, tax is the configured rate on the subtotal rounded to the
// nearest unit, total is the sum of the three.
type Calculator struct {
	shippingFee int64
	taxRate     decimal.Decimal
}

func NewCalculator(shippingFee int64, taxRate float64) Calculator {
	return Calculator{
		shippingFee: shippingFee,
		taxRate:     decimal.NewFromFloat(taxRate),
	}
}

func (calc Calculator) Compute(items []models.CartItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromInt(item.Price).Mul(decimal.NewFromInt(item.Quantity))
		subtotal = subtotal.Add(line)
	}

	var shipping int64
	if len(items) > 0 {
		shipping = calc.shippingFee
	}

	tax := subtotal.Mul(calc.taxRate).Round(0)
	total := subtotal.Add(decimal.NewFromInt(shipping)).Add(tax)

	return Totals{
		Subtotal: subtotal.IntPart(),
		Shipping: shipping,
		Tax:      tax.IntPart(),
		Total:    total.IntPart(),
	}
}
