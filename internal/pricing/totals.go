package pricing

import (
	"field-sales/internal/models"

	"github.com/shopspring/decimal"
)

// Totals - итоги корзины для показа. В заголовке заказа не хранятся.
type Totals struct {
	TotalQty                int             `json:"total_qty"`
	TotalGrossAmount        decimal.Decimal `json:"total_gross_amount"`
	TotalDiscount           decimal.Decimal `json:"total_discount"`
	TotalAdditionalDiscount decimal.Decimal `json:"total_additional_discount"`
	TotalNet                decimal.Decimal `json:"total_net"`
}

// Aggregate каждый раз пересчитывает итоги по всей корзине целиком.
func Aggregate(items []models.CartItem) Totals {
	t := Totals{
		TotalGrossAmount:        decimal.Zero,
		TotalDiscount:           decimal.Zero,
		TotalAdditionalDiscount: decimal.Zero,
	}
	for _, item := range items {
		line := ComputeLine(item)
		t.TotalQty += line.Quantity
		t.TotalGrossAmount = t.TotalGrossAmount.Add(line.GrossAmount)
		t.TotalDiscount = t.TotalDiscount.Add(line.OfferDiscount)
		t.TotalAdditionalDiscount = t.TotalAdditionalDiscount.Add(line.AdditionalDiscount)
	}
	t.TotalNet = t.TotalGrossAmount.Sub(t.TotalDiscount.Add(t.TotalAdditionalDiscount))
	return t
}
