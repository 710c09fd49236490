package pricing

import (
	"field-sales/internal/models"

	"github.com/shopspring/decimal"
)

// Line - рассчитанная строка корзины.
// NetAmount не ограничен снизу нулем: скидка больше суммы дает отрицательный итог.
type Line struct {
	ProductID          int64                 `json:"product_id"`
	ProductName        string                `json:"product_name"`
	UnitPrice          decimal.Decimal       `json:"price"`
	Quantity           int                   `json:"quantity"`
	CtnFactor          int                   `json:"ctn_factor"`
	Offer              *models.ResolvedOffer `json:"offer"`
	GrossAmount        decimal.Decimal       `json:"gross_amount"`
	OfferDiscount      decimal.Decimal       `json:"offer_discount"`
	AdditionalDiscount decimal.Decimal       `json:"additional_discount"`
	DiscountAmount     decimal.Decimal       `json:"discount_amount"`
	NetAmount          decimal.Decimal       `json:"net_amount"`
	IsSample           int                   `json:"is_sample"`
	SampleProductID    *int64                `json:"sample_product_id"`
	SampleQty          int                   `json:"sample_qty"`
	IsGift             int                   `json:"is_gift"`
	GiftItemCode       *string               `json:"gift_item_code"`
	GiftQty            int                   `json:"gift_qty"`
}

// ComputeLine считает сумму, скидку и итог строки и флаги образца/подарка.
func ComputeLine(item models.CartItem) Line {
	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}

	line := Line{
		ProductID:          item.ProductID,
		ProductName:        item.ProductName,
		UnitPrice:          item.UnitPrice,
		Quantity:           qty,
		CtnFactor:          item.CtnFactor,
		Offer:              item.Offer,
		GrossAmount:        item.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
		OfferDiscount:      decimal.Zero,
		AdditionalDiscount: decimal.Zero,
		DiscountAmount:     decimal.Zero,
	}

	if o := item.Offer; o != nil {
		line.OfferDiscount = o.DiscountAmount
		line.AdditionalDiscount = o.AdditionalDiscountAmount
		line.DiscountAmount = o.DiscountAmount.Add(o.AdditionalDiscountAmount)
		if o.SampleProductID != nil {
			line.IsSample = 1
			line.SampleProductID = o.SampleProductID
			line.SampleQty = o.SampleQty
		}
		if o.GiftItemCode != nil && *o.GiftItemCode != "" {
			line.IsGift = 1
			line.GiftItemCode = o.GiftItemCode
			line.GiftQty = o.GiftQty
		}
	}

	line.NetAmount = line.GrossAmount.Sub(line.DiscountAmount)
	return line
}

// ComputeLines считает все строки корзины в исходном порядке.
func ComputeLines(items []models.CartItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, ComputeLine(item))
	}
	return lines
}

// OrderLine - строка в том виде, в котором она попадает в БД.
func (l Line) OrderLine() models.OrderLine {
	return models.OrderLine{
		ProductID:                l.ProductID,
		Price:                    l.UnitPrice,
		Qty:                      l.Quantity,
		OrgTotal:                 l.GrossAmount,
		Total:                    l.NetAmount,
		CtnFactor:                l.CtnFactor,
		DiscountAmount:           l.DiscountAmount,
		SDiscountAmount:          l.OfferDiscount,
		AdditionalDiscountAmount: l.AdditionalDiscount,
		ProductStatus:            models.ProductStatusContinue,
		IsSample:                 l.IsSample,
		SampleQty:                l.SampleQty,
		SampleProductCode:        l.SampleProductID,
		IsGift:                   l.IsGift,
		GiftItemCode:             l.GiftItemCode,
		GiftItemQty:              l.GiftQty,
	}
}
