// Package pricing - расчет строки заказа: выбор промо-предложения по количеству,
// скидки и итоги корзины. Все функции чистые, данные каталога передаются снаружи.
package pricing

import (
	"cmp"
	"slices"

	"field-sales/internal/models"

	"github.com/shopspring/decimal"
)

// ResolveOffer выбирает не больше одного предложения для товара и количества:
// кандидаты сортируются по порогу по убыванию, берется первый порог <= quantity.
// При равных порогах сохраняется порядок, в котором предложения пришли из каталога.
// nil означает "предложения нет".
func ResolveOffer(productID int64, quantity int, offers []models.Offer) *models.ResolvedOffer {
	candidates := make([]models.Offer, 0, len(offers))
	for _, o := range offers {
		if o.ProductID == productID {
			candidates = append(candidates, o)
		}
	}
	slices.SortStableFunc(candidates, func(a, b models.Offer) int {
		return cmp.Compare(b.ThresholdQty, a.ThresholdQty)
	})

	for _, o := range candidates {
		if o.ThresholdQty <= quantity {
			resolved := Normalize(o)
			return &resolved
		}
	}
	return nil
}

// Normalize приводит необязательные поля предложения к единому виду:
// суммы и количества по умолчанию 0, пустые идентификаторы образца и подарка - nil.
func Normalize(o models.Offer) models.ResolvedOffer {
	return models.ResolvedOffer{
		OfferID:                  o.ID,
		ProductID:                o.ProductID,
		ProductName:              o.ProductName,
		ThresholdQty:             o.ThresholdQty,
		DiscountAmount:           decimalOrZero(o.DiscountAmount),
		SampleProductID:          presentID(o.SampleProductID),
		SampleProductName:        presentString(o.SampleProductName),
		SampleQty:                intOrZero(o.SampleQty),
		GiftItemCode:             presentString(o.GiftItemCode),
		GiftProductName:          presentString(o.GiftProductName),
		GiftQty:                  intOrZero(o.GiftQty),
		AdditionalDiscountAmount: decimalOrZero(o.AdditionalDiscountAmount),
	}
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func presentID(v *int64) *int64 {
	if v == nil || *v == 0 {
		return nil
	}
	id := *v
	return &id
}

func presentString(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	s := *v
	return &s
}
