package service

import (
	"time"

	"field-sales/internal/models"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func idPtr(v int64) *int64    { return &v }
func strPtr(v string) *string { return &v }
func fptr(v float64) *float64 { return &v }

// soap - товар из примера: цена 51, предложение от 30 штук.
func soap() models.Product {
	return models.Product{ID: 100, Name: "Sheuly Soap", Price: dec("51.00"), CtnFactor: 24}
}

func juice() models.Product {
	return models.Product{ID: 101, Name: "Mango Juice", Price: dec("95.00"), CtnFactor: 12}
}

func soapOffer() *models.ResolvedOffer {
	return &models.ResolvedOffer{
		OfferID:                  9,
		ProductID:                100,
		ThresholdQty:             30,
		DiscountAmount:           dec("72"),
		SampleProductID:          idPtr(200),
		SampleQty:                7,
		GiftItemCode:             strPtr("G-1"),
		GiftQty:                  1,
		AdditionalDiscountAmount: dec("100"),
	}
}
