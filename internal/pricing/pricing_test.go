package pricing

import (
	"testing"

	"field-sales/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func intPtr(v int) *int       { return &v }
func idPtr(v int64) *int64    { return &v }
func strPtr(v string) *string { return &v }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "ожидали %s, получили %s", want, got.String())
}

// предложения из примера заказа: порог 30 со скидкой, образцом и подарком.
func sheulyOffers() []models.Offer {
	return []models.Offer{
		{
			ID:                       1,
			ProductID:                40187,
			ProductName:              "Sheuly Sanitary Napkin- Belt- 08 pads",
			ThresholdQty:             30,
			DiscountAmount:           decPtr("72"),
			SampleProductID:          idPtr(40017),
			SampleProductName:        strPtr("Raxoll Moisturizing Hand Wash-170ml-Refill"),
			SampleQty:                intPtr(7),
			GiftItemCode:             strPtr("90000005"),
			GiftProductName:          strPtr("Gift of  Raxoll Soap - Active 100gm"),
			GiftQty:                  intPtr(1),
			AdditionalDiscountAmount: decPtr("100"),
		},
		{
			ID:             2,
			ProductID:      40187,
			ThresholdQty:   12,
			DiscountAmount: decPtr("20"),
		},
	}
}

func tieredOffers() []models.Offer {
	return []models.Offer{
		{ID: 1, ProductID: 7, ThresholdQty: 10, DiscountAmount: decPtr("5")},
		{ID: 2, ProductID: 7, ThresholdQty: 50, DiscountAmount: decPtr("40")},
		{ID: 3, ProductID: 7, ThresholdQty: 25, DiscountAmount: decPtr("15")},
	}
}

func TestResolveOffer_BelowEveryThreshold(t *testing.T) {
	for q := 1; q < 10; q++ {
		assert.Nil(t, ResolveOffer(7, q, tieredOffers()), "quantity %d", q)
	}
}

func TestResolveOffer_HighestQualifyingThreshold(t *testing.T) {
	cases := []struct {
		qty       int
		threshold int
	}{
		{10, 10},
		{24, 10},
		{25, 25},
		{49, 25},
		{50, 50},
		{500, 50},
	}
	for _, tc := range cases {
		got := ResolveOffer(7, tc.qty, tieredOffers())
		require.NotNil(t, got, "quantity %d", tc.qty)
		assert.Equal(t, tc.threshold, got.ThresholdQty, "quantity %d", tc.qty)
	}
}

func TestResolveOffer_Monotonic(t *testing.T) {
	prev := 0
	for q := 10; q <= 120; q++ {
		got := ResolveOffer(7, q, tieredOffers())
		require.NotNil(t, got)
		assert.GreaterOrEqual(t, got.ThresholdQty, prev, "quantity %d", q)
		prev = got.ThresholdQty
	}
}

func TestResolveOffer_NoOffers(t *testing.T) {
	assert.Nil(t, ResolveOffer(7, 100, nil))
}

func TestResolveOffer_IgnoresOtherProducts(t *testing.T) {
	offers := append(tieredOffers(), models.Offer{ID: 9, ProductID: 8, ThresholdQty: 1})
	got := ResolveOffer(8, 5, offers)
	require.NotNil(t, got)
	assert.Equal(t, int64(9), got.OfferID)

	assert.Nil(t, ResolveOffer(99, 5, offers))
}

func TestResolveOffer_DoesNotReorderInput(t *testing.T) {
	offers := tieredOffers()
	_ = ResolveOffer(7, 30, offers)
	assert.Equal(t, int64(1), offers[0].ID)
	assert.Equal(t, int64(2), offers[1].ID)
	assert.Equal(t, int64(3), offers[2].ID)
}

func TestNormalize_DefaultsMissingFields(t *testing.T) {
	got := Normalize(models.Offer{
		ID:              4,
		ProductID:       7,
		ThresholdQty:    3,
		SampleProductID: idPtr(0),
		GiftItemCode:    strPtr(""),
	})

	assertDecimal(t, "0", got.DiscountAmount)
	assertDecimal(t, "0", got.AdditionalDiscountAmount)
	assert.Equal(t, 0, got.SampleQty)
	assert.Equal(t, 0, got.GiftQty)
	assert.Nil(t, got.SampleProductID)
	assert.Nil(t, got.SampleProductName)
	assert.Nil(t, got.GiftItemCode)
	assert.Nil(t, got.GiftProductName)
}

func TestNormalize_CopiesPointers(t *testing.T) {
	offer := sheulyOffers()[0]
	got := Normalize(offer)
	*offer.SampleProductID = 1

	require.NotNil(t, got.SampleProductID)
	assert.Equal(t, int64(40017), *got.SampleProductID)
}

// Сценарий 1: цена 51.00, количество 42, порог 30.
func TestComputeLine_OfferWithSampleAndGift(t *testing.T) {
	item := models.CartItem{
		ProductID: 40187,
		UnitPrice: dec("51.00"),
		Quantity:  42,
		CtnFactor: 24,
		Offer:     ResolveOffer(40187, 42, sheulyOffers()),
	}

	line := ComputeLine(item)

	require.NotNil(t, line.Offer)
	assert.Equal(t, 30, line.Offer.ThresholdQty)
	assertDecimal(t, "2142.00", line.GrossAmount)
	assertDecimal(t, "172", line.DiscountAmount)
	assertDecimal(t, "1970.00", line.NetAmount)
	assert.Equal(t, 1, line.IsSample)
	assert.Equal(t, 7, line.SampleQty)
	assert.Equal(t, int64(40017), *line.SampleProductID)
	assert.Equal(t, 1, line.IsGift)
	assert.Equal(t, 1, line.GiftQty)
	assert.Equal(t, "90000005", *line.GiftItemCode)
	assert.Equal(t, 24, line.CtnFactor)
}

// Сценарий 2: цена 95.00, количество 1, предложения нет.
func TestComputeLine_NoOffer(t *testing.T) {
	line := ComputeLine(models.CartItem{ProductID: 40049, UnitPrice: dec("95.00"), Quantity: 1})

	assertDecimal(t, "95.00", line.GrossAmount)
	assertDecimal(t, "0", line.DiscountAmount)
	assertDecimal(t, "95.00", line.NetAmount)
	assert.Equal(t, 0, line.IsSample)
	assert.Equal(t, 0, line.IsGift)
	assert.Nil(t, line.SampleProductID)
	assert.Nil(t, line.GiftItemCode)
}

func TestComputeLine_NegativeNetIsNotClamped(t *testing.T) {
	offer := Normalize(models.Offer{ProductID: 1, ThresholdQty: 1, DiscountAmount: decPtr("30"), AdditionalDiscountAmount: decPtr("25")})
	line := ComputeLine(models.CartItem{ProductID: 1, UnitPrice: dec("10.50"), Quantity: 2, Offer: &offer})

	assertDecimal(t, "21.00", line.GrossAmount)
	assertDecimal(t, "55", line.DiscountAmount)
	assertDecimal(t, "-34.00", line.NetAmount)
}

func TestComputeLine_NetEqualsGrossMinusDiscount(t *testing.T) {
	prices := []string{"0.01", "1", "9.99", "51.00", "170.00", "1234.56"}
	for _, p := range prices {
		for q := 1; q <= 60; q += 7 {
			item := models.CartItem{ProductID: 40187, UnitPrice: dec(p), Quantity: q, Offer: ResolveOffer(40187, q, sheulyOffers())}
			line := ComputeLine(item)
			assert.True(t, line.NetAmount.Equal(line.GrossAmount.Sub(line.DiscountAmount)), "price %s qty %d", p, q)
		}
	}
}

func TestComputeLine_QuantityBelowOneIsCoerced(t *testing.T) {
	line := ComputeLine(models.CartItem{ProductID: 1, UnitPrice: dec("5"), Quantity: 0})
	assert.Equal(t, 1, line.Quantity)
	assertDecimal(t, "5", line.GrossAmount)
}

func TestLine_OrderLine(t *testing.T) {
	item := models.CartItem{ProductID: 40187, UnitPrice: dec("51.00"), Quantity: 42, CtnFactor: 24, Offer: ResolveOffer(40187, 42, sheulyOffers())}
	ol := ComputeLine(item).OrderLine()

	assertDecimal(t, "2142", ol.OrgTotal)
	assertDecimal(t, "1970", ol.Total)
	assertDecimal(t, "172", ol.DiscountAmount)
	assertDecimal(t, "72", ol.SDiscountAmount)
	assertDecimal(t, "100", ol.AdditionalDiscountAmount)
	assert.Equal(t, models.ProductStatusContinue, ol.ProductStatus)
	assert.Equal(t, 42, ol.Qty)
	assert.Equal(t, 1, ol.IsSample)
	assert.Equal(t, 1, ol.IsGift)
	assert.Equal(t, 1, ol.GiftItemQty)
}

// Сценарий 3: корзина из сценариев 1 и 2.
func TestAggregate_TwoItemCart(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 40187, UnitPrice: dec("51.00"), Quantity: 42, Offer: ResolveOffer(40187, 42, sheulyOffers())},
		{ProductID: 40049, UnitPrice: dec("95.00"), Quantity: 1},
	}

	totals := Aggregate(items)

	assert.Equal(t, 43, totals.TotalQty)
	assertDecimal(t, "2237.00", totals.TotalGrossAmount)
	assertDecimal(t, "72", totals.TotalDiscount)
	assertDecimal(t, "100", totals.TotalAdditionalDiscount)
	assertDecimal(t, "2065.00", totals.TotalNet)
}

func TestAggregate_Idempotent(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 40187, UnitPrice: dec("51.00"), Quantity: 42, Offer: ResolveOffer(40187, 42, sheulyOffers())},
		{ProductID: 40023, UnitPrice: dec("170.00"), Quantity: 3},
	}

	first := Aggregate(items)
	second := Aggregate(items)

	assert.Equal(t, first.TotalQty, second.TotalQty)
	assert.True(t, first.TotalGrossAmount.Equal(second.TotalGrossAmount))
	assert.True(t, first.TotalNet.Equal(second.TotalNet))
	assert.Equal(t, first, second)
}

func TestAggregate_EmptyCart(t *testing.T) {
	totals := Aggregate(nil)
	assert.Equal(t, 0, totals.TotalQty)
	assertDecimal(t, "0", totals.TotalGrossAmount)
	assertDecimal(t, "0", totals.TotalNet)
}

func TestCheckStock(t *testing.T) {
	stock := &models.DistributorStock{ProductID: 5, Stock: 10}

	t.Run("Количество в пределах остатка", func(t *testing.T) {
		assert.NoError(t, CheckStock(5, 10, stock))
	})

	t.Run("Количество больше остатка", func(t *testing.T) {
		err := CheckStock(5, 11, stock)
		var stockErr *models.StockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 10, stockErr.Available)
		assert.Equal(t, 11, stockErr.Requested)
		assert.Contains(t, err.Error(), "Available stock is only 10")
	})

	t.Run("Нет данных об остатке", func(t *testing.T) {
		err := CheckStock(5, 1, nil)
		var stockErr *models.StockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 0, stockErr.Available)
	})
}
