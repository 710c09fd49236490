package kafka

import (
	"field-sales/internal/models"

	"github.com/brianvoe/gofakeit"
)

// FakeEnvelope - случайная заявка для нагрузочной проверки: примерно каждая
// четвертая - визит без заказа, остальные - заказ на 1-5 товаров.
func FakeEnvelope(userIDs []string, retailerIDs, productIDs []int64) models.SubmissionEnvelope {
	userID := userIDs[gofakeit.Number(0, len(userIDs)-1)]
	retailerID := retailerIDs[gofakeit.Number(0, len(retailerIDs)-1)]
	lat, lng := gofakeit.Latitude(), gofakeit.Longitude()

	if gofakeit.Number(0, 3) == 0 {
		return models.SubmissionEnvelope{
			Kind: models.KindVisit,
			Visit: &models.VisitRequest{
				UserID:     userID,
				RetailerID: retailerID,
				VisitType:  models.VisitTypes[gofakeit.Number(0, len(models.VisitTypes)-1)],
				Latitude:   &lat,
				Longitude:  &lng,
			},
		}
	}

	n := gofakeit.Number(1, min(5, len(productIDs)))
	items := make([]models.OrderItemRequest, 0, n)
	for _, i := range shuffled(len(productIDs))[:n] {
		items = append(items, models.OrderItemRequest{
			ProductID: productIDs[i],
			Quantity:  models.Quantity(gofakeit.Number(1, 48)),
		})
	}
	return models.SubmissionEnvelope{
		Kind: models.KindOrder,
		Order: &models.OrderRequest{
			UserID:     userID,
			RetailerID: retailerID,
			Latitude:   &lat,
			Longitude:  &lng,
			Items:      items,
		},
	}
}

// shuffled - индексы 0..n-1 в случайном порядке.
func shuffled(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := gofakeit.Number(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
