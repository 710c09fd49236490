package pricing

import "field-sales/internal/models"

// CheckStock - проверка перед созданием или изменением строки корзины.
// Остаток не резервируется. Отсутствие данных об остатке (nil) трактуется как 0.
func CheckStock(productID int64, requested int, stock *models.DistributorStock) error {
	available := 0
	if stock != nil {
		available = stock.Stock
	}
	if requested > available {
		return &models.StockError{ProductID: productID, Requested: requested, Available: available}
	}
	return nil
}
