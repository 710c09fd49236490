package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"field-sales/internal/db/conn"
	"field-sales/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seed = `
INSERT INTO routes (id, route_name) VALUES (1, 'Mirpur'), (2, 'Banani'), (3, 'Uttara');
INSERT INTO sr_route_assignments (sr_code, route_id, day) VALUES
    ('SR-1', 1, 'Sunday'), ('SR-1', 2, 'Monday'), ('SR-2', 3, 'Sunday');
INSERT INTO retailers (id, retailer_name, sr_id, route_id, proprietor_name, latitude, longitude) VALUES
    (10, 'Rahim Store', 'SR-1', 1, 'Rahim', 23.8, 90.4),
    (11, 'Karim Traders', 'SR-1', 1, NULL, NULL, NULL),
    (12, 'Other SR Shop', 'SR-2', 3, NULL, NULL, NULL);
INSERT INTO product_categories (id, category_name, status) VALUES (1, 'Soap', 1), (2, 'Archived', 0), (3, 'Beverage', 1);
INSERT INTO products (id, category_id, product_name, price, mrp, ctn_factor, is_sample, status) VALUES
    (100, 1, 'Sheuly Soap', 100, 120, 24, 0, 1),
    (101, 3, 'Mango Juice', 25.5, NULL, 12, 0, 1),
    (200, 1, 'Sheuly Mini', 0, NULL, 1, 1, 1),
    (300, 1, 'Old Soap', 80, NULL, 1, 0, 0);
INSERT INTO offers (id, product_id, qty, discount_amount, sample_id, sample_qty, gift_item_code, gift_item_qty, additional_discount_amount, status) VALUES
    (1, 100, 12, 50, 200, 2, NULL, NULL, NULL, 1),
    (2, 100, 24, 120, NULL, NULL, '101', 1, 10, 1),
    (3, 100, 6, 5, NULL, NULL, NULL, NULL, NULL, 0);
INSERT INTO distributor_territories (distributor_id, sr_id) VALUES (7, 'SR-1'), (7, 'SR-3');
INSERT INTO distributor_stock (distributor_id, product_id, stock, stock_per_pis) VALUES (7, 100, 30, 720);
`

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := conn.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(seed)
	require.NoError(t, err)
	return db
}

func fptr(v float64) *float64 { return &v }

func sampleOrder(day time.Time) models.Order {
	sampleID := int64(200)
	return models.Order{
		UserID:     "SR-1",
		RetailerID: 10,
		OrderDate:  day,
		DeviceType: models.DeviceType,
		Status:     1,
		Latitude:   fptr(23.81),
		Longitude:  fptr(90.41),
		GeoStatus:  1,
		Lines: []models.OrderLine{
			{
				ProductID:         100,
				Price:             decimal.NewFromInt(100),
				Qty:               12,
				OrgTotal:          decimal.NewFromInt(1200),
				Total:             decimal.NewFromInt(1150),
				CtnFactor:         24,
				DiscountAmount:    decimal.NewFromInt(50),
				SDiscountAmount:   decimal.NewFromInt(50),
				ProductStatus:     models.ProductStatusContinue,
				IsSample:          1,
				SampleQty:         2,
				SampleProductCode: &sampleID,
			},
			{
				ProductID:     101,
				Price:         decimal.RequireFromString("25.5"),
				Qty:           2,
				OrgTotal:      decimal.NewFromInt(51),
				Total:         decimal.NewFromInt(51),
				CtnFactor:     12,
				ProductStatus: models.ProductStatusContinue,
			},
		},
	}
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestCatalogRepository_Routes(t *testing.T) {
	repo := NewCatalogRepository(newTestDB(t))

	routes, err := repo.Routes(context.Background(), "SR-1")
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, "Banani", routes[0].Name)
	assert.Equal(t, "Monday", routes[0].Day)
	assert.Equal(t, "Mirpur", routes[1].Name)

	none, err := repo.Routes(context.Background(), "SR-404")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogRepository_Retailers(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	orders := NewOrderRepository(db)
	ctx := context.Background()
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	retailers, err := repo.Retailers(ctx, "SR-1", 1, today)
	require.NoError(t, err)
	require.Len(t, retailers, 2)
	assert.Equal(t, "Rahim Store", retailers[0].Name)
	require.NotNil(t, retailers[0].Latitude)
	assert.InDelta(t, 23.8, *retailers[0].Latitude, 1e-9)
	assert.Nil(t, retailers[1].Latitude)

	t.Run("точка с визитом за сегодня пропадает из списка", func(t *testing.T) {
		_, err := orders.SaveVisit(ctx, models.Order{
			UserID: "SR-1", RetailerID: 10, OrderDate: today, DeviceType: models.DeviceType,
			Status: 1, VisitType: "Outlet closed",
		})
		require.NoError(t, err)

		retailers, err := repo.Retailers(ctx, "SR-1", 1, today)
		require.NoError(t, err)
		require.Len(t, retailers, 1)
		assert.Equal(t, int64(11), retailers[0].ID)

		tomorrow, err := repo.Retailers(ctx, "SR-1", 1, today.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Len(t, tomorrow, 2)
	})

	t.Run("чужой маршрут пуст", func(t *testing.T) {
		retailers, err := repo.Retailers(ctx, "SR-1", 3, today)
		require.NoError(t, err)
		assert.Empty(t, retailers)
	})
}

func TestCatalogRepository_CategoriesAndProducts(t *testing.T) {
	repo := NewCatalogRepository(newTestDB(t))
	ctx := context.Background()

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Beverage", categories[0].Name)
	assert.Equal(t, "Soap", categories[1].Name)

	products, err := repo.Products(ctx, 3)
	require.NoError(t, err)
	require.Len(t, products, 2, "образцы и неактивные товары не отдаются, категория не фильтрует")
	assert.Equal(t, int64(100), products[0].ID)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(100)))
	assert.True(t, products[0].MRP.Valid)
	assert.True(t, products[1].Price.Equal(decimal.RequireFromString("25.5")))
	assert.False(t, products[1].MRP.Valid)

	p, err := repo.Product(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, "Mango Juice", p.Name)
	assert.Equal(t, 12, p.CtnFactor)

	_, err = repo.Product(ctx, 300)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCatalogRepository_Offers(t *testing.T) {
	repo := NewCatalogRepository(newTestDB(t))

	offers, err := repo.Offers(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, offers, 2, "неактивное предложение не отдается")

	first := offers[0]
	assert.Equal(t, 12, first.ThresholdQty)
	assert.Equal(t, "Sheuly Soap", first.ProductName)
	require.NotNil(t, first.DiscountAmount)
	assert.True(t, first.DiscountAmount.Equal(decimal.NewFromInt(50)))
	require.NotNil(t, first.SampleProductID)
	assert.Equal(t, int64(200), *first.SampleProductID)
	assert.Equal(t, "Sheuly Mini", *first.SampleProductName)
	assert.Equal(t, 2, *first.SampleQty)
	assert.Nil(t, first.GiftItemCode)
	assert.Nil(t, first.AdditionalDiscountAmount)

	second := offers[1]
	require.NotNil(t, second.GiftItemCode)
	assert.Equal(t, "101", *second.GiftItemCode)
	assert.Equal(t, "Mango Juice", *second.GiftProductName)
	assert.True(t, second.AdditionalDiscountAmount.Equal(decimal.NewFromInt(10)))
	assert.Nil(t, second.SampleProductID)

	none, err := repo.Offers(context.Background(), 101)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogRepository_DistributorStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	stock, err := repo.DistributorStock(ctx, 100, "SR-1")
	require.NoError(t, err)
	assert.Equal(t, 30, stock.Stock)
	assert.Equal(t, int64(7), stock.DistributorID)
	assert.Equal(t, 0, stock.Ordered)

	_, err = NewOrderRepository(db).SaveOrder(ctx, sampleOrder(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	stock, err = repo.DistributorStock(ctx, 100, "SR-3")
	require.NoError(t, err)
	assert.Equal(t, 12, stock.Ordered, "заказы SR того же дистрибьютора учитываются")
	assert.Equal(t, 30, stock.Stock, "остаток не резервируется")

	_, err = repo.DistributorStock(ctx, 101, "SR-1")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = repo.DistributorStock(ctx, 100, "SR-404")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestOrderRepository_SaveOrderAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	id, err := repo.SaveOrder(ctx, sampleOrder(day))
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "SR-1", got.UserID)
	assert.Equal(t, models.OrderVisitType, got.VisitType)
	assert.Equal(t, 1, got.Status)
	assert.Equal(t, 0, got.Draft)
	assert.Equal(t, 1, got.GeoStatus)
	assert.True(t, got.OrderDate.Equal(day))
	require.Len(t, got.Lines, 2)

	line := got.Lines[0]
	assert.Equal(t, id, line.OrderID)
	assert.Equal(t, 12, line.Qty)
	assert.True(t, line.OrgTotal.Equal(decimal.NewFromInt(1200)))
	assert.True(t, line.Total.Equal(decimal.NewFromInt(1150)))
	assert.Equal(t, models.ProductStatusContinue, line.ProductStatus)
	assert.Equal(t, 1, line.IsSample)
	require.NotNil(t, line.SampleProductCode)
	assert.Equal(t, int64(200), *line.SampleProductCode)
	assert.Nil(t, line.GiftItemCode)
	assert.True(t, got.Lines[1].Price.Equal(decimal.RequireFromString("25.5")))
}

func TestOrderRepository_SaveOrder_Errors(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("пустой заказ", func(t *testing.T) {
		order := sampleOrder(day)
		order.Lines = nil
		_, err := repo.SaveOrder(ctx, order)
		assert.ErrorIs(t, err, models.ErrEmptyOrder)
	})

	t.Run("ошибка строки откатывает весь заказ", func(t *testing.T) {
		order := sampleOrder(day)
		order.Lines[1].Qty = 0

		_, err := repo.SaveOrder(ctx, order)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка при добавлении строки заказа")

		assert.Equal(t, 0, countRows(t, db, "orders"))
		assert.Equal(t, 0, countRows(t, db, "order_lines"))
	})
}

func TestOrderRepository_SaveVisit(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	id, err := repo.SaveVisit(ctx, models.Order{
		UserID: "SR-1", RetailerID: 11, OrderDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DeviceType: models.DeviceType, Status: 1, VisitType: "Outlet closed",
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Outlet closed", got.VisitType)
	assert.Equal(t, 1, got.Status)
	assert.Equal(t, 0, got.Draft)
	assert.Equal(t, 0, got.GeoStatus)
	assert.Nil(t, got.Latitude)
	assert.Empty(t, got.Lines)
	assert.Equal(t, 0, countRows(t, db, "order_lines"))

	_, err = repo.SaveVisit(ctx, sampleOrder(time.Now()))
	assert.Error(t, err)
}

func TestOrderRepository_Get_NotFound(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	_, err := repo.Get(context.Background(), 999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
