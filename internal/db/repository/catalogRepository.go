package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"field-sales/internal/logger/sl"
	"field-sales/internal/models"

	"github.com/shopspring/decimal"
)

// retailersLimit - столько точек маршрута отдается за один запрос.
const retailersLimit = 500

type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Routes - маршруты, закрепленные за SR.
func (r *CatalogRepository) Routes(ctx context.Context, userID string) ([]models.Route, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT rl.id, rl.route_name, ar.day
         FROM sr_route_assignments ar
         INNER JOIN routes rl ON ar.route_id = rl.id
         WHERE ar.sr_code = $1
         ORDER BY rl.route_name, rl.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении маршрутов: %w", err)
	}
	defer closeRows(ctx, rows)

	routes := make([]models.Route, 0, 8)
	for rows.Next() {
		var route models.Route
		if err := rows.Scan(&route.ID, &route.Name, &route.Day); err != nil {
			return nil, fmt.Errorf("ошибка при чтении маршрута: %w", err)
		}
		routes = append(routes, route)
	}
	return routes, rows.Err()
}

// Retailers - точки маршрута SR, по которым на day еще нет ни заказа, ни визита.
func (r *CatalogRepository) Retailers(ctx context.Context, userID string, routeID int64, day time.Time) ([]models.Retailer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT rl.id, rl.retailer_name, rl.sr_id, rl.route_id,
                COALESCE(rl.proprietor_name, ''), COALESCE(rl.mobile_number, ''),
                COALESCE(rl.address, ''), COALESCE(rl.outlet_category, ''),
                rl.latitude, rl.longitude
         FROM sr_route_assignments ssin
         INNER JOIN retailers rl ON ssin.sr_code = rl.sr_id AND ssin.route_id = rl.route_id
         WHERE ssin.sr_code = $1
           AND ssin.route_id = $2
           AND NOT EXISTS (
               SELECT 1 FROM orders o WHERE o.retailer_id = rl.id AND o.order_date = $3
           )
         GROUP BY rl.id, rl.retailer_name, rl.sr_id, rl.route_id, rl.proprietor_name,
                  rl.mobile_number, rl.address, rl.outlet_category, rl.latitude, rl.longitude
         ORDER BY rl.id
         LIMIT $4`,
		userID, routeID, day.Format(time.DateOnly), retailersLimit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении точек: %w", err)
	}
	defer closeRows(ctx, rows)

	retailers := make([]models.Retailer, 0, 32)
	for rows.Next() {
		var (
			rt       models.Retailer
			lat, lng sql.NullFloat64
		)
		if err := rows.Scan(&rt.ID, &rt.Name, &rt.SRID, &rt.RouteID, &rt.ProprietorName,
			&rt.MobileNumber, &rt.Address, &rt.OutletCategory, &lat, &lng); err != nil {
			return nil, fmt.Errorf("ошибка при чтении точки: %w", err)
		}
		rt.Latitude = nullFloat(lat)
		rt.Longitude = nullFloat(lng)
		retailers = append(retailers, rt)
	}
	return retailers, rows.Err()
}

// Categories - активные категории по алфавиту.
func (r *CatalogRepository) Categories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category_name FROM product_categories WHERE status = 1 ORDER BY category_name`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении категорий: %w", err)
	}
	defer closeRows(ctx, rows)

	categories := make([]models.Category, 0, 16)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("ошибка при чтении категории: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

const productColumns = `id, category_id, COALESCE(brand_name, ''), COALESCE(sub_brand_name, ''), product_name,
                price, mrp, COALESCE(sku, ''), ctn_factor, COALESCE(product_status, '')`

// Products - все активные товары, кроме образцов.
// categoryID принимается, но не фильтрует выдачу: каталог отдается целиком.
func (r *CatalogRepository) Products(ctx context.Context, categoryID int64) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+`
         FROM products
         WHERE is_sample = 0 AND status = 1
         ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении товаров: %w", err)
	}
	defer closeRows(ctx, rows)

	products := make([]models.Product, 0, 128)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Product - активный товар по id.
func (r *CatalogRepository) Product(ctx context.Context, id int64) (models.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+`
         FROM products
         WHERE id = $1 AND is_sample = 0 AND status = 1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, fmt.Errorf("товар %d: %w", id, models.ErrNotFound)
	}
	return p, err
}

// Offers - активные предложения по товару вместе с названиями образца и подарка.
func (r *CatalogRepository) Offers(ctx context.Context, productID int64) ([]models.Offer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT o.id, o.product_id, pl_o.product_name, o.qty, o.discount_amount,
                o.sample_id, pl_s.product_name, o.sample_qty,
                o.gift_item_code, pl_g.product_name, o.gift_item_qty,
                o.additional_discount_amount
         FROM offers o
         INNER JOIN products pl_o ON o.product_id = pl_o.id
         LEFT JOIN products pl_s ON o.sample_id = pl_s.id
         LEFT JOIN products pl_g ON CAST(pl_g.id AS TEXT) = o.gift_item_code
         WHERE o.product_id = $1 AND o.status = 1
         ORDER BY o.id`, productID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении предложений: %w", err)
	}
	defer closeRows(ctx, rows)

	offers := make([]models.Offer, 0, 4)
	for rows.Next() {
		var (
			o                              models.Offer
			discount, additional           decimal.NullDecimal
			sampleID                       sql.NullInt64
			sampleName, giftCode, giftName sql.NullString
			sampleQty, giftQty             sql.NullInt64
		)
		if err := rows.Scan(&o.ID, &o.ProductID, &o.ProductName, &o.ThresholdQty, &discount,
			&sampleID, &sampleName, &sampleQty,
			&giftCode, &giftName, &giftQty,
			&additional); err != nil {
			return nil, fmt.Errorf("ошибка при чтении предложения: %w", err)
		}
		o.DiscountAmount = nullDecimal(discount)
		o.SampleProductID = nullInt64(sampleID)
		o.SampleProductName = nullString(sampleName)
		o.SampleQty = nullInt(sampleQty)
		o.GiftItemCode = nullString(giftCode)
		o.GiftProductName = nullString(giftName)
		o.GiftQty = nullInt(giftQty)
		o.AdditionalDiscountAmount = nullDecimal(additional)
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// DistributorStock - остаток товара у дистрибьютора, за которым закреплен SR,
// и сколько единиц уже заказано SR этого дистрибьютора.
func (r *CatalogRepository) DistributorStock(ctx context.Context, productID int64, userID string) (models.DistributorStock, error) {
	var s models.DistributorStock
	err := r.db.QueryRowContext(ctx,
		`SELECT ds.id, ds.distributor_id, ds.product_id, ds.stock, ds.stock_per_pis,
                COALESCE((
                    SELECT SUM(ol.qty)
                    FROM order_lines ol
                    INNER JOIN orders o ON ol.order_id = o.id
                    WHERE o.status = 1
                      AND ol.product_id = $1
                      AND o.user_id IN (
                          SELECT t.sr_id FROM distributor_territories t
                          WHERE t.distributor_id = ds.distributor_id)
                ), 0)
         FROM distributor_stock ds
         WHERE ds.product_id = $1
           AND ds.distributor_id = (
               SELECT t.distributor_id FROM distributor_territories t WHERE t.sr_id = $2 LIMIT 1)
         LIMIT 1`, productID, userID).
		Scan(&s.ID, &s.DistributorID, &s.ProductID, &s.Stock, &s.StockPerPackUnit, &s.Ordered)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DistributorStock{}, fmt.Errorf("остаток товара %d: %w", productID, models.ErrNotFound)
	}
	if err != nil {
		return models.DistributorStock{}, fmt.Errorf("ошибка при получении остатка: %w", err)
	}
	return s, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.CategoryID, &p.BrandName, &p.SubBrandName, &p.Name,
		&p.Price, &p.MRP, &p.SKU, &p.CtnFactor, &p.ProductStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return p, err
	}
	if err != nil {
		return p, fmt.Errorf("ошибка при чтении товара: %w", err)
	}
	return p, nil
}

func closeRows(ctx context.Context, rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		slog.WarnContext(ctx, "ошибка при закрытии rows", sl.Err(err))
	}
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullDecimal(v decimal.NullDecimal) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	return &v.Decimal
}

func nullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
