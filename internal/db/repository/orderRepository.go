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
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SaveOrder - сохраняет заголовок заказа и все строки в одной транзакции.
// При любой ошибке откатывается все: заголовок без строк не остается.
func (r *OrderRepository) SaveOrder(ctx context.Context, order models.Order) (int64, error) {
	if len(order.Lines) == 0 {
		return 0, models.ErrEmptyOrder
	}

	// Начинаем транзакцию
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("ошибка начала транзакции: %w", err)
	}

	defer func() { //при ошибке откатываем транзакцию, после Commit это no-op
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.ErrorContext(ctx, "не удалось откатить транзакцию", sl.Err(err))
		}
	}()

	// Сначала заголовок, его id нужен строкам
	orderID, err := insertHeader(ctx, tx, order)
	if err != nil {
		return 0, err
	}

	for _, line := range order.Lines {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_lines (order_id, product_id, price, qty, org_total, total, ctn_factor,
                discount_amount, s_discount_amount, additional_discount_amount, product_status,
                is_sample, sample_qty, sample_product_code, is_gift, gift_item_code, gift_item_qty)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
			orderID, line.ProductID, line.Price, line.Qty, line.OrgTotal, line.Total, line.CtnFactor,
			line.DiscountAmount, line.SDiscountAmount, line.AdditionalDiscountAmount, line.ProductStatus,
			line.IsSample, line.SampleQty, line.SampleProductCode, line.IsGift, line.GiftItemCode, line.GiftItemQty,
		)
		if err != nil {
			return 0, fmt.Errorf("ошибка при добавлении строки заказа (товар %d): %w", line.ProductID, err)
		}
	}

	// В случае успеха фиксируем изменения
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("ошибка фиксации заказа: %w", err)
	}
	return orderID, nil
}

// SaveVisit - сохраняет визит без заказа: только заголовок.
func (r *OrderRepository) SaveVisit(ctx context.Context, visit models.Order) (int64, error) {
	if len(visit.Lines) != 0 {
		return 0, fmt.Errorf("визит не может содержать строки заказа")
	}
	return insertHeader(ctx, r.db, visit)
}

func insertHeader(ctx context.Context, q rowQuerier, order models.Order) (int64, error) {
	visitType := order.VisitType
	if visitType == "" {
		visitType = models.OrderVisitType
	}

	var id int64
	err := q.QueryRowContext(ctx,
		`INSERT INTO orders (user_id, retailer_id, order_date, device_type, status, draft,
            visit_type, latitude, longitude, geo_status)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
         RETURNING id`,
		order.UserID, order.RetailerID, order.OrderDate.Format(time.DateOnly), order.DeviceType,
		order.Status, order.Draft, visitType, order.Latitude, order.Longitude, order.GeoStatus,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка при добавлении заголовка заказа в БД: %w", err)
	}
	return id, nil
}

// Get - заказ или визит по id вместе со строками.
func (r *OrderRepository) Get(ctx context.Context, id int64) (models.Order, error) {
	var (
		order     models.Order
		orderDate string
		lat, lng  sql.NullFloat64
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, retailer_id, order_date, device_type, status, draft, visit_type,
                latitude, longitude, geo_status
         FROM orders WHERE id = $1`, id).
		Scan(&order.ID, &order.UserID, &order.RetailerID, &orderDate, &order.DeviceType, &order.Status,
			&order.Draft, &order.VisitType, &lat, &lng, &order.GeoStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, fmt.Errorf("заказ %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("ошибка при получении заказа: %w", err)
	}
	order.Latitude = nullFloat(lat)
	order.Longitude = nullFloat(lng)
	if order.OrderDate, err = parseOrderDate(orderDate); err != nil {
		return models.Order{}, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, order_id, product_id, price, qty, org_total, total, COALESCE(ctn_factor, 0),
                discount_amount, s_discount_amount, additional_discount_amount, COALESCE(product_status, ''),
                is_sample, sample_qty, sample_product_code, is_gift, gift_item_code, gift_item_qty
         FROM order_lines WHERE order_id = $1 ORDER BY id`, id)
	if err != nil {
		return models.Order{}, fmt.Errorf("ошибка при получении строк заказа: %w", err)
	}
	defer closeRows(ctx, rows)

	for rows.Next() {
		var (
			line       models.OrderLine
			sampleCode sql.NullInt64
			giftCode   sql.NullString
		)
		if err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID, &line.Price, &line.Qty, &line.OrgTotal,
			&line.Total, &line.CtnFactor, &line.DiscountAmount, &line.SDiscountAmount,
			&line.AdditionalDiscountAmount, &line.ProductStatus, &line.IsSample, &line.SampleQty,
			&sampleCode, &line.IsGift, &giftCode, &line.GiftItemQty); err != nil {
			return models.Order{}, fmt.Errorf("ошибка при чтении строки заказа: %w", err)
		}
		line.SampleProductCode = nullInt64(sampleCode)
		line.GiftItemCode = nullString(giftCode)
		order.Lines = append(order.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return models.Order{}, fmt.Errorf("ошибка при чтении строк заказа: %w", err)
	}
	return order, nil
}

// parseOrderDate: postgres отдает DATE как time.Time (строкой после Scan в string - RFC3339),
// sqlite хранит TEXT "YYYY-MM-DD".
func parseOrderDate(s string) (time.Time, error) {
	for _, layout := range []string{time.DateOnly, time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("неизвестный формат order_date %q", s)
}
