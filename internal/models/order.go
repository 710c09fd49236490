package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// OrderVisitType - значение visit_type, которым в БД помечается заказ с товарами.
	OrderVisitType = "Order"
	// DeviceType - источник записи в БД.
	DeviceType = "WebApplication"
	// ProductStatusContinue - статус позиции в строке заказа.
	ProductStatusContinue = "Continue"
)

// VisitTypes - допустимые причины визита без заказа.
var VisitTypes = []string{
	"Outlet closed",
	"Stock Available",
	"Shopkeeper Absent",
	"Fund Crisis",
	"Disagree",
}

// IsVisitType проверяет, что причина визита входит в фиксированный список.
func IsVisitType(v string) bool {
	for _, t := range VisitTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Order - заголовок заказа или визита. Для визита Lines пустой,
// для заказа VisitType пустой (в БД пишется OrderVisitType).
type Order struct {
	ID         int64       `json:"id"`
	UserID     string      `json:"user_id"`
	RetailerID int64       `json:"retailer_id"`
	OrderDate  time.Time   `json:"order_date"`
	DeviceType string      `json:"device_type"`
	Status     int         `json:"status"`
	Draft      int         `json:"draft"`
	VisitType  string      `json:"visit_type"`
	Latitude   *float64    `json:"latitude"`
	Longitude  *float64    `json:"longitude"`
	GeoStatus  int         `json:"geo_status"`
	Lines      []OrderLine `json:"lines,omitempty"`
}

// IsVisit - запись без товаров.
func (o Order) IsVisit() bool {
	return o.VisitType != "" && o.VisitType != OrderVisitType
}

// OrderLine - строка заказа в том виде, в котором она сохраняется.
type OrderLine struct {
	ID                       int64           `json:"id"`
	OrderID                  int64           `json:"order_id"`
	ProductID                int64           `json:"product_id"`
	Price                    decimal.Decimal `json:"price"`
	Qty                      int             `json:"qty"`
	OrgTotal                 decimal.Decimal `json:"org_total"`
	Total                    decimal.Decimal `json:"total"`
	CtnFactor                int             `json:"ctn_factor"`
	DiscountAmount           decimal.Decimal `json:"discount_amount"`
	SDiscountAmount          decimal.Decimal `json:"s_discount_amount"`
	AdditionalDiscountAmount decimal.Decimal `json:"additional_discount_amount"`
	ProductStatus            string          `json:"product_status"`
	IsSample                 int             `json:"is_sample"`
	SampleQty                int             `json:"sample_qty"`
	SampleProductCode        *int64          `json:"sample_product_code"`
	IsGift                   int             `json:"is_gift"`
	GiftItemCode             *string         `json:"gift_item_code"`
	GiftItemQty              int             `json:"gift_item_qty"`
}

// GeoPoint - координаты устройства. Оба поля необязательные.
type GeoPoint struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Status - 1, если устройство передало обе координаты.
func (g GeoPoint) Status() int {
	if g.Latitude != nil && g.Longitude != nil {
		return 1
	}
	return 0
}

// OrderItemRequest - товар и количество в прямом запросе на заказ.
type OrderItemRequest struct {
	ProductID int64    `json:"product_id" validate:"required,gt=0"`
	Quantity  Quantity `json:"quantity"`
}

// OrderRequest - запрос на оформление заказа.
type OrderRequest struct {
	UserID     string             `json:"user_id" validate:"required"`
	RetailerID int64              `json:"retailer_id" validate:"required,gt=0"`
	Latitude   *float64           `json:"latitude"`
	Longitude  *float64           `json:"longitude"`
	Items      []OrderItemRequest `json:"items" validate:"required,gt=0,dive"`
}

// VisitRequest - запрос на сохранение визита без заказа.
type VisitRequest struct {
	UserID     string   `json:"user_id" validate:"required"`
	RetailerID int64    `json:"retailer_id" validate:"required,gt=0"`
	VisitType  string   `json:"visit_type" validate:"required,visit_type"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

// SubmissionResult - ответ на успешное сохранение заказа или визита.
type SubmissionResult struct {
	OrderID   int64  `json:"order_id"`
	Kind      string `json:"kind"`
	OrderDate string `json:"order_date"`
	Message   string `json:"message"`
}

const (
	KindOrder = "order"
	KindVisit = "visit"
)

// SubmissionEvent публикуется в Kafka после фиксации транзакции.
type SubmissionEvent struct {
	EventID    string          `json:"event_id"`
	Kind       string          `json:"kind"`
	OrderID    int64           `json:"order_id"`
	UserID     string          `json:"user_id"`
	RetailerID int64           `json:"retailer_id"`
	VisitType  string          `json:"visit_type,omitempty"`
	OrderDate  string          `json:"order_date"`
	TotalQty   int             `json:"total_qty"`
	TotalNet   decimal.Decimal `json:"total_net"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// SubmissionEnvelope - сообщение из топика приема, в котором устройство без связи
// откладывает заказ или визит.
type SubmissionEnvelope struct {
	Kind  string        `json:"kind"`
	Order *OrderRequest `json:"order,omitempty"`
	Visit *VisitRequest `json:"visit,omitempty"`
}
