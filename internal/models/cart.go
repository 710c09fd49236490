package models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Selection - выбранный в интерфейсе элемент справочника (маршрут, точка, категория).
type Selection struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CartItem - товар в корзине вместе с предложением, выбранным при добавлении или
// последнем изменении количества.
type CartItem struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CtnFactor   int             `json:"ctn_factor"`
	Offer       *ResolvedOffer  `json:"offer"`
}

// CartSession - рабочая корзина одного устройства: выбранные маршрут, точка и категория
// плюс список товаров (новые сверху).
type CartSession struct {
	SessionID string     `json:"session_id"`
	UserID    string     `json:"user_id"`
	Route     *Selection `json:"route,omitempty"`
	Retailer  *Selection `json:"retailer,omitempty"`
	Category  *Selection `json:"category,omitempty"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCartSession - пустая корзина.
func NewCartSession(sessionID string) CartSession {
	return CartSession{SessionID: sessionID, Items: []CartItem{}}
}

// Find возвращает индекс товара в корзине или -1.
func (c CartSession) Find(productID int64) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Clone - глубокая копия списка товаров, чтобы изменения не протекали в исходный снимок.
func (c CartSession) Clone() CartSession {
	out := c
	out.Items = make([]CartItem, len(c.Items))
	copy(out.Items, c.Items)
	return out
}

// Quantity - количество товара. Из JSON принимается число или строка с числом,
// дробная часть отбрасывается, значения меньше 1 поднимаются до 1.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(raw) == 0 || string(raw) == "null" {
		*q = 1
		return nil
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return &ValidationError{Field: "quantity", Reason: fmt.Sprintf("%q is not a number", raw)}
	}
	*q = Quantity(CoerceQuantity(f))
	return nil
}

// CoerceQuantity приводит значение к целому >= 1.
func CoerceQuantity(f float64) int {
	if f < 1 {
		return 1
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// SelectionRequest - смена маршрута, точки или категории в корзине.
// При смене маршрута выбранная точка сбрасывается.
type SelectionRequest struct {
	UserID   string     `json:"user_id"`
	Route    *Selection `json:"route"`
	Retailer *Selection `json:"retailer"`
	Category *Selection `json:"category"`
}

// AddItemRequest - добавление товара в корзину.
type AddItemRequest struct {
	UserID    string   `json:"user_id"`
	ProductID int64    `json:"product_id" validate:"required,gt=0"`
	Quantity  Quantity `json:"quantity"`
}

// UpdateQuantityRequest - новое количество товара в корзине.
type UpdateQuantityRequest struct {
	Quantity Quantity `json:"quantity"`
}

// CartVisitRequest - визит по выбранной в корзине точке.
type CartVisitRequest struct {
	VisitType string   `json:"visit_type" validate:"required,visit_type"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
