// Package models содержит описания структур данных (DTO),
// которые используются во всем приложении и для маппинга JSON/DB.
package models

import "github.com/shopspring/decimal"

// Route - маршрут, закрепленный за торговым представителем (SR) на определенный день недели.
type Route struct {
	ID   int64  `json:"id"`
	Name string `json:"route_name"`
	Day  string `json:"day"`
}

// Retailer - торговая точка на маршруте.
type Retailer struct {
	ID             int64    `json:"id"`
	Name           string   `json:"retailer_name"`
	SRID           string   `json:"sr_id"`
	RouteID        int64    `json:"route_id"`
	ProprietorName string   `json:"proprietor_name"`
	MobileNumber   string   `json:"mobile_number"`
	Address        string   `json:"address"`
	OutletCategory string   `json:"outlet_category"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

// Category - активная категория товаров.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"category_name"`
}

// Product - позиция каталога, доступная для заказа.
type Product struct {
	ID            int64               `json:"id"`
	CategoryID    int64               `json:"category_id"`
	BrandName     string              `json:"brand_name"`
	SubBrandName  string              `json:"sub_brand_name"`
	Name          string              `json:"product_name"`
	Price         decimal.Decimal     `json:"price"`
	MRP           decimal.NullDecimal `json:"mrp"`
	SKU           string              `json:"sku"`
	CtnFactor     int                 `json:"ctn_factor"`
	ProductStatus string              `json:"product_status"`
}

// Offer - промо-правило в том виде, в котором оно лежит в каталоге.
// Необязательные поля остаются nil, нормализация выполняется в pricing.Normalize.
type Offer struct {
	ID                       int64            `json:"id"`
	ProductID                int64            `json:"product_id"`
	ProductName              string           `json:"product_name"`
	ThresholdQty             int              `json:"qty"`
	DiscountAmount           *decimal.Decimal `json:"discount_amount"`
	SampleProductID          *int64           `json:"sample_id"`
	SampleProductName        *string          `json:"sample_product_name"`
	SampleQty                *int             `json:"sample_qty"`
	GiftItemCode             *string          `json:"gift_item_code"`
	GiftProductName          *string          `json:"gift_product_name"`
	GiftQty                  *int             `json:"gift_item_qty"`
	AdditionalDiscountAmount *decimal.Decimal `json:"additional_discount_amount"`
}

// ResolvedOffer - выбранное для строки заказа предложение после нормализации:
// числовые поля не бывают пустыми, идентификаторы образца и подарка либо заданы, либо nil.
type ResolvedOffer struct {
	OfferID                  int64           `json:"offer_id"`
	ProductID                int64           `json:"product_id"`
	ProductName              string          `json:"product_name"`
	ThresholdQty             int             `json:"qty"`
	DiscountAmount           decimal.Decimal `json:"discount_amount"`
	SampleProductID          *int64          `json:"sample_id"`
	SampleProductName        *string         `json:"sample_product_name"`
	SampleQty                int             `json:"sample_qty"`
	GiftItemCode             *string         `json:"gift_item_code"`
	GiftProductName          *string         `json:"gift_product_name"`
	GiftQty                  int             `json:"gift_item_qty"`
	AdditionalDiscountAmount decimal.Decimal `json:"additional_discount_amount"`
}

// DistributorStock - остаток товара у дистрибьютора, за которым закреплен SR.
// Ordered - сколько единиц уже стоит в активных заказах SR этого дистрибьютора (только для справки).
type DistributorStock struct {
	ID               int64 `json:"id"`
	DistributorID    int64 `json:"distributor_id"`
	ProductID        int64 `json:"product_id"`
	Stock            int   `json:"stock"`
	StockPerPackUnit int   `json:"stock_per_pis"`
	Ordered          int   `json:"pis"`
}
