package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"field-sales/internal/metric"
	"field-sales/internal/models"
	"field-sales/internal/pricing"
	"field-sales/internal/trace"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// CartStore - хранилище снимков корзины.
//
//go:generate mockery --name=CartStore --output=./mocks --case=underscore
type CartStore interface {
	Load(ctx context.Context, sessionID string) (models.CartSession, error)
	Save(ctx context.Context, session models.CartSession) error
	Clear(ctx context.Context, sessionID string) error
}

// Catalog - то, что корзине нужно от каталога.
//
//go:generate mockery --name=Catalog --output=./mocks --case=underscore
type Catalog interface {
	Product(ctx context.Context, id int64) (models.Product, error)
	Stock(ctx context.Context, productID int64, userID string) *models.DistributorStock
	ResolveOffer(ctx context.Context, productID int64, quantity int) *models.ResolvedOffer
}

// CartView - корзина вместе с рассчитанными строками и итогами.
type CartView struct {
	Cart   models.CartSession `json:"cart"`
	Lines  []pricing.Line     `json:"lines"`
	Totals pricing.Totals     `json:"totals"`
}

func newCartView(cart models.CartSession) CartView {
	return CartView{
		Cart:   cart,
		Lines:  pricing.ComputeLines(cart.Items),
		Totals: pricing.Aggregate(cart.Items),
	}
}

// CartService ведет корзину SR. Любое изменение строки проходит проверку остатка,
// отклоненное изменение корзину не трогает.
type CartService struct {
	store    CartStore
	catalog  Catalog
	validate *validator.Validate
	now      func() time.Time
}

func NewCartService(store CartStore, catalog Catalog) *CartService {
	return &CartService{
		store:    store,
		catalog:  catalog,
		validate: newValidator(),
		now:      time.Now,
	}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (CartView, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return CartView{}, fmt.Errorf("ошибка загрузки корзины: %w", err)
	}
	return newCartView(cart), nil
}

// Select меняет маршрут, точку или категорию. Новый маршрут сбрасывает выбранную точку.
func (s *CartService) Select(ctx context.Context, sessionID string, req models.SelectionRequest) (CartView, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return CartView{}, fmt.Errorf("ошибка загрузки корзины: %w", err)
	}

	if req.UserID != "" {
		cart.UserID = req.UserID
	}
	if req.Route != nil {
		if cart.Route == nil || cart.Route.ID != req.Route.ID {
			cart.Retailer = nil
		}
		cart.Route = req.Route
	}
	if req.Retailer != nil {
		cart.Retailer = req.Retailer
	}
	if req.Category != nil {
		cart.Category = req.Category
	}

	return s.save(ctx, cart)
}

// AddItem добавляет товар в начало корзины с предложением под количество.
func (s *CartService) AddItem(ctx context.Context, sessionID string, req models.AddItemRequest) (CartView, error) {
	ctx, span := otel.Tracer(trace.Name).Start(ctx, "Cart.AddItem")
	defer span.End()
	span.SetAttributes(attribute.String("session_id", sessionID), attribute.Int64("product_id", req.ProductID))

	if err := s.validate.Struct(req); err != nil {
		return CartView{}, validationError(err)
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return CartView{}, fmt.Errorf("ошибка загрузки корзины: %w", err)
	}
	userID := req.UserID
	if userID == "" {
		userID = cart.UserID
	}
	if userID == "" {
		return CartView{}, &models.ValidationError{Field: "user_id"}
	}
	if cart.Find(req.ProductID) >= 0 {
		return CartView{}, models.ErrDuplicateItem
	}

	product, err := s.catalog.Product(ctx, req.ProductID)
	if errors.Is(err, models.ErrNotFound) {
		return CartView{}, &models.ValidationError{Field: "product_id", Reason: "unknown product"}
	}
	if err != nil {
		return CartView{}, fmt.Errorf("ошибка получения товара: %w", err)
	}

	qty := models.CoerceQuantity(float64(req.Quantity))
	if err := s.checkStock(ctx, req.ProductID, qty, userID); err != nil {
		span.RecordError(err)
		return CartView{}, err
	}

	item := models.CartItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    qty,
		CtnFactor:   product.CtnFactor,
		Offer:       s.catalog.ResolveOffer(ctx, product.ID, qty),
	}

	next := cart.Clone()
	next.UserID = userID
	next.Items = append([]models.CartItem{item}, next.Items...)
	return s.save(ctx, next)
}

// UpdateQuantity меняет количество и заново подбирает предложение.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, req models.UpdateQuantityRequest) (CartView, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return CartView{}, fmt.Errorf("ошибка загрузки корзины: %w", err)
	}
	idx := cart.Find(productID)
	if idx < 0 {
		return CartView{}, fmt.Errorf("товар %d в корзине: %w", productID, models.ErrNotFound)
	}

	qty := models.CoerceQuantity(float64(req.Quantity))
	if err := s.checkStock(ctx, productID, qty, cart.UserID); err != nil {
		return CartView{}, err
	}

	next := cart.Clone()
	next.Items[idx].Quantity = qty
	next.Items[idx].Offer = s.catalog.ResolveOffer(ctx, productID, qty)
	return s.save(ctx, next)
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int64) (CartView, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return CartView{}, fmt.Errorf("ошибка загрузки корзины: %w", err)
	}
	idx := cart.Find(productID)
	if idx < 0 {
		return CartView{}, fmt.Errorf("товар %d в корзине: %w", productID, models.ErrNotFound)
	}

	next := cart.Clone()
	next.Items = append(next.Items[:idx], next.Items[idx+1:]...)
	return s.save(ctx, next)
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("ошибка очистки корзины: %w", err)
	}
	return nil
}

func (s *CartService) checkStock(ctx context.Context, productID int64, qty int, userID string) error {
	stock := s.catalog.Stock(ctx, productID, userID)
	if err := pricing.CheckStock(productID, qty, stock); err != nil {
		metric.StockRejectionsTotal.Inc()
		slog.InfoContext(ctx, "изменение корзины отклонено по остатку",
			slog.Int64("product_id", productID), slog.Int("requested", qty))
		return err
	}
	return nil
}

func (s *CartService) save(ctx context.Context, cart models.CartSession) (CartView, error) {
	cart.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, cart); err != nil {
		return CartView{}, fmt.Errorf("ошибка сохранения корзины: %w", err)
	}
	return newCartView(cart), nil
}
