// Package service содержит бизнес-логику приложения: чтение каталога с кэшем,
// работу с корзиной торгового представителя и оформление заказов и визитов.
package service

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"field-sales/internal/cache"
	"field-sales/internal/logger/sl"
	"field-sales/internal/metric"
	"field-sales/internal/models"
	"field-sales/internal/pricing"
	"field-sales/internal/trace"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// CatalogRepository - чтение справочников и остатков из БД.
//
//go:generate mockery --name=CatalogRepository --output=./mocks --case=underscore
type CatalogRepository interface {
	Routes(ctx context.Context, userID string) ([]models.Route, error)
	Retailers(ctx context.Context, userID string, routeID int64, day time.Time) ([]models.Retailer, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Products(ctx context.Context, categoryID int64) ([]models.Product, error)
	Product(ctx context.Context, id int64) (models.Product, error)
	Offers(ctx context.Context, productID int64) ([]models.Offer, error)
	DistributorStock(ctx context.Context, productID int64, userID string) (models.DistributorStock, error)
}

const allKey = "all"

// CatalogService отдает справочники. Ошибки чтения не прерывают работу SR:
// они логируются, а наружу уходит пустой результат.
// Категории, товары и маршруты кэшируются, предложения и остатки читаются всегда заново.
type CatalogService struct {
	repo       CatalogRepository
	categories *cache.TTL[[]models.Category]
	products   *cache.TTL[[]models.Product]
	routes     *cache.TTL[[]models.Route]
	now        func() time.Time
}

func NewCatalogService(repo CatalogRepository, ttl, cleanupInterval time.Duration) *CatalogService {
	return &CatalogService{
		repo:       repo,
		categories: cache.New[[]models.Category]("categories", ttl, cleanupInterval),
		products:   cache.New[[]models.Product]("products", ttl, cleanupInterval),
		routes:     cache.New[[]models.Route]("routes", ttl, cleanupInterval),
		now:        time.Now,
	}
}

func (s *CatalogService) Routes(ctx context.Context, userID string) []models.Route {
	if routes, ok := s.routes.Get(userID); ok {
		return routes
	}
	start := time.Now()
	routes, err := s.repo.Routes(ctx, userID)
	metric.ObserveDB("routes", start, err)
	if err != nil {
		slog.WarnContext(ctx, "не удалось получить маршруты", slog.String("user_id", userID), sl.Err(err))
		return []models.Route{}
	}
	s.routes.Set(userID, routes)
	return routes
}

// Retailers - точки маршрута без заказа и визита за сегодня.
func (s *CatalogService) Retailers(ctx context.Context, userID string, routeID int64) []models.Retailer {
	start := time.Now()
	retailers, err := s.repo.Retailers(ctx, userID, routeID, orderDay(s.now()))
	metric.ObserveDB("retailers", start, err)
	if err != nil {
		slog.WarnContext(ctx, "не удалось получить точки", slog.Int64("route_id", routeID), sl.Err(err))
		return []models.Retailer{}
	}
	return retailers
}

func (s *CatalogService) Categories(ctx context.Context) []models.Category {
	if categories, ok := s.categories.Get(allKey); ok {
		return categories
	}
	start := time.Now()
	categories, err := s.repo.Categories(ctx)
	metric.ObserveDB("categories", start, err)
	if err != nil {
		slog.WarnContext(ctx, "не удалось получить категории", sl.Err(err))
		return []models.Category{}
	}
	s.categories.Set(allKey, categories)
	return categories
}

// Products - весь активный каталог; categoryID не фильтрует выдачу.
func (s *CatalogService) Products(ctx context.Context, categoryID int64) []models.Product {
	if products, ok := s.products.Get(allKey); ok {
		return products
	}
	start := time.Now()
	products, err := s.repo.Products(ctx, categoryID)
	metric.ObserveDB("products", start, err)
	if err != nil {
		slog.WarnContext(ctx, "не удалось получить товары", sl.Err(err))
		return []models.Product{}
	}
	s.products.Set(allKey, products)
	return products
}

func (s *CatalogService) Product(ctx context.Context, id int64) (models.Product, error) {
	start := time.Now()
	p, err := s.repo.Product(ctx, id)
	metric.ObserveDB("product", start, err)
	return p, err
}

func (s *CatalogService) Offers(ctx context.Context, productID int64) []models.Offer {
	start := time.Now()
	offers, err := s.repo.Offers(ctx, productID)
	metric.ObserveDB("offers", start, err)
	if err != nil {
		slog.WarnContext(ctx, "не удалось получить предложения", slog.Int64("product_id", productID), sl.Err(err))
		return []models.Offer{}
	}
	return offers
}

// Stock - остаток у дистрибьютора SR; nil, если строки нет или БД недоступна.
func (s *CatalogService) Stock(ctx context.Context, productID int64, userID string) *models.DistributorStock {
	start := time.Now()
	stock, err := s.repo.DistributorStock(ctx, productID, userID)
	metric.ObserveDB("stock", start, err)
	if err != nil {
		slog.WarnContext(ctx, "нет данных об остатке",
			slog.Int64("product_id", productID), slog.String("user_id", userID), sl.Err(err))
		return nil
	}
	return &stock
}

// ResolveOffer читает предложения товара и выбирает подходящее под количество.
func (s *CatalogService) ResolveOffer(ctx context.Context, productID int64, quantity int) *models.ResolvedOffer {
	ctx, span := otel.Tracer(trace.Name).Start(ctx, "Catalog.ResolveOffer")
	defer span.End()
	span.SetAttributes(attribute.Int64("product_id", productID), attribute.Int("quantity", quantity))

	start := time.Now()
	offers, err := s.repo.Offers(ctx, productID)
	metric.ObserveDB("offers", start, err)
	if err != nil {
		span.RecordError(err)
		metric.OffersResolvedTotal.WithLabelValues("error").Inc()
		slog.WarnContext(ctx, "предложения недоступны, строка без скидки",
			slog.Int64("product_id", productID), sl.Err(err))
		return nil
	}

	resolved := pricing.ResolveOffer(productID, quantity, offers)
	if resolved == nil {
		metric.OffersResolvedTotal.WithLabelValues("none").Inc()
		return nil
	}
	span.SetAttributes(attribute.String("offer_id", strconv.FormatInt(resolved.OfferID, 10)))
	metric.OffersResolvedTotal.WithLabelValues("applied").Inc()
	return resolved
}

// Warm - насыщение кэша категориями и товарами при старте.
func (s *CatalogService) Warm(ctx context.Context) error {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return err
	}
	products, err := s.repo.Products(ctx, 0)
	if err != nil {
		return err
	}
	s.categories.Set(allKey, categories)
	s.products.Set(allKey, products)
	slog.InfoContext(ctx, "кэш каталога прогрет",
		slog.Int("categories", len(categories)), slog.Int("products", len(products)))
	return nil
}

// GC запускает уборщиков всех кэшей каталога и ждет их остановки.
func (s *CatalogService) GC(ctx context.Context) error {
	var wg sync.WaitGroup
	for _, gc := range []func(context.Context) error{s.categories.GC, s.products.GC, s.routes.GC} {
		gc := gc
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = gc(ctx)
		}()
	}
	wg.Wait()
	return ctx.Err()
}

func (s *CatalogService) Stop() {
	s.categories.Stop()
	s.products.Stop()
	s.routes.Stop()
}
