package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"field-sales/internal/logger/sl"
	"field-sales/internal/metric"
	"field-sales/internal/models"
	"field-sales/internal/pricing"
	"field-sales/internal/trace"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// OrderRepository описывает контракт для постоянного хранения заказов и визитов.
//
//go:generate mockery --name=OrderRepository --output=./mocks --case=underscore
type OrderRepository interface {
	SaveOrder(ctx context.Context, order models.Order) (int64, error)
	SaveVisit(ctx context.Context, visit models.Order) (int64, error)
	Get(ctx context.Context, id int64) (models.Order, error)
}

// OrderCache - сохраненные заказы в оперативной памяти.
//
//go:generate mockery --name=OrderCache --output=./mocks --case=underscore
type OrderCache interface {
	Set(key string, order models.Order)
	Get(key string) (models.Order, bool)
}

// EventPublisher отправляет событие о сохраненном заказе или визите.
//
//go:generate mockery --name=EventPublisher --output=./mocks --case=underscore
type EventPublisher interface {
	Publish(ctx context.Context, event models.SubmissionEvent) error
}

// SubmissionService оформляет заказы и визиты: из прямого запроса, из корзины
// или из топика приема. Заказ сохраняется целиком в одной транзакции.
type SubmissionService struct {
	repo      OrderRepository
	cache     OrderCache
	catalog   Catalog
	carts     CartStore
	publisher EventPublisher
	validate  *validator.Validate
	now       func() time.Time
}

func NewSubmissionService(repo OrderRepository, orderCache OrderCache, catalog Catalog, carts CartStore, publisher EventPublisher) *SubmissionService {
	return &SubmissionService{
		repo:      repo,
		cache:     orderCache,
		catalog:   catalog,
		carts:     carts,
		publisher: publisher,
		validate:  newValidator(),
		now:       time.Now,
	}
}

// SubmitOrder - заказ из прямого запроса: цены и предложения берутся из каталога.
func (s *SubmissionService) SubmitOrder(ctx context.Context, req models.OrderRequest) (models.SubmissionResult, error) {
	ctx, span := otel.Tracer(trace.Name).Start(ctx, "Submission.SubmitOrder")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return models.SubmissionResult{}, validationError(err)
	}
	span.SetAttributes(attribute.String("user_id", req.UserID), attribute.Int64("retailer_id", req.RetailerID))

	items := make([]models.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		product, err := s.catalog.Product(ctx, it.ProductID)
		if errors.Is(err, models.ErrNotFound) {
			return models.SubmissionResult{}, &models.ValidationError{Field: "product_id", Reason: "unknown product " + strconv.FormatInt(it.ProductID, 10)}
		}
		if err != nil {
			return models.SubmissionResult{}, fmt.Errorf("ошибка получения товара: %w", err)
		}
		qty := models.CoerceQuantity(float64(it.Quantity))
		items = append(items, models.CartItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    qty,
			CtnFactor:   product.CtnFactor,
			Offer:       s.catalog.ResolveOffer(ctx, product.ID, qty),
		})
	}

	geo := models.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude}
	return s.saveOrder(ctx, req.UserID, req.RetailerID, geo, items)
}

// SubmitVisit - визит без заказа: только заголовок с причиной.
func (s *SubmissionService) SubmitVisit(ctx context.Context, req models.VisitRequest) (models.SubmissionResult, error) {
	ctx, span := otel.Tracer(trace.Name).Start(ctx, "Submission.SubmitVisit")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return models.SubmissionResult{}, validationError(err)
	}
	span.SetAttributes(attribute.String("visit_type", req.VisitType))

	geo := models.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude}
	return s.saveVisit(ctx, req.UserID, req.RetailerID, req.VisitType, geo)
}

// SubmitCart оформляет корзину как заказ с предложениями, выбранными при добавлении строк.
// После успешного сохранения корзина очищается, при ошибке остается как была.
func (s *SubmissionService) SubmitCart(ctx context.Context, sessionID string, geo models.GeoPoint) (models.SubmissionResult, error) {
	ctx, span := otel.Tracer(trace.Name).Start(ctx, "Submission.SubmitCart")
	defer span.End()
	span.SetAttributes(attribute.String("session_id", sessionID))

	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return models.SubmissionResult{}, fmt.Errorf("ошибка загрузки корзины: %w", err)
	}
	if err := requireSelection(cart); err != nil {
		return models.SubmissionResult{}, err
	}
	if len(cart.Items) == 0 {
		return models.SubmissionResult{}, &models.ValidationError{Field: "items"}
	}

	res, err := s.saveOrder(ctx, cart.UserID, cart.Retailer.ID, geo, cart.Items)
	if err != nil {
		return models.SubmissionResult{}, err
	}
	s.clearCart(ctx, sessionID)
	return res, nil
}

// SubmitCartVisit сохраняет визит по выбранной в корзине точке и очищает корзину.
func (s *SubmissionService) SubmitCartVisit(ctx context.Context, sessionID string, req models.CartVisitRequest) (models.SubmissionResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.SubmissionResult{}, validationError(err)
	}
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return models.SubmissionResult{}, fmt.Errorf("ошибка загрузки корзины: %w", err)
	}
	if err := requireSelection(cart); err != nil {
		return models.SubmissionResult{}, err
	}

	geo := models.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude}
	res, err := s.saveVisit(ctx, cart.UserID, cart.Retailer.ID, req.VisitType, geo)
	if err != nil {
		return models.SubmissionResult{}, err
	}
	s.clearCart(ctx, sessionID)
	return res, nil
}

// GetOrder - заказ или визит: сначала кэш, потом БД.
func (s *SubmissionService) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	ctx, span := otel.Tracer(trace.Name).Start(ctx, "Submission.GetOrder")
	defer span.End()
	span.SetAttributes(attribute.Int64("order_id", id))

	key := strconv.FormatInt(id, 10)
	//1. Поиск в кеше
	if fromCache, ok := s.cache.Get(key); ok {
		return fromCache, nil
	}

	//2. возвращаем из БД, пробрасывая контекст
	start := time.Now()
	found, err := s.repo.Get(ctx, id)
	metric.ObserveDB("get_order", start, err)
	if err != nil {
		span.RecordError(err)
		return models.Order{}, fmt.Errorf("заказ не найден в БД: %w", err)
	}

	//3. Нашли в бд, обновляем кеш
	s.cache.Set(key, found)
	return found, nil
}

// HandleSubmissionMessage - заявка из топика приема. Проходит те же проверки, что и HTTP.
func (s *SubmissionService) HandleSubmissionMessage(ctx context.Context, data []byte) error {
	var envelope models.SubmissionEnvelope

	//1. Парсинг
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("ошибка при парсинге, игнорируем: %w", err)
	}

	//2. Сохранение тем же путем, что и из HTTP
	var (
		res models.SubmissionResult
		err error
	)
	switch {
	case envelope.Kind == models.KindOrder && envelope.Order != nil:
		res, err = s.SubmitOrder(ctx, *envelope.Order)
	case envelope.Kind == models.KindVisit && envelope.Visit != nil:
		res, err = s.SubmitVisit(ctx, *envelope.Visit)
	default:
		return fmt.Errorf("неизвестная заявка %q, игнорируем", envelope.Kind)
	}
	if err != nil {
		return fmt.Errorf("заявка %s не сохранена: %w", envelope.Kind, err)
	}

	slog.InfoContext(ctx, "заявка из очереди сохранена",
		slog.String("kind", res.Kind), slog.Int64("order_id", res.OrderID))
	return nil
}

func (s *SubmissionService) saveOrder(ctx context.Context, userID string, retailerID int64, geo models.GeoPoint, items []models.CartItem) (models.SubmissionResult, error) {
	order := s.header(userID, retailerID, geo)
	order.Lines = make([]models.OrderLine, 0, len(items))
	for _, line := range pricing.ComputeLines(items) {
		order.Lines = append(order.Lines, line.OrderLine())
	}

	start := time.Now()
	id, err := s.repo.SaveOrder(ctx, order)
	metric.ObserveDB("save_order", start, err)
	if err != nil {
		metric.SubmissionsTotal.WithLabelValues(models.KindOrder, "error").Inc()
		slog.ErrorContext(ctx, "заказ не сохранен", slog.String("user_id", userID), sl.Err(err))
		return models.SubmissionResult{}, fmt.Errorf("ошибка сохранения заказа: %w", err)
	}
	metric.SubmissionsTotal.WithLabelValues(models.KindOrder, "success").Inc()
	order.ID = id
	for i := range order.Lines {
		order.Lines[i].OrderID = id
	}
	order.VisitType = models.OrderVisitType
	// id строк назначает БД, поэтому заказ попадает в кэш при первом чтении через GetOrder

	totals := pricing.Aggregate(items)
	s.publish(ctx, order, models.KindOrder, totals.TotalQty, totals.TotalNet)

	return models.SubmissionResult{
		OrderID:   id,
		Kind:      models.KindOrder,
		OrderDate: order.OrderDate.Format(time.DateOnly),
		Message:   "Order submitted successfully",
	}, nil
}

func (s *SubmissionService) saveVisit(ctx context.Context, userID string, retailerID int64, visitType string, geo models.GeoPoint) (models.SubmissionResult, error) {
	visit := s.header(userID, retailerID, geo)
	visit.VisitType = visitType

	start := time.Now()
	id, err := s.repo.SaveVisit(ctx, visit)
	metric.ObserveDB("save_visit", start, err)
	if err != nil {
		metric.SubmissionsTotal.WithLabelValues(models.KindVisit, "error").Inc()
		slog.ErrorContext(ctx, "визит не сохранен", slog.String("user_id", userID), sl.Err(err))
		return models.SubmissionResult{}, fmt.Errorf("ошибка сохранения визита: %w", err)
	}
	metric.SubmissionsTotal.WithLabelValues(models.KindVisit, "success").Inc()
	visit.ID = id
	s.cache.Set(strconv.FormatInt(id, 10), visit)
	s.publish(ctx, visit, models.KindVisit, 0, decimal.Zero)

	return models.SubmissionResult{
		OrderID:   id,
		Kind:      models.KindVisit,
		OrderDate: visit.OrderDate.Format(time.DateOnly),
		Message:   "Visit submitted successfully",
	}, nil
}

// orderDay - календарная дата по UTC. По ней пишется order_date и фильтруются точки.
func orderDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// header - общий заголовок: активная запись (status=1), не черновик.
func (s *SubmissionService) header(userID string, retailerID int64, geo models.GeoPoint) models.Order {
	return models.Order{
		UserID:     userID,
		RetailerID: retailerID,
		OrderDate:  orderDay(s.now()),
		DeviceType: models.DeviceType,
		Status:     1,
		Draft:      0,
		Latitude:   geo.Latitude,
		Longitude:  geo.Longitude,
		GeoStatus:  geo.Status(),
	}
}

// publish не влияет на результат: заказ уже зафиксирован.
func (s *SubmissionService) publish(ctx context.Context, order models.Order, kind string, qty int, net decimal.Decimal) {
	event := models.SubmissionEvent{
		EventID:    uuid.NewString(),
		Kind:       kind,
		OrderID:    order.ID,
		UserID:     order.UserID,
		RetailerID: order.RetailerID,
		OrderDate:  order.OrderDate.Format(time.DateOnly),
		TotalQty:   qty,
		TotalNet:   net,
		OccurredAt: s.now().UTC(),
	}
	if kind == models.KindVisit {
		event.VisitType = order.VisitType
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		metric.EventsPublishedTotal.WithLabelValues(kind, "error").Inc()
		slog.WarnContext(ctx, "событие не опубликовано", slog.Int64("order_id", order.ID), sl.Err(err))
		return
	}
	metric.EventsPublishedTotal.WithLabelValues(kind, "success").Inc()
}

func (s *SubmissionService) clearCart(ctx context.Context, sessionID string) {
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		slog.WarnContext(ctx, "корзина не очищена после отправки", slog.String("session_id", sessionID), sl.Err(err))
	}
}

func requireSelection(cart models.CartSession) error {
	if cart.UserID == "" {
		return &models.ValidationError{Field: "user_id"}
	}
	if cart.Retailer == nil || cart.Retailer.ID <= 0 {
		return &models.ValidationError{Field: "retailer_id"}
	}
	return nil
}
