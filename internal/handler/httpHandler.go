package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"field-sales/internal/metric"
	"field-sales/internal/models"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// 1. Объявляем интерфейс.
//
//go:generate mockery --name=OrderProvider --output=./mocks --case=underscore
type OrderProvider interface {
	SubmitOrder(ctx context.Context, req models.OrderRequest) (models.SubmissionResult, error)
	SubmitVisit(ctx context.Context, req models.VisitRequest) (models.SubmissionResult, error)
	GetOrder(ctx context.Context, id int64) (models.Order, error)
}

type OrderHandler struct {
	service OrderProvider // Используем интерфейс
}

func NewOrderHandler(s OrderProvider) *OrderHandler {
	return &OrderHandler{service: s}
}

// GetOrderHandler - заказ или визит по order_id: из кэша, если нет - из БД.
func (s *OrderHandler) GetOrderHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	ctx := c.Request.Context()

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int64("http.request.order_id", id))

	order, err := s.service.GetOrder(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// SubmitOrderHandler - POST /api/orders.
func (s *OrderHandler) SubmitOrderHandler(c *gin.Context) {
	var req models.OrderRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := s.service.SubmitOrder(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// SubmitVisitHandler - POST /api/visits.
func (s *OrderHandler) SubmitVisitHandler(c *gin.Context) {
	var req models.VisitRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := s.service.SubmitVisit(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()
		// После того как хендлер отработал, фиксируем время и статус
		duration := time.Since(start)
		status := c.Writer.Status()

		metric.ObserveRequest(duration, status)
	}
}
