package handler

import (
	"context"
	"net/http"
	"strconv"

	"field-sales/internal/models"
	"field-sales/internal/service"

	"github.com/gin-gonic/gin"
)

//go:generate mockery --name=CartProvider --output=./mocks --case=underscore
type CartProvider interface {
	Get(ctx context.Context, sessionID string) (service.CartView, error)
	Select(ctx context.Context, sessionID string, req models.SelectionRequest) (service.CartView, error)
	AddItem(ctx context.Context, sessionID string, req models.AddItemRequest) (service.CartView, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID int64, req models.UpdateQuantityRequest) (service.CartView, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (service.CartView, error)
	Clear(ctx context.Context, sessionID string) error
}

//go:generate mockery --name=CartSubmitter --output=./mocks --case=underscore
type CartSubmitter interface {
	SubmitCart(ctx context.Context, sessionID string, geo models.GeoPoint) (models.SubmissionResult, error)
	SubmitCartVisit(ctx context.Context, sessionID string, req models.CartVisitRequest) (models.SubmissionResult, error)
}

type CartHandler struct {
	carts     CartProvider
	submitter CartSubmitter
}

func NewCartHandler(carts CartProvider, submitter CartSubmitter) *CartHandler {
	return &CartHandler{carts: carts, submitter: submitter}
}

func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.carts.Get(c.Request.Context(), c.Param("session"))
	respondCart(c, view, err)
}

func (h *CartHandler) Select(c *gin.Context) {
	var req models.SelectionRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.carts.Select(c.Request.Context(), c.Param("session"), req)
	respondCart(c, view, err)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.carts.AddItem(c.Request.Context(), c.Param("session"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, ok := paramID(c, "product_id")
	if !ok {
		return
	}
	var req models.UpdateQuantityRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.carts.UpdateQuantity(c.Request.Context(), c.Param("session"), productID, req)
	respondCart(c, view, err)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := paramID(c, "product_id")
	if !ok {
		return
	}
	view, err := h.carts.RemoveItem(c.Request.Context(), c.Param("session"), productID)
	respondCart(c, view, err)
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), c.Param("session")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitOrder - тело с координатами необязательно.
func (h *CartHandler) SubmitOrder(c *gin.Context) {
	var geo models.GeoPoint
	if c.Request.ContentLength > 0 && !bindJSON(c, &geo) {
		return
	}
	res, err := h.submitter.SubmitCart(c.Request.Context(), c.Param("session"), geo)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *CartHandler) SubmitVisit(c *gin.Context) {
	var req models.CartVisitRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.submitter.SubmitCartVisit(c.Request.Context(), c.Param("session"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func respondCart(c *gin.Context, view service.CartView, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, &models.ValidationError{Field: name, Reason: "not a valid id"})
		return 0, false
	}
	return id, true
}
