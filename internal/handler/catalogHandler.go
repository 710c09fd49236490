package handler

import (
	"context"
	"net/http"
	"strconv"

	"field-sales/internal/models"

	"github.com/gin-gonic/gin"
)

// CatalogProvider - справочники. Ошибки чтения уже превращены сервисом в пустые списки.
//
//go:generate mockery --name=CatalogProvider --output=./mocks --case=underscore
type CatalogProvider interface {
	Routes(ctx context.Context, userID string) []models.Route
	Retailers(ctx context.Context, userID string, routeID int64) []models.Retailer
	Categories(ctx context.Context) []models.Category
	Products(ctx context.Context, categoryID int64) []models.Product
	Offers(ctx context.Context, productID int64) []models.Offer
	Stock(ctx context.Context, productID int64, userID string) *models.DistributorStock
}

type CatalogHandler struct {
	service CatalogProvider
}

func NewCatalogHandler(s CatalogProvider) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) Routes(c *gin.Context) {
	userID, ok := queryString(c, "user_id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.Routes(c.Request.Context(), userID))
}

func (h *CatalogHandler) Retailers(c *gin.Context) {
	routeID, ok := queryID(c, "route_id")
	if !ok {
		return
	}
	userID, ok := queryString(c, "user_id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.Retailers(c.Request.Context(), userID, routeID))
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Categories(c.Request.Context()))
}

// Products - category_id необязателен и на выдачу не влияет.
func (h *CatalogHandler) Products(c *gin.Context) {
	categoryID, _ := strconv.ParseInt(c.Query("category_id"), 10, 64)
	c.JSON(http.StatusOK, h.service.Products(c.Request.Context(), categoryID))
}

func (h *CatalogHandler) Offers(c *gin.Context) {
	productID, ok := queryID(c, "product_id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.Offers(c.Request.Context(), productID))
}

// Stock отдает список из одной записи или пустой список, если остатка нет.
func (h *CatalogHandler) Stock(c *gin.Context) {
	productID, ok := queryID(c, "product_id")
	if !ok {
		return
	}
	userID, ok := queryString(c, "user_id")
	if !ok {
		return
	}
	stock := h.service.Stock(c.Request.Context(), productID, userID)
	if stock == nil {
		c.JSON(http.StatusOK, []models.DistributorStock{})
		return
	}
	c.JSON(http.StatusOK, []models.DistributorStock{*stock})
}

func (h *CatalogHandler) VisitTypes(c *gin.Context) {
	c.JSON(http.StatusOK, models.VisitTypes)
}
