package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Handlers struct {
	Orders  *OrderHandler
	Catalog *CatalogHandler
	Carts   *CartHandler
}

func NewRouter(serviceName string, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	// serviceName - имя, по которому ищутся трейсы
	router.Use(otelgin.Middleware(serviceName))
	router.Use(MetricsMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Сервер работает")
	})

	api := router.Group("/api")
	{
		api.GET("/routes", h.Catalog.Routes)
		api.GET("/retailers", h.Catalog.Retailers)
		api.GET("/categories", h.Catalog.Categories)
		api.GET("/products", h.Catalog.Products)
		api.GET("/offers", h.Catalog.Offers)
		api.GET("/stock", h.Catalog.Stock)
		api.GET("/visit-types", h.Catalog.VisitTypes)

		api.POST("/orders", h.Orders.SubmitOrderHandler)
		api.GET("/orders/:order_id", h.Orders.GetOrderHandler)
		api.POST("/visits", h.Orders.SubmitVisitHandler)

		carts := api.Group("/carts/:session")
		carts.GET("", h.Carts.Get)
		carts.DELETE("", h.Carts.Clear)
		carts.PUT("/selection", h.Carts.Select)
		carts.POST("/items", h.Carts.AddItem)
		carts.PUT("/items/:product_id", h.Carts.UpdateQuantity)
		carts.DELETE("/items/:product_id", h.Carts.RemoveItem)
		carts.POST("/order", h.Carts.SubmitOrder)
		carts.POST("/visit", h.Carts.SubmitVisit)
	}
	return router
}
