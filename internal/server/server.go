package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/handlers"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/metrics"
)

type Server struct {
	config     *config.Config
	router     *gin.Engine
	httpServer *http.Server
	handlers   *handlers.Handlers
}

func New(h *handlers.Handlers, cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metrics.PrometheusMiddleware("pos-service"))

	s := &Server{
		config:   cfg,
		router:   router,
		handlers: h,
	}

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handlers.Health)
	s.router.GET("/ready", s.handlers.Ready)
	s.router.GET("/live", s.handlers.Live)
	s.router.GET("/version", s.handlers.Version)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/api/v1")
	{
		carts := v1.Group("/carts/:owner")
		{
			carts.GET("", s.handlers.GetCart)
			carts.DELETE("", s.handlers.ClearCart)
			carts.GET("/summary", s.handlers.GetSummary)

			carts.POST("/items", s.handlers.AddItem)
			carts.DELETE("/items/:id", s.handlers.RemoveItem)
			carts.PATCH("/items/:id/quantity", s.handlers.UpdateQuantity)
			carts.PUT("/items/:id/discount", s.handlers.ApplyItemDiscount)
			carts.DELETE("/items/:id/discount", s.handlers.RemoveItemDiscount)
			carts.PUT("/items/:id/tax", s.handlers.ToggleItemTax)
			carts.PUT("/items/:id/tax-rate", s.handlers.SetItemTaxRate)

			carts.PUT("/order-discount", s.handlers.SelectOrderDiscount)
			carts.PUT("/order-tax", s.handlers.SelectOrderTax)

			carts.POST("/checkout", s.handlers.Checkout)
		}

		catalog := v1.Group("/catalog")
		{
			catalog.GET("/products", s.handlers.SearchCatalog)
			catalog.GET("/inventory", s.handlers.GetInventory)
		}
	}
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
