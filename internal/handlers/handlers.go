package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/apperrors"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/clients"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/service"
)

// Pinger reports backing-store connectivity for readiness checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers holds all HTTP handlers for the POS service.
type Handlers struct {
	cartService     *service.CartService
	checkoutService *service.CheckoutService
	catalogClient   *clients.CatalogClient
	store           Pinger
	config          *config.Config
	logger          *log.Entry
}

// NewHandlers creates a new handlers instance.
func NewHandlers(
	cartService *service.CartService,
	checkoutService *service.CheckoutService,
	catalogClient *clients.CatalogClient,
	store Pinger,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		cartService:     cartService,
		checkoutService: checkoutService,
		catalogClient:   catalogClient,
		store:           store,
		config:          cfg,
		logger:          log.WithField("component", "handlers"),
	}
}

func handleError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
