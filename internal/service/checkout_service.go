package service

import (
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/apperrors"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/checkout"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/clients"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/events"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/metrics"
)

// CheckoutService turns a cart snapshot into an order submission.
type CheckoutService struct {
	carts     *CartService
	orders    clients.OrderSubmitter
	publisher events.CheckoutEventPublisher
	config    *config.Config
	logger    *log.Entry
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(carts *CartService, orders clients.OrderSubmitter, publisher events.CheckoutEventPublisher, cfg *config.Config) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		orders:    orders,
		publisher: publisher,
		config:    cfg,
		logger:    log.WithField("component", "checkout-service"),
	}
}

// Checkout builds the order payload from the owner's cart, submits it, and
// clears the cart on success. The platform's response is returned as-is; its
// totals are the authoritative ones.
func (s *CheckoutService) Checkout(ctx context.Context, ownerID string) (json.RawMessage, error) {
	c, err := s.carts.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, apperrors.NewValidationError("items", "cart is empty")
	}

	preview := c.Summary()
	orderDiscounts, orderTaxes := checkout.AdjustmentsFromCart(c)
	req := checkout.BuildOrderRequest(c.Items, orderDiscounts, orderTaxes, s.config.Square.LocationID)

	if len(req.Order.LineItems) == 0 {
		return nil, apperrors.NewValidationError("items", "no cart item has a variation ID")
	}

	s.logger.WithFields(log.Fields{
		"owner_id":   ownerID,
		"line_items": len(req.Order.LineItems),
		"preview":    preview.Total,
	}).Info("Checking out cart")

	resp, err := s.orders.SubmitOrder(ctx, &req)
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	metrics.CheckoutsTotal.WithLabelValues("submitted").Inc()
	metrics.CheckoutAmount.Observe(float64(preview.Total))

	if s.config.Features.EnableCheckoutEvents {
		if err := s.publisher.PublishCheckoutSubmitted(ctx, ownerID, &req, preview); err != nil {
			// Log but don't fail
			s.logger.WithFields(log.Fields{
				"owner_id": ownerID,
				"error":    err.Error(),
			}).Error("Failed to publish checkout event")
		}
	}

	if _, err := s.carts.ClearCart(ctx, ownerID); err != nil {
		s.logger.WithFields(log.Fields{
			"owner_id": ownerID,
			"error":    err.Error(),
		}).Error("Failed to clear cart after checkout")
	}

	return resp, nil
}
