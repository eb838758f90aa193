package clients

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/models"
)

// OrderSubmitter submits built order payloads to the commerce platform.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, req *models.CreateOrderRequest) (json.RawMessage, error)
}

// Ensure OrdersClient implements OrderSubmitter
var _ OrderSubmitter = (*OrdersClient)(nil)

// OrdersClient submits orders to the commerce platform's order API. The
// response is passed through opaquely: the platform recomputes authoritative
// totals and this service does not second-guess them.
type OrdersClient struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	logger  *log.Entry
}

// NewOrdersClient creates an orders client for the configured platform.
func NewOrdersClient(cfg config.SquareConfig) *OrdersClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0)

	return &OrdersClient{
		client:  client,
		breaker: newBreaker("orders"),
		logger:  log.WithField("component", "orders-client"),
	}
}

// SubmitOrder posts one order submission and returns the raw response body.
func (c *OrdersClient) SubmitOrder(ctx context.Context, req *models.CreateOrderRequest) (json.RawMessage, error) {
	c.logger.WithFields(log.Fields{
		"idempotency_key": req.IdempotencyKey,
		"line_items":      len(req.Order.LineItems),
	}).Info("Submitting order")

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.client.R().
			SetContext(ctx).
			SetBody(req).
			Post("/v2/orders")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("order submission returned status %d", resp.StatusCode())
		}
		return json.RawMessage(resp.Body()), nil
	})
	if err != nil {
		c.logger.WithFields(log.Fields{
			"idempotency_key": req.IdempotencyKey,
			"error":           err.Error(),
		}).Error("Order submission failed")
		return nil, err
	}

	return result.(json.RawMessage), nil
}
