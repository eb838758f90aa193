package clients

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/models"
)

// CatalogClient reads catalog objects and inventory counts from the commerce
// platform.
type CatalogClient struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	logger  *log.Entry
}

// NewCatalogClient creates a catalog client for the configured platform.
func NewCatalogClient(cfg config.SquareConfig) *CatalogClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0) // failures trip the breaker instead of retrying

	return &CatalogClient{
		client:  client,
		breaker: newBreaker("catalog"),
		logger:  log.WithField("component", "catalog-client"),
	}
}

// SearchCatalog runs a catalog search. Related objects are always requested
// so item taxes and images arrive in the same response.
func (c *CatalogClient) SearchCatalog(ctx context.Context, req *models.SearchCatalogRequest) (*models.SearchCatalogResponse, error) {
	req.IncludeRelatedObjects = true

	result, err := c.breaker.Execute(func() (interface{}, error) {
		var out models.SearchCatalogResponse
		resp, err := c.client.R().
			SetContext(ctx).
			SetBody(req).
			SetResult(&out).
			Post("/v2/catalog/search")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("catalog search returned status %d", resp.StatusCode())
		}
		return &out, nil
	})
	if err != nil {
		c.logger.WithField("error", err.Error()).Error("Catalog search failed")
		return nil, err
	}

	return result.(*models.SearchCatalogResponse), nil
}

// RetrieveInventoryCounts fetches stock counts for a batch of variation IDs.
func (c *CatalogClient) RetrieveInventoryCounts(ctx context.Context, variationIDs []string, locationID string) ([]models.InventoryCount, error) {
	if len(variationIDs) == 0 {
		return nil, nil
	}

	body := models.RetrieveInventoryCountsRequest{
		CatalogObjectIDs: variationIDs,
	}
	if locationID != "" {
		body.LocationIDs = []string{locationID}
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		var out models.RetrieveInventoryCountsResponse
		resp, err := c.client.R().
			SetContext(ctx).
			SetBody(&body).
			SetResult(&out).
			Post("/v2/inventory/counts/batch-retrieve")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("inventory retrieve returned status %d", resp.StatusCode())
		}
		return out.Counts, nil
	})
	if err != nil {
		c.logger.WithFields(log.Fields{
			"variation_count": len(variationIDs),
			"error":           err.Error(),
		}).Error("Inventory retrieve failed")
		return nil, err
	}

	counts, _ := result.([]models.InventoryCount)
	return counts, nil
}
