package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/catalog"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/models"
)

// SearchCatalog handles GET /api/v1/catalog/products
// Query params: types (comma-separated object types), keyword (text search),
// category (category ID set filter).
func (h *Handlers) SearchCatalog(c *gin.Context) {
	req := &models.SearchCatalogRequest{}

	if types := c.Query("types"); types != "" {
		for _, t := range strings.Split(types, ",") {
			req.ObjectTypes = append(req.ObjectTypes, strings.ToUpper(strings.TrimSpace(t)))
		}
	} else {
		req.ObjectTypes = []string{
			models.CatalogObjectTypeItem,
			models.CatalogObjectTypeTax,
			models.CatalogObjectTypeDiscount,
		}
	}

	var query models.CatalogQuery
	if keyword := c.Query("keyword"); keyword != "" {
		query.TextQuery = &models.TextQuery{Keywords: []string{keyword}}
	}
	if category := c.Query("category"); category != "" {
		query.SetQuery = &models.SetQuery{
			AttributeName:   "category_id",
			AttributeValues: strings.Split(category, ","),
		}
	}
	if query.TextQuery != nil || query.SetQuery != nil {
		req.Query = &query
	}

	resp, err := h.catalogClient.SearchCatalog(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":         catalog.ExtractItems(resp),
		"taxes":         catalog.ExtractTaxes(resp),
		"discounts":     catalog.ExtractDiscounts(resp),
		"pricing_rules": catalog.ExtractPricingRules(resp),
		"product_sets":  catalog.ExtractProductSets(resp),
		"categories":    catalog.ExtractCategories(resp),
	})
}

// GetInventory handles GET /api/v1/catalog/inventory
// Query params: variation_ids (comma-separated catalog variation IDs).
func (h *Handlers) GetInventory(c *gin.Context) {
	raw := c.Query("variation_ids")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "variation_ids is required"})
		return
	}

	variationIDs := strings.Split(raw, ",")
	counts, err := h.catalogClient.RetrieveInventoryCounts(c.Request.Context(), variationIDs, h.config.Square.LocationID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"counts":    counts,
		"inventory": catalog.BuildInventoryMap(counts),
	})
}
