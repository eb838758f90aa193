// Package catalog extracts typed object lists from the commerce platform's
// catalog and inventory responses. The pricing core never sees raw catalog
// payloads; it consumes the item/discount/tax lists produced here.
package catalog

import (
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/models"
)

func filterByType(objects []models.CatalogObject, objectType string) []models.CatalogObject {
	filtered := []models.CatalogObject{}
	for _, obj := range objects {
		if obj.Type == objectType {
			filtered = append(filtered, obj)
		}
	}
	return filtered
}

// ExtractItems returns the ITEM objects from a catalog response.
func ExtractItems(resp *models.SearchCatalogResponse) []models.CatalogObject {
	if resp == nil {
		return []models.CatalogObject{}
	}
	return filterByType(resp.Objects, models.CatalogObjectTypeItem)
}

// ExtractTaxes returns TAX objects from both the primary and related object
// lists; the platform splits them depending on how the search matched.
func ExtractTaxes(resp *models.SearchCatalogResponse) []models.CatalogObject {
	if resp == nil {
		return []models.CatalogObject{}
	}
	taxes := filterByType(resp.Objects, models.CatalogObjectTypeTax)
	return append(taxes, filterByType(resp.RelatedObjects, models.CatalogObjectTypeTax)...)
}

// ExtractDiscounts returns the DISCOUNT objects from a catalog response.
func ExtractDiscounts(resp *models.SearchCatalogResponse) []models.CatalogObject {
	if resp == nil {
		return []models.CatalogObject{}
	}
	return filterByType(resp.Objects, models.CatalogObjectTypeDiscount)
}

// ExtractPricingRules returns the PRICING_RULE objects from a catalog response.
func ExtractPricingRules(resp *models.SearchCatalogResponse) []models.CatalogObject {
	if resp == nil {
		return []models.CatalogObject{}
	}
	return filterByType(resp.Objects, models.CatalogObjectTypePricingRule)
}

// ExtractProductSets returns the PRODUCT_SET objects from a catalog response.
func ExtractProductSets(resp *models.SearchCatalogResponse) []models.CatalogObject {
	if resp == nil {
		return []models.CatalogObject{}
	}
	return filterByType(resp.Objects, models.CatalogObjectTypeProductSet)
}

// ExtractCategories returns the CATEGORY objects from a catalog response.
func ExtractCategories(resp *models.SearchCatalogResponse) []models.CatalogObject {
	if resp == nil {
		return []models.CatalogObject{}
	}
	return filterByType(resp.Objects, models.CatalogObjectTypeCategory)
}

// ExtractItemIDs collects the IDs of the given items.
func ExtractItemIDs(items []models.CatalogObject) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

// ExtractVariationIDs collects the first variation ID of each item; that is
// the variation the storefront sells and tracks inventory for.
func ExtractVariationIDs(items []models.CatalogObject) []string {
	ids := []string{}
	for _, item := range items {
		if item.ItemData == nil || len(item.ItemData.Variations) == 0 {
			continue
		}
		ids = append(ids, item.ItemData.Variations[0].ID)
	}
	return ids
}

// BuildInventoryMap indexes inventory counts by variation ID.
func BuildInventoryMap(counts []models.InventoryCount) map[string]models.InventoryInfo {
	m := make(map[string]models.InventoryInfo, len(counts))
	for _, count := range counts {
		m[count.CatalogObjectID] = models.InventoryInfo{
			State:    count.State,
			Quantity: count.Quantity,
		}
	}
	return m
}

// BuildCartInventoryInfo re-keys an inventory map by item ID via each item's
// first variation, the lookup shape the cart endpoints serve.
func BuildCartInventoryInfo(items []models.CatalogObject, inventory map[string]models.InventoryInfo) map[string]models.InventoryInfo {
	m := make(map[string]models.InventoryInfo)
	for _, item := range items {
		if item.ItemData == nil || len(item.ItemData.Variations) == 0 {
			continue
		}
		variationID := item.ItemData.Variations[0].ID
		if info, ok := inventory[variationID]; ok {
			m[item.ID] = info
		}
	}
	return m
}
