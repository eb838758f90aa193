package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/models"
)

func sampleResponse() *models.SearchCatalogResponse {
	return &models.SearchCatalogResponse{
		Objects: []models.CatalogObject{
			{
				ID:   "item-1",
				Type: models.CatalogObjectTypeItem,
				ItemData: &models.CatalogItemData{
					Name: "Americano",
					Variations: []models.CatalogObject{
						{ID: "var-1", Type: models.CatalogObjectTypeItemVariation},
						{ID: "var-1b", Type: models.CatalogObjectTypeItemVariation},
					},
				},
			},
			{
				ID:       "item-2",
				Type:     models.CatalogObjectTypeItem,
				ItemData: &models.CatalogItemData{Name: "Latte"},
			},
			{ID: "disc-1", Type: models.CatalogObjectTypeDiscount},
			{ID: "tax-1", Type: models.CatalogObjectTypeTax},
			{ID: "rule-1", Type: models.CatalogObjectTypePricingRule},
			{ID: "set-1", Type: models.CatalogObjectTypeProductSet},
			{ID: "cat-1", Type: models.CatalogObjectTypeCategory},
		},
		RelatedObjects: []models.CatalogObject{
			{ID: "tax-2", Type: models.CatalogObjectTypeTax},
			{ID: "img-1", Type: models.CatalogObjectTypeImage},
		},
	}
}

func TestExtractItems(t *testing.T) {
	items := ExtractItems(sampleResponse())

	require.Len(t, items, 2)
	assert.Equal(t, "item-1", items[0].ID)
	assert.Equal(t, "item-2", items[1].ID)
}

func TestExtractTaxes_IncludesRelatedObjects(t *testing.T) {
	taxes := ExtractTaxes(sampleResponse())

	require.Len(t, taxes, 2)
	assert.Equal(t, "tax-1", taxes[0].ID)
	assert.Equal(t, "tax-2", taxes[1].ID)
}

func TestExtractByType(t *testing.T) {
	resp := sampleResponse()

	assert.Len(t, ExtractDiscounts(resp), 1)
	assert.Len(t, ExtractPricingRules(resp), 1)
	assert.Len(t, ExtractProductSets(resp), 1)
	assert.Len(t, ExtractCategories(resp), 1)
}

func TestExtract_NilResponse(t *testing.T) {
	assert.Empty(t, ExtractItems(nil))
	assert.Empty(t, ExtractTaxes(nil))
	assert.Empty(t, ExtractDiscounts(nil))
}

func TestExtractVariationIDs_FirstVariationOnly(t *testing.T) {
	items := ExtractItems(sampleResponse())

	ids := ExtractVariationIDs(items)

	// item-2 has no variations and is skipped
	assert.Equal(t, []string{"var-1"}, ids)
}

func TestExtractItemIDs(t *testing.T) {
	items := ExtractItems(sampleResponse())
	assert.Equal(t, []string{"item-1", "item-2"}, ExtractItemIDs(items))
}

func TestBuildInventoryMap(t *testing.T) {
	counts := []models.InventoryCount{
		{CatalogObjectID: "var-1", State: "IN_STOCK", Quantity: "12"},
		{CatalogObjectID: "var-2", State: "SOLD_OUT", Quantity: "0"},
	}

	m := BuildInventoryMap(counts)

	require.Len(t, m, 2)
	assert.Equal(t, models.InventoryInfo{State: "IN_STOCK", Quantity: "12"}, m["var-1"])
	assert.Equal(t, models.InventoryInfo{State: "SOLD_OUT", Quantity: "0"}, m["var-2"])
}

func TestBuildCartInventoryInfo(t *testing.T) {
	items := ExtractItems(sampleResponse())
	inventory := map[string]models.InventoryInfo{
		"var-1": {State: "IN_STOCK", Quantity: "12"},
	}

	m := BuildCartInventoryInfo(items, inventory)

	require.Len(t, m, 1)
	assert.Equal(t, "12", m["item-1"].Quantity)
}
