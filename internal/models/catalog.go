package models

// Catalog types cover the subset of the platform's catalog API the storefront
// reads: items with their variations, images, taxes, discounts, pricing rules,
// product sets and categories, plus inventory counts keyed by variation.

const (
	CatalogObjectTypeItem          = "ITEM"
	CatalogObjectTypeItemVariation = "ITEM_VARIATION"
	CatalogObjectTypeImage         = "IMAGE"
	CatalogObjectTypeTax           = "TAX"
	CatalogObjectTypeDiscount      = "DISCOUNT"
	CatalogObjectTypePricingRule   = "PRICING_RULE"
	CatalogObjectTypeProductSet    = "PRODUCT_SET"
	CatalogObjectTypeCategory      = "CATEGORY"
)

// CatalogObject is one typed object from a catalog search. Only the data
// section matching Type is populated.
type CatalogObject struct {
	ID              string                    `json:"id"`
	Type            string                    `json:"type"`
	ItemData        *CatalogItemData          `json:"item_data,omitempty"`
	VariationData   *CatalogItemVariationData `json:"item_variation_data,omitempty"`
	ImageData       *CatalogImageData         `json:"image_data,omitempty"`
	TaxData         *CatalogTaxData           `json:"tax_data,omitempty"`
	DiscountData    *CatalogDiscountData      `json:"discount_data,omitempty"`
	PricingRuleData *CatalogPricingRuleData   `json:"pricing_rule_data,omitempty"`
	ProductSetData  *CatalogProductSetData    `json:"product_set_data,omitempty"`
	CategoryData    *CatalogCategoryData      `json:"category_data,omitempty"`
}

type CatalogItemData struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"category_id,omitempty"`
	ImageIDs    []string        `json:"image_ids,omitempty"`
	IsTaxable   bool            `json:"is_taxable,omitempty"`
	TaxIDs      []string        `json:"tax_ids,omitempty"`
	Variations  []CatalogObject `json:"variations,omitempty"`
}

type CatalogItemVariationData struct {
	ItemID     string `json:"item_id"`
	Name       string `json:"name,omitempty"`
	SKU        string `json:"sku,omitempty"`
	PriceMoney *Money `json:"price_money,omitempty"`
}

type CatalogImageData struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url"`
}

type CatalogTaxData struct {
	Name       string     `json:"name"`
	Percentage Percentage `json:"percentage"`
	Enabled    bool       `json:"enabled,omitempty"`
}

type CatalogDiscountData struct {
	Name         string     `json:"name"`
	DiscountType string     `json:"discount_type,omitempty"`
	Percentage   Percentage `json:"percentage,omitempty"`
	AmountMoney  *Money     `json:"amount_money,omitempty"`
}

type CatalogPricingRuleData struct {
	Name            string `json:"name,omitempty"`
	DiscountID      string `json:"discount_id,omitempty"`
	MatchProductsID string `json:"match_products_id,omitempty"`
}

type CatalogProductSetData struct {
	Name       string   `json:"name,omitempty"`
	ProductIDs []string `json:"product_ids_any,omitempty"`
}

type CatalogCategoryData struct {
	Name string `json:"name"`
}

// SearchCatalogRequest mirrors the platform's catalog search body.
type SearchCatalogRequest struct {
	ObjectTypes           []string      `json:"object_types"`
	Query                 *CatalogQuery `json:"query,omitempty"`
	IncludeRelatedObjects bool          `json:"include_related_objects"`
}

// CatalogQuery combines keyword search with category set filtering.
type CatalogQuery struct {
	TextQuery *TextQuery `json:"text_query,omitempty"`
	SetQuery  *SetQuery  `json:"set_query,omitempty"`
}

type TextQuery struct {
	Keywords []string `json:"keywords"`
}

type SetQuery struct {
	AttributeName   string   `json:"attribute_name"`
	AttributeValues []string `json:"attribute_values"`
}

// SearchCatalogResponse is the platform's catalog search result.
type SearchCatalogResponse struct {
	Objects        []CatalogObject `json:"objects,omitempty"`
	RelatedObjects []CatalogObject `json:"related_objects,omitempty"`
}

// InventoryCount is one stock count for a catalog variation.
type InventoryCount struct {
	CatalogObjectID string `json:"catalog_object_id"`
	State           string `json:"state"`
	Quantity        string `json:"quantity"`
}

// RetrieveInventoryCountsRequest requests counts for a batch of variations.
type RetrieveInventoryCountsRequest struct {
	CatalogObjectIDs []string `json:"catalog_object_ids"`
	LocationIDs      []string `json:"location_ids,omitempty"`
}

// RetrieveInventoryCountsResponse carries the returned counts.
type RetrieveInventoryCountsResponse struct {
	Counts []InventoryCount `json:"counts,omitempty"`
}

// InventoryInfo is the extracted per-variation stock view the cart UI reads.
type InventoryInfo struct {
	State    string `json:"state"`
	Quantity string `json:"quantity"`
}
