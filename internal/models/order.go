package models

// Order payload types match the commerce platform's order API. The backend
// recomputes authoritative totals from these; local summaries are previews.

const (
	ScopeOrder    = "ORDER"
	ScopeLineItem = "LINE_ITEM"

	DiscountTypeFixedPercentage = "FIXED_PERCENTAGE"
	DiscountTypeFixedAmount     = "FIXED_AMOUNT"

	TaxTypeAdditive  = "ADDITIVE"
	TaxTypeInclusive = "INCLUSIVE"
)

// CreateOrderRequest is the order submission body.
type CreateOrderRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
	Order          Order  `json:"order"`
}

// Order is the order portion of a submission.
type Order struct {
	PricingOptions PricingOptions  `json:"pricing_options"`
	LineItems      []OrderLineItem `json:"line_items"`
	LocationID     string          `json:"location_id"`
	Discounts      []OrderDiscount `json:"discounts,omitempty"`
	Taxes          []OrderTax      `json:"taxes,omitempty"`
}

// PricingOptions controls backend-side discount/tax application.
type PricingOptions struct {
	AutoApplyDiscounts bool `json:"auto_apply_discounts"`
	AutoApplyTaxes     bool `json:"auto_apply_taxes"`
}

// OrderLineItem references one catalog variation and a quantity. The platform
// expects the quantity stringified.
type OrderLineItem struct {
	Quantity        string `json:"quantity"`
	CatalogObjectID string `json:"catalog_object_id"`
}

// OrderDiscount is an order- or line-scoped discount sent with a submission.
type OrderDiscount struct {
	UID        string `json:"uid,omitempty"`
	Name       string `json:"name"`
	Percentage string `json:"percentage,omitempty"`
	Amount     *int64 `json:"amount,omitempty"`
	Scope      string `json:"scope"`
	Type       string `json:"type"`
}

// OrderTax is an order- or line-scoped tax sent with a submission.
type OrderTax struct {
	UID        string `json:"uid,omitempty"`
	Name       string `json:"name"`
	Percentage string `json:"percentage"`
	Scope      string `json:"scope"`
	Type       string `json:"type"`
}

// Money is a minor-unit amount with its currency, as the platform encodes it.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
