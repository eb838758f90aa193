package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Percentage is a percent value that arrives on the wire as a JSON number, a
// numeric string, or null. Non-numeric input is carried as "not set" rather
// than an error so pricing can treat it as a zero contribution.
type Percentage struct {
	value decimal.Decimal
	valid bool
}

// NewPercentage builds a set percentage.
func NewPercentage(value decimal.Decimal) Percentage {
	return Percentage{value: value, valid: true}
}

// PercentageFromFloat builds a set percentage from a float literal.
func PercentageFromFloat(value float64) Percentage {
	return NewPercentage(decimal.NewFromFloat(value))
}

// Valid reports whether the percentage carries a numeric value.
func (p Percentage) Valid() bool { return p.valid }

// Decimal returns the numeric value; zero when not set.
func (p Percentage) Decimal() decimal.Decimal {
	if !p.valid {
		return decimal.Decimal{}
	}
	return p.value
}

func (p *Percentage) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*p = Percentage{}
		return nil
	}

	raw := trimmed
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		*p = Percentage{}
		return nil
	}
	*p = NewPercentage(value)
	return nil
}

func (p Percentage) MarshalJSON() ([]byte, error) {
	if !p.valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.value.String())
}

// TaxRate is a catalog tax offered for an item.
type TaxRate struct {
	Name       string     `json:"name"`
	Percentage Percentage `json:"percentage"`
}

// CartItem is one product variation held in the cart. Wire keys follow the
// storefront's persisted cart format so stored carts round-trip unchanged.
type CartItem struct {
	ID           string           `json:"id"`
	VariantID    string           `json:"variantId,omitempty"`
	Name         string           `json:"name"`
	Price        *int64           `json:"price"` // minor units; nil when unknown
	ImageURL     string           `json:"imageUrl,omitempty"`
	Quantity     int              `json:"quantity"`
	IsTaxable    bool             `json:"is_taxable,omitempty"`
	ItemTaxRate  *decimal.Decimal `json:"itemTaxRate,omitempty"`
	Category     string           `json:"category,omitempty"`
	ItemDiscount *Discount        `json:"itemDiscount,omitempty"`
	Discounts    []Discount       `json:"discounts,omitempty"`
	Taxes        []TaxRate        `json:"taxes,omitempty"`
}

// UnitPrice returns the item price, treating unknown prices as zero.
func (i CartItem) UnitPrice() int64 {
	if i.Price == nil {
		return 0
	}
	return *i.Price
}

// OrderSelection is an order-level discount or tax choice.
type OrderSelection struct {
	Name       string     `json:"name"`
	Percentage Percentage `json:"percentage"`
}

// AppliedTaxRate records a tax rate that contributed to a summary.
type AppliedTaxRate struct {
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
}

// OrderSummary is the derived pricing breakdown for the current cart state.
// Monetary fields are integer minor units. In item-level mode Subtotal is net
// of per-item discounts; in order-level mode it is the gross amount the
// order discount applies to.
type OrderSummary struct {
	Subtotal         int64            `json:"subtotal"`
	DiscountAmount   int64            `json:"discount_amount"`
	TaxAmount        int64            `json:"tax_amount"`
	Total            int64            `json:"total"`
	AppliedDiscounts []Discount       `json:"applied_discounts"`
	AppliedTaxRates  []AppliedTaxRate `json:"applied_tax_rates"`
}
