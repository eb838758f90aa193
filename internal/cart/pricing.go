package cart

import (
	"github.com/shopspring/decimal"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/models"
)

// Summary derives the order summary for the current state. It is a pure
// function of the cart: calling it twice without a mutation in between yields
// identical results. While an order-level selection is active the whole cart
// is priced as one line; otherwise each item is priced independently and the
// contributions are summed.
//
// Rounding policy: percentage math runs in decimals and each aggregate field
// is rounded half-up to integer minor units exactly once, with the total
// derived from the already-rounded components. That keeps the identities
// total == subtotal + taxAmount (item mode) and
// total == subtotal - discountAmount + taxAmount (order mode) exact.
func (c *Cart) Summary() models.OrderSummary {
	if c.OrderLevelActive() {
		return c.orderLevelSummary()
	}
	return c.itemLevelSummary()
}

func (c *Cart) itemLevelSummary() models.OrderSummary {
	subtotal := decimal.Zero
	discountTotal := decimal.Zero
	taxTotal := decimal.Zero
	appliedDiscounts := []models.Discount{}
	appliedRates := []models.AppliedTaxRate{}

	for _, item := range c.Items {
		itemSubtotal := decimal.NewFromInt(item.UnitPrice() * int64(item.Quantity))

		discountValue := decimal.Zero
		if item.ItemDiscount != nil {
			appliedDiscounts = append(appliedDiscounts, *item.ItemDiscount)
			discountValue = itemDiscountValue(*item.ItemDiscount, itemSubtotal, item.Quantity)
		}
		discounted := itemSubtotal.Sub(discountValue)
		discountTotal = discountTotal.Add(discountValue)

		if item.IsTaxable && item.ItemTaxRate != nil {
			rate := *item.ItemTaxRate
			appliedRates = append(appliedRates, models.AppliedTaxRate{
				Name:       taxNameForRate(item, rate),
				Percentage: rate,
			})
			taxTotal = taxTotal.Add(discounted.Mul(rate).Div(hundred))
		}

		subtotal = subtotal.Add(discounted)
	}

	sub := roundMinor(subtotal)
	tax := roundMinor(taxTotal)
	return models.OrderSummary{
		Subtotal:         sub,
		DiscountAmount:   roundMinor(discountTotal),
		TaxAmount:        tax,
		Total:            sub + tax,
		AppliedDiscounts: appliedDiscounts,
		AppliedTaxRates:  appliedRates,
	}
}

// orderLevelSummary prices the cart as a single line: discount on the gross
// subtotal, tax on the discounted remainder. Selections whose percentage did
// not parse contribute zero rather than failing.
func (c *Cart) orderLevelSummary() models.OrderSummary {
	gross := c.grossSubtotal()
	appliedDiscounts := []models.Discount{}
	appliedRates := []models.AppliedTaxRate{}

	var discountAmount int64
	if c.OrderDiscount != nil && c.OrderDiscount.Percentage.Valid() {
		percent := c.OrderDiscount.Percentage.Decimal()
		discountAmount = roundMinor(decimal.NewFromInt(gross).Mul(percent).Div(hundred))
		appliedDiscounts = append(appliedDiscounts, models.Discount{
			Name:  c.OrderDiscount.Name,
			Value: models.PercentageValue(percent),
		})
	}
	discounted := gross - discountAmount

	var taxAmount int64
	if c.OrderTax != nil && c.OrderTax.Percentage.Valid() {
		percent := c.OrderTax.Percentage.Decimal()
		taxAmount = roundMinor(decimal.NewFromInt(discounted).Mul(percent).Div(hundred))
		appliedRates = append(appliedRates, models.AppliedTaxRate{
			Name:       c.OrderTax.Name,
			Percentage: percent,
		})
	}

	return models.OrderSummary{
		Subtotal:         gross,
		DiscountAmount:   discountAmount,
		TaxAmount:        taxAmount,
		Total:            discounted + taxAmount,
		AppliedDiscounts: appliedDiscounts,
		AppliedTaxRates:  appliedRates,
	}
}

// itemDiscountValue computes one discount's contribution for a line:
// percentage of the line subtotal, or fixed amount per unit. The none variant
// contributes zero.
func itemDiscountValue(d models.Discount, itemSubtotal decimal.Decimal, quantity int) decimal.Decimal {
	switch d.Value.Kind {
	case models.DiscountPercentage:
		return itemSubtotal.Mul(d.Value.Percent).Div(hundred)
	case models.DiscountFixedAmount:
		return decimal.NewFromInt(d.Value.Amount).Mul(decimal.NewFromInt(int64(quantity)))
	default:
		return decimal.Zero
	}
}

// taxNameForRate resolves a display name for an applied rate by matching the
// percentage against the item's offered taxes, defaulting to "Tax".
func taxNameForRate(item models.CartItem, rate decimal.Decimal) string {
	for _, t := range item.Taxes {
		if t.Percentage.Valid() && t.Percentage.Decimal().Equal(rate) {
			return t.Name
		}
	}
	return "Tax"
}

var half = decimal.New(5, -1)

// roundMinor rounds half-up to integer minor units.
func roundMinor(d decimal.Decimal) int64 {
	return d.Add(half).Floor().IntPart()
}
