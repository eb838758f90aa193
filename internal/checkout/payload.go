package checkout

import (
	"strconv"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/cart"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/models"
)

// BuildOrderRequest derives the platform's order submission body from a cart
// snapshot. Items without a variation ID cannot be referenced in an order;
// they are logged and excluded rather than failing the whole checkout. Every
// call generates a fresh idempotency key, so the builder is called exactly
// once per checkout attempt. Pricing options always request backend-side
// auto-apply: the local summary is a preview, the platform's totals are
// authoritative.
func BuildOrderRequest(items []models.CartItem, orderDiscounts []models.OrderDiscount, orderTaxes []models.OrderTax, locationID string) models.CreateOrderRequest {
	lineItems := make([]models.OrderLineItem, 0, len(items))
	for _, item := range items {
		if item.VariantID == "" {
			log.WithFields(log.Fields{"item_id": item.ID}).Warn("No variation ID for cart item, excluding from order")
			continue
		}
		lineItems = append(lineItems, models.OrderLineItem{
			Quantity:        strconv.Itoa(item.Quantity),
			CatalogObjectID: item.VariantID,
		})
	}

	order := models.Order{
		PricingOptions: models.PricingOptions{AutoApplyDiscounts: true, AutoApplyTaxes: true},
		LineItems:      lineItems,
		LocationID:     locationID,
	}
	if len(orderDiscounts) > 0 {
		order.Discounts = orderDiscounts
	}
	if len(orderTaxes) > 0 {
		order.Taxes = orderTaxes
	}

	return models.CreateOrderRequest{
		IdempotencyKey: uuid.New().String(),
		Order:          order,
	}
}

// AdjustmentsFromCart converts the cart's order-level selections into the
// wire discount/tax entries the platform expects.
func AdjustmentsFromCart(c *cart.Cart) ([]models.OrderDiscount, []models.OrderTax) {
	var discounts []models.OrderDiscount
	var taxes []models.OrderTax

	if c.OrderDiscount != nil {
		discounts = append(discounts, models.OrderDiscount{
			Name:       c.OrderDiscount.Name,
			Percentage: percentString(c.OrderDiscount.Percentage),
			Scope:      models.ScopeOrder,
			Type:       models.DiscountTypeFixedPercentage,
		})
	}
	if c.OrderTax != nil {
		taxes = append(taxes, models.OrderTax{
			Name:       c.OrderTax.Name,
			Percentage: percentString(c.OrderTax.Percentage),
			Scope:      models.ScopeOrder,
			Type:       models.TaxTypeAdditive,
		})
	}
	return discounts, taxes
}

func percentString(p models.Percentage) string {
	if !p.Valid() {
		return ""
	}
	return p.Decimal().String()
}
