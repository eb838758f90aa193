package cart

import (
	"github.com/shopspring/decimal"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/models"
)

// PricingMode says which family of adjustments is in force. The two modes are
// mutually exclusive: activating one evicts every selection of the other.
type PricingMode string

const (
	ModeItemLevel  PricingMode = "ITEM_LEVEL"
	ModeOrderLevel PricingMode = "ORDER_LEVEL"
)

// Cart is the single source of truth for one shopper's cart: the line items
// with their per-item discount/tax selections, plus at most one order-level
// discount and one order-level tax. All reads and writes go through its
// methods; mutations are synchronous and never leave the item list in an
// invalid state (no zero or negative quantities, no dangling discounts).
type Cart struct {
	Items         []models.CartItem      `json:"items"`
	OrderDiscount *models.OrderSelection `json:"order_discount,omitempty"`
	OrderTax      *models.OrderSelection `json:"order_tax,omitempty"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Mode reports whether order-level or item-level pricing is in force.
func (c *Cart) Mode() PricingMode {
	if c.OrderLevelActive() {
		return ModeOrderLevel
	}
	return ModeItemLevel
}

// OrderLevelActive reports whether any order-level selection is set.
func (c *Cart) OrderLevelActive() bool {
	return c.OrderDiscount != nil || c.OrderTax != nil
}

// AddItem appends an item, or merges into an existing entry with the same ID:
// the quantity is incremented by the incoming quantity (default 1) and every
// other field takes the incoming item's value. Stock ceilings are not
// enforced here; that is the storefront's concern.
func (c *Cart) AddItem(item models.CartItem) {
	qty := item.Quantity
	if qty <= 0 {
		qty = 1
	}

	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			merged := item
			merged.Quantity = c.Items[i].Quantity + qty
			c.Items[i] = merged
			return
		}
	}

	item.Quantity = qty
	c.Items = append(c.Items, item)
}

// RemoveItem deletes the entry with the given ID. Absent IDs are a no-op.
func (c *Cart) RemoveItem(id string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// UpdateQuantity sets an item's quantity exactly; a quantity of zero or less
// removes the item. Absent IDs are a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	for i := range c.Items {
		if c.Items[i].ID != id {
			continue
		}
		if quantity <= 0 {
			c.RemoveItem(id)
			return
		}
		c.Items[i].Quantity = quantity
		return
	}
}

// Clear empties the item list. Order-level selections are left alone; they
// are cleared only by the exclusivity transitions or an explicit deselect.
func (c *Cart) Clear() {
	c.Items = nil
}

// ApplyItemDiscount sets the item's single discount slot. As an item-level
// edit it first evicts any order-level selections. Absent IDs are a no-op.
func (c *Cart) ApplyItemDiscount(id string, discount models.Discount) {
	i := c.find(id)
	if i < 0 {
		return
	}
	c.clearOrderSelections()
	c.Items[i].ItemDiscount = &discount
}

// RemoveItemDiscount clears the item's discount slot. Absent IDs are a no-op.
func (c *Cart) RemoveItemDiscount(id string) {
	i := c.find(id)
	if i < 0 {
		return
	}
	c.clearOrderSelections()
	c.Items[i].ItemDiscount = nil
}

// ToggleItemTax sets the item's taxable flag. The configured rate is kept so
// re-enabling restores the previous selection. Absent IDs are a no-op.
func (c *Cart) ToggleItemTax(id string, enabled bool) {
	i := c.find(id)
	if i < 0 {
		return
	}
	c.clearOrderSelections()
	c.Items[i].IsTaxable = enabled
}

// SetItemTaxRate sets the item's tax rate from a catalog tax. A rate whose
// percentage did not parse leaves the item with no rate, which the pricing
// engine treats as no tax. Absent IDs are a no-op.
func (c *Cart) SetItemTaxRate(id string, rate models.TaxRate) {
	i := c.find(id)
	if i < 0 {
		return
	}
	c.clearOrderSelections()
	if !rate.Percentage.Valid() {
		c.Items[i].ItemTaxRate = nil
		return
	}
	value := rate.Percentage.Decimal()
	c.Items[i].ItemTaxRate = &value
}

// SelectOrderDiscount records (or, with nil, clears) the order-level discount.
// Activating it strips every item-level selection in the same step: discount
// slots emptied, tax flags disabled, tax rates unset.
func (c *Cart) SelectOrderDiscount(selection *models.OrderSelection) {
	c.OrderDiscount = selection
	c.stripItemSelections()
}

// SelectOrderTax records (or, with nil, clears) the order-level tax, stripping
// item-level selections the same way SelectOrderDiscount does.
func (c *Cart) SelectOrderTax(selection *models.OrderSelection) {
	c.OrderTax = selection
	c.stripItemSelections()
}

func (c *Cart) clearOrderSelections() {
	c.OrderDiscount = nil
	c.OrderTax = nil
}

func (c *Cart) stripItemSelections() {
	for i := range c.Items {
		c.Items[i].ItemDiscount = nil
		c.Items[i].IsTaxable = false
		c.Items[i].ItemTaxRate = nil
	}
}

func (c *Cart) find(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// grossSubtotal is the undiscounted sum of price times quantity, exact in
// minor units. Unknown prices count as zero.
func (c *Cart) grossSubtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.UnitPrice() * int64(item.Quantity)
	}
	return total
}

var hundred = decimal.NewFromInt(100)
