package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/models"
)

func price(v int64) *int64 { return &v }

func testItem(id string, unitPrice int64, quantity int) models.CartItem {
	return models.CartItem{
		ID:        id,
		VariantID: id + "-var",
		Name:      "Item " + id,
		Price:     price(unitPrice),
		Quantity:  quantity,
	}
}

func TestAddItem_AppendsNewEntry(t *testing.T) {
	c := New()

	c.AddItem(testItem("a", 1000, 2))
	c.AddItem(testItem("b", 500, 1))

	require.Len(t, c.Items, 2)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
}

func TestAddItem_MergesQuantityForSameID(t *testing.T) {
	c := New()

	c.AddItem(testItem("a", 1000, 2))
	c.AddItem(testItem("a", 1000, 3))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestAddItem_MergeTakesIncomingFields(t *testing.T) {
	c := New()

	first := testItem("a", 1000, 1)
	first.Name = "Old Name"
	c.AddItem(first)

	second := testItem("a", 1200, 1)
	second.Name = "New Name"
	c.AddItem(second)

	require.Len(t, c.Items, 1)
	assert.Equal(t, "New Name", c.Items[0].Name)
	assert.Equal(t, int64(1200), c.Items[0].UnitPrice())
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestAddItem_ZeroQuantityDefaultsToOne(t *testing.T) {
	c := New()

	c.AddItem(testItem("a", 1000, 0))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	c := New()
	c.AddItem(testItem("a", 1000, 1))
	c.AddItem(testItem("b", 500, 1))

	c.RemoveItem("a")

	require.Len(t, c.Items, 1)
	assert.Equal(t, "b", c.Items[0].ID)

	// absent IDs are a no-op
	c.RemoveItem("missing")
	assert.Len(t, c.Items, 1)
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	c.AddItem(testItem("a", 1000, 1))

	c.UpdateQuantity("a", 4)
	assert.Equal(t, 4, c.Items[0].Quantity)

	c.UpdateQuantity("missing", 9)
	assert.Equal(t, 4, c.Items[0].Quantity)
}

func TestUpdateQuantity_ZeroRemovesItem(t *testing.T) {
	c := New()
	c.AddItem(testItem("a", 1000, 2))
	c.AddItem(testItem("b", 500, 1))

	c.UpdateQuantity("a", 0)

	require.Len(t, c.Items, 1)
	assert.Equal(t, "b", c.Items[0].ID)

	c.UpdateQuantity("b", -3)
	assert.Empty(t, c.Items)
}

func TestClear_KeepsOrderSelections(t *testing.T) {
	c := New()
	c.AddItem(testItem("a", 1000, 1))
	c.SelectOrderDiscount(&models.OrderSelection{Name: "10% off", Percentage: models.PercentageFromFloat(10)})

	c.Clear()

	assert.Empty(t, c.Items)
	assert.NotNil(t, c.OrderDiscount)
	assert.Equal(t, ModeOrderLevel, c.Mode())
}

func TestApplyItemDiscount_EvictsOrderSelections(t *testing.T) {
	c := New()
	c.AddItem(testItem("a", 1000, 1))
	c.SelectOrderDiscount(&models.OrderSelection{Name: "10% off", Percentage: models.PercentageFromFloat(10)})
	c.SelectOrderTax(&models.OrderSelection{Name: "VAT", Percentage: models.PercentageFromFloat(11)})

	c.ApplyItemDiscount("a", models.Discount{Name: "Members", Value: models.PercentageValue(decimal.NewFromInt(5))})

	assert.Nil(t, c.OrderDiscount)
	assert.Nil(t, c.OrderTax)
	require.NotNil(t, c.Items[0].ItemDiscount)
	assert.Equal(t, "Members", c.Items[0].ItemDiscount.Name)
	assert.Equal(t, ModeItemLevel, c.Mode())
}

func TestApplyItemDiscount_AbsentIDKeepsOrderSelections(t *testing.T) {
	c := New()
	c.AddItem(testItem("a", 1000, 1))
	c.SelectOrderTax(&models.OrderSelection{Name: "VAT", Percentage: models.PercentageFromFloat(11)})

	c.ApplyItemDiscount("missing", models.Discount{Name: "Members", Value: models.PercentageValue(decimal.NewFromInt(5))})

	assert.NotNil(t, c.OrderTax)
	assert.Nil(t, c.Items[0].ItemDiscount)
}

func TestRemoveItemDiscount(t *testing.T) {
	c := New()
	c.AddItem(testItem("a", 1000, 1))
	c.ApplyItemDiscount("a", models.Discount{Name: "Members", Value: models.PercentageValue(decimal.NewFromInt(5))})

	c.RemoveItemDiscount("a")

	assert.Nil(t, c.Items[0].ItemDiscount)
}

func TestToggleItemTax_KeepsConfiguredRate(t *testing.T) {
	c := New()
	c.AddItem(testItem("a", 1000, 1))
	c.SetItemTaxRate("a", models.TaxRate{Name: "Sales Tax", Percentage: models.PercentageFromFloat(10)})
	c.ToggleItemTax("a", true)

	c.ToggleItemTax("a", false)

	assert.False(t, c.Items[0].IsTaxable)
	require.NotNil(t, c.Items[0].ItemTaxRate)

	c.ToggleItemTax("a", true)
	assert.True(t, c.Items[0].IsTaxable)
	assert.True(t, c.Items[0].ItemTaxRate.Equal(decimal.NewFromInt(10)))
}

func TestSetItemTaxRate_InvalidPercentageUnsetsRate(t *testing.T) {
	c := New()
	c.AddItem(testItem("a", 1000, 1))
	c.SetItemTaxRate("a", models.TaxRate{Name: "Sales Tax", Percentage: models.PercentageFromFloat(10)})

	c.SetItemTaxRate("a", models.TaxRate{Name: "Broken"})

	assert.Nil(t, c.Items[0].ItemTaxRate)
}

func TestSelectOrderDiscount_StripsItemSelections(t *testing.T) {
	c := New()
	c.AddItem(testItem("a", 1000, 1))
	c.AddItem(testItem("b", 500, 2))
	c.ApplyItemDiscount("a", models.Discount{Name: "Members", Value: models.PercentageValue(decimal.NewFromInt(5))})
	c.SetItemTaxRate("b", models.TaxRate{Name: "Sales Tax", Percentage: models.PercentageFromFloat(10)})
	c.ToggleItemTax("b", true)

	c.SelectOrderDiscount(&models.OrderSelection{Name: "10% off", Percentage: models.PercentageFromFloat(10)})

	for _, item := range c.Items {
		assert.Nil(t, item.ItemDiscount)
		assert.False(t, item.IsTaxable)
		assert.Nil(t, item.ItemTaxRate)
	}
	assert.Equal(t, ModeOrderLevel, c.Mode())
}

func TestSelectOrderTax_NilClearsSelection(t *testing.T) {
	c := New()
	c.AddItem(testItem("a", 1000, 1))
	c.SelectOrderTax(&models.OrderSelection{Name: "VAT", Percentage: models.PercentageFromFloat(11)})
	require.Equal(t, ModeOrderLevel, c.Mode())

	c.SelectOrderTax(nil)

	assert.Nil(t, c.OrderTax)
	assert.Equal(t, ModeItemLevel, c.Mode())
}

func TestMode_EmptyCartIsItemLevel(t *testing.T) {
	assert.Equal(t, ModeItemLevel, New().Mode())
}
