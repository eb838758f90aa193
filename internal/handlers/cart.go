package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/cart"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/models"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/service"
)

// GetCart handles GET /api/v1/carts/:owner
func (h *Handlers) GetCart(c *gin.Context) {
	ownerID := c.Param("owner")
	if err := service.ValidateOwnerID(ownerID); err != nil {
		handleError(c, err)
		return
	}

	snapshot, err := h.cartService.GetCart(c.Request.Context(), ownerID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// ClearCart handles DELETE /api/v1/carts/:owner
func (h *Handlers) ClearCart(c *gin.Context) {
	ownerID := c.Param("owner")
	if err := service.ValidateOwnerID(ownerID); err != nil {
		handleError(c, err)
		return
	}

	snapshot, err := h.cartService.ClearCart(c.Request.Context(), ownerID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// GetSummary handles GET /api/v1/carts/:owner/summary
func (h *Handlers) GetSummary(c *gin.Context) {
	ownerID := c.Param("owner")
	if err := service.ValidateOwnerID(ownerID); err != nil {
		handleError(c, err)
		return
	}

	snapshot, err := h.cartService.GetCart(c.Request.Context(), ownerID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":      snapshot.Summary(),
		"pricing_mode": snapshot.Mode(),
	})
}

// AddItem handles POST /api/v1/carts/:owner/items
func (h *Handlers) AddItem(c *gin.Context) {
	ownerID := c.Param("owner")
	if err := service.ValidateOwnerID(ownerID); err != nil {
		handleError(c, err)
		return
	}

	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to bind cart item")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snapshot, err := h.cartService.AddItem(c.Request.Context(), ownerID, item)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, snapshot)
}

// RemoveItem handles DELETE /api/v1/carts/:owner/items/:id
func (h *Handlers) RemoveItem(c *gin.Context) {
	ownerID := c.Param("owner")
	if err := service.ValidateOwnerID(ownerID); err != nil {
		handleError(c, err)
		return
	}

	snapshot, err := h.cartService.RemoveItem(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// UpdateQuantity handles PATCH /api/v1/carts/:owner/items/:id/quantity
func (h *Handlers) UpdateQuantity(c *gin.Context) {
	ownerID := c.Param("owner")
	if err := service.ValidateOwnerID(ownerID); err != nil {
		handleError(c, err)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snapshot, err := h.cartService.UpdateQuantity(c.Request.Context(), ownerID, c.Param("id"), req.Quantity)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// ApplyItemDiscount handles PUT /api/v1/carts/:owner/items/:id/discount
func (h *Handlers) ApplyItemDiscount(c *gin.Context) {
	ownerID := c.Param("owner")
	if err := service.ValidateOwnerID(ownerID); err != nil {
		handleError(c, err)
		return
	}

	var discount models.Discount
	if err := c.ShouldBindJSON(&discount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snapshot, err := h.cartService.ApplyItemDiscount(c.Request.Context(), ownerID, c.Param("id"), discount)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// RemoveItemDiscount handles DELETE /api/v1/carts/:owner/items/:id/discount
func (h *Handlers) RemoveItemDiscount(c *gin.Context) {
	ownerID := c.Param("owner")
	if err := service.ValidateOwnerID(ownerID); err != nil {
		handleError(c, err)
		return
	}

	snapshot, err := h.cartService.RemoveItemDiscount(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// ToggleItemTax handles PUT /api/v1/carts/:owner/items/:id/tax
func (h *Handlers) ToggleItemTax(c *gin.Context) {
	ownerID := c.Param("owner")
	if err := service.ValidateOwnerID(ownerID); err != nil {
		handleError(c, err)
		return
	}

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snapshot, err := h.cartService.ToggleItemTax(c.Request.Context(), ownerID, c.Param("id"), req.Enabled)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// SetItemTaxRate handles PUT /api/v1/carts/:owner/items/:id/tax-rate
func (h *Handlers) SetItemTaxRate(c *gin.Context) {
	ownerID := c.Param("owner")
	if err := service.ValidateOwnerID(ownerID); err != nil {
		handleError(c, err)
		return
	}

	var rate models.TaxRate
	if err := c.ShouldBindJSON(&rate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snapshot, err := h.cartService.SetItemTaxRate(c.Request.Context(), ownerID, c.Param("id"), rate)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// SelectOrderDiscount handles PUT /api/v1/carts/:owner/order-discount
// A null selection clears the order-level discount.
func (h *Handlers) SelectOrderDiscount(c *gin.Context) {
	h.selectOrderLevel(c, h.cartService.SelectOrderDiscount)
}

// SelectOrderTax handles PUT /api/v1/carts/:owner/order-tax
// A null selection clears the order-level tax.
func (h *Handlers) SelectOrderTax(c *gin.Context) {
	h.selectOrderLevel(c, h.cartService.SelectOrderTax)
}

func (h *Handlers) selectOrderLevel(c *gin.Context, apply func(ctx context.Context, ownerID string, selection *models.OrderSelection) (*cart.Cart, error)) {
	ownerID := c.Param("owner")
	if err := service.ValidateOwnerID(ownerID); err != nil {
		handleError(c, err)
		return
	}

	var req struct {
		Selection *models.OrderSelection `json:"selection"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snapshot, err := apply(c.Request.Context(), ownerID, req.Selection)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
