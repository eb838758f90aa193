package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/service"
)

// Checkout handles POST /api/v1/carts/:owner/checkout
// The platform's order response is returned untouched; its totals are
// authoritative over anything computed locally.
func (h *Handlers) Checkout(c *gin.Context) {
	ownerID := c.Param("owner")
	if err := service.ValidateOwnerID(ownerID); err != nil {
		handleError(c, err)
		return
	}

	resp, err := h.checkoutService.Checkout(c.Request.Context(), ownerID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Data(http.StatusCreated, "application/json", resp)
}
