package service

import (
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/apperrors"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/models"
)

// ValidateOwnerID validates the cart owner identifier from the URL.
func ValidateOwnerID(ownerID string) error {
	if ownerID == "" {
		return apperrors.NewValidationError("owner_id", "owner ID is required")
	}
	if len(ownerID) > 128 {
		return apperrors.NewValidationError("owner_id", "owner ID too long (max 128 characters)")
	}
	return nil
}

// ValidateCartItem validates an item before it enters the cart.
func ValidateCartItem(item *models.CartItem) error {
	if item.ID == "" {
		return apperrors.NewValidationError("id", "item ID is required")
	}

	if item.Name == "" {
		return apperrors.NewValidationError("name", "item name is required")
	}

	if item.Price != nil && *item.Price < 0 {
		return apperrors.NewValidationError("price", "price cannot be negative")
	}

	// Quantity zero or less means "remove"; additions must carry at least one
	// unit or nothing at all (the store defaults missing quantities to 1).
	if item.Quantity < 0 {
		return apperrors.NewValidationError("quantity", "quantity cannot be negative")
	}

	return nil
}

// ValidateOrderSelection validates an order-level discount/tax selection.
// A nil selection is a deselect and always valid.
func ValidateOrderSelection(selection *models.OrderSelection) error {
	if selection == nil {
		return nil
	}

	if selection.Name == "" {
		return apperrors.NewValidationError("name", "selection name is required")
	}

	return nil
}
