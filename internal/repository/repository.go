package repository

import (
	"context"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/cart"
)

// CartRepository persists cart snapshots between sessions. Persistence is
// best-effort at-least-once: callers log a failed Save and carry on, at the
// cost of losing the newest state on reload.
type CartRepository interface {
	// Get loads the cart stored for an owner. A missing cart is not an
	// error; an empty cart is returned instead.
	Get(ctx context.Context, ownerID string) (*cart.Cart, error)

	// Save stores the full cart state. Stored carts round-trip exactly,
	// optional fields included.
	Save(ctx context.Context, ownerID string, c *cart.Cart) error

	// Delete removes the stored cart. Absent carts are a no-op.
	Delete(ctx context.Context, ownerID string) error
}
