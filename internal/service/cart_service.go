package service

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/cart"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/events"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/metrics"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/models"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/repository"
)

// CartService owns every cart read and mutation. Mutations follow a
// load-mutate-persist cycle and are serialized through the service instance;
// a failed persist is logged and the mutation still succeeds, trading crash
// safety for at most the newest state on reload.
type CartService struct {
	repo      repository.CartRepository
	publisher events.CheckoutEventPublisher
	config    *config.Config
	logger    *log.Entry

	mu sync.Mutex
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, publisher events.CheckoutEventPublisher, cfg *config.Config) *CartService {
	return &CartService{
		repo:      repo,
		publisher: publisher,
		config:    cfg,
		logger:    log.WithField("component", "cart-service"),
	}
}

// GetCart returns the current cart snapshot for an owner.
func (s *CartService) GetCart(ctx context.Context, ownerID string) (*cart.Cart, error) {
	return s.repo.Get(ctx, ownerID)
}

// Summary derives the order summary for an owner's current cart.
func (s *CartService) Summary(ctx context.Context, ownerID string) (models.OrderSummary, error) {
	c, err := s.repo.Get(ctx, ownerID)
	if err != nil {
		return models.OrderSummary{}, err
	}
	return c.Summary(), nil
}

// AddItem adds or merges an item into the owner's cart.
func (s *CartService) AddItem(ctx context.Context, ownerID string, item models.CartItem) (*cart.Cart, error) {
	if err := ValidateCartItem(&item); err != nil {
		return nil, err
	}
	return s.mutate(ctx, ownerID, "add_item", func(c *cart.Cart) {
		c.AddItem(item)
	})
}

// RemoveItem removes an item from the owner's cart.
func (s *CartService) RemoveItem(ctx context.Context, ownerID, itemID string) (*cart.Cart, error) {
	return s.mutate(ctx, ownerID, "remove_item", func(c *cart.Cart) {
		c.RemoveItem(itemID)
	})
}

// UpdateQuantity sets an item's quantity; zero or less removes it.
func (s *CartService) UpdateQuantity(ctx context.Context, ownerID, itemID string, quantity int) (*cart.Cart, error) {
	return s.mutate(ctx, ownerID, "update_quantity", func(c *cart.Cart) {
		c.UpdateQuantity(itemID, quantity)
	})
}

// ClearCart empties the owner's cart on explicit request.
func (s *CartService) ClearCart(ctx context.Context, ownerID string) (*cart.Cart, error) {
	c, err := s.mutate(ctx, ownerID, "clear", func(c *cart.Cart) {
		c.Clear()
	})
	if err != nil {
		return nil, err
	}

	if s.config.Features.EnableCheckoutEvents {
		if err := s.publisher.PublishCartCleared(ctx, ownerID); err != nil {
			// Log but don't fail
			s.logger.WithFields(log.Fields{
				"owner_id": ownerID,
				"error":    err.Error(),
			}).Error("Failed to publish cart cleared event")
		}
	}

	return c, nil
}

// ApplyItemDiscount sets an item's discount slot.
func (s *CartService) ApplyItemDiscount(ctx context.Context, ownerID, itemID string, discount models.Discount) (*cart.Cart, error) {
	return s.mutate(ctx, ownerID, "apply_item_discount", func(c *cart.Cart) {
		c.ApplyItemDiscount(itemID, discount)
	})
}

// RemoveItemDiscount clears an item's discount slot.
func (s *CartService) RemoveItemDiscount(ctx context.Context, ownerID, itemID string) (*cart.Cart, error) {
	return s.mutate(ctx, ownerID, "remove_item_discount", func(c *cart.Cart) {
		c.RemoveItemDiscount(itemID)
	})
}

// ToggleItemTax enables or disables an item's tax.
func (s *CartService) ToggleItemTax(ctx context.Context, ownerID, itemID string, enabled bool) (*cart.Cart, error) {
	return s.mutate(ctx, ownerID, "toggle_item_tax", func(c *cart.Cart) {
		c.ToggleItemTax(itemID, enabled)
	})
}

// SetItemTaxRate sets an item's tax rate from a catalog tax.
func (s *CartService) SetItemTaxRate(ctx context.Context, ownerID, itemID string, rate models.TaxRate) (*cart.Cart, error) {
	return s.mutate(ctx, ownerID, "set_item_tax_rate", func(c *cart.Cart) {
		c.SetItemTaxRate(itemID, rate)
	})
}

// SelectOrderDiscount records or clears the order-level discount.
func (s *CartService) SelectOrderDiscount(ctx context.Context, ownerID string, selection *models.OrderSelection) (*cart.Cart, error) {
	if err := ValidateOrderSelection(selection); err != nil {
		return nil, err
	}
	return s.mutate(ctx, ownerID, "select_order_discount", func(c *cart.Cart) {
		c.SelectOrderDiscount(selection)
	})
}

// SelectOrderTax records or clears the order-level tax.
func (s *CartService) SelectOrderTax(ctx context.Context, ownerID string, selection *models.OrderSelection) (*cart.Cart, error) {
	if err := ValidateOrderSelection(selection); err != nil {
		return nil, err
	}
	return s.mutate(ctx, ownerID, "select_order_tax", func(c *cart.Cart) {
		c.SelectOrderTax(selection)
	})
}

func (s *CartService) mutate(ctx context.Context, ownerID, operation string, fn func(*cart.Cart)) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.repo.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	fn(c)

	if err := s.repo.Save(ctx, ownerID, c); err != nil {
		// Log but don't fail: persistence is best-effort
		s.logger.WithFields(log.Fields{
			"owner_id":  ownerID,
			"operation": operation,
			"error":     err.Error(),
		}).Error("Failed to persist cart")
	}

	metrics.CartMutationsTotal.WithLabelValues(operation).Inc()

	return c, nil
}
