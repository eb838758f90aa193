package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/cart"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/config"
)

// cartKeyPrefix is the fixed store name carts are persisted under; the owner
// ID is appended to scope one cart per shopper.
const (
	cartKeyPrefix  = "cart-storage:"
	defaultCartTTL = 7 * 24 * time.Hour
)

// Ensure RedisCartRepository implements CartRepository
var _ CartRepository = (*RedisCartRepository)(nil)

// RedisCartRepository stores cart snapshots in Redis as JSON.
type RedisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Entry
}

// NewRedisCartRepository creates a Redis-backed cart repository.
func NewRedisCartRepository(cfg config.RedisConfig) *RedisCartRepository {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.CartTTL
	if ttl == 0 {
		ttl = defaultCartTTL
	}

	return &RedisCartRepository{
		client: client,
		ttl:    ttl,
		logger: log.WithField("component", "cart-repository"),
	}
}

// Get loads an owner's cart. A missing key yields an empty cart.
func (r *RedisCartRepository) Get(ctx context.Context, ownerID string) (*cart.Cart, error) {
	key := cartKeyPrefix + ownerID

	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		r.logger.WithField("owner_id", ownerID).Debug("No stored cart, starting empty")
		return cart.New(), nil
	}
	if err != nil {
		r.logger.WithFields(log.Fields{
			"owner_id": ownerID,
			"error":    err.Error(),
		}).Error("Cart load failed")
		return nil, err
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// Save stores the full cart state under the owner's key.
func (r *RedisCartRepository) Save(ctx context.Context, ownerID string, c *cart.Cart) error {
	key := cartKeyPrefix + ownerID

	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.WithFields(log.Fields{
			"owner_id": ownerID,
			"error":    err.Error(),
		}).Error("Cart save failed")
		return err
	}

	r.logger.WithFields(log.Fields{
		"owner_id":   ownerID,
		"item_count": len(c.Items),
	}).Debug("Cart saved")
	return nil
}

// Delete removes the stored cart for an owner.
func (r *RedisCartRepository) Delete(ctx context.Context, ownerID string) error {
	key := cartKeyPrefix + ownerID

	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.WithFields(log.Fields{
			"owner_id": ownerID,
			"error":    err.Error(),
		}).Error("Cart delete failed")
		return err
	}

	return nil
}

// Ping verifies connectivity for readiness checks.
func (r *RedisCartRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
