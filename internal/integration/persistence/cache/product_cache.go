// Package cache implements redis-backed lookup caches.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
)

const (
	barcodeKeyPrefix = "product:barcode:"
	defaultTTL       = 10 * time.Minute
)

// productCache implements adapter.ProductCache on redis. Entries carry a TTL
// so a missed invalidation heals on its own.
type productCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache creates a new redis product cache instance.
func NewProductCache(client *redis.Client) adapter.ProductCache {
	return &productCache{
		client: client,
		ttl:    defaultTTL,
	}
}

// GetByBarcode returns the cached product for a barcode, or nil on a miss.
func (c *productCache) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	raw, err := c.client.Get(ctx, barcodeKeyPrefix+barcode).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get failed: %w", err)
	}

	var product entity.Product
	if err := json.Unmarshal([]byte(raw), &product); err != nil {
		// A corrupt entry behaves like a miss
		return nil, nil
	}
	return &product, nil
}

// SetByBarcode stores a product under its barcode.
func (c *productCache) SetByBarcode(ctx context.Context, product *entity.Product) error {
	if product.Barcode == "" {
		return nil
	}
	raw, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	if err := c.client.Set(ctx, barcodeKeyPrefix+product.Barcode, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}
	return nil
}

// InvalidateBarcode drops the cached entry for a barcode.
func (c *productCache) InvalidateBarcode(ctx context.Context, barcode string) error {
	if err := c.client.Del(ctx, barcodeKeyPrefix+barcode).Err(); err != nil {
		return fmt.Errorf("cache delete failed: %w", err)
	}
	return nil
}
