package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VGoku/e-commerce-platform1/internal/model"
)

const productCacheTTL = 60 * time.Second

// CatalogGateway is the product-table slice of the remote gateway.
type CatalogGateway interface {
	SelectProducts(ctx context.Context) ([]model.Product, error)
	SelectProduct(ctx context.Context, id int64) (*model.Product, error)
	InsertProduct(ctx context.Context, token string, p model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, token string, id int64, p model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, token string, id int64) error
}

// Catalog mirrors the remote product table. The catalog is immutable
// from the storefront's perspective except for the admin passthrough
// calls, which invalidate the cache.
type Catalog struct {
	mu       sync.RWMutex
	gw       CatalogGateway
	redis    *redis.Client
	products []model.Product
	loading  bool
	errMsg   string
}

func NewCatalog(gw CatalogGateway, redisClient *redis.Client) *Catalog {
	return &Catalog{gw: gw, redis: redisClient}
}

// FetchAll refreshes the in-memory product list from the remote table.
func (c *Catalog) FetchAll(ctx context.Context) ([]model.Product, error) {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	products, err := c.gw.SelectProducts(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.errMsg = err.Error()
		return nil, err
	}
	c.errMsg = ""
	c.products = products

	out := make([]model.Product, len(products))
	copy(out, products)
	return out, nil
}

// Products returns the last fetched list without touching the network.
func (c *Catalog) Products() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyProducts(c.products)
}

func (c *Catalog) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Catalog) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errMsg
}

// Get resolves one product, reading through the Redis cache.
func (c *Catalog) Get(ctx context.Context, id int64) (*model.Product, error) {
	cacheKey := "product:" + strconv.FormatInt(id, 10)

	if c.redis != nil {
		if cached, err := c.redis.Get(ctx, cacheKey).Result(); err == nil {
			var p model.Product
			if json.Unmarshal([]byte(cached), &p) == nil {
				return &p, nil
			}
		}
	}

	p, err := c.gw.SelectProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if c.redis != nil {
		if data, err := json.Marshal(p); err == nil {
			c.redis.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}
	return p, nil
}

func (c *Catalog) Create(ctx context.Context, token string, p model.Product) (*model.Product, error) {
	created, err := c.gw.InsertProduct(ctx, token, p)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

func (c *Catalog) Update(ctx context.Context, token string, id int64, p model.Product) (*model.Product, error) {
	updated, err := c.gw.UpdateProduct(ctx, token, id, p)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	c.invalidateCache(ctx, id)
	return updated, nil
}

func (c *Catalog) Delete(ctx context.Context, token string, id int64) error {
	if err := c.gw.DeleteProduct(ctx, token, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	c.invalidateCache(ctx, id)
	return nil
}

func (c *Catalog) invalidateCache(ctx context.Context, id int64) {
	if c.redis != nil {
		c.redis.Del(ctx, "product:"+strconv.FormatInt(id, 10))
	}
}
