// Package store holds the storefront's client state: the session plus
// the per-user keyed collections (cart, balance, wishlist, recently
// viewed, orders, reviews, preferences). Each store keeps a mapping
// from user ID to that user's private slice, persists the whole
// mapping to a durable local record on every mutation, and restores it
// at construction. Mutating with an empty user ID is a silent no-op.
package store

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/VGoku/e-commerce-platform1/internal/model"
	"github.com/VGoku/e-commerce-platform1/internal/storage"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

const cartRecord = "cart-storage"

type Cart struct {
	mu    sync.RWMutex
	recs  *storage.Records
	carts map[string][]model.CartItem
}

func NewCart(recs *storage.Records) (*Cart, error) {
	c := &Cart{recs: recs, carts: make(map[string][]model.CartItem)}
	if _, err := recs.Load(cartRecord, &c.carts); err != nil {
		return nil, err
	}
	if c.carts == nil {
		c.carts = make(map[string][]model.CartItem)
	}
	return c, nil
}

// AddItem appends a snapshot of product to the user's cart. If the
// product is already present its quantity is incremented instead.
func (c *Cart) AddItem(userID string, product model.Product, quantity int) error {
	if userID == "" {
		return nil
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.carts[userID]
	merged := false
	next := make([]model.CartItem, 0, len(items)+1)
	for _, item := range items {
		if item.ProductID == product.ID {
			item.Quantity += quantity
			merged = true
		}
		next = append(next, item)
	}
	if !merged {
		next = append(next, model.CartItem{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
		})
	}
	c.carts[userID] = next
	return c.persist()
}

// RemoveItem drops the entry for productID; absent entries are a no-op.
func (c *Cart) RemoveItem(userID string, productID int64) error {
	if userID == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.carts[userID]
	next := make([]model.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			next = append(next, item)
		}
	}
	c.carts[userID] = next
	return c.persist()
}

// UpdateQuantity sets the quantity for productID directly. Quantities
// below 1 are rejected; RemoveItem is the way to drop an entry.
func (c *Cart) UpdateQuantity(userID string, productID int64, quantity int) error {
	if userID == "" {
		return nil
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.carts[userID]
	next := make([]model.CartItem, len(items))
	for i, item := range items {
		if item.ProductID == productID {
			item.Quantity = quantity
		}
		next[i] = item
	}
	c.carts[userID] = next
	return c.persist()
}

// Clear empties the user's cart. Used on sign-out and after checkout.
func (c *Cart) Clear(userID string) error {
	if userID == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.carts[userID] = nil
	return c.persist()
}

// Total is the sum of price times quantity over the user's cart; zero
// for an unknown user or an empty cart.
func (c *Cart) Total(userID string) decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := decimal.Zero
	for _, item := range c.carts[userID] {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Items returns a copy of the user's cart in insertion order.
func (c *Cart) Items(userID string) []model.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := c.carts[userID]
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out
}

func (c *Cart) persist() error {
	return c.recs.Save(cartRecord, c.carts)
}
