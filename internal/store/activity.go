package store

import (
	"sync"

	"github.com/VGoku/e-commerce-platform1/internal/model"
	"github.com/VGoku/e-commerce-platform1/internal/storage"
)

const activityRecord = "activity-storage"

// recentlyViewedCap bounds the MRU list per user.
const recentlyViewedCap = 5

type activityState struct {
	Wishlist       map[string][]model.Product `json:"wishlist"`
	RecentlyViewed map[string][]model.Product `json:"recently_viewed"`
	Orders         map[string][]model.Order   `json:"orders"`
}

func newActivityState() activityState {
	return activityState{
		Wishlist:       make(map[string][]model.Product),
		RecentlyViewed: make(map[string][]model.Product),
		Orders:         make(map[string][]model.Order),
	}
}

// Activity tracks three per-user collections: the wishlist (set
// semantics by product id), a recently-viewed MRU list capped at five
// entries, and an append-only order history.
type Activity struct {
	mu    sync.RWMutex
	recs  *storage.Records
	state activityState
}

func NewActivity(recs *storage.Records) (*Activity, error) {
	a := &Activity{recs: recs, state: newActivityState()}
	if _, err := recs.Load(activityRecord, &a.state); err != nil {
		return nil, err
	}
	if a.state.Wishlist == nil {
		a.state.Wishlist = make(map[string][]model.Product)
	}
	if a.state.RecentlyViewed == nil {
		a.state.RecentlyViewed = make(map[string][]model.Product)
	}
	if a.state.Orders == nil {
		a.state.Orders = make(map[string][]model.Order)
	}
	return a, nil
}

// AddToWishlist adds a product snapshot once; re-adding is a no-op.
func (a *Activity) AddToWishlist(userID string, product model.Product) error {
	if userID == "" {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	list := a.state.Wishlist[userID]
	for _, p := range list {
		if p.ID == product.ID {
			return nil
		}
	}
	a.state.Wishlist[userID] = append(list, product)
	return a.persist()
}

func (a *Activity) RemoveFromWishlist(userID string, productID int64) error {
	if userID == "" {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	list := a.state.Wishlist[userID]
	next := make([]model.Product, 0, len(list))
	for _, p := range list {
		if p.ID != productID {
			next = append(next, p)
		}
	}
	a.state.Wishlist[userID] = next
	return a.persist()
}

func (a *Activity) Wishlist(userID string) []model.Product {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return copyProducts(a.state.Wishlist[userID])
}

// AddRecentlyViewed moves the product to the front of the user's MRU
// list, deduplicating by id and truncating to the cap.
func (a *Activity) AddRecentlyViewed(userID string, product model.Product) error {
	if userID == "" {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	list := a.state.RecentlyViewed[userID]
	next := make([]model.Product, 0, len(list)+1)
	next = append(next, product)
	for _, p := range list {
		if p.ID != product.ID {
			next = append(next, p)
		}
	}
	if len(next) > recentlyViewedCap {
		next = next[:recentlyViewedCap]
	}
	a.state.RecentlyViewed[userID] = next
	return a.persist()
}

func (a *Activity) RecentlyViewed(userID string) []model.Product {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return copyProducts(a.state.RecentlyViewed[userID])
}

func (a *Activity) AddOrder(userID string, order model.Order) error {
	if userID == "" {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.Orders[userID] = append(a.state.Orders[userID], order)
	return a.persist()
}

func (a *Activity) Orders(userID string) []model.Order {
	a.mu.RLock()
	defer a.mu.RUnlock()

	orders := a.state.Orders[userID]
	out := make([]model.Order, len(orders))
	copy(out, orders)
	return out
}

// ClearUserActivity resets all three collections for one user.
func (a *Activity) ClearUserActivity(userID string) error {
	if userID == "" {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.Wishlist[userID] = nil
	a.state.RecentlyViewed[userID] = nil
	a.state.Orders[userID] = nil
	return a.persist()
}

func (a *Activity) persist() error {
	return a.recs.Save(activityRecord, a.state)
}

func copyProducts(in []model.Product) []model.Product {
	out := make([]model.Product, len(in))
	copy(out, in)
	return out
}
