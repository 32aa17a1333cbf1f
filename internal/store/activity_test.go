package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VGoku/e-commerce-platform1/internal/model"
)

func TestActivity_Wishlist_SetSemantics(t *testing.T) {
	activity, err := NewActivity(testRecords(t))
	require.NoError(t, err)

	p := testProduct(1, 10)
	require.NoError(t, activity.AddToWishlist("user-a", p))
	require.NoError(t, activity.AddToWishlist("user-a", p))

	assert.Len(t, activity.Wishlist("user-a"), 1)
}

func TestActivity_Wishlist_Remove(t *testing.T) {
	activity, err := NewActivity(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, activity.AddToWishlist("user-a", testProduct(1, 10)))
	require.NoError(t, activity.AddToWishlist("user-a", testProduct(2, 20)))
	require.NoError(t, activity.RemoveFromWishlist("user-a", 1))

	list := activity.Wishlist("user-a")
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ID)
}

func TestActivity_RecentlyViewed_MRUOrderAndCap(t *testing.T) {
	activity, err := NewActivity(testRecords(t))
	require.NoError(t, err)

	// view products 1..6 in order; 1 must be evicted
	for id := int64(1); id <= 6; id++ {
		require.NoError(t, activity.AddRecentlyViewed("user-a", testProduct(id, 10)))
	}

	recent := activity.RecentlyViewed("user-a")
	require.Len(t, recent, 5)
	got := make([]int64, len(recent))
	for i, p := range recent {
		got[i] = p.ID
	}
	assert.Equal(t, []int64{6, 5, 4, 3, 2}, got)
}

func TestActivity_RecentlyViewed_ReviewMovesToFront(t *testing.T) {
	activity, err := NewActivity(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, activity.AddRecentlyViewed("user-a", testProduct(1, 10)))
	require.NoError(t, activity.AddRecentlyViewed("user-a", testProduct(2, 10)))
	require.NoError(t, activity.AddRecentlyViewed("user-a", testProduct(1, 10)))

	recent := activity.RecentlyViewed("user-a")
	require.Len(t, recent, 2)
	assert.Equal(t, int64(1), recent[0].ID)
	assert.Equal(t, int64(2), recent[1].ID)
}

func TestActivity_Orders_AppendOnly(t *testing.T) {
	activity, err := NewActivity(testRecords(t))
	require.NoError(t, err)

	order := model.Order{ID: uuid.New(), Total: decimal.NewFromInt(115), CreatedAt: time.Now()}
	require.NoError(t, activity.AddOrder("user-a", order))

	orders := activity.Orders("user-a")
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestActivity_ClearUserActivity(t *testing.T) {
	activity, err := NewActivity(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, activity.AddToWishlist("user-a", testProduct(1, 10)))
	require.NoError(t, activity.AddRecentlyViewed("user-a", testProduct(1, 10)))
	require.NoError(t, activity.AddOrder("user-a", model.Order{ID: uuid.New()}))

	require.NoError(t, activity.AddToWishlist("user-b", testProduct(2, 20)))

	require.NoError(t, activity.ClearUserActivity("user-a"))

	assert.Empty(t, activity.Wishlist("user-a"))
	assert.Empty(t, activity.RecentlyViewed("user-a"))
	assert.Empty(t, activity.Orders("user-a"))
	assert.Len(t, activity.Wishlist("user-b"), 1)
}

func TestActivity_PerUserIsolation(t *testing.T) {
	activity, err := NewActivity(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, activity.AddToWishlist("user-a", testProduct(1, 10)))

	assert.Empty(t, activity.Wishlist("user-b"))
	assert.Len(t, activity.Wishlist("user-a"), 1)
}
