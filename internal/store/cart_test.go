package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VGoku/e-commerce-platform1/internal/model"
	"github.com/VGoku/e-commerce-platform1/internal/storage"
)

func testRecords(t *testing.T) *storage.Records {
	t.Helper()
	recs, err := storage.NewRecords(t.TempDir())
	require.NoError(t, err)
	return recs
}

func testProduct(id int64, price float64) model.Product {
	return model.Product{
		ID:    id,
		Title: "Test Product",
		Price: decimal.NewFromFloat(price),
		Image: "https://example.com/p.jpg",
	}
}

func TestCart_AddItem_MergesQuantities(t *testing.T) {
	cart, err := NewCart(testRecords(t))
	require.NoError(t, err)

	p := testProduct(1, 10)
	require.NoError(t, cart.AddItem("user-a", p, 2))
	require.NoError(t, cart.AddItem("user-a", p, 3))

	items := cart.Items("user-a")
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCart_AddItem_NoUser(t *testing.T) {
	cart, err := NewCart(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, cart.AddItem("", testProduct(1, 10), 1))
	assert.Empty(t, cart.Items(""))
}

func TestCart_AddItem_RejectsZeroQuantity(t *testing.T) {
	cart, err := NewCart(testRecords(t))
	require.NoError(t, err)

	err = cart.AddItem("user-a", testProduct(1, 10), 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCart_Total(t *testing.T) {
	cart, err := NewCart(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, cart.AddItem("user-a", testProduct(1, 10), 2))
	require.NoError(t, cart.AddItem("user-a", testProduct(2, 5), 3))

	assert.True(t, cart.Total("user-a").Equal(decimal.NewFromFloat(35.00)),
		"got %s", cart.Total("user-a"))
}

func TestCart_Total_EmptyAndUnknownUser(t *testing.T) {
	cart, err := NewCart(testRecords(t))
	require.NoError(t, err)

	assert.True(t, cart.Total("nobody").IsZero())
	assert.True(t, cart.Total("").IsZero())
}

func TestCart_UpdateQuantity(t *testing.T) {
	cart, err := NewCart(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, cart.AddItem("user-a", testProduct(1, 10), 1))
	require.NoError(t, cart.UpdateQuantity("user-a", 1, 7))

	items := cart.Items("user-a")
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestCart_UpdateQuantity_RejectsBelowOne(t *testing.T) {
	cart, err := NewCart(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, cart.AddItem("user-a", testProduct(1, 10), 1))
	assert.ErrorIs(t, cart.UpdateQuantity("user-a", 1, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.UpdateQuantity("user-a", 1, -3), ErrInvalidQuantity)
}

func TestCart_RemoveItem(t *testing.T) {
	cart, err := NewCart(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, cart.AddItem("user-a", testProduct(1, 10), 1))
	require.NoError(t, cart.AddItem("user-a", testProduct(2, 5), 1))
	require.NoError(t, cart.RemoveItem("user-a", 1))

	items := cart.Items("user-a")
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)

	// absent product is a no-op
	require.NoError(t, cart.RemoveItem("user-a", 99))
	assert.Len(t, cart.Items("user-a"), 1)
}

func TestCart_Clear(t *testing.T) {
	cart, err := NewCart(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, cart.AddItem("user-a", testProduct(1, 10), 2))
	require.NoError(t, cart.Clear("user-a"))
	assert.Empty(t, cart.Items("user-a"))
}

func TestCart_PerUserIsolation(t *testing.T) {
	cart, err := NewCart(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, cart.AddItem("user-a", testProduct(1, 10), 2))
	require.NoError(t, cart.AddItem("user-b", testProduct(2, 5), 1))

	// acting as user-b must not expose or disturb user-a's cart
	itemsB := cart.Items("user-b")
	require.Len(t, itemsB, 1)
	assert.Equal(t, int64(2), itemsB[0].ProductID)

	require.NoError(t, cart.Clear("user-b"))

	itemsA := cart.Items("user-a")
	require.Len(t, itemsA, 1)
	assert.Equal(t, 2, itemsA[0].Quantity)
}

func TestCart_PersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	recs, err := storage.NewRecords(dir)
	require.NoError(t, err)

	cart, err := NewCart(recs)
	require.NoError(t, err)
	require.NoError(t, cart.AddItem("user-a", testProduct(1, 10), 2))

	recs2, err := storage.NewRecords(dir)
	require.NoError(t, err)
	restored, err := NewCart(recs2)
	require.NoError(t, err)

	items := restored.Items("user-a")
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].Price.Equal(decimal.NewFromInt(10)))
}
