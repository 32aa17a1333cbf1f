package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutFixture(t *testing.T) (*Checkout, *Cart, *Balance) {
	t.Helper()
	recs := testRecords(t)
	cart, err := NewCart(recs)
	require.NoError(t, err)
	balance, err := NewBalance(recs)
	require.NoError(t, err)
	return NewCheckout(cart, balance), cart, balance
}

func TestCheckout_Quote(t *testing.T) {
	checkout, cart, _ := newCheckoutFixture(t)

	// subtotal 100 => shipping 5, tax 10, total 115
	require.NoError(t, cart.AddItem("user-a", testProduct(1, 50), 2))

	totals := checkout.Quote("user-a")
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(100)), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.Shipping.Equal(decimal.NewFromInt(5)), "shipping %s", totals.Shipping)
	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(10)), "tax %s", totals.Tax)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(115)), "total %s", totals.Total)
}

func TestCheckout_Quote_EmptyCartHasNoShipping(t *testing.T) {
	checkout, _, _ := newCheckoutFixture(t)

	totals := checkout.Quote("user-a")
	assert.True(t, totals.Shipping.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestCheckout_Process_InsufficientBalance(t *testing.T) {
	checkout, cart, balance := newCheckoutFixture(t)

	require.NoError(t, cart.AddItem("user-a", testProduct(1, 50), 2))
	require.NoError(t, balance.Deduct("user-a", decimal.NewFromInt(900))) // leaves 100

	_, err := checkout.Process("user-a")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// rejection mutates nothing
	assert.True(t, balance.Balance("user-a").Equal(decimal.NewFromInt(100)))
	assert.Len(t, cart.Items("user-a"), 1)
}

func TestCheckout_Process_Succeeds(t *testing.T) {
	checkout, cart, balance := newCheckoutFixture(t)

	require.NoError(t, cart.AddItem("user-a", testProduct(1, 50), 2))
	require.NoError(t, balance.Deduct("user-a", decimal.NewFromInt(800))) // leaves 200

	totals, err := checkout.Process("user-a")
	require.NoError(t, err)

	assert.True(t, totals.Total.Equal(decimal.NewFromInt(115)))
	assert.True(t, balance.Balance("user-a").Equal(decimal.NewFromInt(85)), "balance %s", balance.Balance("user-a"))
	assert.Empty(t, cart.Items("user-a"))
}

func TestCheckout_Process_EmptyCart(t *testing.T) {
	checkout, _, _ := newCheckoutFixture(t)

	_, err := checkout.Process("user-a")
	assert.ErrorIs(t, err, ErrEmptyCart)
}
