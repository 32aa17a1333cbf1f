package store

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientFunds = errors.New("insufficient balance")
)

// Flat shipping fee, charged only when the cart is non-empty, and the
// tax rate applied to the subtotal.
var (
	shippingFee = decimal.NewFromFloat(5.00)
	taxRate     = decimal.NewFromFloat(0.10)
)

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Checkout orchestrates the cart and balance stores. Payment is
// simulated: a successful checkout deducts the balance and clears the
// cart, nothing more.
type Checkout struct {
	cart    *Cart
	balance *Balance
}

func NewCheckout(cart *Cart, balance *Balance) *Checkout {
	return &Checkout{cart: cart, balance: balance}
}

// Quote computes subtotal, shipping, tax, and total for the user's
// current cart without mutating anything.
func (c *Checkout) Quote(userID string) Totals {
	subtotal := c.cart.Total(userID)

	shipping := decimal.Zero
	if len(c.cart.Items(userID)) > 0 {
		shipping = shippingFee
	}
	tax := subtotal.Mul(taxRate)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// Process charges the user's balance for the quoted total and clears
// the cart. When the total exceeds the balance the checkout is
// rejected and no state changes.
func (c *Checkout) Process(userID string) (Totals, error) {
	totals := c.Quote(userID)
	if len(c.cart.Items(userID)) == 0 {
		return totals, ErrEmptyCart
	}
	if totals.Total.GreaterThan(c.balance.Balance(userID)) {
		return totals, ErrInsufficientFunds
	}

	if err := c.balance.Deduct(userID, totals.Total); err != nil {
		return totals, err
	}
	if err := c.cart.Clear(userID); err != nil {
		return totals, err
	}
	return totals, nil
}
