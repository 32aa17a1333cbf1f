package store

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

func TestProperty_AddItemMergesInsteadOfDuplicating(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("repeated adds of one product keep a single entry with summed quantity", prop.ForAll(
		func(quantities []int) bool {
			cart, err := NewCart(testRecords(t))
			if err != nil {
				return false
			}

			p := testProduct(42, 9.99)
			sum := 0
			for _, q := range quantities {
				if err := cart.AddItem("user-a", p, q); err != nil {
					return false
				}
				sum += q
			}

			items := cart.Items("user-a")
			if len(quantities) == 0 {
				return len(items) == 0
			}
			return len(items) == 1 && items[0].Quantity == sum
		},
		gen.SliceOf(gen.IntRange(1, 10)),
	))

	properties.Property("total equals the sum of price times quantity", prop.ForAll(
		func(prices []int, quantity int) bool {
			cart, err := NewCart(testRecords(t))
			if err != nil {
				return false
			}

			want := decimal.Zero
			for i, cents := range prices {
				price := decimal.NewFromInt(int64(cents)).Div(decimal.NewFromInt(100))
				p := testProduct(int64(i+1), 0)
				p.Price = price
				if err := cart.AddItem("user-a", p, quantity); err != nil {
					return false
				}
				want = want.Add(price.Mul(decimal.NewFromInt(int64(quantity))))
			}
			return cart.Total("user-a").Equal(want)
		},
		gen.SliceOf(gen.IntRange(1, 100000)),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}
