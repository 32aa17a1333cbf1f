package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/VGoku/e-commerce-platform1/internal/storage"
)

const balanceRecord = "balance-storage"

// InitialBalance is granted to every user on first access.
var InitialBalance = decimal.NewFromInt(1000)

type Balance struct {
	mu       sync.RWMutex
	recs     *storage.Records
	balances map[string]decimal.Decimal
}

func NewBalance(recs *storage.Records) (*Balance, error) {
	b := &Balance{recs: recs, balances: make(map[string]decimal.Decimal)}
	if _, err := recs.Load(balanceRecord, &b.balances); err != nil {
		return nil, err
	}
	if b.balances == nil {
		b.balances = make(map[string]decimal.Decimal)
	}
	return b, nil
}

// Balance returns the user's balance, defaulting to InitialBalance for
// users never seen before. An empty user ID yields zero.
func (b *Balance) Balance(userID string) decimal.Decimal {
	if userID == "" {
		return decimal.Zero
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if bal, ok := b.balances[userID]; ok {
		return bal
	}
	return InitialBalance
}

// Deduct subtracts amount from the user's balance, flooring at zero.
func (b *Balance) Deduct(userID string, amount decimal.Decimal) error {
	if userID == "" {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	bal, ok := b.balances[userID]
	if !ok {
		bal = InitialBalance
	}
	bal = bal.Sub(amount)
	if bal.IsNegative() {
		bal = decimal.Zero
	}
	b.balances[userID] = bal
	return b.recs.Save(balanceRecord, b.balances)
}

// Reset restores the user's balance to InitialBalance.
func (b *Balance) Reset(userID string) error {
	if userID == "" {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.balances[userID] = InitialBalance
	return b.recs.Save(balanceRecord, b.balances)
}
