package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance_DefaultsToInitial(t *testing.T) {
	balance, err := NewBalance(testRecords(t))
	require.NoError(t, err)

	assert.True(t, balance.Balance("user-a").Equal(decimal.NewFromInt(1000)))
}

func TestBalance_Deduct(t *testing.T) {
	balance, err := NewBalance(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, balance.Deduct("user-a", decimal.NewFromFloat(115.50)))
	assert.True(t, balance.Balance("user-a").Equal(decimal.NewFromFloat(884.50)))
}

func TestBalance_Deduct_FloorsAtZero(t *testing.T) {
	balance, err := NewBalance(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, balance.Deduct("user-a", decimal.NewFromInt(5000)))
	assert.True(t, balance.Balance("user-a").IsZero())
}

func TestBalance_Deduct_NoUser(t *testing.T) {
	balance, err := NewBalance(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, balance.Deduct("", decimal.NewFromInt(100)))
	assert.True(t, balance.Balance("").IsZero())
}

func TestBalance_Reset(t *testing.T) {
	balance, err := NewBalance(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, balance.Deduct("user-a", decimal.NewFromInt(999)))
	require.NoError(t, balance.Reset("user-a"))
	assert.True(t, balance.Balance("user-a").Equal(InitialBalance))
}

func TestBalance_PerUserIsolation(t *testing.T) {
	balance, err := NewBalance(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, balance.Deduct("user-a", decimal.NewFromInt(300)))

	assert.True(t, balance.Balance("user-b").Equal(decimal.NewFromInt(1000)))
	assert.True(t, balance.Balance("user-a").Equal(decimal.NewFromInt(700)))
}
