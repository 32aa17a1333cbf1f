package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords_SaveLoad(t *testing.T) {
	recs, err := NewRecords(t.TempDir())
	require.NoError(t, err)

	in := map[string][]int{"u1": {1, 2, 3}}
	require.NoError(t, recs.Save("cart-storage", in))

	var out map[string][]int
	ok, err := recs.Load("cart-storage", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestRecords_LoadMissing(t *testing.T) {
	recs, err := NewRecords(t.TempDir())
	require.NoError(t, err)

	var out map[string]string
	ok, err := recs.Load("never-written", &out)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestRecords_SaveReplaces(t *testing.T) {
	recs, err := NewRecords(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, recs.Save("balance-storage", map[string]int{"u1": 1000}))
	require.NoError(t, recs.Save("balance-storage", map[string]int{"u1": 885}))

	var out map[string]int
	_, err = recs.Load("balance-storage", &out)
	require.NoError(t, err)
	assert.Equal(t, 885, out["u1"])
}

func TestRecords_RestoredByNewInstance(t *testing.T) {
	dir := t.TempDir()

	first, err := NewRecords(dir)
	require.NoError(t, err)
	require.NoError(t, first.Save("theme-storage", map[string]string{"theme": "dark"}))

	second, err := NewRecords(dir)
	require.NoError(t, err)

	var out map[string]string
	ok, err := second.Load("theme-storage", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", out["theme"])
}

func TestRecords_Delete(t *testing.T) {
	recs, err := NewRecords(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, recs.Save("auth-session", map[string]string{"token": "x"}))
	require.NoError(t, recs.Delete("auth-session"))
	require.NoError(t, recs.Delete("auth-session"))

	var out map[string]string
	ok, err := recs.Load("auth-session", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}
