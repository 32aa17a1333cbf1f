package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VGoku/e-commerce-platform1/internal/storage"
)

func TestPrefs_DefaultAndToggle(t *testing.T) {
	prefs, err := NewPrefs(testRecords(t))
	require.NoError(t, err)

	assert.Equal(t, ThemeLight, prefs.Theme())

	theme, err := prefs.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	theme, err = prefs.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}

func TestPrefs_SetTheme_RejectsUnknown(t *testing.T) {
	prefs, err := NewPrefs(testRecords(t))
	require.NoError(t, err)

	assert.ErrorIs(t, prefs.SetTheme("sepia"), ErrInvalidTheme)
	assert.Equal(t, ThemeLight, prefs.Theme())
}

func TestPrefs_PersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	recs, err := storage.NewRecords(dir)
	require.NoError(t, err)

	prefs, err := NewPrefs(recs)
	require.NoError(t, err)
	require.NoError(t, prefs.SetTheme(ThemeDark))

	recs2, err := storage.NewRecords(dir)
	require.NoError(t, err)
	restored, err := NewPrefs(recs2)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, restored.Theme())
}

func TestDailyQuote_StableWithinDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	later := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, DailyQuote(now), DailyQuote(later))
	assert.NotEqual(t, DailyQuote(now), DailyQuote(nextDay))
}
