package store

import (
	"errors"
	"sync"

	"github.com/VGoku/e-commerce-platform1/internal/storage"
)

var ErrInvalidTheme = errors.New("theme must be light or dark")

const (
	themeRecord = "theme-storage"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Prefs holds display preferences. The theme is a single setting for
// the installation, not keyed per user.
type Prefs struct {
	mu    sync.RWMutex
	recs  *storage.Records
	theme string
}

func NewPrefs(recs *storage.Records) (*Prefs, error) {
	p := &Prefs{recs: recs, theme: ThemeLight}
	var saved struct {
		Theme string `json:"theme"`
	}
	ok, err := recs.Load(themeRecord, &saved)
	if err != nil {
		return nil, err
	}
	if ok && (saved.Theme == ThemeLight || saved.Theme == ThemeDark) {
		p.theme = saved.Theme
	}
	return p, nil
}

func (p *Prefs) Theme() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

func (p *Prefs) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrInvalidTheme
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = theme
	return p.persist()
}

// ToggleTheme flips between light and dark and returns the new theme.
func (p *Prefs) ToggleTheme() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.theme == ThemeLight {
		p.theme = ThemeDark
	} else {
		p.theme = ThemeLight
	}
	return p.theme, p.persist()
}

func (p *Prefs) persist() error {
	return p.recs.Save(themeRecord, struct {
		Theme string `json:"theme"`
	}{Theme: p.theme})
}
