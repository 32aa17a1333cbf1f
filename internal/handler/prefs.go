package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VGoku/e-commerce-platform1/internal/dto"
	"github.com/VGoku/e-commerce-platform1/internal/store"
)

type PrefsHandler struct {
	prefs *store.Prefs
}

func NewPrefsHandler(prefs *store.Prefs) *PrefsHandler {
	return &PrefsHandler{prefs: prefs}
}

func (h *PrefsHandler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.prefs.Theme()})
}

func (h *PrefsHandler) SetTheme(c *gin.Context) {
	var req dto.SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.prefs.SetTheme(req.Theme); err != nil {
		if errors.Is(err, store.ErrInvalidTheme) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be light or dark"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": h.prefs.Theme()})
}

func (h *PrefsHandler) ToggleTheme(c *gin.Context) {
	theme, err := h.prefs.ToggleTheme()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (h *PrefsHandler) DailyQuote(c *gin.Context) {
	c.JSON(http.StatusOK, store.DailyQuote(time.Now()))
}
