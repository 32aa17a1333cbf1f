package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VGoku/e-commerce-platform1/internal/dto"
	"github.com/VGoku/e-commerce-platform1/internal/gateway"
	"github.com/VGoku/e-commerce-platform1/internal/middleware"
	"github.com/VGoku/e-commerce-platform1/internal/store"
)

// WishlistMirror replicates wishlist changes to the hosted table so
// the wishlist survives a wiped local state. Mirroring is best-effort;
// the local store stays authoritative.
type WishlistMirror interface {
	InsertWishlistItem(ctx context.Context, token, userID string, productID int64) error
	DeleteWishlistItem(ctx context.Context, token, userID string, productID int64) error
}

type ActivityHandler struct {
	activity *store.Activity
	catalog  *store.Catalog
	mirror   WishlistMirror
	log      *slog.Logger
}

func NewActivityHandler(activity *store.Activity, catalog *store.Catalog, mirror WishlistMirror, log *slog.Logger) *ActivityHandler {
	return &ActivityHandler{activity: activity, catalog: catalog, mirror: mirror, log: log}
}

func (h *ActivityHandler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"wishlist": h.activity.Wishlist(middleware.GetUserID(c))})
}

func (h *ActivityHandler) AddToWishlist(c *gin.Context) {
	var req dto.AddProductRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.catalog.Get(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}

	userID := middleware.GetUserID(c)
	if err := h.activity.AddToWishlist(userID, *product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if h.mirror != nil {
		if err := h.mirror.InsertWishlistItem(c.Request.Context(), middleware.GetAccessToken(c), userID, req.ProductID); err != nil {
			h.log.Warn("mirror wishlist add", "product_id", req.ProductID, "error", err)
		}
	}
	c.JSON(http.StatusCreated, gin.H{"message": "added to wishlist"})
}

func (h *ActivityHandler) RemoveFromWishlist(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	userID := middleware.GetUserID(c)
	if err := h.activity.RemoveFromWishlist(userID, productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if h.mirror != nil {
		if err := h.mirror.DeleteWishlistItem(c.Request.Context(), middleware.GetAccessToken(c), userID, productID); err != nil {
			h.log.Warn("mirror wishlist remove", "product_id", productID, "error", err)
		}
	}
	c.Status(http.StatusNoContent)
}

func (h *ActivityHandler) GetRecentlyViewed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recently_viewed": h.activity.RecentlyViewed(middleware.GetUserID(c))})
}

// MarkViewed records a product view in the MRU list.
func (h *ActivityHandler) MarkViewed(c *gin.Context) {
	var req dto.AddProductRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.catalog.Get(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}

	if err := h.activity.AddRecentlyViewed(middleware.GetUserID(c), *product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ActivityHandler) ListOrders(c *gin.Context) {
	orders := h.activity.Orders(middleware.GetUserID(c))
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.OrderResponse{ID: o.ID, Total: o.Total, CreatedAt: o.CreatedAt})
	}
	c.JSON(http.StatusOK, gin.H{"orders": out, "total": len(out)})
}
