package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VGoku/e-commerce-platform1/internal/dto"
	"github.com/VGoku/e-commerce-platform1/internal/gateway"
	"github.com/VGoku/e-commerce-platform1/internal/middleware"
	"github.com/VGoku/e-commerce-platform1/internal/store"
)

type CartHandler struct {
	cart     *store.Cart
	catalog  *store.Catalog
	checkout *store.Checkout
}

func NewCartHandler(cart *store.Cart, catalog *store.Catalog, checkout *store.Checkout) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog, checkout: checkout}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	c.JSON(http.StatusOK, dto.CartResponse{
		Items:  h.cart.Items(userID),
		Totals: toTotalsResponse(h.checkout.Quote(userID)),
	})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
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

	if err := h.cart.AddItem(middleware.GetUserID(c), *product, req.Quantity); err != nil {
		if errors.Is(err, store.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "item added"})
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.cart.UpdateQuantity(middleware.GetUserID(c), productID, req.Quantity); err != nil {
		if errors.Is(err, store.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item updated"})
}

func (h *CartHandler) DeleteItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	if err := h.cart.RemoveItem(middleware.GetUserID(c), productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cart.Clear(middleware.GetUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) GetTotals(c *gin.Context) {
	c.JSON(http.StatusOK, toTotalsResponse(h.checkout.Quote(middleware.GetUserID(c))))
}

func toTotalsResponse(t store.Totals) dto.TotalsResponse {
	return dto.TotalsResponse{
		Subtotal: t.Subtotal,
		Shipping: t.Shipping,
		Tax:      t.Tax,
		Total:    t.Total,
	}
}
