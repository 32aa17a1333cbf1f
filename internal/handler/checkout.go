package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VGoku/e-commerce-platform1/internal/dto"
	"github.com/VGoku/e-commerce-platform1/internal/middleware"
	"github.com/VGoku/e-commerce-platform1/internal/store"
)

type CheckoutHandler struct {
	checkout *store.Checkout
	balance  *store.Balance
}

func NewCheckoutHandler(checkout *store.Checkout, balance *store.Balance) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, balance: balance}
}

// Checkout charges the simulated balance for the cart total. A
// rejected checkout leaves both cart and balance untouched.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)

	totals, err := h.checkout.Process(userID)
	if err != nil {
		if errors.Is(err, store.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		if errors.Is(err, store.ErrInsufficientFunds) {
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":   "insufficient balance",
				"total":   totals.Total,
				"balance": h.balance.Balance(userID),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{
		Totals:  toTotalsResponse(totals),
		Balance: h.balance.Balance(userID),
	})
}

func (h *CheckoutHandler) GetBalance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"balance": h.balance.Balance(middleware.GetUserID(c))})
}

func (h *CheckoutHandler) ResetBalance(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if err := h.balance.Reset(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": h.balance.Balance(userID)})
}
