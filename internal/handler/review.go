package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VGoku/e-commerce-platform1/internal/dto"
	"github.com/VGoku/e-commerce-platform1/internal/middleware"
	"github.com/VGoku/e-commerce-platform1/internal/model"
	"github.com/VGoku/e-commerce-platform1/internal/store"
)

type ReviewHandler struct {
	reviews *store.Reviews
	session *store.Session
}

func NewReviewHandler(reviews *store.Reviews, session *store.Session) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, session: session}
}

func (h *ReviewHandler) List(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}
	c.JSON(http.StatusOK, dto.ReviewListResponse{
		Reviews:       h.reviews.ForProduct(productID),
		AverageRating: h.reviews.AverageRating(productID),
	})
}

func (h *ReviewHandler) Create(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userName := middleware.GetUserEmail(c)
	if user := h.session.User(); user != nil && user.ID == middleware.GetUserID(c) && user.Username != "" {
		userName = user.Username
	}

	review := model.Review{
		ID:        uuid.New(),
		UserID:    middleware.GetUserID(c),
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.reviews.Add(productID, review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, review)
}

// Delete removes a review. Only the author may delete their own
// review; the ownership check lives here, not in the store.
func (h *ReviewHandler) Delete(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}
	reviewID, err := uuid.Parse(c.Param("reviewId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		return
	}

	userID := middleware.GetUserID(c)
	var owned bool
	for _, review := range h.reviews.ForProduct(productID) {
		if review.ID == reviewID {
			if review.UserID != userID {
				c.JSON(http.StatusForbidden, gin.H{"error": "not your review"})
				return
			}
			owned = true
			break
		}
	}
	if !owned {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}

	if err := h.reviews.Delete(productID, reviewID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
