package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VGoku/e-commerce-platform1/internal/dto"
	"github.com/VGoku/e-commerce-platform1/internal/gateway"
	"github.com/VGoku/e-commerce-platform1/internal/middleware"
	"github.com/VGoku/e-commerce-platform1/internal/model"
	"github.com/VGoku/e-commerce-platform1/internal/store"
)

// ProfileGateway is the profile and object-storage slice of the remote
// gateway.
type ProfileGateway interface {
	SelectProfile(ctx context.Context, token, userID string) (*model.Profile, error)
	UpsertProfile(ctx context.Context, token string, p model.Profile) error
	UploadAvatar(ctx context.Context, token, userID, filename, contentType string, body io.Reader) (string, error)
}

type ProfileHandler struct {
	gw       ProfileGateway
	activity *store.Activity
	balance  *store.Balance
}

func NewProfileHandler(gw ProfileGateway, activity *store.Activity, balance *store.Balance) *ProfileHandler {
	return &ProfileHandler{gw: gw, activity: activity, balance: balance}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.gw.SelectProfile(c.Request.Context(), middleware.GetAccessToken(c), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "profile unavailable"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := middleware.GetAccessToken(c)
	userID := middleware.GetUserID(c)

	profile, err := h.gw.SelectProfile(c.Request.Context(), token, userID)
	if err != nil && !errors.Is(err, gateway.ErrNotFound) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "profile unavailable"})
		return
	}
	if profile == nil {
		profile = &model.Profile{ID: userID}
	}

	if req.Username != nil {
		if len(*req.Username) < 3 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username must be at least 3 characters"})
			return
		}
		profile.Username = *req.Username
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}

	if err := h.gw.UpsertProfile(c.Request.Context(), token, *profile); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "profile update failed"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadAvatar stores the uploaded image remotely and points the
// profile's avatar URL at it.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}
	defer file.Close()

	token := middleware.GetAccessToken(c)
	userID := middleware.GetUserID(c)

	url, err := h.gw.UploadAvatar(c.Request.Context(), token, userID, header.Filename,
		header.Header.Get("Content-Type"), file)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "avatar upload failed"})
		return
	}

	profile, err := h.gw.SelectProfile(c.Request.Context(), token, userID)
	if err != nil && !errors.Is(err, gateway.ErrNotFound) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "profile unavailable"})
		return
	}
	if profile == nil {
		profile = &model.Profile{ID: userID}
	}
	profile.AvatarURL = url
	if err := h.gw.UpsertProfile(c.Request.Context(), token, *profile); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "profile update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

// Dashboard aggregates the account view: profile, balance, orders,
// wishlist, and recently viewed.
func (h *ProfileHandler) Dashboard(c *gin.Context) {
	token := middleware.GetAccessToken(c)
	userID := middleware.GetUserID(c)

	profile, err := h.gw.SelectProfile(c.Request.Context(), token, userID)
	if err != nil && !errors.Is(err, gateway.ErrNotFound) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "profile unavailable"})
		return
	}

	orders := h.activity.Orders(userID)
	orderOut := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		orderOut = append(orderOut, dto.OrderResponse{ID: o.ID, Total: o.Total, CreatedAt: o.CreatedAt})
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		Profile:  profile,
		Balance:  h.balance.Balance(userID),
		Orders:   orderOut,
		Wishlist: h.activity.Wishlist(userID),
		Recent:   h.activity.RecentlyViewed(userID),
	})
}
