package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VGoku/e-commerce-platform1/internal/dto"
	"github.com/VGoku/e-commerce-platform1/internal/store"
)

type AuthHandler struct {
	session *store.Session
}

func NewAuthHandler(session *store.Session) *AuthHandler {
	return &AuthHandler{session: session}
}

// oneShotError drains the session store's error field for display,
// clearing it afterwards.
func (h *AuthHandler) oneShotError(fallback string) string {
	msg := h.session.Err()
	h.session.ClearError()
	if msg == "" {
		msg = fallback
	}
	return msg
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.session.SignUp(c.Request.Context(), req.Email, req.Password, req.Username)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, dto.SessionResponse{
			User:  *h.session.User(),
			Token: h.session.Token(),
		})
	case errors.Is(err, store.ErrConfirmationPending):
		c.JSON(http.StatusAccepted, gin.H{"message": "confirmation email sent"})
	case errors.Is(err, store.ErrUsernameTooShort), errors.Is(err, store.ErrPasswordTooShort),
		errors.Is(err, store.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": h.oneShotError(err.Error())})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": h.oneShotError("sign up failed")})
	}
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.session.SignIn(c.Request.Context(), req.Email, req.Password); err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, store.ErrMissingCredentials) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": h.oneShotError("sign in failed")})
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		User:  *h.session.User(),
		Token: h.session.Token(),
	})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.session.SignOut(c.Request.Context()); err != nil {
		if errors.Is(err, store.ErrNotSignedIn) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "not signed in"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": h.oneShotError("sign out failed")})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) GetSession(c *gin.Context) {
	user := h.session.User()
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{User: *user})
}
