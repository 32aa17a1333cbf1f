package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/VGoku/e-commerce-platform1/internal/model"
)

// --- Auth ---

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	User  model.User `json:"user"`
	Token string     `json:"token,omitempty"`
}

// --- Product ---

type CreateProductRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
}

type UpdateProductRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image"`
	Category    *string          `json:"category"`
}

// --- Cart ---

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type CartResponse struct {
	Items  []model.CartItem `json:"items"`
	Totals TotalsResponse   `json:"totals"`
}

type TotalsResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// --- Checkout ---

type CheckoutResponse struct {
	Totals  TotalsResponse  `json:"totals"`
	Balance decimal.Decimal `json:"balance"`
}

// --- Wishlist / recently viewed ---

type AddProductRefRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// --- Reviews ---

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

type ReviewListResponse struct {
	Reviews       []model.Review `json:"reviews"`
	AverageRating float64        `json:"average_rating"`
}

// --- Profile / dashboard ---

type UpdateProfileRequest struct {
	Username  *string `json:"username"`
	AvatarURL *string `json:"avatar_url"`
}

type DashboardResponse struct {
	Profile  *model.Profile  `json:"profile"`
	Balance  decimal.Decimal `json:"balance"`
	Orders   []OrderResponse `json:"orders"`
	Wishlist []model.Product `json:"wishlist"`
	Recent   []model.Product `json:"recently_viewed"`
}

type OrderResponse struct {
	ID        uuid.UUID       `json:"id"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// --- Prefs ---

type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}
