package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/VGoku/e-commerce-platform1/internal/model"
)

// Table rows use the hosted schema's column names, which differ from
// the wire shapes the storefront serves.

type productRow struct {
	ID          int64           `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	RatingRate  *float64        `json:"rating_rate,omitempty"`
	RatingCount *int            `json:"rating_count,omitempty"`
}

func (r productRow) toModel() model.Product {
	p := model.Product{
		ID:          r.ID,
		Title:       r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.ImageURL,
		Category:    r.Category,
	}
	if r.RatingRate != nil {
		p.Rating = &model.Rating{Rate: *r.RatingRate}
		if r.RatingCount != nil {
			p.Rating.Count = *r.RatingCount
		}
	}
	return p
}

func productToRow(p model.Product) productRow {
	row := productRow{
		Name:        p.Title,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.Image,
		Category:    p.Category,
	}
	if p.Rating != nil {
		row.RatingRate = &p.Rating.Rate
		row.RatingCount = &p.Rating.Count
	}
	return row
}

func (c *Client) SelectProducts(ctx context.Context) ([]model.Product, error) {
	var rows []productRow
	if err := c.do(ctx, http.MethodGet, "/rest/v1/products?select=*", "", nil, &rows); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	products := make([]model.Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, r.toModel())
	}
	return products, nil
}

func (c *Client) SelectProduct(ctx context.Context, id int64) (*model.Product, error) {
	var rows []productRow
	path := fmt.Sprintf("/rest/v1/products?select=*&id=eq.%d", id)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &rows); err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	p := rows[0].toModel()
	return &p, nil
}

func (c *Client) InsertProduct(ctx context.Context, token string, p model.Product) (*model.Product, error) {
	var rows []productRow
	if err := c.do(ctx, http.MethodPost, "/rest/v1/products", token, []productRow{productToRow(p)}, &rows); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert product: empty representation")
	}
	created := rows[0].toModel()
	return &created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token string, id int64, p model.Product) (*model.Product, error) {
	var rows []productRow
	path := fmt.Sprintf("/rest/v1/products?id=eq.%d", id)
	if err := c.do(ctx, http.MethodPatch, path, token, productToRow(p), &rows); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	updated := rows[0].toModel()
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/rest/v1/products?id=eq.%d", id)
	if err := c.do(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

type orderRow struct {
	ID        uuid.UUID       `json:"id,omitempty"`
	UserID    string          `json:"user_id"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
}

func (c *Client) InsertOrder(ctx context.Context, token, userID string, order model.Order) error {
	row := orderRow{ID: order.ID, UserID: userID, Total: order.Total, CreatedAt: order.CreatedAt}
	if err := c.do(ctx, http.MethodPost, "/rest/v1/orders", token, []orderRow{row}, nil); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (c *Client) SelectOrders(ctx context.Context, token, userID string) ([]model.Order, error) {
	var rows []orderRow
	path := "/rest/v1/orders?select=*&user_id=eq." + userID
	if err := c.do(ctx, http.MethodGet, path, token, nil, &rows); err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	orders := make([]model.Order, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, model.Order{ID: r.ID, Total: r.Total, CreatedAt: r.CreatedAt})
	}
	return orders, nil
}

type profileRow struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (c *Client) SelectProfile(ctx context.Context, token, userID string) (*model.Profile, error) {
	var rows []profileRow
	path := "/rest/v1/profiles?select=*&id=eq." + userID
	if err := c.do(ctx, http.MethodGet, path, token, nil, &rows); err != nil {
		return nil, fmt.Errorf("select profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	r := rows[0]
	return &model.Profile{ID: r.ID, Username: r.Username, AvatarURL: r.AvatarURL, UpdatedAt: r.UpdatedAt}, nil
}

// UpsertProfile creates or replaces the profile row for p.ID.
func (c *Client) UpsertProfile(ctx context.Context, token string, p model.Profile) error {
	row := profileRow{ID: p.ID, Username: p.Username, AvatarURL: p.AvatarURL}
	path := "/rest/v1/profiles?on_conflict=id"
	if err := c.do(ctx, http.MethodPost, path, token, []profileRow{row}, nil); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

type wishlistRow struct {
	UserID    string `json:"user_id"`
	ProductID int64  `json:"product_id"`
}

// InsertWishlistItem mirrors a local wishlist add to the hosted table.
func (c *Client) InsertWishlistItem(ctx context.Context, token, userID string, productID int64) error {
	row := wishlistRow{UserID: userID, ProductID: productID}
	if err := c.do(ctx, http.MethodPost, "/rest/v1/wishlist_items", token, []wishlistRow{row}, nil); err != nil {
		return fmt.Errorf("insert wishlist item: %w", err)
	}
	return nil
}

func (c *Client) DeleteWishlistItem(ctx context.Context, token, userID string, productID int64) error {
	path := fmt.Sprintf("/rest/v1/wishlist_items?user_id=eq.%s&product_id=eq.%d", userID, productID)
	if err := c.do(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	return nil
}
