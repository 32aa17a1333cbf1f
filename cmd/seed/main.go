// Command seed loads a sample catalog into the hosted products table.
// Intended for fresh environments; inserting needs a token with write
// access to the table (SEED_TOKEN).
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/VGoku/e-commerce-platform1/internal/config"
	"github.com/VGoku/e-commerce-platform1/internal/gateway"
	"github.com/VGoku/e-commerce-platform1/internal/model"
)

var sampleProducts = []model.Product{
	{
		Title:       "Premium Leather Backpack",
		Description: "Handcrafted genuine leather backpack with laptop compartment and multiple pockets",
		Price:       decimal.NewFromFloat(129.99),
		Image:       "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?auto=format&fit=crop&q=80",
		Category:    "Bags",
	},
	{
		Title:       "Wireless Noise-Canceling Headphones",
		Description: "Premium wireless headphones with active noise cancellation and 30-hour battery life",
		Price:       decimal.NewFromFloat(249.99),
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&q=80",
		Category:    "Electronics",
	},
	{
		Title:       "Smart Fitness Watch",
		Description: "Advanced fitness tracker with heart rate monitoring and GPS",
		Price:       decimal.NewFromFloat(199.99),
		Image:       "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?auto=format&fit=crop&q=80",
		Category:    "Electronics",
	},
	{
		Title:       "Organic Cotton T-Shirt",
		Description: "Sustainable, soft organic cotton t-shirt available in multiple colors",
		Price:       decimal.NewFromFloat(29.99),
		Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&q=80",
		Category:    "Clothing",
	},
	{
		Title:       "Minimalist Wall Clock",
		Description: "Modern design wall clock with silent movement",
		Price:       decimal.NewFromFloat(49.99),
		Image:       "https://images.unsplash.com/photo-1563861826100-9cb868fdbe1c?auto=format&fit=crop&q=80",
		Category:    "Home Decor",
	},
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	token := os.Getenv("SEED_TOKEN")
	if token == "" {
		log.Error("SEED_TOKEN is required")
		os.Exit(1)
	}

	gw := gateway.New(cfg.Backend)
	ctx := context.Background()

	for _, p := range sampleProducts {
		created, err := gw.InsertProduct(ctx, token, p)
		if err != nil {
			log.Error("insert product", "title", p.Title, "error", err)
			os.Exit(1)
		}
		log.Info("seeded product", "id", created.ID, "title", created.Title)
	}
	log.Info("catalog seeded", "count", len(sampleProducts))
}
