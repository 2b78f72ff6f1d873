package utils

import (
	"context"
	"fmt"
	"time"

	"transparencyhub/models"
)

// ProductSeeder is the part of the product store needed for seeding.
type ProductSeeder interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, product models.Product) (*models.Product, error)
}

// SampleProducts are inserted into an empty catalog.
var SampleProducts = []models.Product{
	{
		Name:        "Laptop",
		Brand:       "Dell",
		Price:       799,
		Description: "A powerful laptop for developers",
		InStock:     true,
	},
}

// SeedProductData populates the products collection with sample data.
// It returns the number of inserted products; a non-empty catalog is left alone.
func SeedProductData(ctx context.Context, store ProductSeeder) (int, error) {
	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := store.Count(dbCtx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for i, product := range SampleProducts {
		if _, err := store.Create(dbCtx, product); err != nil {
			return i, fmt.Errorf("failed to seed product %q: %w", product.Name, err)
		}
	}
	return len(SampleProducts), nil
}
