package storage

import (
	"context"

	"github.com/vendapp/repvendas/internal/models"
)

//go:generate moq -out catalog_mock.go . CatalogCache

// CatalogCache defines the interface for the local product catalog cache,
// refreshed from the server while online and read during offline capture.
type CatalogCache interface {
	// SaveProducts replaces the cached catalog with the given products.
	SaveProducts(ctx context.Context, products []models.Product) error

	// ListProducts returns all cached products.
	ListProducts(ctx context.Context) ([]models.Product, error)

	// GetProduct returns one cached product by its catalog code.
	// Returns ErrProductNotFound if the code is not cached.
	GetProduct(ctx context.Context, code string) (*models.Product, error)
}
