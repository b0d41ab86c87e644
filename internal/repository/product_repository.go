package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/storefront/internal/models"
)

var (
	ErrInvalidProductID   = errors.New("product id must be positive")
	ErrDuplicateProductID = errors.New("duplicate product id")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
}

// InMemoryProductRepository implements ProductRepository over a fixed, ordered catalog
type InMemoryProductRepository struct {
	products []models.Product
}

// DefaultProducts returns the catalog served when no other is injected
func DefaultProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Product 1", Price: "$100"},
		{ID: 2, Name: "Product 2", Price: "$150"},
		{ID: 3, Name: "Product 3", Price: "$200"},
	}
}

// NewInMemoryProductRepository creates a repository holding a private copy of products.
// Declaration order is preserved; ids must be positive and unique.
func NewInMemoryProductRepository(products []models.Product) (*InMemoryProductRepository, error) {
	seen := make(map[int64]struct{}, len(products))
	for _, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidProductID, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProductID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return &InMemoryProductRepository{
		products: append([]models.Product(nil), products...),
	}, nil
}

// GetAll returns all products in declaration order.
// Callers get a copy and cannot mutate the catalog.
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}
