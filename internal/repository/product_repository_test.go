package repository

import (
	"context"
	"testing"

	"github.com/Lixing-Zhang/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAll_PreservesOrder(t *testing.T) {
	repo, err := NewInMemoryProductRepository(DefaultProducts())
	require.NoError(t, err)

	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.Product{
		{ID: 1, Name: "Product 1", Price: "$100"},
		{ID: 2, Name: "Product 2", Price: "$150"},
		{ID: 3, Name: "Product 3", Price: "$200"},
	}, products)
}

func TestGetAll_ReturnsCopy(t *testing.T) {
	seed := DefaultProducts()
	repo, err := NewInMemoryProductRepository(seed)
	require.NoError(t, err)

	// mutating the seed after construction has no effect
	seed[0].Name = "changed"

	first, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	first[1].Price = "$0"

	second, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Product 1", second[0].Name)
	assert.Equal(t, "$150", second[1].Price)
}

func TestNewInMemoryProductRepository_RejectsBadIDs(t *testing.T) {
	tests := []struct {
		name     string
		products []models.Product
		wantErr  error
	}{
		{
			name:     "zero id",
			products: []models.Product{{ID: 0, Name: "x", Price: "$1"}},
			wantErr:  ErrInvalidProductID,
		},
		{
			name:     "negative id",
			products: []models.Product{{ID: -4, Name: "x", Price: "$1"}},
			wantErr:  ErrInvalidProductID,
		},
		{
			name: "duplicate id",
			products: []models.Product{
				{ID: 1, Name: "a", Price: "$1"},
				{ID: 1, Name: "b", Price: "$2"},
			},
			wantErr: ErrDuplicateProductID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInMemoryProductRepository(tt.products)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetAll_EmptyCatalog(t *testing.T) {
	repo, err := NewInMemoryProductRepository(nil)
	require.NoError(t, err)

	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestGetAll_CanceledContext(t *testing.T) {
	repo, err := NewInMemoryProductRepository(DefaultProducts())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.GetAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
