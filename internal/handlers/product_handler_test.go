package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/storefront/internal/models"
	"github.com/Lixing-Zhang/storefront/internal/repository"
	"github.com/Lixing-Zhang/storefront/internal/service"
	"github.com/Lixing-Zhang/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errLister struct{}

func (errLister) ListProducts(ctx context.Context) ([]models.Product, error) {
	return nil, errors.New("catalog unavailable")
}

func newProductHandler(t *testing.T) *ProductHandler {
	t.Helper()
	repo, err := repository.NewInMemoryProductRepository(repository.DefaultProducts())
	require.NoError(t, err)
	return NewProductHandler(service.NewProductService(repo), logger.New("error"))
}

func TestListProducts(t *testing.T) {
	handler := newProductHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	handler.ListProducts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":1,"name":"Product 1","price":"$100"},{"id":2,"name":"Product 2","price":"$150"},{"id":3,"name":"Product 3","price":"$200"}]`,
		rec.Body.String())
}

func TestListProducts_Idempotent(t *testing.T) {
	handler := newProductHandler(t)

	var bodies []string
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ListProducts(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])

	var products []models.Product
	require.NoError(t, json.Unmarshal([]byte(bodies[0]), &products))
	require.Len(t, products, 3)
	for i, p := range products {
		assert.Equal(t, int64(i+1), p.ID)
	}
}

func TestListProducts_ServiceError(t *testing.T) {
	handler := NewProductHandler(errLister{}, logger.New("error"))

	rec := httptest.NewRecorder()
	handler.ListProducts(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
