package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartcompass/backend/internal/domain"
	"github.com/cartcompass/backend/internal/infrastructure/cache"
)

func newTestClient(baseURL string, store domain.CacheRepository) *Client {
	return NewClient(ClientConfig{
		StoreID:        "walmart",
		BaseURL:        baseURL,
		APIKey:         "test-key",
		RequestsPerSec: 1000, // keep tests fast
		Burst:          1000,
		Cache:          store,
		CacheTTL:       time.Minute,
	})
}

func TestSearchProducts(t *testing.T) {
	inStock := true
	outOfStock := false

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "whole milk", r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "walmart-2844", r.URL.Query().Get("storeId"))

		resp := searchResponse{
			Items: []searchItem{
				{
					ItemID: "10450114", Name: "Great Value Whole Milk 128 oz",
					BrandName: "Great Value", SalePrice: 3.48,
					CategoryPath: "Food/Dairy & Eggs/Milk", AvailableOnline: &inStock,
				},
				{
					ItemID: "10450115", Name: "Organic Whole Milk 64 oz",
					BrandName: "Horizon", SalePrice: 0, MSRP: 4.98,
					CategoryPath: "Food/Dairy & Eggs/Milk", AvailableOnline: &outOfStock,
				},
				{
					UPC: "0123456789", Name: "Whole Milk",
					SalePrice: 3.99, Stock: "Not available",
				},
			},
			TotalResults: 3,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	// The size token is stripped before the query goes out.
	products, err := client.SearchProducts(context.Background(), "whole milk 128 fl oz", "walmart-2844")
	require.NoError(t, err)
	require.Len(t, products, 3)

	first := products[0]
	assert.Equal(t, "10450114", first.SKU)
	assert.Equal(t, "Great Value", first.Brand)
	assert.Equal(t, "dairy", first.Category)
	assert.Equal(t, 3.48, first.Price)
	assert.Equal(t, domain.UnitOunce, first.Size.Unit)
	assert.Equal(t, 128.0, first.Size.Value)
	assert.True(t, first.InStock)

	// Zero sale price falls back to MSRP; availableOnline=false means out of stock.
	assert.Equal(t, 4.98, products[1].Price)
	assert.False(t, products[1].InStock)

	// Missing itemId falls back to UPC; "Not available" stock wins over
	// an unset availability flag.
	assert.Equal(t, "0123456789", products[2].SKU)
	assert.False(t, products[2].InStock)
	assert.Equal(t, domain.UnitCount, products[2].Size.Unit)
}

func TestSearchProductsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	_, err := client.SearchProducts(context.Background(), "unicorn steaks", "")
	assert.True(t, errors.Is(err, domain.ErrProductNotFound))
}

func TestSearchProductsRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(searchResponse{Items: []searchItem{
			{ItemID: "1", Name: "Eggs 12 ct", SalePrice: 2.98},
		}})
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	products, err := client.SearchProducts(context.Background(), "eggs", "")
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].SKU)
}

func TestSearchProductsInvalidQuery(t *testing.T) {
	client := newTestClient("http://unused.invalid", nil)

	_, err := client.SearchProducts(context.Background(), "16 oz", "")
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
}

func TestSearchProductsCaching(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(searchResponse{Items: []searchItem{
			{ItemID: "1", Name: "Spring Water 24 ct", SalePrice: 4.98},
		}})
	}))
	defer server.Close()

	client := newTestClient(server.URL, cache.NewMemoryCache())

	first, err := client.SearchProducts(context.Background(), "spring water", "walmart-2844")
	require.NoError(t, err)
	second, err := client.SearchProducts(context.Background(), "Spring Water", "walmart-2844")
	require.NoError(t, err)

	assert.Equal(t, 1, requests, "second search should be served from cache")
	assert.Equal(t, first, second)

	// A different location is a different cache entry.
	_, err = client.SearchProducts(context.Background(), "spring water", "walmart-5260")
	require.NoError(t, err)
	assert.Equal(t, 2, requests)
}

func TestExponentialBackoff(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, exponentialBackoff(1))
	assert.Equal(t, time.Second, exponentialBackoff(2))
	assert.Equal(t, 2*time.Second, exponentialBackoff(3))
}
