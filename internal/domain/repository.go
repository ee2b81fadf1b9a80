package domain

import (
	"context"
	"time"
)

// CatalogProvider supplies one store chain's catalog and quotes.
// Implementations may be backed by a live retailer API, a simulated
// catalog, or a hybrid of both; the core only depends on this interface.
type CatalogProvider interface {
	// StoreID returns the chain identifier this provider serves (e.g. "walmart").
	StoreID() string

	// ListProducts returns the store's full catalog for a location.
	// Search-driven providers may return an empty slice.
	ListProducts(ctx context.Context, locationID string) ([]StoreProduct, error)

	// Quote matches the whole shopping list against this store and
	// returns a complete quote, one match per item in input order.
	Quote(ctx context.Context, items []GroceryItem, locationID string) (*StoreQuote, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ReferenceCatalog is the shared, immutable reference product dataset.
// It backs the matcher's common-product fallback and search suggestions.
type ReferenceCatalog interface {
	// Search returns reference products ranked by relevance to the query.
	Search(query string, limit int) []ReferenceProduct

	// All returns the full reference product list.
	All() []ReferenceProduct
}
