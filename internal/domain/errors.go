package domain

import "errors"

var (
	// ErrNoQuotes is returned when the optimizer is called with zero quotes
	ErrNoQuotes = errors.New("no store quotes provided")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCatalogUnavailable is returned when a store's catalog cannot be retrieved
	ErrCatalogUnavailable = errors.New("store catalog unavailable")

	// ErrProductNotFound is returned when a catalog search yields no products
	ErrProductNotFound = errors.New("no products found")

	// ErrUnknownStore is returned when a chain has no registered catalog provider
	ErrUnknownStore = errors.New("unknown store chain")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
