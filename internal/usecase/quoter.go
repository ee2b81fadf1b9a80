package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/cartcompass/backend/internal/domain"
)

// Quoter produces a StoreQuote for one store by running the matcher over
// the whole shopping list in input order.
type Quoter struct {
	matcher *Matcher
}

// NewQuoter creates a quoter around a matcher
func NewQuoter(matcher *Matcher) *Quoter {
	return &Quoter{matcher: matcher}
}

// BuildQuote matches every item against the store's catalog and aggregates
// subtotal and status tallies. Matches preserve input item order; the
// subtotal is rounded half-up at the cent.
func (q *Quoter) BuildQuote(storeID string, items []domain.GroceryItem, products []domain.StoreProduct) domain.StoreQuote {
	return q.BuildQuoteWith(storeID, items, func(domain.GroceryItem) []domain.StoreProduct {
		return products
	})
}

// BuildQuoteWith is BuildQuote with a per-item candidate catalog, for
// search-driven providers that fetch candidates per query rather than one
// catalog for the whole store.
func (q *Quoter) BuildQuoteWith(storeID string, items []domain.GroceryItem, productsFor func(domain.GroceryItem) []domain.StoreProduct) domain.StoreQuote {
	matches := make([]domain.LineItemMatch, 0, len(items))
	subtotal := 0.0
	missing := 0
	outOfStock := 0

	for _, item := range items {
		match := q.matcher.Match(storeID, item, productsFor(item))
		matches = append(matches, match)

		switch match.Status {
		case domain.StatusMissing:
			missing++
		case domain.StatusOutOfStock:
			outOfStock++
		}
		if match.LineTotal != nil {
			subtotal += *match.LineTotal
		}
	}

	return domain.StoreQuote{
		StoreID:         storeID,
		Subtotal:        roundToCents(subtotal),
		Matches:         matches,
		MissingCount:    missing,
		OutOfStockCount: outOfStock,
		LastUpdatedISO:  time.Now().UTC().Format(time.RFC3339),
	}
}

// DegradedQuote is the best-effort quote substituted when a store's catalog
// retrieval or quoting fails entirely: everything counts as missing so the
// comparison keeps a stable shape for display.
func DegradedQuote(storeID string, itemCount int) domain.StoreQuote {
	return domain.StoreQuote{
		StoreID:         storeID,
		Subtotal:        0,
		Matches:         []domain.LineItemMatch{},
		MissingCount:    itemCount,
		OutOfStockCount: 0,
		LastUpdatedISO:  time.Now().UTC().Format(time.RFC3339),
	}
}

// CompareConfig holds configuration for the compare service
type CompareConfig struct {
	StoreTimeout       time.Duration
	EnableDebugLogging bool
}

// CompareService quotes a shopping list across multiple stores concurrently
// and optimizes the result. Each store is independently boundable by a
// timeout; a failed or timed-out store resolves to a degraded all-missing
// quote rather than aborting the comparison.
type CompareService struct {
	storeTimeout       time.Duration
	enableDebugLogging bool
}

// NewCompareService creates a compare service with the given configuration
func NewCompareService(config CompareConfig) *CompareService {
	timeout := config.StoreTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CompareService{
		storeTimeout:       timeout,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// QuoteAll gathers one quote per provider, in provider order. Quoting runs
// concurrently; quotes share no mutable state. locationIDs maps chain id to
// a preferred location and may be nil.
func (s *CompareService) QuoteAll(ctx context.Context, providers []domain.CatalogProvider, items []domain.GroceryItem, locationIDs map[string]string) []domain.StoreQuote {
	quotes := make([]domain.StoreQuote, len(providers))

	var wg sync.WaitGroup
	for i, provider := range providers {
		wg.Add(1)
		go func(i int, provider domain.CatalogProvider) {
			defer wg.Done()
			quotes[i] = s.quoteStore(ctx, provider, items, locationIDs[provider.StoreID()])
		}(i, provider)
	}
	wg.Wait()

	return quotes
}

// quoteStore quotes one store under the per-store timeout, degrading on
// any failure.
func (s *CompareService) quoteStore(ctx context.Context, provider domain.CatalogProvider, items []domain.GroceryItem, locationID string) (quote domain.StoreQuote) {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	// A panicking provider must not take the whole comparison down.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[QUOTE] store=%s panicked: %v", provider.StoreID(), r)
			quote = DegradedQuote(provider.StoreID(), len(items))
		}
	}()

	result, err := provider.Quote(storeCtx, items, locationID)
	if err != nil || result == nil {
		if s.enableDebugLogging {
			log.Printf("[QUOTE] store=%s failed, substituting degraded quote: %v", provider.StoreID(), err)
		}
		return DegradedQuote(provider.StoreID(), len(items))
	}
	return *result
}

// Compare quotes all stores and runs the optimizer. The raw quotes are
// returned alongside the recommendation so callers can render per-store
// detail.
func (s *CompareService) Compare(ctx context.Context, providers []domain.CatalogProvider, items []domain.GroceryItem, locationIDs map[string]string, maxStores int) ([]domain.StoreQuote, *domain.OptimizationResult, error) {
	quotes := s.QuoteAll(ctx, providers, items, locationIDs)

	result, err := Optimize(quotes, maxStores)
	if err != nil {
		return quotes, nil, err
	}
	return quotes, result, nil
}
