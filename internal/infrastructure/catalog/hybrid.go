package catalog

import (
	"context"
	"log"

	"github.com/cartcompass/backend/internal/domain"
)

// HybridProvider tries a live provider first and falls back to a simulated
// catalog when the live call fails or produces nothing usable. One chain's
// flaky API should degrade quality, not availability.
type HybridProvider struct {
	live     domain.CatalogProvider
	fallback domain.CatalogProvider
}

// NewHybridProvider wraps a live provider with a fallback. Both must serve
// the same chain.
func NewHybridProvider(live, fallback domain.CatalogProvider) *HybridProvider {
	return &HybridProvider{live: live, fallback: fallback}
}

// StoreID returns the chain this provider serves
func (p *HybridProvider) StoreID() string {
	return p.live.StoreID()
}

// ListProducts prefers the live catalog when it has anything in it
func (p *HybridProvider) ListProducts(ctx context.Context, locationID string) ([]domain.StoreProduct, error) {
	products, err := p.live.ListProducts(ctx, locationID)
	if err == nil && len(products) > 0 {
		return products, nil
	}
	if err != nil {
		log.Printf("[CATALOG] live provider failed for %s, falling back: %v", p.StoreID(), err)
	}
	return p.fallback.ListProducts(ctx, locationID)
}

// Quote prefers the live quote when it produced at least one usable match,
// otherwise re-quotes against the fallback catalog.
func (p *HybridProvider) Quote(ctx context.Context, items []domain.GroceryItem, locationID string) (*domain.StoreQuote, error) {
	quote, err := p.live.Quote(ctx, items, locationID)
	if err == nil && quote != nil && hasUsableMatches(quote) {
		return quote, nil
	}
	if err != nil {
		log.Printf("[CATALOG] live quote failed for %s, falling back: %v", p.StoreID(), err)
	}
	return p.fallback.Quote(ctx, items, locationID)
}

// hasUsableMatches reports whether a quote found anything purchasable
func hasUsableMatches(quote *domain.StoreQuote) bool {
	for _, m := range quote.Matches {
		if m.Status == domain.StatusMatched || m.Status == domain.StatusSubstituted {
			return true
		}
	}
	return false
}
