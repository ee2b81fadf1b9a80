package catalog

import (
	"context"
	"log"

	"github.com/cartcompass/backend/internal/domain"
	"github.com/cartcompass/backend/internal/usecase"
)

// LiveProvider quotes against a retailer's live search API. Catalogs are
// search-driven: candidates are fetched per item query, not as one big
// product list.
type LiveProvider struct {
	storeID string
	client  *Client
	quoter  *usecase.Quoter
	debug   bool
}

// NewLiveProvider creates a live provider for one chain
func NewLiveProvider(storeID string, client *Client, quoter *usecase.Quoter) *LiveProvider {
	return &LiveProvider{
		storeID: storeID,
		client:  client,
		quoter:  quoter,
	}
}

// StoreID returns the chain this provider serves
func (p *LiveProvider) StoreID() string {
	return p.storeID
}

// SetDebug toggles per-item search logging
func (p *LiveProvider) SetDebug(debug bool) {
	p.debug = debug
	p.client.SetDebug(debug)
}

// ListProducts returns an empty catalog: live retailers only expose search,
// so the full catalog is never materialized. Hybrid wrappers treat an empty
// list as a fallback signal.
func (p *LiveProvider) ListProducts(ctx context.Context, locationID string) ([]domain.StoreProduct, error) {
	return []domain.StoreProduct{}, nil
}

// Quote searches the live API per item and matches each item against its
// own candidate set. A failed search for one item degrades that item to
// missing without failing the quote.
func (p *LiveProvider) Quote(ctx context.Context, items []domain.GroceryItem, locationID string) (*domain.StoreQuote, error) {
	quote := p.quoter.BuildQuoteWith(p.storeID, items, func(item domain.GroceryItem) []domain.StoreProduct {
		products, err := p.client.SearchProducts(ctx, item.Query, locationID)
		if err != nil {
			if p.debug {
				log.Printf("[CATALOG] %s search failed for %q: %v", p.storeID, item.Query, err)
			}
			return nil
		}
		return products
	})
	return &quote, nil
}
