package catalog

import (
	"context"

	"github.com/cartcompass/backend/internal/domain"
	"github.com/cartcompass/backend/internal/infrastructure/refdata"
	"github.com/cartcompass/backend/internal/usecase"
)

// SimulatedProvider serves a store catalog generated from the shared
// reference dataset. Prices and availability vary per chain and location
// but are fully deterministic for a given dataset seed.
type SimulatedProvider struct {
	storeID string
	dataset *refdata.Dataset
	quoter  *usecase.Quoter
}

// NewSimulatedProvider creates a simulated provider for one chain
func NewSimulatedProvider(storeID string, dataset *refdata.Dataset, quoter *usecase.Quoter) *SimulatedProvider {
	return &SimulatedProvider{
		storeID: storeID,
		dataset: dataset,
		quoter:  quoter,
	}
}

// StoreID returns the chain this provider serves
func (p *SimulatedProvider) StoreID() string {
	return p.storeID
}

// ListProducts generates the chain's catalog for a location from the
// reference dataset.
func (p *SimulatedProvider) ListProducts(ctx context.Context, locationID string) ([]domain.StoreProduct, error) {
	if _, ok := p.dataset.Chain(p.storeID); !ok {
		return nil, domain.ErrUnknownStore
	}

	refs := p.dataset.All()
	products := make([]domain.StoreProduct, 0, len(refs))
	for _, ref := range refs {
		priced, ok := p.dataset.PriceAt(ref, p.storeID, locationID)
		if !ok {
			continue
		}
		products = append(products, domain.StoreProduct{
			SKU:      priced.SKU,
			Name:     ref.Name,
			Brand:    ref.Brand,
			Category: ref.Category,
			Size:     ref.Size,
			Price:    priced.Price,
			InStock:  priced.InStock,
		})
	}
	return products, nil
}

// Quote matches the shopping list against the generated catalog
func (p *SimulatedProvider) Quote(ctx context.Context, items []domain.GroceryItem, locationID string) (*domain.StoreQuote, error) {
	products, err := p.ListProducts(ctx, locationID)
	if err != nil {
		return nil, err
	}
	quote := p.quoter.BuildQuote(p.storeID, items, products)
	return &quote, nil
}
