package refdata

import (
	"hash/fnv"
	"math/rand"
	"sort"
	"strings"

	"github.com/cartcompass/backend/internal/domain"
)

// Dataset is the immutable reference product catalog plus per-chain pricing
// profiles. It is constructed once at startup and handed to each catalog
// provider; there is no ambient global lookup. All randomized variation is
// derived from the dataset seed, so two datasets with the same seed price
// identically.
type Dataset struct {
	seed     int64
	products []domain.ReferenceProduct
	chains   map[string]ChainProfile
}

// ChainProfile describes how a chain prices relative to reference base
// prices and how reliably its locations keep products in stock.
type ChainProfile struct {
	Name          string
	Locations     []domain.StoreLocation
	PriceFloorPct float64 // lowest multiplier over base price
	PriceBandPct  float64 // width of the multiplier band
	InStockRate   float64 // fraction of products in stock at any location
}

// StorePrice is one product's simulated price at one location
type StorePrice struct {
	ProductID  string
	StoreID    string
	LocationID string
	SKU        string
	Price      float64
	InStock    bool
}

// New builds a dataset around the default reference catalog and chain
// profiles. The seed drives all simulated price and availability variation.
func New(seed int64) *Dataset {
	return &Dataset{
		seed:     seed,
		products: defaultProducts,
		chains:   defaultChains,
	}
}

// All returns the full reference product list
func (d *Dataset) All() []domain.ReferenceProduct {
	out := make([]domain.ReferenceProduct, len(d.products))
	copy(out, d.products)
	return out
}

// Chains returns the known chain identifiers, sorted
func (d *Dataset) Chains() []string {
	out := make([]string, 0, len(d.chains))
	for id := range d.chains {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Chain returns the profile for a chain id
func (d *Dataset) Chain(chainID string) (ChainProfile, bool) {
	profile, ok := d.chains[chainID]
	return profile, ok
}

// Locations returns the locations for a chain, or nil for unknown chains
func (d *Dataset) Locations(chainID string) []domain.StoreLocation {
	profile, ok := d.chains[chainID]
	if !ok {
		return nil
	}
	out := make([]domain.StoreLocation, len(profile.Locations))
	copy(out, profile.Locations)
	return out
}

// DefaultLocation returns a chain's first location id, or "" when unknown
func (d *Dataset) DefaultLocation(chainID string) string {
	profile, ok := d.chains[chainID]
	if !ok || len(profile.Locations) == 0 {
		return ""
	}
	return profile.Locations[0].ID
}

// PriceAt returns the simulated price and availability of a product at a
// location. The result is a pure function of (seed, product, chain,
// location): call order never changes it.
func (d *Dataset) PriceAt(product domain.ReferenceProduct, chainID, locationID string) (StorePrice, bool) {
	profile, ok := d.chains[chainID]
	if !ok {
		return StorePrice{}, false
	}
	if locationID == "" {
		locationID = d.DefaultLocation(chainID)
	}

	rng := rand.New(rand.NewSource(d.seed ^ entryKey(product.ID, chainID, locationID)))
	multiplier := profile.PriceFloorPct + rng.Float64()*profile.PriceBandPct

	return StorePrice{
		ProductID:  product.ID,
		StoreID:    chainID,
		LocationID: locationID,
		SKU:        skuPrefix(chainID) + "-" + product.ID + "-" + locationID,
		Price:      roundToCents(product.BasePrice * multiplier),
		InStock:    rng.Float64() < profile.InStockRate,
	}, true
}

// entryKey folds a (product, chain, location) triple into a stable seed component
func entryKey(parts ...string) int64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return int64(h.Sum64())
}

func skuPrefix(chainID string) string {
	if len(chainID) >= 3 {
		return strings.ToUpper(chainID[:3])
	}
	return strings.ToUpper(chainID)
}

func roundToCents(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

// Search scores reference products against a free-text query: exact name
// and brand hits dominate, then prefix/contains, keyword overlap, and
// category hits. Products with zero score are dropped.
func (d *Dataset) Search(query string, limit int) []domain.ReferenceProduct {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = 20
	}

	type scored struct {
		product domain.ReferenceProduct
		score   int
	}
	var results []scored

	for _, product := range d.products {
		name := strings.ToLower(product.Name)
		brand := strings.ToLower(product.Brand)

		score := 0
		if name == q {
			score += 100
		}
		if brand == q {
			score += 80
		}
		if strings.HasPrefix(name, q) {
			score += 60
		}
		if strings.Contains(name, q) {
			score += 40
		}
		for _, keyword := range product.Keywords {
			k := strings.ToLower(keyword)
			if strings.Contains(k, q) || strings.Contains(q, k) {
				score += 20
			}
		}
		if strings.Contains(strings.ToLower(product.Category), q) {
			score += 30
		}
		if strings.Contains(strings.ToLower(product.Subcategory), q) {
			score += 35
		}
		if strings.Contains(brand, q) {
			score += 25
		}

		if score > 0 {
			results = append(results, scored{product, score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	out := make([]domain.ReferenceProduct, len(results))
	for i, r := range results {
		out[i] = r.product
	}
	return out
}
