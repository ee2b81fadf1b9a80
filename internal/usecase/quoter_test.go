package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cartcompass/backend/internal/domain"
)

// stubProvider is a canned catalog provider for compare-service tests
type stubProvider struct {
	storeID  string
	products []domain.StoreProduct
	quoter   *Quoter
	err      error
	panics   bool
	delay    time.Duration
}

func (p *stubProvider) StoreID() string { return p.storeID }

func (p *stubProvider) ListProducts(ctx context.Context, locationID string) ([]domain.StoreProduct, error) {
	return p.products, p.err
}

func (p *stubProvider) Quote(ctx context.Context, items []domain.GroceryItem, locationID string) (*domain.StoreQuote, error) {
	if p.panics {
		panic("catalog backend exploded")
	}
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	quote := p.quoter.BuildQuote(p.storeID, items, p.products)
	return &quote, nil
}

func TestBuildQuote(t *testing.T) {
	quoter := NewQuoter(newTestMatcher(nil))

	products := []domain.StoreProduct{
		{SKU: "m1", Name: "Whole Milk", Category: "dairy", Size: oz(128), Price: 3.479, InStock: true},
		{SKU: "e1", Name: "Large Eggs", Category: "dairy", Size: ct(12), Price: 2.981, InStock: true},
		{SKU: "b1", Name: "White Bread", Category: "bakery", Size: oz(20), Price: 1.48, InStock: false},
	}
	items := []domain.GroceryItem{
		{ID: "a", Query: "milk", Flexible: true},
		{ID: "b", Query: "eggs", Flexible: true},
		{ID: "c", Query: "bread", Flexible: true},
		{ID: "d", Query: "caviar", Flexible: true},
	}

	quote := quoter.BuildQuote("walmart", items, products)

	if len(quote.Matches) != len(items) {
		t.Fatalf("matches = %d, want %d", len(quote.Matches), len(items))
	}
	for i, match := range quote.Matches {
		if match.ItemID != items[i].ID {
			t.Errorf("matches[%d].itemID = %s, want %s (input order)", i, match.ItemID, items[i].ID)
		}
		if match.StoreID != "walmart" {
			t.Errorf("matches[%d].storeID = %s", i, match.StoreID)
		}
	}

	// 3.479 + 2.981 = 6.46; the out-of-stock and missing lines contribute nothing.
	if quote.Subtotal != 6.46 {
		t.Errorf("subtotal = %v, want 6.46", quote.Subtotal)
	}
	if quote.MissingCount != 1 {
		t.Errorf("missingCount = %d, want 1", quote.MissingCount)
	}
	if quote.OutOfStockCount != 1 {
		t.Errorf("outOfStockCount = %d, want 1", quote.OutOfStockCount)
	}
	if _, err := time.Parse(time.RFC3339, quote.LastUpdatedISO); err != nil {
		t.Errorf("lastUpdatedISO not RFC3339: %v", err)
	}
}

func TestBuildQuoteWithPerItemCatalogs(t *testing.T) {
	quoter := NewQuoter(newTestMatcher(nil))

	byQuery := map[string][]domain.StoreProduct{
		"milk": {{SKU: "m1", Name: "Whole Milk", Size: oz(128), Price: 3.48, InStock: true}},
	}
	items := []domain.GroceryItem{
		{ID: "a", Query: "milk", Flexible: true},
		{ID: "b", Query: "eggs", Flexible: true},
	}

	quote := quoter.BuildQuoteWith("target", items, func(item domain.GroceryItem) []domain.StoreProduct {
		return byQuery[item.Query]
	})

	if quote.Matches[0].Status != domain.StatusSubstituted {
		t.Errorf("milk status = %s, want substituted", quote.Matches[0].Status)
	}
	if quote.Matches[1].Status != domain.StatusMissing {
		t.Errorf("eggs status = %s, want missing", quote.Matches[1].Status)
	}
}

func TestDegradedQuote(t *testing.T) {
	quote := DegradedQuote("jewel", 5)

	if quote.StoreID != "jewel" || quote.Subtotal != 0 {
		t.Errorf("unexpected quote %+v", quote)
	}
	if quote.MissingCount != 5 || quote.OutOfStockCount != 0 {
		t.Errorf("counts = %d/%d, want 5/0", quote.MissingCount, quote.OutOfStockCount)
	}
	if quote.Matches == nil || len(quote.Matches) != 0 {
		t.Errorf("matches should be empty, not nil")
	}
}

func TestQuoteAll(t *testing.T) {
	quoter := NewQuoter(newTestMatcher(nil))
	service := NewCompareService(CompareConfig{StoreTimeout: time.Second})

	milk := []domain.StoreProduct{
		{SKU: "m1", Name: "Whole Milk", Size: oz(128), Price: 3.48, InStock: true},
	}
	items := []domain.GroceryItem{{ID: "a", Query: "milk", Flexible: true}}

	t.Run("results follow provider order", func(t *testing.T) {
		providers := []domain.CatalogProvider{
			&stubProvider{storeID: "walmart", products: milk, quoter: quoter},
			&stubProvider{storeID: "target", products: milk, quoter: quoter},
			&stubProvider{storeID: "jewel", products: milk, quoter: quoter},
		}

		quotes := service.QuoteAll(context.Background(), providers, items, nil)
		if len(quotes) != 3 {
			t.Fatalf("quotes = %d, want 3", len(quotes))
		}
		for i, want := range []string{"walmart", "target", "jewel"} {
			if quotes[i].StoreID != want {
				t.Errorf("quotes[%d].storeID = %s, want %s", i, quotes[i].StoreID, want)
			}
		}
	})

	t.Run("failing provider degrades without affecting others", func(t *testing.T) {
		providers := []domain.CatalogProvider{
			&stubProvider{storeID: "walmart", products: milk, quoter: quoter},
			&stubProvider{storeID: "target", err: errors.New("upstream down"), quoter: quoter},
		}

		quotes := service.QuoteAll(context.Background(), providers, items, nil)
		if quotes[0].MissingCount != 0 {
			t.Errorf("healthy store degraded: %+v", quotes[0])
		}
		if quotes[1].MissingCount != len(items) || quotes[1].Subtotal != 0 {
			t.Errorf("failed store should be all-missing: %+v", quotes[1])
		}
	})

	t.Run("panicking provider degrades", func(t *testing.T) {
		providers := []domain.CatalogProvider{
			&stubProvider{storeID: "butera", panics: true, quoter: quoter},
		}

		quotes := service.QuoteAll(context.Background(), providers, items, nil)
		if quotes[0].StoreID != "butera" || quotes[0].MissingCount != len(items) {
			t.Errorf("panicked store should degrade: %+v", quotes[0])
		}
	})

	t.Run("slow provider hits the store timeout", func(t *testing.T) {
		fast := NewCompareService(CompareConfig{StoreTimeout: 20 * time.Millisecond})
		providers := []domain.CatalogProvider{
			&stubProvider{storeID: "petes", products: milk, quoter: quoter, delay: 500 * time.Millisecond},
		}

		start := time.Now()
		quotes := fast.QuoteAll(context.Background(), providers, items, nil)
		if elapsed := time.Since(start); elapsed > 300*time.Millisecond {
			t.Errorf("timeout not enforced, took %v", elapsed)
		}
		if quotes[0].MissingCount != len(items) {
			t.Errorf("timed-out store should degrade: %+v", quotes[0])
		}
	})
}

func TestCompare(t *testing.T) {
	quoter := NewQuoter(newTestMatcher(nil))
	service := NewCompareService(CompareConfig{})

	items := []domain.GroceryItem{{ID: "a", Query: "milk", Flexible: true}}
	providers := []domain.CatalogProvider{
		&stubProvider{storeID: "walmart", quoter: quoter, products: []domain.StoreProduct{
			{SKU: "m1", Name: "Whole Milk", Size: oz(128), Price: 3.48, InStock: true},
		}},
		&stubProvider{storeID: "target", quoter: quoter, products: []domain.StoreProduct{
			{SKU: "m2", Name: "Whole Milk", Size: oz(128), Price: 3.99, InStock: true},
		}},
	}

	quotes, result, err := service.Compare(context.Background(), providers, items, nil, 2)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("quotes = %d, want 2", len(quotes))
	}
	if result.BestOneStore.StoreID != "walmart" {
		t.Errorf("best single store = %s, want walmart", result.BestOneStore.StoreID)
	}

	_, _, err = service.Compare(context.Background(), nil, items, nil, 2)
	if !errors.Is(err, domain.ErrNoQuotes) {
		t.Errorf("err = %v, want ErrNoQuotes", err)
	}
}
