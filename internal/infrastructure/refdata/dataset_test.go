package refdata

import (
	"testing"

	"github.com/cartcompass/backend/internal/domain"
)

func TestPriceAt(t *testing.T) {
	dataset := New(42)
	product := dataset.All()[0]

	t.Run("deterministic for the same seed", func(t *testing.T) {
		other := New(42)

		a, ok := dataset.PriceAt(product, "walmart", "walmart-2844")
		if !ok {
			t.Fatal("walmart should be known")
		}
		b, _ := other.PriceAt(product, "walmart", "walmart-2844")
		if a.Price != b.Price || a.InStock != b.InStock {
			t.Errorf("same seed priced differently: %+v vs %+v", a, b)
		}

		// Call order must not matter.
		for _, p := range dataset.All() {
			dataset.PriceAt(p, "target", "")
		}
		c, _ := dataset.PriceAt(product, "walmart", "walmart-2844")
		if c.Price != a.Price || c.InStock != a.InStock {
			t.Errorf("call order changed pricing: %+v vs %+v", c, a)
		}
	})

	t.Run("different seeds vary somewhere", func(t *testing.T) {
		other := New(43)

		varied := false
		for _, p := range dataset.All() {
			a, _ := dataset.PriceAt(p, "walmart", "")
			b, _ := other.PriceAt(p, "walmart", "")
			if a.Price != b.Price || a.InStock != b.InStock {
				varied = true
				break
			}
		}
		if !varied {
			t.Error("seeds 42 and 43 produced identical catalogs")
		}
	})

	t.Run("price stays within the chain's band", func(t *testing.T) {
		profile, _ := dataset.Chain("marianos")
		for _, p := range dataset.All() {
			price, ok := dataset.PriceAt(p, "marianos", "")
			if !ok {
				t.Fatal("marianos should be known")
			}
			low := p.BasePrice * profile.PriceFloorPct
			high := p.BasePrice * (profile.PriceFloorPct + profile.PriceBandPct)
			// Allow a cent of slack for rounding at the edges.
			if price.Price < low-0.01 || price.Price > high+0.01 {
				t.Errorf("%s priced %v outside [%v, %v]", p.ID, price.Price, low, high)
			}
		}
	})

	t.Run("empty location falls back to the chain default", func(t *testing.T) {
		a, _ := dataset.PriceAt(product, "jewel", "")
		b, _ := dataset.PriceAt(product, "jewel", dataset.DefaultLocation("jewel"))
		if a != b {
			t.Errorf("default location mismatch: %+v vs %+v", a, b)
		}
	})

	t.Run("locations price independently", func(t *testing.T) {
		varied := false
		for _, p := range dataset.All() {
			a, _ := dataset.PriceAt(p, "walmart", "walmart-2844")
			b, _ := dataset.PriceAt(p, "walmart", "walmart-5260")
			if a.Price != b.Price {
				varied = true
				break
			}
		}
		if !varied {
			t.Error("two locations priced the whole catalog identically")
		}
	})

	t.Run("unknown chain", func(t *testing.T) {
		if _, ok := dataset.PriceAt(product, "wegmans", ""); ok {
			t.Error("unknown chain should not price")
		}
	})

	t.Run("sku encodes chain, product, and location", func(t *testing.T) {
		price, _ := dataset.PriceAt(product, "walmart", "walmart-2844")
		want := "WAL-" + product.ID + "-walmart-2844"
		if price.SKU != want {
			t.Errorf("sku = %s, want %s", price.SKU, want)
		}
	})
}

func TestChains(t *testing.T) {
	dataset := New(1)

	chains := dataset.Chains()
	if len(chains) != 7 {
		t.Fatalf("chains = %d, want 7", len(chains))
	}
	for i := 1; i < len(chains); i++ {
		if chains[i-1] >= chains[i] {
			t.Errorf("chains not sorted at %d: %s >= %s", i, chains[i-1], chains[i])
		}
	}

	if locs := dataset.Locations("walmart"); len(locs) != 2 {
		t.Errorf("walmart locations = %d, want 2", len(locs))
	}
	if locs := dataset.Locations("wegmans"); locs != nil {
		t.Errorf("unknown chain locations = %v, want nil", locs)
	}
	if got := dataset.DefaultLocation("target"); got != "target-1375" {
		t.Errorf("default location = %s", got)
	}
	if got := dataset.DefaultLocation("wegmans"); got != "" {
		t.Errorf("unknown default location = %s", got)
	}
}

func TestSearch(t *testing.T) {
	dataset := New(1)

	t.Run("exact name outranks partial matches", func(t *testing.T) {
		results := dataset.Search("whole milk", 10)
		if len(results) == 0 {
			t.Fatal("no results")
		}
		if results[0].ID != "dairy-001" {
			t.Errorf("top result = %s, want dairy-001 (exact name)", results[0].ID)
		}
	})

	t.Run("brand query finds branded products", func(t *testing.T) {
		results := dataset.Search("skippy", 10)
		if len(results) == 0 || results[0].Brand != "Skippy" {
			t.Fatalf("skippy search = %v", results)
		}
	})

	t.Run("keyword overlap matches", func(t *testing.T) {
		results := dataset.Search("oj", 10)
		found := false
		for _, r := range results {
			if r.ID == "bev-001" {
				found = true
			}
		}
		if !found {
			t.Error("keyword oj should surface orange juice")
		}
	})

	t.Run("category query returns the category", func(t *testing.T) {
		results := dataset.Search("produce", 20)
		if len(results) < 4 {
			t.Fatalf("produce results = %d, want at least 4", len(results))
		}
		for _, r := range results {
			if r.Category != "produce" {
				t.Errorf("unexpected category %s for %s", r.Category, r.ID)
			}
		}
	})

	t.Run("limit and empties", func(t *testing.T) {
		if got := dataset.Search("bread", 1); len(got) != 1 {
			t.Errorf("limit ignored: %d results", len(got))
		}
		if got := dataset.Search("   ", 10); got != nil {
			t.Errorf("blank query = %v, want nil", got)
		}
		if got := dataset.Search("zzzzzz", 10); len(got) != 0 {
			t.Errorf("nonsense query = %v, want empty", got)
		}
	})
}

func TestDatasetAllIsACopy(t *testing.T) {
	dataset := New(1)

	products := dataset.All()
	products[0] = domain.ReferenceProduct{ID: "mutated"}

	if dataset.All()[0].ID == "mutated" {
		t.Error("All must return a copy of the catalog")
	}
}
