package domain

// Unit is the canonical set of size units understood by the core.
// Weight and volume are normalized to ounces before they reach the matcher;
// count-based products use "ct".
type Unit string

const (
	UnitOunce Unit = "oz"
	UnitPound Unit = "lb"
	UnitCount Unit = "ct"
)

// Size is a product or request size in canonical units
type Size struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// GroceryItem is one line of the shopping list.
// Flexible=true means any comparable product is acceptable; false means the
// user wants this specific brand/product.
type GroceryItem struct {
	ID          string `json:"id"`
	Query       string `json:"query" binding:"required"`
	Flexible    bool   `json:"flexible"`
	Brand       string `json:"brand,omitempty"`
	Category    string `json:"category,omitempty"`
	DesiredSize *Size  `json:"desiredSize,omitempty"`
}

// StoreProduct is one product as sold by one store
type StoreProduct struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Category string  `json:"category"` // e.g. "dairy", "produce", "meat"
	Size     Size    `json:"size"`
	Price    float64 `json:"price"` // dollars
	InStock  bool    `json:"inStock"`
}

// MatchStatus classifies the outcome of matching one item against one store
type MatchStatus string

const (
	StatusMatched     MatchStatus = "matched"
	StatusSubstituted MatchStatus = "substituted"
	StatusMissing     MatchStatus = "missing"
	StatusOutOfStock  MatchStatus = "out_of_stock"
)

// LineItemMatch is the outcome of matching one GroceryItem against one
// store's catalog. LineTotal is set iff status is matched or substituted;
// ChosenProduct is set iff status is not missing.
type LineItemMatch struct {
	ItemID        string        `json:"itemId"`
	StoreID       string        `json:"storeId"`
	Status        MatchStatus   `json:"status"`
	ChosenProduct *StoreProduct `json:"chosenProduct,omitempty"`
	Reason        string        `json:"reason,omitempty"`
	LineTotal     *float64      `json:"lineTotal,omitempty"`
}

// StoreQuote is the full quote for one store against the whole list.
// Matches preserves the input item order.
type StoreQuote struct {
	StoreID         string          `json:"storeId"`
	Subtotal        float64         `json:"subtotal"`
	Matches         []LineItemMatch `json:"matches"`
	MissingCount    int             `json:"missingCount"`
	OutOfStockCount int             `json:"outOfStockCount"`
	LastUpdatedISO  string          `json:"lastUpdatedISO"`
}

// PairResult describes the best two-store split, with one pick per item
// chosen from either store.
type PairResult struct {
	Stores                [2]string       `json:"stores"`
	Subtotal              float64         `json:"subtotal"`
	Picks                 []LineItemMatch `json:"picks"`
	SavingsVsBestOneStore float64         `json:"savingsVsBestOneStore"`
}

// OptimizationResult is the final recommendation. BestPair is only present
// when splitting the list across two stores is actually beneficial.
type OptimizationResult struct {
	BestOneStore StoreQuote  `json:"bestOneStore"`
	BestPair     *PairResult `json:"bestPair,omitempty"`
}

// ReferenceProduct is an entry in the shared reference catalog used for
// common-product fallbacks and search suggestions.
type ReferenceProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Size        Size     `json:"size"`
	Keywords    []string `json:"keywords"`
	BasePrice   float64  `json:"basePrice"`
}

// StoreLocation is a physical store location for a chain
type StoreLocation struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}
