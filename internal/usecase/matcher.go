package usecase

import (
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/cartcompass/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// Match reason strings surfaced to callers
const (
	reasonLowestUnitPrice = "chose lowest unit price comparable item"
	reasonCommonFallback  = "used common product fallback"
	reasonNoBrandMatch    = "No matching brand-specific item found"
	reasonNoComparable    = "No comparable item found"
	reasonMatchedOOS      = "Matched item is out of stock"
	reasonComparableOOS   = "Comparable item is out of stock"
)

// MatcherConfig holds configuration for the item matcher
type MatcherConfig struct {
	SizeTolerancePct   float64
	EnableDebugLogging bool
}

// Matcher maps one GroceryItem to at most one product within one store's
// catalog and classifies the outcome. Matching is pure: absence of a match
// is expressed as a missing status, never an error.
type Matcher struct {
	reference          domain.ReferenceCatalog
	sizeTolerancePct   float64
	enableDebugLogging bool
}

// NewMatcher creates a matcher. The reference catalog backs the
// common-product fallback tier and may be nil to disable it.
func NewMatcher(reference domain.ReferenceCatalog, config MatcherConfig) *Matcher {
	tolerance := config.SizeTolerancePct
	if tolerance <= 0 {
		tolerance = DefaultSizeTolerancePct
	}

	return &Matcher{
		reference:          reference,
		sizeTolerancePct:   tolerance,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Match finds the best product for one item in one store's catalog.
// Specific items (flexible=false) respect brand loyalty; flexible items
// optimize for the lowest unit price among comparable candidates. Both
// modes degrade through out-of-stock and common-fallback tiers before
// reporting the item as missing.
func (m *Matcher) Match(storeID string, item domain.GroceryItem, products []domain.StoreProduct) domain.LineItemMatch {
	query := normalizeText(item.Query)

	if m.enableDebugLogging {
		log.Printf("[MATCH] store=%s item=%q flexible=%v brand=%q candidates=%d",
			storeID, item.Query, item.Flexible, item.Brand, len(products))
	}

	if item.Flexible {
		return m.matchFlexible(storeID, item, query, products)
	}
	return m.matchSpecific(storeID, item, query, products)
}

// matchSpecific handles brand-loyal requests: in-stock brand+text+size match
// first (catalog order), then out-of-stock text matches, then the common
// fallback when no brand was pinned.
func (m *Matcher) matchSpecific(storeID string, item domain.GroceryItem, query string, products []domain.StoreProduct) domain.LineItemMatch {
	brand := normalizeText(item.Brand)

	for _, p := range products {
		if !p.InStock {
			continue
		}
		hay := normalizeText(p.Brand + " " + p.Name)
		if brand != "" && !strings.Contains(hay, brand) {
			continue
		}
		if !queryMatches(query, hay) {
			continue
		}
		if item.DesiredSize != nil && !SizeWithinTolerance(*item.DesiredSize, p.Size, m.sizeTolerancePct) {
			continue
		}
		return m.found(storeID, item.ID, p, domain.StatusMatched, "")
	}

	for _, p := range products {
		if p.InStock {
			continue
		}
		if queryMatches(query, normalizeText(p.Brand+" "+p.Name)) {
			return m.found(storeID, item.ID, p, domain.StatusOutOfStock, reasonMatchedOOS)
		}
	}

	// A pinned brand means no generic substitute is acceptable.
	if brand == "" {
		if fallback, ok := m.commonFallback(item); ok {
			return m.found(storeID, item.ID, fallback, domain.StatusSubstituted, reasonCommonFallback)
		}
	}

	return domain.LineItemMatch{
		ItemID:  item.ID,
		StoreID: storeID,
		Status:  domain.StatusMissing,
		Reason:  reasonNoBrandMatch,
	}
}

// matchFlexible handles any-comparable requests: among in-stock text+size
// matches pick the lowest unit price, then out-of-stock text matches, then
// the common fallback.
func (m *Matcher) matchFlexible(storeID string, item domain.GroceryItem, query string, products []domain.StoreProduct) domain.LineItemMatch {
	var candidates []domain.StoreProduct
	for _, p := range products {
		if !p.InStock {
			continue
		}
		if !queryMatches(query, normalizeText(p.Brand+" "+p.Name+" "+p.Category)) {
			continue
		}
		if item.DesiredSize != nil && !SizeWithinTolerance(*item.DesiredSize, p.Size, m.sizeTolerancePct) {
			continue
		}
		candidates = append(candidates, p)
	}

	if len(candidates) > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			return UnitPrice(candidates[i]) < UnitPrice(candidates[j])
		})
		if m.enableDebugLogging {
			log.Printf("[MATCH] store=%s item=%q chose %q at $%.4f/unit of %d candidates",
				storeID, item.Query, candidates[0].Name, UnitPrice(candidates[0]), len(candidates))
		}
		return m.found(storeID, item.ID, candidates[0], domain.StatusSubstituted, reasonLowestUnitPrice)
	}

	for _, p := range products {
		if p.InStock {
			continue
		}
		if queryMatches(query, normalizeText(p.Name+" "+p.Category)) {
			return m.found(storeID, item.ID, p, domain.StatusOutOfStock, reasonComparableOOS)
		}
	}

	if fallback, ok := m.commonFallback(item); ok {
		return m.found(storeID, item.ID, fallback, domain.StatusSubstituted, reasonCommonFallback)
	}

	return domain.LineItemMatch{
		ItemID:  item.ID,
		StoreID: storeID,
		Status:  domain.StatusMissing,
		Reason:  reasonNoComparable,
	}
}

// commonFallback synthesizes a best-effort substitute from the reference
// catalog, priced at the reference base price.
func (m *Matcher) commonFallback(item domain.GroceryItem) (domain.StoreProduct, bool) {
	if m.reference == nil {
		return domain.StoreProduct{}, false
	}

	results := m.reference.Search(item.Query, 1)
	if len(results) == 0 {
		return domain.StoreProduct{}, false
	}

	ref := results[0]
	return domain.StoreProduct{
		SKU:      "REF-" + ref.ID,
		Name:     ref.Name,
		Brand:    ref.Brand,
		Category: ref.Category,
		Size:     ref.Size,
		Price:    ref.BasePrice,
		InStock:  true,
	}, true
}

// found builds a match outcome, setting LineTotal only for statuses that
// contribute to a subtotal.
func (m *Matcher) found(storeID, itemID string, product domain.StoreProduct, status domain.MatchStatus, reason string) domain.LineItemMatch {
	match := domain.LineItemMatch{
		ItemID:        itemID,
		StoreID:       storeID,
		Status:        status,
		ChosenProduct: &product,
		Reason:        reason,
	}
	if status == domain.StatusMatched || status == domain.StatusSubstituted {
		price := product.Price
		match.LineTotal = &price
	}
	return match
}

// normalizeText lowercases, replaces non-alphanumerics with spaces, and
// collapses whitespace.
func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = nonAlphanumericRegex.ReplaceAllString(s, " ")
	s = multipleSpacesRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// queryMatches reports whether a normalized query matches a normalized
// haystack: full substring, or whole-token overlap with naive
// singular/plural variants. Multi-token queries need at least
// min(2, tokenCount) of their tokens present.
func queryMatches(query, haystack string) bool {
	if query == "" {
		return false
	}
	if strings.Contains(haystack, query) {
		return true
	}

	hayTokens := make(map[string]bool)
	for _, tok := range strings.Fields(haystack) {
		hayTokens[singularize(tok)] = true
	}

	queryTokens := strings.Fields(query)
	required := 2
	if len(queryTokens) < required {
		required = len(queryTokens)
	}

	hits := 0
	for _, tok := range queryTokens {
		if hayTokens[singularize(tok)] {
			hits++
			if hits >= required {
				return true
			}
		}
	}
	return false
}

// singularize strips a trailing "s" from tokens longer than 3 characters,
// so "eggs" and "egg" compare equal in either direction.
func singularize(token string) string {
	if len(token) > 3 && strings.HasSuffix(token, "s") {
		return token[:len(token)-1]
	}
	return token
}
