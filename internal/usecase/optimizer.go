package usecase

import (
	"math"
	"sort"

	"github.com/cartcompass/backend/internal/domain"
)

// statusRank orders match outcomes by desirability for pair selection:
// matched beats substituted beats out_of_stock beats missing.
func statusRank(status domain.MatchStatus) int {
	switch status {
	case domain.StatusMatched:
		return 0
	case domain.StatusSubstituted:
		return 1
	case domain.StatusOutOfStock:
		return 2
	default:
		return 3
	}
}

// lineTotalOrInf treats an absent line total as infinitely expensive so
// priced matches always win price tie-breaks.
func lineTotalOrInf(m domain.LineItemMatch) float64 {
	if m.LineTotal == nil {
		return math.Inf(1)
	}
	return *m.LineTotal
}

// pairCandidate is a two-store split under evaluation
type pairCandidate struct {
	stores         [2]string
	subtotal       float64
	picks          []domain.LineItemMatch
	missingCount   int
	usedBothStores bool
}

// Optimize selects the best single store and, when maxStores is 2, the best
// two-store split across every unordered store pair.
//
// The best single store is the cheapest store that can fulfill the entire
// list (ties broken by fewer out-of-stock items); when no store can, the
// one missing the fewest items wins (ties broken by subtotal).
//
// A pair is only valid if it actually spans both stores or rescues items
// the best single store was missing, and it is only accepted into the
// result if it spans both stores or is strictly cheaper — otherwise a
// "pair" trivially degenerates to single-store behavior.
func Optimize(quotes []domain.StoreQuote, maxStores int) (*domain.OptimizationResult, error) {
	if len(quotes) == 0 {
		return nil, domain.ErrNoQuotes
	}

	bestOneStore := pickBestSingleStore(quotes)

	if maxStores == 1 || len(quotes) < 2 {
		return &domain.OptimizationResult{BestOneStore: bestOneStore}, nil
	}

	var best *pairCandidate
	for i := 0; i < len(quotes); i++ {
		for j := i + 1; j < len(quotes); j++ {
			candidate := evaluatePair(quotes[i], quotes[j])

			valid := candidate.usedBothStores || candidate.missingCount < bestOneStore.MissingCount
			if !valid {
				continue
			}
			if best == nil || pairBetter(candidate, *best) {
				c := candidate
				best = &c
			}
		}
	}

	// A pair that neither spans both stores nor beats the single-store
	// subtotal is no recommendation at all.
	if best == nil || (!best.usedBothStores && best.subtotal >= bestOneStore.Subtotal) {
		return &domain.OptimizationResult{BestOneStore: bestOneStore}, nil
	}

	return &domain.OptimizationResult{
		BestOneStore: bestOneStore,
		BestPair: &domain.PairResult{
			Stores:                best.stores,
			Subtotal:              best.subtotal,
			Picks:                 best.picks,
			SavingsVsBestOneStore: roundToCents(bestOneStore.Subtotal - best.subtotal),
		},
	}, nil
}

// pickBestSingleStore prefers viable stores (no missing items) by subtotal,
// falling back to least-missing when nothing is viable.
func pickBestSingleStore(quotes []domain.StoreQuote) domain.StoreQuote {
	viable := make([]domain.StoreQuote, 0, len(quotes))
	for _, q := range quotes {
		if q.MissingCount == 0 {
			viable = append(viable, q)
		}
	}

	if len(viable) > 0 {
		sort.SliceStable(viable, func(i, j int) bool {
			if viable[i].Subtotal != viable[j].Subtotal {
				return viable[i].Subtotal < viable[j].Subtotal
			}
			return viable[i].OutOfStockCount < viable[j].OutOfStockCount
		})
		return viable[0]
	}

	sorted := make([]domain.StoreQuote, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].MissingCount != sorted[j].MissingCount {
			return sorted[i].MissingCount < sorted[j].MissingCount
		}
		return sorted[i].Subtotal < sorted[j].Subtotal
	})
	return sorted[0]
}

// evaluatePair picks the better match per item across two stores and
// aggregates the resulting split.
func evaluatePair(a, b domain.StoreQuote) pairCandidate {
	byItemA := matchesByItem(a)
	byItemB := matchesByItem(b)

	// Union of both stores' item ids, in store A's order first so picks
	// stay stable across runs.
	itemIDs := make([]string, 0, len(a.Matches))
	seen := make(map[string]bool, len(a.Matches))
	for _, m := range a.Matches {
		if !seen[m.ItemID] {
			itemIDs = append(itemIDs, m.ItemID)
			seen[m.ItemID] = true
		}
	}
	for _, m := range b.Matches {
		if !seen[m.ItemID] {
			itemIDs = append(itemIDs, m.ItemID)
			seen[m.ItemID] = true
		}
	}

	candidate := pairCandidate{stores: [2]string{a.StoreID, b.StoreID}}
	usedA, usedB := false, false
	subtotal := 0.0

	for _, itemID := range itemIDs {
		ma, okA := byItemA[itemID]
		mb, okB := byItemB[itemID]

		var chosen domain.LineItemMatch
		switch {
		case okA && okB:
			chosen = betterMatch(ma, mb)
		case okA:
			chosen = ma
		default:
			chosen = mb
		}

		candidate.picks = append(candidate.picks, chosen)
		if chosen.LineTotal != nil {
			subtotal += *chosen.LineTotal
		}
		if chosen.StoreID == a.StoreID {
			usedA = true
		}
		if chosen.StoreID == b.StoreID {
			usedB = true
		}
		if chosen.Status == domain.StatusMissing {
			candidate.missingCount++
		}
	}

	candidate.subtotal = roundToCents(subtotal)
	candidate.usedBothStores = usedA && usedB
	return candidate
}

// betterMatch ranks two matches for the same item: better status first,
// then cheaper line total.
func betterMatch(x, y domain.LineItemMatch) domain.LineItemMatch {
	rx, ry := statusRank(x.Status), statusRank(y.Status)
	if rx != ry {
		if rx < ry {
			return x
		}
		return y
	}
	if lineTotalOrInf(x) <= lineTotalOrInf(y) {
		return x
	}
	return y
}

// pairBetter orders pair candidates: fewer missing items, then lower
// subtotal, then prefer a split that actually uses both stores.
func pairBetter(candidate, best pairCandidate) bool {
	if candidate.missingCount != best.missingCount {
		return candidate.missingCount < best.missingCount
	}
	if candidate.subtotal != best.subtotal {
		return candidate.subtotal < best.subtotal
	}
	return candidate.usedBothStores && !best.usedBothStores
}

func matchesByItem(q domain.StoreQuote) map[string]domain.LineItemMatch {
	byItem := make(map[string]domain.LineItemMatch, len(q.Matches))
	for _, m := range q.Matches {
		byItem[m.ItemID] = m
	}
	return byItem
}
