package usecase

import (
	"math"
	"strings"

	"github.com/cartcompass/backend/internal/domain"
)

// DefaultSizeTolerancePct is the acceptable size deviation for substitutions
const DefaultSizeTolerancePct = 0.25

// minWeightDenominator avoids division by zero for degenerate sizes
const minWeightDenominator = 0.0001

// Ounce conversion factors for units the reference data may carry.
// The matcher only ever sees oz/lb/ct.
const (
	ouncesPerGallon = 128.0
	ouncesPerLiter  = 33.814
	ouncesPerMl     = 0.033814
)

// unitMultiplier normalizes weight to ounces for $/oz comparisons
func unitMultiplier(unit domain.Unit) float64 {
	if unit == domain.UnitPound {
		return 16
	}
	return 1 // oz and ct handled differently
}

// UnitPrice returns the price per comparable unit: per item for count-based
// products, per ounce for weight/volume products.
func UnitPrice(product domain.StoreProduct) float64 {
	value := product.Size.Value
	unit := product.Size.Unit

	// Count-based items: price per item
	if unit == domain.UnitCount {
		return product.Price / math.Max(value, 1)
	}

	// Weight/volume: convert lb -> oz, then price per oz
	normalized := value * unitMultiplier(unit)
	return product.Price / math.Max(normalized, minWeightDenominator)
}

// SizeWithinTolerance reports whether an actual size is an acceptable
// substitute for a desired size. Units must match exactly; no cross-unit
// comparison. A non-positive tolerance falls back to the default 25%.
func SizeWithinTolerance(desired, actual domain.Size, tolerancePct float64) bool {
	if desired.Unit != actual.Unit {
		return false
	}
	if tolerancePct <= 0 {
		tolerancePct = DefaultSizeTolerancePct
	}

	min := desired.Value * (1 - tolerancePct)
	max := desired.Value * (1 + tolerancePct)
	return actual.Value >= min && actual.Value <= max
}

// NormalizeSize converts a raw size in any supported unit to a canonical
// oz/lb/ct size. Volume units convert to ounces rounded to 1 decimal.
// Unknown units degrade to a neutral count-of-one that participates in
// matching without satisfying any size constraint.
func NormalizeSize(value float64, unit string) domain.Size {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "oz":
		return domain.Size{Value: value, Unit: domain.UnitOunce}
	case "lb", "lbs":
		return domain.Size{Value: value, Unit: domain.UnitPound}
	case "ct":
		return domain.Size{Value: value, Unit: domain.UnitCount}
	case "gal":
		return domain.Size{Value: roundTo1(value * ouncesPerGallon), Unit: domain.UnitOunce}
	case "l":
		return domain.Size{Value: roundTo1(value * ouncesPerLiter), Unit: domain.UnitOunce}
	case "ml":
		return domain.Size{Value: roundTo1(value * ouncesPerMl), Unit: domain.UnitOunce}
	default:
		return domain.Size{Value: 1, Unit: domain.UnitCount}
	}
}

// roundTo1 rounds half-up to 1 decimal place
func roundTo1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// roundToCents rounds half-up at the cent
func roundToCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
