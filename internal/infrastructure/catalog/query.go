package catalog

import (
	"regexp"
	"strings"
)

// Compiled patterns for query cleaning. Retailer search endpoints behave
// badly with size tokens and stray punctuation in the query.
var (
	// Size/quantity patterns like "128 fl oz", "1 gallon", "16.9oz", "2 lb"
	sizeQuantityPattern = regexp.MustCompile(`(?i)\b\d+\.?\d*\s*(?:fl\s*oz|oz|ounces?|lbs?|pounds?|ml|liters?|l|gallons?|gal|kg|grams?|g|qt|quarts?|pt|pints?)\b`)

	// Pack/count patterns like "12 pack", "pack of 6", "24 count", "6 ct"
	packCountPattern = regexp.MustCompile(`(?i)\b\d+[-\s]*(?:pack|pk|count|ct)\b|\bpack\s*of\s*\d+\b`)

	multiSpacePattern   = regexp.MustCompile(`\s+`)
	orphanPunctPattern  = regexp.MustCompile(`\s+[,\-;:]+\s+|[,\-;:]+\s*$|^\s*[,\-;:]+`)
	specialCharsPattern = regexp.MustCompile("[#%+@!^*()=\\[\\]{}<>|\\\\~`]")
)

// queryNoiseWords are marketing and packaging terms that add noise to
// retailer searches.
var queryNoiseWords = map[string]bool{
	"value": true, "family": true, "bonus": true, "size": true,
	"new": true, "improved": true, "premium": true, "select": true,
	"pack": true, "box": true, "bag": true, "bottle": true,
	"jar": true, "carton": true, "pouch": true, "tub": true,
}

// cleanQuery strips size info, pack counts, special characters, and retail
// noise words from a free-text item query before it is sent to a live
// search API.
func cleanQuery(query string) string {
	cleaned := strings.ReplaceAll(query, "&", " and ")
	cleaned = specialCharsPattern.ReplaceAllString(cleaned, " ")
	cleaned = sizeQuantityPattern.ReplaceAllString(cleaned, " ")
	cleaned = packCountPattern.ReplaceAllString(cleaned, " ")
	cleaned = removeNoiseWords(cleaned)
	cleaned = orphanPunctPattern.ReplaceAllString(cleaned, " ")
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// removeNoiseWords drops noise words while preserving the remaining words
// as typed.
func removeNoiseWords(s string) string {
	words := strings.Fields(s)
	kept := words[:0]
	for _, word := range words {
		check := strings.ToLower(strings.Trim(word, ",.!?;:-'\""))
		if !queryNoiseWords[check] {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}
