package usecase

import (
	"sort"
	"strings"
)

// Suggestion is one rule-based query expansion with a confidence score
type Suggestion struct {
	Query      string  `json:"query"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

const maxSuggestions = 5

// Suggester produces rule-based search suggestions from lookup tables:
// popular brands, category expansions, common variations, and healthier
// alternatives.
type Suggester struct{}

// NewSuggester creates a suggester
func NewSuggester() *Suggester {
	return &Suggester{}
}

// Suggest returns up to five suggestions for a free-text query, ordered by
// confidence.
func (s *Suggester) Suggest(query string) []Suggestion {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []Suggestion{}
	}

	suggestions := make([]Suggestion, 0, 16)
	suggestions = append(suggestions, brandSuggestions(query)...)
	suggestions = append(suggestions, categorySuggestions(query)...)
	suggestions = append(suggestions, variationSuggestions(query)...)
	suggestions = append(suggestions, healthAlternatives(query)...)

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

var brandMap = map[string][]string{
	"milk":          {"Horizon Organic", "Fairlife", "Great Value", "Lactaid"},
	"peanut butter": {"Skippy", "Jif", "Adams", "Great Value"},
	"cereal":        {"Cheerios", "Lucky Charms", "Frosted Flakes", "Honey Nut Cheerios"},
	"yogurt":        {"Chobani", "Dannon", "Yoplait", "Greek Gods"},
	"bread":         {"Wonder", "Pepperidge Farm", "Daves Killer Bread", "Great Value"},
	"eggs":          {"Egglands Best", "Great Value", "Organic Valley", "Cage Free"},
}

func brandSuggestions(query string) []Suggestion {
	var out []Suggestion
	for category, brands := range brandMap {
		if !strings.Contains(query, category) {
			continue
		}
		for _, brand := range brands {
			out = append(out, Suggestion{
				Query:      brand + " " + category,
				Confidence: 0.8,
				Reasoning:  "Popular brand suggestion for " + category,
			})
		}
	}
	return out
}

var categoryMap = map[string][]string{
	"organic":     {"organic milk", "organic eggs", "organic apples", "organic spinach"},
	"gluten free": {"gluten free bread", "gluten free pasta", "gluten free cookies"},
	"fresh":       {"fresh berries", "fresh herbs", "fresh salmon"},
	"frozen":      {"frozen vegetables", "frozen fruit", "frozen pizza"},
}

func categorySuggestions(query string) []Suggestion {
	var out []Suggestion
	for modifier, items := range categoryMap {
		if !strings.Contains(query, modifier) {
			continue
		}
		for _, item := range items {
			if strings.Contains(query, item) {
				continue
			}
			out = append(out, Suggestion{
				Query:      item,
				Confidence: 0.7,
				Reasoning:  modifier + " category suggestion",
			})
		}
	}
	return out
}

var variationMap = map[string][]string{
	"milk":    {"whole milk", "2% milk", "skim milk", "oat milk", "almond milk"},
	"apple":   {"red apples", "green apples", "honeycrisp apples", "granny smith apples"},
	"chicken": {"chicken breast", "chicken thighs", "rotisserie chicken"},
	"pasta":   {"spaghetti", "penne", "linguine", "whole wheat pasta"},
	"rice":    {"brown rice", "white rice", "jasmine rice", "wild rice"},
}

func variationSuggestions(query string) []Suggestion {
	var out []Suggestion
	for base, variations := range variationMap {
		if !strings.Contains(query, base) || query == base {
			continue
		}
		for _, variation := range variations {
			if strings.Contains(query, variation) {
				continue
			}
			out = append(out, Suggestion{
				Query:      variation,
				Confidence: 0.6,
				Reasoning:  "Common variation of " + base,
			})
		}
	}
	return out
}

type healthAlternative struct {
	alt    string
	reason string
}

var healthMap = map[string][]healthAlternative{
	"white bread": {
		{"whole wheat bread", "Higher fiber and nutrients"},
		{"multigrain bread", "More complex carbohydrates"},
	},
	"regular pasta": {
		{"whole wheat pasta", "Higher fiber content"},
		{"chickpea pasta", "Higher protein, gluten-free"},
	},
	"soda": {
		{"sparkling water", "No added sugars"},
		{"kombucha", "Probiotics and less sugar"},
	},
	"white rice": {
		{"brown rice", "More fiber and nutrients"},
		{"quinoa", "Complete protein source"},
	},
}

func healthAlternatives(query string) []Suggestion {
	var out []Suggestion
	for target, alternatives := range healthMap {
		if !strings.Contains(query, target) {
			continue
		}
		for _, a := range alternatives {
			out = append(out, Suggestion{
				Query:      a.alt,
				Confidence: 0.5,
				Reasoning:  "Healthier alternative: " + a.reason,
			})
		}
	}
	return out
}
