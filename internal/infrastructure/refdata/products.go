package refdata

import (
	"github.com/cartcompass/backend/internal/domain"
	"github.com/cartcompass/backend/internal/usecase"
)

// defaultProducts is the built-in reference catalog. Sizes are normalized
// to the canonical oz/lb/ct units at construction so the matcher never
// sees gallons or liters.
var defaultProducts = []domain.ReferenceProduct{
	// Dairy & eggs
	{
		ID: "dairy-001", Name: "Whole Milk", Brand: "Great Value",
		Category: "dairy", Subcategory: "milk",
		Size:     usecase.NormalizeSize(1, "gal"),
		Keywords: []string{"milk", "dairy", "whole", "gallon"}, BasePrice: 3.48,
	},
	{
		ID: "dairy-002", Name: "Organic Whole Milk", Brand: "Horizon Organic",
		Category: "dairy", Subcategory: "milk",
		Size:     usecase.NormalizeSize(64, "oz"),
		Keywords: []string{"milk", "organic", "dairy", "horizon"}, BasePrice: 4.98,
	},
	{
		ID: "dairy-003", Name: "2% Reduced Fat Milk", Brand: "Great Value",
		Category: "dairy", Subcategory: "milk",
		Size:     usecase.NormalizeSize(1, "gal"),
		Keywords: []string{"milk", "dairy", "2%", "reduced fat"}, BasePrice: 3.48,
	},
	{
		ID: "dairy-004", Name: "Large Grade AA White Eggs", Brand: "Great Value",
		Category: "dairy", Subcategory: "eggs",
		Size:     usecase.NormalizeSize(18, "ct"),
		Keywords: []string{"eggs", "large", "white", "grade aa"}, BasePrice: 2.97,
	},
	{
		ID: "dairy-005", Name: "Organic Free Range Large Eggs", Brand: "Egglands Best",
		Category: "dairy", Subcategory: "eggs",
		Size:     usecase.NormalizeSize(12, "ct"),
		Keywords: []string{"eggs", "organic", "free range", "egglands"}, BasePrice: 4.98,
	},
	{
		ID: "dairy-006", Name: "Salted Butter", Brand: "Land O Lakes",
		Category: "dairy", Subcategory: "butter",
		Size:     usecase.NormalizeSize(16, "oz"),
		Keywords: []string{"butter", "salted", "dairy"}, BasePrice: 4.48,
	},
	{
		ID: "dairy-007", Name: "Greek Plain Nonfat Yogurt", Brand: "Chobani",
		Category: "dairy", Subcategory: "yogurt",
		Size:     usecase.NormalizeSize(32, "oz"),
		Keywords: []string{"yogurt", "greek", "plain", "chobani"}, BasePrice: 5.48,
	},
	{
		ID: "dairy-008", Name: "Mild Cheddar Cheese Block", Brand: "Great Value",
		Category: "dairy", Subcategory: "cheese",
		Size:     usecase.NormalizeSize(16, "oz"),
		Keywords: []string{"cheese", "cheddar", "block", "mild"}, BasePrice: 4.12,
	},

	// Beverages
	{
		ID: "bev-001", Name: "100% Orange Juice", Brand: "Tropicana",
		Category: "beverages", Subcategory: "juice",
		Size:     usecase.NormalizeSize(52, "oz"),
		Keywords: []string{"juice", "orange", "tropicana", "oj"}, BasePrice: 4.28,
	},
	{
		ID: "bev-002", Name: "Spring Water", Brand: "Ice Mountain",
		Category: "beverages", Subcategory: "water",
		Size:     usecase.NormalizeSize(24, "ct"),
		Keywords: []string{"water", "spring", "bottled"}, BasePrice: 4.98,
	},
	{
		ID: "bev-003", Name: "Ground Medium Roast Coffee", Brand: "Folgers",
		Category: "beverages", Subcategory: "coffee",
		Size:     usecase.NormalizeSize(25.9, "oz"),
		Keywords: []string{"coffee", "ground", "medium roast", "folgers"}, BasePrice: 9.98,
	},

	// Pantry
	{
		ID: "pantry-001", Name: "Creamy Peanut Butter", Brand: "Skippy",
		Category: "pantry", Subcategory: "peanut butter",
		Size:     usecase.NormalizeSize(16.3, "oz"),
		Keywords: []string{"peanut butter", "creamy", "skippy", "spread"}, BasePrice: 2.98,
	},
	{
		ID: "pantry-002", Name: "Creamy Peanut Butter", Brand: "Jif",
		Category: "pantry", Subcategory: "peanut butter",
		Size:     usecase.NormalizeSize(16, "oz"),
		Keywords: []string{"peanut butter", "creamy", "jif", "spread"}, BasePrice: 3.12,
	},
	{
		ID: "pantry-003", Name: "Spaghetti Pasta", Brand: "Barilla",
		Category: "pantry", Subcategory: "pasta",
		Size:     usecase.NormalizeSize(16, "oz"),
		Keywords: []string{"pasta", "spaghetti", "barilla", "noodles"}, BasePrice: 1.78,
	},
	{
		ID: "pantry-004", Name: "Long Grain White Rice", Brand: "Great Value",
		Category: "pantry", Subcategory: "rice",
		Size:     usecase.NormalizeSize(5, "lb"),
		Keywords: []string{"rice", "white", "long grain"}, BasePrice: 3.42,
	},
	{
		ID: "pantry-005", Name: "Honey Nut Cheerios Cereal", Brand: "General Mills",
		Category: "pantry", Subcategory: "cereal",
		Size:     usecase.NormalizeSize(19.5, "oz"),
		Keywords: []string{"cereal", "cheerios", "honey nut", "breakfast"}, BasePrice: 4.94,
	},
	{
		ID: "pantry-006", Name: "Tomato Basil Pasta Sauce", Brand: "Prego",
		Category: "pantry", Subcategory: "sauce",
		Size:     usecase.NormalizeSize(24, "oz"),
		Keywords: []string{"pasta sauce", "tomato", "basil", "prego", "marinara"}, BasePrice: 2.68,
	},
	{
		ID: "pantry-007", Name: "Extra Virgin Olive Oil", Brand: "Bertolli",
		Category: "pantry", Subcategory: "oil",
		Size:     usecase.NormalizeSize(500, "ml"),
		Keywords: []string{"olive oil", "extra virgin", "cooking", "bertolli"}, BasePrice: 7.98,
	},

	// Produce
	{
		ID: "produce-001", Name: "Bananas", Brand: "Fresh",
		Category: "produce", Subcategory: "fruit",
		Size:     usecase.NormalizeSize(2, "lb"),
		Keywords: []string{"bananas", "fruit", "fresh"}, BasePrice: 1.18,
	},
	{
		ID: "produce-002", Name: "Honeycrisp Apples", Brand: "Fresh",
		Category: "produce", Subcategory: "fruit",
		Size:     usecase.NormalizeSize(3, "lb"),
		Keywords: []string{"apples", "honeycrisp", "fruit", "fresh"}, BasePrice: 4.97,
	},
	{
		ID: "produce-003", Name: "Baby Spinach", Brand: "Fresh Express",
		Category: "produce", Subcategory: "vegetables",
		Size:     usecase.NormalizeSize(10, "oz"),
		Keywords: []string{"spinach", "baby", "salad", "greens"}, BasePrice: 3.48,
	},
	{
		ID: "produce-004", Name: "Russet Potatoes", Brand: "Fresh",
		Category: "produce", Subcategory: "vegetables",
		Size:     usecase.NormalizeSize(5, "lb"),
		Keywords: []string{"potatoes", "russet", "vegetables"}, BasePrice: 3.28,
	},

	// Meat & seafood
	{
		ID: "meat-001", Name: "Boneless Skinless Chicken Breast", Brand: "Tyson",
		Category: "meat", Subcategory: "chicken",
		Size:     usecase.NormalizeSize(2.5, "lb"),
		Keywords: []string{"chicken", "breast", "boneless", "skinless", "tyson"}, BasePrice: 8.42,
	},
	{
		ID: "meat-002", Name: "93% Lean Ground Beef", Brand: "Great Value",
		Category: "meat", Subcategory: "beef",
		Size:     usecase.NormalizeSize(1, "lb"),
		Keywords: []string{"ground beef", "lean", "beef", "93%"}, BasePrice: 5.94,
	},
	{
		ID: "meat-003", Name: "Atlantic Salmon Fillet", Brand: "Fresh",
		Category: "meat", Subcategory: "seafood",
		Size:     usecase.NormalizeSize(1, "lb"),
		Keywords: []string{"salmon", "fillet", "fish", "seafood"}, BasePrice: 9.98,
	},

	// Bakery
	{
		ID: "bakery-001", Name: "Classic White Sandwich Bread", Brand: "Wonder",
		Category: "bakery", Subcategory: "bread",
		Size:     usecase.NormalizeSize(20, "oz"),
		Keywords: []string{"bread", "white", "sandwich", "wonder", "loaf"}, BasePrice: 2.78,
	},
	{
		ID: "bakery-002", Name: "100% Whole Wheat Bread", Brand: "Natures Own",
		Category: "bakery", Subcategory: "bread",
		Size:     usecase.NormalizeSize(20, "oz"),
		Keywords: []string{"bread", "wheat", "whole wheat", "loaf"}, BasePrice: 3.18,
	},

	// Snacks
	{
		ID: "snack-001", Name: "Classic Potato Chips", Brand: "Lays",
		Category: "snacks", Subcategory: "chips",
		Size:     usecase.NormalizeSize(8, "oz"),
		Keywords: []string{"chips", "potato", "lays", "snack"}, BasePrice: 3.48,
	},
	{
		ID: "snack-002", Name: "Chocolate Chip Cookies", Brand: "Chips Ahoy",
		Category: "snacks", Subcategory: "cookies",
		Size:     usecase.NormalizeSize(13, "oz"),
		Keywords: []string{"cookies", "chocolate chip", "chips ahoy", "snack"}, BasePrice: 3.98,
	},
}

// defaultChains mirrors observed pricing postures: discounters sit at or
// below base price, premium fresh markets well above.
var defaultChains = map[string]ChainProfile{
	"walmart": {
		Name:          "Walmart",
		PriceFloorPct: 0.95, PriceBandPct: 0.10, InStockRate: 0.95,
		Locations: []domain.StoreLocation{
			{ID: "walmart-2844", Name: "Walmart Supercenter #2844", Address: "7535 W North Ave", City: "Elmwood Park", State: "IL", ZipCode: "60707"},
			{ID: "walmart-5260", Name: "Walmart Supercenter #5260", Address: "8555 Golf Rd", City: "Niles", State: "IL", ZipCode: "60714"},
		},
	},
	"target": {
		Name:          "Target",
		PriceFloorPct: 1.05, PriceBandPct: 0.10, InStockRate: 0.93,
		Locations: []domain.StoreLocation{
			{ID: "target-1375", Name: "Target Niles", Address: "5601 Touhy Ave", City: "Niles", State: "IL", ZipCode: "60714"},
			{ID: "target-2797", Name: "Target Evanston", Address: "2209 Howard St", City: "Evanston", State: "IL", ZipCode: "60202"},
		},
	},
	"marianos": {
		Name:          "Mariano's",
		PriceFloorPct: 1.12, PriceBandPct: 0.15, InStockRate: 0.96,
		Locations: []domain.StoreLocation{
			{ID: "marianos-3001", Name: "Mariano's West Loop", Address: "40 S Halsted St", City: "Chicago", State: "IL", ZipCode: "60661"},
			{ID: "marianos-3002", Name: "Mariano's Lincoln Park", Address: "2112 N Ashland Ave", City: "Chicago", State: "IL", ZipCode: "60614"},
		},
	},
	"jewel": {
		Name:          "Jewel-Osco",
		PriceFloorPct: 1.08, PriceBandPct: 0.12, InStockRate: 0.94,
		Locations: []domain.StoreLocation{
			{ID: "jewel-3101", Name: "Jewel-Osco Canal St", Address: "1340 S Canal St", City: "Chicago", State: "IL", ZipCode: "60607"},
			{ID: "jewel-3102", Name: "Jewel-Osco Broadway", Address: "3531 N Broadway", City: "Chicago", State: "IL", ZipCode: "60657"},
		},
	},
	"butera": {
		Name:          "Butera Market",
		PriceFloorPct: 1.02, PriceBandPct: 0.08, InStockRate: 0.90,
		Locations: []domain.StoreLocation{
			{ID: "butera-3201", Name: "Butera Harlem Ave", Address: "4761 N Harlem Ave", City: "Harwood Heights", State: "IL", ZipCode: "60706"},
			{ID: "butera-3202", Name: "Butera Elmwood Park", Address: "7233 W Grand Ave", City: "Elmwood Park", State: "IL", ZipCode: "60707"},
		},
	},
	"caputos": {
		Name:          "Caputo's Fresh Markets",
		PriceFloorPct: 0.98, PriceBandPct: 0.08, InStockRate: 0.91,
		Locations: []domain.StoreLocation{
			{ID: "caputos-3301", Name: "Caputo's Elmwood Park", Address: "2558 N Harlem Ave", City: "Elmwood Park", State: "IL", ZipCode: "60707"},
			{ID: "caputos-3302", Name: "Caputo's Lincoln Park", Address: "2400 N Clark St", City: "Chicago", State: "IL", ZipCode: "60614"},
		},
	},
	"petes": {
		Name:          "Pete's Fresh Market",
		PriceFloorPct: 0.96, PriceBandPct: 0.08, InStockRate: 0.92,
		Locations: []domain.StoreLocation{
			{ID: "petes-3401", Name: "Pete's North Ave", Address: "2333 W North Ave", City: "Chicago", State: "IL", ZipCode: "60647"},
			{ID: "petes-3402", Name: "Pete's Lawrence Ave", Address: "3250 W Lawrence Ave", City: "Chicago", State: "IL", ZipCode: "60625"},
		},
	},
}
