// Package refdata holds the embedded reference tables the generator samples
// from: card brands, merchants, cardholder name parts, currencies, and user
// agents. All tables are hand-authored constants fixed at build time; nothing
// is loaded from disk or mutated at runtime.
package refdata

import "github.com/Xenith-Quantumweather/luhnsynth/internal/core/domain"

var cardBrands = []domain.CardBrand{
	{
		Name:      "Visa",
		Prefixes:  []string{"4"},
		Lengths:   []int{16},
		CVVLength: 3,
	},
	{
		Name:      "Mastercard",
		Prefixes:  []string{"51", "52", "53", "54", "55"},
		Lengths:   []int{16},
		CVVLength: 3,
	},
	{
		Name:      "American Express",
		Prefixes:  []string{"34", "37"},
		Lengths:   []int{15},
		CVVLength: 4,
	},
	{
		Name:      "Discover",
		Prefixes:  []string{"6011", "644", "645", "646", "647", "648", "649", "65"},
		Lengths:   []int{16},
		CVVLength: 3,
	},
}

var merchants = []domain.Merchant{
	{Name: "Acme Retail", ID: "MER12345", Category: "Retail"},
	{Name: "Sunshine Groceries", ID: "MER22468", Category: "Grocery"},
	{Name: "Tech Universe", ID: "MER39521", Category: "Electronics"},
	{Name: "Cozy Coffee Shop", ID: "MER41327", Category: "Food & Beverage"},
	{Name: "Fitness Plus", ID: "MER57845", Category: "Health & Fitness"},
	{Name: "BookWorld", ID: "MER61234", Category: "Books & Media"},
	{Name: "QuickMart", ID: "MER78523", Category: "Convenience Store"},
	{Name: "Urban Fashion", ID: "MER84751", Category: "Clothing"},
	{Name: "Travel Now", ID: "MER92456", Category: "Travel"},
	{Name: "Gourmet Dining", ID: "MER10387", Category: "Restaurant"},
}

var firstNames = []string{
	"John", "Jane", "Michael", "Emily", "David",
	"Sarah", "Robert", "Lisa", "William", "Emma",
	"James", "Olivia", "Daniel", "Sophia", "Matthew",
	"Ava", "Christopher", "Mia", "Andrew", "Isabella",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones",
	"Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
	"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

var currencies = []string{"USD", "EUR", "GBP", "CAD", "AUD", "JPY"}

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Safari/605.1.15",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 14_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1",
}

// CardBrands returns the supported card issuing schemes.
func CardBrands() []domain.CardBrand { return cardBrands }

// Merchants returns the fictional merchant directory.
func Merchants() []domain.Merchant { return merchants }

// FirstNames returns the cardholder first-name pool.
func FirstNames() []string { return firstNames }

// LastNames returns the cardholder last-name pool.
func LastNames() []string { return lastNames }

// Currencies returns the supported ISO 4217 currency codes.
func Currencies() []string { return currencies }

// UserAgents returns the browser user-agent pool.
func UserAgents() []string { return userAgents }
