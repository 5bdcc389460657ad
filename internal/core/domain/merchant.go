package domain

// Merchant is a fictional business a synthetic transaction is attributed to.
// Merchants are static reference values and never change after startup.
type Merchant struct {
	Name     string
	ID       string
	Category string
}
