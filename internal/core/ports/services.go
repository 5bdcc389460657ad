package ports

import (
	"github.com/Xenith-Quantumweather/luhnsynth/internal/core/domain"
)

// CardService produces brand-consistent card numbers and CVV codes.
type CardService interface {
	// GenerateNumber builds a number for the brand: a randomly chosen brand
	// prefix, random filler digits, and a Luhn check digit, at one of the
	// brand's issued lengths.
	GenerateNumber(brand domain.CardBrand) (string, error)
	// GenerateCVV returns a random decimal string of the given length.
	GenerateCVV(length int) string
}

// TransactionGenerator assembles synthetic transaction records.
type TransactionGenerator interface {
	// GenerateTransaction assembles one record from the reference tables.
	GenerateTransaction() (domain.Transaction, error)
	// GenerateBatch assembles count independent records. count must be >= 0;
	// a negative count is rejected before any generation work starts.
	GenerateBatch(count int) ([]domain.Transaction, error)
}

// DatasetExporter generates batches and writes them out in every registered
// output format.
type DatasetExporter interface {
	// Export produces one batch per size and writes it in each format,
	// returning the names of all files written. The first failure aborts the
	// run; files already written stay in place.
	Export(sizes []int) ([]string, error)
}
