package ports

import (
	"io"

	"github.com/Xenith-Quantumweather/luhnsynth/internal/core/domain"
)

// TransactionEncoder serializes a batch of transactions to one output format.
// Encoders write the complete representation in a single call; the destination
// is fully overwritten by whoever owns it.
type TransactionEncoder interface {
	// Extension is the file extension for this format, without the dot.
	Extension() string
	// Encode writes the full batch to w. An empty (or nil) batch is valid and
	// produces the format's empty representation.
	Encode(w io.Writer, txns []domain.Transaction) error
}

// DatasetStore creates named output destinations for encoded datasets.
// Creating a name that already exists truncates the previous content.
type DatasetStore interface {
	Create(name string) (io.WriteCloser, error)
}
