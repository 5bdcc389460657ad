// Package csvenc writes transaction batches as delimited text: one header
// line naming all fields, then one comma-joined line per record. The
// cardholder name and user agent are the only free-text fields, so they are
// always quoted; every other field is emitted bare.
package csvenc

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Xenith-Quantumweather/luhnsynth/internal/core/domain"
)

// Encoder implements ports.TransactionEncoder for the delimited-text format.
type Encoder struct{}

// New creates a delimited-text encoder.
func New() *Encoder {
	return &Encoder{}
}

// Extension returns the file extension for this format.
func (e *Encoder) Extension() string {
	return "csv"
}

// Encode writes the header line followed by one line per record. An empty
// batch produces a headers-only file.
func (e *Encoder) Encode(w io.Writer, txns []domain.Transaction) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(domain.FieldNames, ",") + "\n"); err != nil {
		return err
	}

	for i := range txns {
		if err := writeRecord(bw, &txns[i]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeRecord(w io.Writer, tx *domain.Transaction) error {
	var reason string
	if tx.DeclineReason != nil {
		reason = string(*tx.DeclineReason)
	}

	_, err := fmt.Fprintf(w,
		"%s,%s,%s,%s,%q,%s,%s,%s,%s,%.2f,%s,%s,%s,%s,%s,%s,%s,%q\n",
		tx.TransactionID,
		tx.TransactionDate,
		tx.Status,
		reason,
		tx.CardholderName,
		tx.CardNumber,
		tx.CardBrand,
		tx.CardExpiry,
		tx.CVV,
		tx.Amount,
		tx.Currency,
		tx.MerchantName,
		tx.MerchantID,
		tx.MerchantCategory,
		tx.PaymentMethod,
		tx.IPAddress,
		tx.DeviceID,
		tx.UserAgent,
	)
	return err
}
