// Package jsonenc writes transaction batches as a pretty-printed JSON array.
// Object keys match the delimited encoder's header names; an absent decline
// reason renders as an explicit null.
package jsonenc

import (
	"encoding/json"
	"io"

	"github.com/Xenith-Quantumweather/luhnsynth/internal/core/domain"
)

// Encoder implements ports.TransactionEncoder for the structured-text format.
type Encoder struct{}

// New creates a structured-text encoder.
func New() *Encoder {
	return &Encoder{}
}

// Extension returns the file extension for this format.
func (e *Encoder) Extension() string {
	return "json"
}

// Encode writes the batch as an indented JSON array. An empty batch produces
// an empty array, never null.
func (e *Encoder) Encode(w io.Writer, txns []domain.Transaction) error {
	if txns == nil {
		txns = []domain.Transaction{}
	}

	data, err := json.MarshalIndent(txns, "", "  ")
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
