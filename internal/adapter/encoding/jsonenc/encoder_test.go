package jsonenc

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xenith-Quantumweather/luhnsynth/internal/core/domain"
)

func TestEncoder_Extension(t *testing.T) {
	assert.Equal(t, "json", New().Extension())
}

func TestEncoder_EmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Encode(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()), "nil batch encodes as an empty array")
}

func TestEncoder_NullDeclineReason(t *testing.T) {
	tx := domain.Transaction{
		TransactionID: "TXN000000001",
		Status:        domain.TransactionStatusApproved,
	}

	var buf bytes.Buffer
	require.NoError(t, New().Encode(&buf, []domain.Transaction{tx}))

	assert.Contains(t, buf.String(), `"decline_reason": null`)
}

func TestEncoder_KeysMatchFieldNames(t *testing.T) {
	tx := domain.Transaction{
		TransactionID: "TXN000000001",
		Status:        domain.TransactionStatusPending,
		Amount:        12.34,
	}

	var buf bytes.Buffer
	require.NoError(t, New().Encode(&buf, []domain.Transaction{tx}))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	require.Len(t, decoded[0], len(domain.FieldNames))
	for _, name := range domain.FieldNames {
		assert.Contains(t, decoded[0], name)
	}
	assert.Equal(t, 12.34, decoded[0]["amount"], "amount is a JSON number")
}

func TestEncoder_DeclinedReasonValue(t *testing.T) {
	reason := domain.DeclineReasonSuspiciousActivity
	tx := domain.Transaction{
		TransactionID: "TXN000000002",
		Status:        domain.TransactionStatusDeclined,
		DeclineReason: &reason,
	}

	var buf bytes.Buffer
	require.NoError(t, New().Encode(&buf, []domain.Transaction{tx}))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "suspicious_activity", decoded[0]["decline_reason"])
}

func TestEncoder_Indented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Encode(&buf, []domain.Transaction{{TransactionID: "TXN000000003"}}))

	assert.True(t, strings.HasPrefix(buf.String(), "[\n  {\n"), "output is pretty-printed")
}
