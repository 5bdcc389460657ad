package csvenc

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xenith-Quantumweather/luhnsynth/internal/core/domain"
)

func sampleTransaction() domain.Transaction {
	return domain.Transaction{
		TransactionID:    "TXNABC123XYZ",
		TransactionDate:  "2025-01-02T03:04:05Z",
		Status:           domain.TransactionStatusApproved,
		CardholderName:   "Jane Smith",
		CardNumber:       "4111111111111111",
		CardBrand:        "Visa",
		CardExpiry:       "04/28",
		CVV:              "123",
		Amount:           42.5,
		Currency:         "USD",
		MerchantName:     "Acme Retail",
		MerchantID:       "MER12345",
		MerchantCategory: "Retail",
		PaymentMethod:    domain.PaymentMethodCreditCard,
		IPAddress:        "10.1.2.3",
		DeviceID:         "DEV54321",
		UserAgent:        "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	}
}

func TestEncoder_Extension(t *testing.T) {
	assert.Equal(t, "csv", New().Extension())
}

func TestEncoder_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Encode(&buf, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1, "empty batch is headers only")
	assert.Equal(t, strings.Join(domain.FieldNames, ","), lines[0])
}

func TestEncoder_RecordLine(t *testing.T) {
	tx := sampleTransaction()

	var buf bytes.Buffer
	require.NoError(t, New().Encode(&buf, []domain.Transaction{tx}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	line := lines[1]
	assert.Contains(t, line, `"Jane Smith"`, "cardholder name is quoted")
	assert.Contains(t, line, `"Mozilla/5.0`, "user agent is quoted")
	assert.Contains(t, line, ",42.50,", "amount uses exactly two decimal places")
	assert.Contains(t, line, ",approved,", "status uses its lowercase label")
	assert.Contains(t, line, "approved,,", "absent decline reason is an empty field")
}

func TestEncoder_DeclinedRecord(t *testing.T) {
	tx := sampleTransaction()
	reason := domain.DeclineReasonInsufficientFunds
	tx.Status = domain.TransactionStatusDeclined
	tx.DeclineReason = &reason

	var buf bytes.Buffer
	require.NoError(t, New().Encode(&buf, []domain.Transaction{tx}))

	assert.Contains(t, buf.String(), ",declined,insufficient_funds,")
}

func TestEncoder_ParseableByCSVReader(t *testing.T) {
	reason := domain.DeclineReasonCardExpired
	declined := sampleTransaction()
	declined.Status = domain.TransactionStatusDeclined
	declined.DeclineReason = &reason

	var buf bytes.Buffer
	require.NoError(t, New().Encode(&buf, []domain.Transaction{sampleTransaction(), declined}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, domain.FieldNames, records[0])
	for _, rec := range records[1:] {
		assert.Len(t, rec, len(domain.FieldNames))
	}

	// The quoted free-text fields survive the round trip intact.
	assert.Equal(t, "Jane Smith", records[1][4])
	assert.Contains(t, records[1][17], "KHTML, like Gecko")
	assert.Equal(t, "", records[1][3])
	assert.Equal(t, "card_expired", records[2][3])
}
