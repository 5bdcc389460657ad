package domain

// TransactionStatus represents the outcome recorded for a synthetic transaction.
type TransactionStatus string

const (
	TransactionStatusApproved TransactionStatus = "approved"
	TransactionStatusDeclined TransactionStatus = "declined"
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusRefunded TransactionStatus = "refunded"
)

// TransactionStatuses lists every status in sampling order.
var TransactionStatuses = []TransactionStatus{
	TransactionStatusApproved,
	TransactionStatusDeclined,
	TransactionStatusPending,
	TransactionStatusRefunded,
}

// DeclineReason is the categorical explanation attached to declined transactions.
type DeclineReason string

const (
	DeclineReasonInsufficientFunds  DeclineReason = "insufficient_funds"
	DeclineReasonCardExpired        DeclineReason = "card_expired"
	DeclineReasonInvalidCard        DeclineReason = "invalid_card"
	DeclineReasonSuspiciousActivity DeclineReason = "suspicious_activity"
)

// DeclineReasons lists every decline reason in sampling order.
var DeclineReasons = []DeclineReason{
	DeclineReasonInsufficientFunds,
	DeclineReasonCardExpired,
	DeclineReasonInvalidCard,
	DeclineReasonSuspiciousActivity,
}

// PaymentMethodCreditCard is the only payment instrument modeled.
const PaymentMethodCreditCard = "credit_card"

// Transaction is one synthetic payment record. Instances are immutable once
// assembled and carry no relationship to any other record. JSON tags double as
// the canonical field names shared with the delimited encoder's header.
type Transaction struct {
	TransactionID    string            `json:"transaction_id"`
	TransactionDate  string            `json:"transaction_date"` // RFC3339
	Status           TransactionStatus `json:"status"`
	DeclineReason    *DeclineReason    `json:"decline_reason"` // nil unless declined
	CardholderName   string            `json:"cardholder_name"`
	CardNumber       string            `json:"card_number"`
	CardBrand        string            `json:"card_brand"`
	CardExpiry       string            `json:"card_expiry"` // MM/YY
	CVV              string            `json:"cvv"`
	Amount           float64           `json:"amount"`
	Currency         string            `json:"currency"`
	MerchantName     string            `json:"merchant_name"`
	MerchantID       string            `json:"merchant_id"`
	MerchantCategory string            `json:"merchant_category"`
	PaymentMethod    string            `json:"payment_method"`
	IPAddress        string            `json:"ip_address"`
	DeviceID         string            `json:"device_id"`
	UserAgent        string            `json:"user_agent"`
}

// IsDeclined returns true when the transaction carries declined status.
func (t *Transaction) IsDeclined() bool {
	return t.Status == TransactionStatusDeclined
}

// FieldNames is the canonical field order shared by both encoders: the
// delimited encoder emits these as its header line, and the structured
// encoder uses the same names as object keys.
var FieldNames = []string{
	"transaction_id",
	"transaction_date",
	"status",
	"decline_reason",
	"cardholder_name",
	"card_number",
	"card_brand",
	"card_expiry",
	"cvv",
	"amount",
	"currency",
	"merchant_name",
	"merchant_id",
	"merchant_category",
	"payment_method",
	"ip_address",
	"device_id",
	"user_agent",
}
