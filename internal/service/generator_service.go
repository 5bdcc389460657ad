package service

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Xenith-Quantumweather/luhnsynth/internal/core/domain"
	"github.com/Xenith-Quantumweather/luhnsynth/internal/core/ports"
	"github.com/Xenith-Quantumweather/luhnsynth/pkg/apperror"
)

const (
	txnIDPrefix   = "TXN"
	txnIDLength   = 9
	txnIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Transaction dates fall within the last three years.
	historyDays = 365 * 3

	// Expiries land 1-5 years out, so they are always in the future.
	expiryMinYears = 1
	expiryMaxYears = 5
)

// Tables bundles the reference data the generator samples from.
type Tables struct {
	CardBrands []domain.CardBrand
	Merchants  []domain.Merchant
	FirstNames []string
	LastNames  []string
	Currencies []string
	UserAgents []string
}

func (t Tables) validate() error {
	switch {
	case len(t.CardBrands) == 0:
		return apperror.ErrEmptyTable("card_brands")
	case len(t.Merchants) == 0:
		return apperror.ErrEmptyTable("merchants")
	case len(t.FirstNames) == 0:
		return apperror.ErrEmptyTable("first_names")
	case len(t.LastNames) == 0:
		return apperror.ErrEmptyTable("last_names")
	case len(t.Currencies) == 0:
		return apperror.ErrEmptyTable("currencies")
	case len(t.UserAgents) == 0:
		return apperror.ErrEmptyTable("user_agents")
	}
	return nil
}

// generatorService implements ports.TransactionGenerator.
type generatorService struct {
	tables Tables
	cards  ports.CardService
	rng    *rand.Rand
	now    func() time.Time
}

// NewGeneratorService creates a transaction generator sampling from the given
// tables. The randomness source is injected so tests can seed it
// deterministically.
func NewGeneratorService(tables Tables, cards ports.CardService, rng *rand.Rand) ports.TransactionGenerator {
	return &generatorService{
		tables: tables,
		cards:  cards,
		rng:    rng,
		now:    time.Now,
	}
}

// GenerateBatch assembles count independent transactions. A negative count is
// rejected before any generation work starts; count zero yields an empty,
// non-nil batch.
func (s *generatorService) GenerateBatch(count int) ([]domain.Transaction, error) {
	if count < 0 {
		return nil, apperror.ErrInvalidCount(count)
	}
	if err := s.tables.validate(); err != nil {
		return nil, err
	}

	txns := make([]domain.Transaction, 0, count)
	for i := 0; i < count; i++ {
		tx, err := s.GenerateTransaction()
		if err != nil {
			return nil, err
		}
		txns = append(txns, tx)
	}
	return txns, nil
}

// GenerateTransaction assembles one record: one uniform pick from each
// reference table plus independently generated fields.
func (s *generatorService) GenerateTransaction() (domain.Transaction, error) {
	if err := s.tables.validate(); err != nil {
		return domain.Transaction{}, err
	}

	brand := pick(s.rng, s.tables.CardBrands)
	merchant := pick(s.rng, s.tables.Merchants)
	firstName := pick(s.rng, s.tables.FirstNames)
	lastName := pick(s.rng, s.tables.LastNames)
	currency := pick(s.rng, s.tables.Currencies)
	userAgent := pick(s.rng, s.tables.UserAgents)
	status := pick(s.rng, domain.TransactionStatuses)

	var declineReason *domain.DeclineReason
	if status == domain.TransactionStatusDeclined {
		reason := pick(s.rng, domain.DeclineReasons)
		declineReason = &reason
	}

	cardNumber, err := s.cards.GenerateNumber(brand)
	if err != nil {
		return domain.Transaction{}, err
	}

	return domain.Transaction{
		TransactionID:    s.transactionID(),
		TransactionDate:  s.transactionDate(),
		Status:           status,
		DeclineReason:    declineReason,
		CardholderName:   firstName + " " + lastName,
		CardNumber:       cardNumber,
		CardBrand:        brand.Name,
		CardExpiry:       s.expiryDate().String(),
		CVV:              s.cards.GenerateCVV(brand.CVVLength),
		Amount:           s.amount(currency),
		Currency:         currency,
		MerchantName:     merchant.Name,
		MerchantID:       merchant.ID,
		MerchantCategory: merchant.Category,
		PaymentMethod:    domain.PaymentMethodCreditCard,
		IPAddress:        s.ipAddress(),
		DeviceID:         s.deviceID(),
		UserAgent:        userAgent,
	}, nil
}

// transactionID returns "TXN" plus nine random uppercase alphanumerics.
func (s *generatorService) transactionID() string {
	b := make([]byte, txnIDLength)
	for i := range b {
		b[i] = txnIDAlphabet[s.rng.Intn(len(txnIDAlphabet))]
	}
	return txnIDPrefix + string(b)
}

// transactionDate returns an RFC3339 timestamp a random number of whole days
// in the past, within the history window.
func (s *generatorService) transactionDate() string {
	daysAgo := s.rng.Intn(historyDays)
	return s.now().UTC().AddDate(0, 0, -daysAgo).Format(time.RFC3339)
}

// expiryDate returns a random expiry 1-5 calendar years in the future.
func (s *generatorService) expiryDate() domain.CardExpiry {
	return domain.CardExpiry{
		Month: 1 + s.rng.Intn(12),
		Year:  s.now().Year() + expiryMinYears + s.rng.Intn(expiryMaxYears),
	}
}

func (s *generatorService) ipAddress() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		1+s.rng.Intn(254),
		s.rng.Intn(255),
		s.rng.Intn(255),
		s.rng.Intn(255),
	)
}

func (s *generatorService) deviceID() string {
	return fmt.Sprintf("DEV%d", 10000+s.rng.Intn(90000))
}

// amount draws a currency-appropriate value. JPY has no minor unit, so it gets
// a whole number; every other currency gets an integer part plus an
// independently rounded two-decimal fraction, which can nudge the total up to
// 1001.00.
func (s *generatorService) amount(currency string) float64 {
	if currency == "JPY" {
		return float64(100 + s.rng.Intn(49901))
	}
	whole := float64(1 + s.rng.Intn(1000))
	cents := math.Round(s.rng.Float64()*100) / 100
	return whole + cents
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
