package service

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xenith-Quantumweather/luhnsynth/internal/core/domain"
	"github.com/Xenith-Quantumweather/luhnsynth/internal/refdata"
	"github.com/Xenith-Quantumweather/luhnsynth/pkg/apperror"
)

func newTestCardService(seed int64) *cardService {
	return NewCardService(rand.New(rand.NewSource(seed))).(*cardService)
}

func TestCardService_GenerateNumber_AllBrands(t *testing.T) {
	svc := newTestCardService(1)

	for _, brand := range refdata.CardBrands() {
		t.Run(brand.Name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				number, err := svc.GenerateNumber(brand)
				require.NoError(t, err)

				assert.Contains(t, brand.Lengths, len(number), "length must be one the brand issues")
				assert.True(t, allDigits(number), "number must be all digits: %s", number)
				assert.True(t, hasBrandPrefix(number, brand), "number must start with a brand prefix: %s", number)
				assert.True(t, domain.ValidLuhn(number), "number must satisfy Luhn: %s", number)
			}
		})
	}
}

func TestCardService_GenerateNumber_AmexScenario(t *testing.T) {
	// 15-digit brand with the single prefix "34".
	brand := domain.CardBrand{
		Name:      "American Express",
		Prefixes:  []string{"34"},
		Lengths:   []int{15},
		CVVLength: 4,
	}

	svc := newTestCardService(7)

	number, err := svc.GenerateNumber(brand)
	require.NoError(t, err)

	assert.Len(t, number, 15)
	assert.True(t, strings.HasPrefix(number, "34"))
	assert.True(t, domain.ValidLuhn(number))
}

func TestCardService_GenerateNumber_InvalidBrand(t *testing.T) {
	svc := newTestCardService(1)

	_, err := svc.GenerateNumber(domain.CardBrand{Name: "Broken", CVVLength: 3})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GEN_003", appErr.Code)
}

func TestCardService_GenerateCVV(t *testing.T) {
	svc := newTestCardService(2)

	tests := []struct {
		name   string
		length int
	}{
		{"three digit", 3},
		{"four digit", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				cvv := svc.GenerateCVV(tt.length)
				assert.Len(t, cvv, tt.length)
				assert.True(t, allDigits(cvv), "cvv must be all digits: %s", cvv)
			}
		})
	}
}

func TestCardService_Deterministic(t *testing.T) {
	brand := refdata.CardBrands()[0]

	a := newTestCardService(99)
	b := newTestCardService(99)

	for i := 0; i < 20; i++ {
		na, err := a.GenerateNumber(brand)
		require.NoError(t, err)
		nb, err := b.GenerateNumber(brand)
		require.NoError(t, err)
		assert.Equal(t, na, nb, "same seed must produce the same numbers")
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func hasBrandPrefix(number string, brand domain.CardBrand) bool {
	for _, p := range brand.Prefixes {
		if strings.HasPrefix(number, p) {
			return true
		}
	}
	return false
}
