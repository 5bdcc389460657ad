package service

import (
	"math/rand"
	"strings"

	"github.com/Xenith-Quantumweather/luhnsynth/internal/core/domain"
	"github.com/Xenith-Quantumweather/luhnsynth/internal/core/ports"
	"github.com/Xenith-Quantumweather/luhnsynth/pkg/apperror"
)

// cardService implements ports.CardService.
type cardService struct {
	rng *rand.Rand
}

// NewCardService creates a card service drawing from the given randomness
// source. The source is injected so tests can seed it deterministically.
func NewCardService(rng *rand.Rand) ports.CardService {
	return &cardService{rng: rng}
}

// GenerateNumber builds a brand-consistent card number: a random prefix from
// the brand, random filler digits up to one short of a random issued length,
// and a Luhn check digit computed over exactly those digits. The check digit
// is computed at the final length, so every emitted number satisfies the Luhn
// relation end to end.
func (s *cardService) GenerateNumber(brand domain.CardBrand) (string, error) {
	if err := brand.Validate(); err != nil {
		return "", apperror.ErrInvalidBrand(brand.Name, err)
	}

	prefix := brand.Prefixes[s.rng.Intn(len(brand.Prefixes))]
	length := brand.Lengths[s.rng.Intn(len(brand.Lengths))]

	var b strings.Builder
	b.Grow(length)
	b.WriteString(prefix)
	for b.Len() < length-1 {
		b.WriteByte(digit(s.rng))
	}

	body := b.String()
	check, err := domain.LuhnCheckDigit(body)
	if err != nil {
		return "", apperror.ErrInvalidBrand(brand.Name, err)
	}

	return body + string(check), nil
}

// GenerateCVV returns a random decimal string of the given length.
func (s *cardService) GenerateCVV(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = digit(s.rng)
	}
	return string(b)
}

func digit(rng *rand.Rand) byte {
	return byte('0' + rng.Intn(10))
}
