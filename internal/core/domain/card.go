package domain

import (
	"fmt"
)

// CardBrand describes an issuing scheme: the numeric prefixes it owns, the
// account number lengths it issues, and its CVV size.
type CardBrand struct {
	Name      string
	Prefixes  []string
	Lengths   []int
	CVVLength int
}

// Validate checks the structural invariants of a brand definition: at least
// one prefix and one length, every prefix strictly shorter than every length,
// and a CVV size of 3 or 4 digits.
func (b CardBrand) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("card brand has no name")
	}
	if len(b.Prefixes) == 0 {
		return fmt.Errorf("card brand %s has no prefixes", b.Name)
	}
	if len(b.Lengths) == 0 {
		return fmt.Errorf("card brand %s has no lengths", b.Name)
	}
	for _, p := range b.Prefixes {
		for _, l := range b.Lengths {
			if len(p) >= l {
				return fmt.Errorf("card brand %s: prefix %q not shorter than length %d", b.Name, p, l)
			}
		}
	}
	if b.CVVLength != 3 && b.CVVLength != 4 {
		return fmt.Errorf("card brand %s: unsupported cvv length %d", b.Name, b.CVVLength)
	}
	return nil
}

// CardExpiry is a card expiration month/year pair.
type CardExpiry struct {
	Month int // 1-12
	Year  int // four-digit year
}

// String renders the expiry as zero-padded MM/YY.
func (e CardExpiry) String() string {
	return fmt.Sprintf("%02d/%02d", e.Month, e.Year%100)
}

// LuhnCheckDigit computes the check digit that, appended to digits, makes the
// whole number satisfy the Luhn relation. Every second digit counted from the
// rightmost of the input is doubled (a doubled value above 9 has 9
// subtracted), and the check digit brings the total sum to a multiple of 10.
func LuhnCheckDigit(digits string) (byte, error) {
	sum := 0
	double := true // the rightmost input digit sits second from the right once the check digit lands
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-digit character %q at position %d", c, i)
		}
		v := int(c - '0')
		if double {
			v *= 2
			if v > 9 {
				v -= 9
			}
		}
		sum += v
		double = !double
	}
	return byte('0' + (10-sum%10)%10), nil
}

// ValidLuhn reports whether a full card number satisfies the Luhn checksum.
func ValidLuhn(number string) bool {
	if len(number) < 2 {
		return false
	}
	check, err := LuhnCheckDigit(number[:len(number)-1])
	if err != nil {
		return false
	}
	return number[len(number)-1] == check
}
