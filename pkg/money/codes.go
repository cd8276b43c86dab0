package money

import (
	"fmt"

	"golang.org/x/text/currency"
)

// Code represents an ISO 4217 currency code (e.g., "USD", "EUR").
type Code string

// Common currency codes
const (
	USD Code = "USD" // US Dollar
	EUR Code = "EUR" // Euro
	JPY Code = "JPY" // Japanese Yen
	KWD Code = "KWD" // Kuwaiti Dinar
	GBP Code = "GBP" // British Pound
)

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// IsWellFormed reports whether c consists of exactly three uppercase ASCII letters.
func (c Code) IsWellFormed() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// IsValid checks that the code is well formed and known to the ISO 4217 table.
func (c Code) IsValid() bool {
	if !c.IsWellFormed() {
		return false
	}
	_, err := currency.ParseISO(string(c))
	return err == nil
}

// ParseCode validates s and returns it as a Code.
func ParseCode(s string) (Code, error) {
	c := Code(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
	}
	return c, nil
}
