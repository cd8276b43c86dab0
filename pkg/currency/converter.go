package currency

import (
	"errors"

	"github.com/wlsc/accounts/pkg/money"
)

// ErrConversionUnavailable is the only failure a Converter may report.
var ErrConversionUnavailable = errors.New("currency conversion unavailable")

// Converter defines the interface for converting amounts between currencies.
//
// Implementations must be deterministic: the same inputs always yield the same
// amount. Amounts are in the smallest unit of the respective currency.
type Converter interface {
	// Convert returns the destination-currency equivalent of amount.
	Convert(from, to money.Code, amount money.Amount) (money.Amount, error)
}

// ConverterFunc adapts an ordinary function to the Converter interface.
type ConverterFunc func(from, to money.Code, amount money.Amount) (money.Amount, error)

// Convert calls f(from, to, amount).
func (f ConverterFunc) Convert(from, to money.Code, amount money.Amount) (money.Amount, error) {
	return f(from, to, amount)
}
