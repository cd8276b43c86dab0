package currency

import (
	"fmt"
	"strings"

	"github.com/wlsc/accounts/pkg/money"
)

// Pair identifies a directed conversion, e.g. EUR -> USD.
type Pair struct {
	From money.Code
	To   money.Code
}

// String renders the pair as "FROM/TO".
func (p Pair) String() string {
	return p.From.String() + "/" + p.To.String()
}

// ParsePair parses "EUR/USD" into a Pair, validating both codes.
func ParsePair(s string) (Pair, error) {
	from, to, found := strings.Cut(strings.TrimSpace(s), "/")
	if !found {
		return Pair{}, fmt.Errorf("invalid currency pair %q: expected FROM/TO", s)
	}
	fc, err := money.ParseCode(from)
	if err != nil {
		return Pair{}, fmt.Errorf("invalid currency pair %q: %w", s, err)
	}
	tc, err := money.ParseCode(to)
	if err != nil {
		return Pair{}, fmt.Errorf("invalid currency pair %q: %w", s, err)
	}
	return Pair{From: fc, To: tc}, nil
}
