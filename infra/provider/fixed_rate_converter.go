package provider

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/wlsc/accounts/pkg/currency"
	"github.com/wlsc/accounts/pkg/money"
)

var (
	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
)

// FixedRateConverter converts with a static rate table. Amounts are
// multiplied by the pair's rate and rounded half away from zero to the
// smallest unit of the destination currency.
type FixedRateConverter struct {
	rates map[currency.Pair]decimal.Decimal
}

// NewFixedRateConverter builds a converter from "FROM/TO" -> rate strings,
// e.g. {"EUR/USD": "1.08"}. Rates must be positive.
func NewFixedRateConverter(table map[string]string) (*FixedRateConverter, error) {
	rates := make(map[currency.Pair]decimal.Decimal, len(table))
	for pairStr, rateStr := range table {
		pair, err := currency.ParsePair(pairStr)
		if err != nil {
			return nil, err
		}
		rate, err := decimal.NewFromString(rateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %s: %w", pair, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("invalid rate for %s: must be positive, got %s", pair, rate)
		}
		rates[pair] = rate
	}
	return &FixedRateConverter{rates: rates}, nil
}

// Convert implements currency.Converter.
func (c *FixedRateConverter) Convert(from, to money.Code, amount money.Amount) (money.Amount, error) {
	if from == to {
		return amount, nil
	}
	pair := currency.Pair{From: from, To: to}
	rate, ok := c.rates[pair]
	if !ok {
		return 0, fmt.Errorf("%w: no rate for %s", currency.ErrConversionUnavailable, pair)
	}
	converted := decimal.NewFromInt(amount).Mul(rate).Round(0)
	if converted.GreaterThan(maxAmount) || converted.LessThan(minAmount) {
		return 0, fmt.Errorf("%w: %d %s does not fit in %s", currency.ErrConversionUnavailable, amount, from, to)
	}
	return converted.IntPart(), nil
}

var _ currency.Converter = (*FixedRateConverter)(nil)
