package provider

import (
	"github.com/wlsc/accounts/pkg/currency"
	"github.com/wlsc/accounts/pkg/money"
)

// IdentityConverter is the stub converter: every amount converts 1:1.
type IdentityConverter struct{}

// NewIdentityConverter creates the stub converter.
func NewIdentityConverter() IdentityConverter {
	return IdentityConverter{}
}

// Convert returns amount unchanged.
func (IdentityConverter) Convert(_, _ money.Code, amount money.Amount) (money.Amount, error) {
	return amount, nil
}

var _ currency.Converter = IdentityConverter{}
