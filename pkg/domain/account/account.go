package account

import (
	"fmt"

	"github.com/wlsc/accounts/pkg/money"
)

// Customer is the owner of an account. It shares the lifetime of the
// account that embeds it.
type Customer struct {
	ID        string
	Firstname string
	Lastname  string
	// Locale is a BCP 47 tag. It is consulted only to pick a default
	// currency when an account is built without one.
	Locale string
}

// Account is a customer's balance in a single currency.
//
// Invariants:
//   - ID is non-empty and unique within the store.
//   - Amount is held in the smallest currency unit and is never negative at rest.
//   - Account is a value: an update produces a new Account that replaces the
//     old one under the same ID.
type Account struct {
	ID       string
	Amount   money.Amount
	Currency money.Code
	Customer Customer
}

// WithAmount returns a copy of the account holding amount.
func (a Account) WithAmount(amount money.Amount) Account {
	a.Amount = amount
	return a
}

// Builder provides a fluent API for constructing Account instances and
// ensures only valid accounts are constructed.
type Builder struct {
	id       string
	amount   money.Amount
	currency money.Code
	customer Customer
}

// New creates a new Builder.
func New() *Builder {
	return &Builder{}
}

// WithID sets the ID for the account being built. This is a mandatory field.
func (b *Builder) WithID(id string) *Builder {
	b.id = id
	return b
}

// WithAmount sets the opening balance in the smallest currency unit.
func (b *Builder) WithAmount(amount money.Amount) *Builder {
	b.amount = amount
	return b
}

// WithCurrency sets the currency. If not set, it is derived from the
// customer's locale.
func (b *Builder) WithCurrency(code money.Code) *Builder {
	b.currency = code
	return b
}

// WithCustomer sets the owning customer. This is a mandatory field.
func (b *Builder) WithCustomer(c Customer) *Builder {
	b.customer = c
	return b
}

// Build validates all invariants and returns the Account.
func (b *Builder) Build() (Account, error) {
	if b.id == "" {
		return Account{}, fmt.Errorf("%w: id is required", ErrInvalidAccount)
	}
	if b.customer.ID == "" {
		return Account{}, fmt.Errorf("%w: customer id is required", ErrInvalidAccount)
	}
	if b.amount < 0 {
		return Account{}, fmt.Errorf("%w: amount must not be negative", ErrInvalidAccount)
	}
	code := b.currency
	if code == "" {
		if b.customer.Locale == "" {
			return Account{}, fmt.Errorf("%w: currency or customer locale is required", ErrInvalidAccount)
		}
		derived, err := money.FromLocale(b.customer.Locale)
		if err != nil {
			return Account{}, fmt.Errorf("%w: %w", ErrInvalidAccount, err)
		}
		code = derived
	}
	if !code.IsValid() {
		return Account{}, fmt.Errorf("%w: %w: %q", ErrInvalidAccount, money.ErrInvalidCurrency, code)
	}
	return Account{
		ID:       b.id,
		Amount:   b.amount,
		Currency: code,
		Customer: b.customer,
	}, nil
}
