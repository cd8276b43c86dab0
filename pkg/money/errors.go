package money

import "errors"

// Common money package errors
var (
	// ErrInvalidCurrency is returned for codes that are not ISO 4217.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrInvalidLocale is returned when a locale is not a valid BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrNoCurrencyForLocale is returned when a locale's region has no currency.
	ErrNoCurrencyForLocale = errors.New("no currency for locale")
)
