package account

import (
	"errors"

	"github.com/wlsc/accounts/pkg/currency"
)

// Error kinds returned by the account service. Call sites wrap them with a
// diagnostic message; match with errors.Is.
var (
	// ErrAccountAlreadyExists is returned when creating an account whose id is taken.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrNegativeAmount is returned for a transfer of less than zero.
	ErrNegativeAmount = errors.New("negative transfer amount")

	// ErrSourceNotFound is returned when the debited account does not exist.
	ErrSourceNotFound = errors.New("source account not found")

	// ErrDestinationNotFound is returned when the credited account does not exist.
	ErrDestinationNotFound = errors.New("destination account not found")

	// ErrInsufficientFunds is returned when a transfer would leave the source negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrOverflow is returned when a deposit would exceed the int64 range.
	ErrOverflow = errors.New("amount overflow")

	// ErrConversionUnavailable is returned when the converter cannot price a transfer.
	ErrConversionUnavailable = currency.ErrConversionUnavailable

	// ErrInvalidAccount is returned by Builder.Build for malformed accounts.
	ErrInvalidAccount = errors.New("invalid account")
)
