package account

import (
	"github.com/wlsc/accounts/pkg/domain/account"
)

// Update replaces Old with New for the account id they share.
type Update struct {
	Old account.Account
	New account.Account
}

// Repository is the single owner of live account state. Every method is
// atomic on its own; multi-step sequences are not.
type Repository interface {
	// PutIfAbsent inserts a under a.ID unless the id is taken. It never
	// overwrites and reports whether the account was inserted.
	PutIfAbsent(a account.Account) bool

	// Replace applies all updates in one atomic step. An update applies only
	// while its id still holds Old; if any id does not, nothing is written
	// and that id is returned as conflict.
	Replace(updates ...Update) (conflict string, ok bool)

	// Get returns the current record for id.
	Get(id string) (account.Account, bool)

	// Clear removes every account and returns how many were removed.
	Clear() int

	// Snapshot returns a consistent copy of all accounts in unspecified order.
	Snapshot() []account.Account

	// Len returns the number of stored accounts.
	Len() int
}
