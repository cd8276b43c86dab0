package events

import (
	"time"

	"github.com/wlsc/accounts/pkg/domain/account"
)

// AccountCreated is emitted after an account has been registered.
type AccountCreated struct {
	Account    account.Account
	OccurredAt time.Time
}

// AccountsCleared is emitted after every account has been removed.
type AccountsCleared struct {
	Removed    int
	OccurredAt time.Time
}

func (e AccountCreated) Type() EventType  { return EventTypeAccountCreated }
func (e AccountsCleared) Type() EventType { return EventTypeAccountsCleared }
