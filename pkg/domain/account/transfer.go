package account

import "github.com/wlsc/accounts/pkg/money"

// MoneyTransfer is a request to move Amount, expressed in the source
// account's currency, from one account to another. It is never stored.
//
// ID is carried for correlation only; transfers are not deduplicated by it.
type MoneyTransfer struct {
	ID            string
	FromAccountID string
	ToAccountID   string
	Amount        money.Amount
}

// IsSelfTransfer reports whether source and destination are the same account.
func (mt MoneyTransfer) IsSelfTransfer() bool {
	return mt.FromAccountID == mt.ToAccountID
}
