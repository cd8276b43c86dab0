package account

import (
	"github.com/wlsc/accounts/pkg/domain/account"
	"github.com/wlsc/accounts/pkg/money"
)

// CustomerDTO is the wire representation of an account owner.
type CustomerDTO struct {
	ID        string `json:"id" validate:"required"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Locale    string `json:"locale,omitempty" validate:"omitempty,bcp47_language_tag"`
}

// AccountDTO is the request body of account registration and an element of
// the account listing. Amount is in the smallest currency unit. Currency may
// be omitted when the customer's locale determines one.
type AccountDTO struct {
	ID       string      `json:"id" validate:"required"`
	Amount   *int64      `json:"amount" validate:"required,gte=0" swaggertype:"integer"`
	Currency string      `json:"currency,omitempty" validate:"omitempty,len=3,uppercase,alpha"`
	Customer CustomerDTO `json:"customer" validate:"required"`
}

// TransferRequest is the request body of a money transfer. Amount is in the
// source account's currency units; its sign is checked by the transfer itself.
type TransferRequest struct {
	ID            string `json:"id"`
	FromAccountID string `json:"fromAccountId" validate:"required"`
	ToAccountID   string `json:"toAccountId" validate:"required"`
	Amount        *int64 `json:"amount" validate:"required" swaggertype:"integer"`
}

// ToAccountDTO maps a domain account to its wire representation.
func ToAccountDTO(a account.Account) AccountDTO {
	amount := a.Amount
	return AccountDTO{
		ID:       a.ID,
		Amount:   &amount,
		Currency: a.Currency.String(),
		Customer: CustomerDTO{
			ID:        a.Customer.ID,
			Firstname: a.Customer.Firstname,
			Lastname:  a.Customer.Lastname,
			Locale:    a.Customer.Locale,
		},
	}
}

// ToAccount builds a validated domain account from the request.
func (d AccountDTO) ToAccount() (account.Account, error) {
	var amount money.Amount
	if d.Amount != nil {
		amount = *d.Amount
	}
	return account.New().
		WithID(d.ID).
		WithAmount(amount).
		WithCurrency(money.Code(d.Currency)).
		WithCustomer(account.Customer{
			ID:        d.Customer.ID,
			Firstname: d.Customer.Firstname,
			Lastname:  d.Customer.Lastname,
			Locale:    d.Customer.Locale,
		}).
		Build()
}

// ToMoneyTransfer maps the request to the domain transfer.
func (r TransferRequest) ToMoneyTransfer() account.MoneyTransfer {
	var amount money.Amount
	if r.Amount != nil {
		amount = *r.Amount
	}
	return account.MoneyTransfer{
		ID:            r.ID,
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        amount,
	}
}
