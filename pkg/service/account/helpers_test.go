package account_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	infraeventbus "github.com/wlsc/accounts/infra/eventbus"
	"github.com/wlsc/accounts/infra/provider"
	infrarepo "github.com/wlsc/accounts/infra/repository/account"
	"github.com/wlsc/accounts/pkg/currency"
	"github.com/wlsc/accounts/pkg/domain/account"
	"github.com/wlsc/accounts/pkg/money"
	repo "github.com/wlsc/accounts/pkg/repository/account"
	service "github.com/wlsc/accounts/pkg/service/account"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type mockConverter struct {
	mock.Mock
}

func (m *mockConverter) Convert(from, to money.Code, amount money.Amount) (money.Amount, error) {
	args := m.Called(from, to, amount)
	return args.Get(0).(money.Amount), args.Error(1)
}

var _ currency.Converter = (*mockConverter)(nil)

type fixture struct {
	svc  *service.Service
	repo repo.Repository
	bus  *infraeventbus.MemoryEventBus
}

func newFixture(t *testing.T, converter currency.Converter) fixture {
	t.Helper()
	if converter == nil {
		converter = provider.NewIdentityConverter()
	}
	logger := discardLogger()
	r := infrarepo.NewMemory()
	bus := infraeventbus.NewWithMemory(logger)
	return fixture{
		svc:  service.New(r, converter, bus, logger),
		repo: r,
		bus:  bus,
	}
}

func newAccount(id string, amount money.Amount, code money.Code) account.Account {
	return account.Account{
		ID:       id,
		Amount:   amount,
		Currency: code,
		Customer: account.Customer{
			ID:        "cust-" + id,
			Firstname: "Jane",
			Lastname:  "Doe",
			Locale:    "de-DE",
		},
	}
}

func (f fixture) seed(t *testing.T, accounts ...account.Account) {
	t.Helper()
	for _, a := range accounts {
		require.True(t, f.repo.PutIfAbsent(a))
	}
}

func (f fixture) balance(t *testing.T, id string) money.Amount {
	t.Helper()
	a, ok := f.repo.Get(id)
	require.True(t, ok, "account %s missing", id)
	return a.Amount
}

// racingRepo runs interleave once, right before the first Replace, to stand
// in for a remove_all (and re-create) that lands between read and commit.
type racingRepo struct {
	repo.Repository
	interleave func(r repo.Repository)
	done       bool
}

func (r *racingRepo) Replace(updates ...repo.Update) (string, bool) {
	if !r.done {
		r.done = true
		r.interleave(r.Repository)
	}
	return r.Repository.Replace(updates...)
}
