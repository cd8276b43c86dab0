package account_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/wlsc/accounts/infra/provider"
	"github.com/wlsc/accounts/pkg/domain/account"
	"github.com/wlsc/accounts/pkg/testutils"
	"github.com/wlsc/accounts/webapi"
	accountweb "github.com/wlsc/accounts/webapi/account"
	"github.com/wlsc/accounts/webapi/common"
)

func accountJSON(id string, amount int64) string {
	return fmt.Sprintf(`{"id":%q,"amount":%d,"currency":"EUR","customer":{"id":"cust-%s","firstname":"John","lastname":"Doe","locale":"de-DE"}}`,
		id, amount, id)
}

func transferJSON(from, to string, amount int64) string {
	return fmt.Sprintf(`{"id":"tx","fromAccountId":%q,"toAccountId":%q,"amount":%d}`, from, to, amount)
}

type AccountTestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *AccountTestSuite) SetupTest() {
	s.app = webapi.SetupApp(testutils.NewTestApp(s.T(), nil, nil))
}

func (s *AccountTestSuite) request(method, path, body string, headers ...string) *http.Response {
	return testutils.MakeRequest(s.app, method, path, body, headers...)
}

func (s *AccountTestSuite) create(id string, amount int64) {
	resp := s.request(fiber.MethodPut, "/accounts", accountJSON(id, amount))
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
}

func (s *AccountTestSuite) list() []accountweb.AccountDTO {
	resp := s.request(fiber.MethodGet, "/accounts", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	return testutils.DecodeJSON[[]accountweb.AccountDTO](s.T(), resp)
}

func (s *AccountTestSuite) balances() map[string]int64 {
	out := map[string]int64{}
	for _, a := range s.list() {
		out[a.ID] = *a.Amount
	}
	return out
}

func (s *AccountTestSuite) TestListEmpty() {
	resp := s.request(fiber.MethodGet, "/accounts", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("1", resp.Header.Get(common.HeaderAPIVersion))

	var body json.RawMessage
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.JSONEq(`[]`, string(body))
}

func (s *AccountTestSuite) TestCreateUnique() {
	resp := s.request(fiber.MethodPut, "/accounts", accountJSON("acc1", 500))
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	s.Equal("/account/acc1", resp.Header.Get(fiber.HeaderLocation))
	body := testutils.DecodeJSON[common.Response](s.T(), resp)
	s.Equal(fiber.StatusCreated, body.Status)

	list := s.list()
	s.Require().Len(list, 1)
	s.Equal("acc1", list[0].ID)
	s.Equal(int64(500), *list[0].Amount)
	s.Equal("EUR", list[0].Currency)
	s.Equal("cust-acc1", list[0].Customer.ID)
	s.Equal("de-DE", list[0].Customer.Locale)
}

func (s *AccountTestSuite) TestCreateDuplicate() {
	s.create("acc1", 500)

	resp := s.request(fiber.MethodPut, "/accounts", accountJSON("acc1", 999))
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotModified, resp.StatusCode)
	s.Equal(map[string]int64{"acc1": 500}, s.balances())
}

func (s *AccountTestSuite) TestCreateDerivesCurrencyFromLocale() {
	resp := s.request(fiber.MethodPut, "/accounts",
		`{"id":"us1","amount":10,"customer":{"id":"c1","locale":"en-US"}}`)
	resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	list := s.list()
	s.Require().Len(list, 1)
	s.Equal("USD", list[0].Currency)
}

func (s *AccountTestSuite) TestCreateInvalid() {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"id":`},
		{"missing id", `{"amount":1,"currency":"EUR","customer":{"id":"c"}}`},
		{"missing amount", `{"id":"a","currency":"EUR","customer":{"id":"c"}}`},
		{"negative amount", `{"id":"a","amount":-1,"currency":"EUR","customer":{"id":"c"}}`},
		{"missing customer id", `{"id":"a","amount":1,"currency":"EUR","customer":{}}`},
		{"lowercase currency", `{"id":"a","amount":1,"currency":"eur","customer":{"id":"c"}}`},
		{"unknown currency", `{"id":"a","amount":1,"currency":"XYZ","customer":{"id":"c"}}`},
		{"no currency and no locale", `{"id":"a","amount":1,"customer":{"id":"c"}}`},
		{"amount is a string", `{"id":"a","amount":"1","currency":"EUR","customer":{"id":"c"}}`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp := s.request(fiber.MethodPut, "/accounts", tt.body)
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
			s.Equal("application/problem+json", resp.Header.Get(fiber.HeaderContentType))
			pd := testutils.DecodeJSON[common.ProblemDetails](s.T(), resp)
			s.Equal(fiber.StatusBadRequest, pd.Status)
			s.NotEmpty(pd.Detail)
		})
	}
	s.Empty(s.list())
}

func (s *AccountTestSuite) TestTransfer() {
	tests := []struct {
		name       string
		registered []string
		from, to   string
		amount     int64
		status     int
		detail     string
		want       map[string]int64
	}{
		{
			name: "same currency", registered: []string{"acc1", "acc2"},
			from: "acc1", to: "acc2", amount: 25, status: fiber.StatusOK,
			want: map[string]int64{"acc1": 475, "acc2": 2025},
		},
		{
			name: "back again", registered: []string{"acc1", "acc2"},
			from: "acc2", to: "acc1", amount: 99, status: fiber.StatusOK,
			want: map[string]int64{"acc1": 599, "acc2": 1901},
		},
		{
			name: "insufficient funds", registered: []string{"acc1", "acc2"},
			from: "acc1", to: "acc2", amount: 500000, status: fiber.StatusBadRequest,
			detail: "source account has not enough money to transfer",
			want:   map[string]int64{"acc1": 500, "acc2": 2000},
		},
		{
			name: "negative amount", registered: []string{"acc1", "acc2"},
			from: "acc2", to: "acc1", amount: -1245, status: fiber.StatusBadRequest,
			detail: "negative transfer amount",
			want:   map[string]int64{"acc1": 500, "acc2": 2000},
		},
		{
			name: "unknown destination", registered: []string{"acc1"},
			from: "acc1", to: "acc2", amount: 1, status: fiber.StatusBadRequest,
			detail: "no such account acc2 found",
			want:   map[string]int64{"acc1": 500},
		},
		{
			name: "unknown source", registered: []string{"acc1"},
			from: "acc2", to: "acc1", amount: 1, status: fiber.StatusBadRequest,
			detail: "no such account acc2 found",
			want:   map[string]int64{"acc1": 500},
		},
		{
			name: "zero amount", registered: []string{"acc1", "acc2"},
			from: "acc1", to: "acc2", amount: 0, status: fiber.StatusOK,
			want: map[string]int64{"acc1": 500, "acc2": 2000},
		},
		{
			name: "self transfer", registered: []string{"acc1"},
			from: "acc1", to: "acc1", amount: 100, status: fiber.StatusOK,
			want: map[string]int64{"acc1": 500},
		},
	}
	opening := map[string]int64{"acc1": 500, "acc2": 2000}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp := s.request(fiber.MethodDelete, "/accounts", "")
			resp.Body.Close() //nolint:errcheck
			for _, id := range tt.registered {
				s.create(id, opening[id])
			}

			resp = s.request(fiber.MethodPost, "/accounts/transfer", transferJSON(tt.from, tt.to, tt.amount))
			s.Equal(tt.status, resp.StatusCode)
			if tt.status == fiber.StatusOK {
				body := testutils.DecodeJSON[common.Response](s.T(), resp)
				s.Equal("Transfer successful", body.Message)
			} else {
				pd := testutils.DecodeJSON[common.ProblemDetails](s.T(), resp)
				s.Contains(pd.Detail, tt.detail)
			}
			s.Equal(tt.want, s.balances())
		})
	}
}

func (s *AccountTestSuite) TestTransferBadRequest() {
	s.create("acc1", 500)
	s.create("acc2", 2000)
	for _, body := range []string{
		`not json`,
		`{"fromAccountId":"acc1","toAccountId":"acc2"}`,
		`{"toAccountId":"acc2","amount":1}`,
		`{"fromAccountId":"acc1","amount":1}`,
		`{"fromAccountId":"acc1","toAccountId":"acc2","amount":1.5}`,
	} {
		resp := s.request(fiber.MethodPost, "/accounts/transfer", body)
		resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusBadRequest, resp.StatusCode, body)
	}
	s.Equal(map[string]int64{"acc1": 500, "acc2": 2000}, s.balances())
}

func (s *AccountTestSuite) TestRemoveAll() {
	s.create("acc1", 500)
	s.create("acc2", 2000)
	s.Len(s.list(), 2)

	resp := s.request(fiber.MethodDelete, "/accounts", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Empty(s.list())
}

func (s *AccountTestSuite) TestAPIVersion() {
	resp := s.request(fiber.MethodGet, "/accounts", "", common.HeaderAPIVersion, "1")
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.request(fiber.MethodPut, "/accounts", accountJSON("acc1", 1), common.HeaderAPIVersion, "2")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	pd := testutils.DecodeJSON[common.ProblemDetails](s.T(), resp)
	s.Contains(pd.Detail, `"2"`)
	s.Empty(s.list())
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}

func TestTransfer_ConversionUnavailable(t *testing.T) {
	conv, err := provider.NewFixedRateConverter(map[string]string{"EUR/USD": "1.1"})
	require.NoError(t, err)
	app := webapi.SetupApp(testutils.NewTestApp(t, nil, conv))

	for _, body := range []string{
		`{"id":"eur","amount":1000,"currency":"EUR","customer":{"id":"c1"}}`,
		`{"id":"usd","amount":1000,"currency":"USD","customer":{"id":"c2"}}`,
		`{"id":"gbp","amount":1000,"currency":"GBP","customer":{"id":"c3"}}`,
	} {
		resp := testutils.MakeRequest(app, fiber.MethodPut, "/accounts", body)
		resp.Body.Close() //nolint:errcheck
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := testutils.MakeRequest(app, fiber.MethodPost, "/accounts/transfer", transferJSON("eur", "usd", 100))
	resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = testutils.MakeRequest(app, fiber.MethodPost, "/accounts/transfer", transferJSON("eur", "gbp", 100))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	pd := testutils.DecodeJSON[common.ProblemDetails](t, resp)
	assert.Contains(t, pd.Detail, "EUR/GBP")
}

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: acc1", account.ErrAccountAlreadyExists), fiber.StatusNotModified},
		{account.ErrNegativeAmount, fiber.StatusBadRequest},
		{account.ErrSourceNotFound, fiber.StatusBadRequest},
		{account.ErrDestinationNotFound, fiber.StatusBadRequest},
		{account.ErrInsufficientFunds, fiber.StatusBadRequest},
		{account.ErrOverflow, fiber.StatusBadRequest},
		{account.ErrInvalidAccount, fiber.StatusBadRequest},
		{account.ErrConversionUnavailable, fiber.StatusUnprocessableEntity},
		{fmt.Errorf("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, accountweb.ErrorToStatusCode(tt.err), tt.err.Error())
	}
}
