package webapi_test

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/wlsc/accounts/pkg/testutils"
	"github.com/wlsc/accounts/webapi"
	"github.com/wlsc/accounts/webapi/common"
)

type WebAPITestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *WebAPITestSuite) SetupTest() {
	s.app = webapi.SetupApp(testutils.NewTestApp(s.T(), nil, nil))
}

func (s *WebAPITestSuite) TestHealth() {
	resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Contains(string(body), "accounts=0")
}

func (s *WebAPITestSuite) TestHealthCountsAccounts() {
	resp := testutils.MakeRequest(s.app, fiber.MethodPut, "/accounts",
		`{"id":"acc1","amount":500,"currency":"EUR","customer":{"id":"c1","locale":"de-DE"}}`,
		fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	resp = testutils.MakeRequest(s.app, fiber.MethodGet, "/", "")
	defer resp.Body.Close() //nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Contains(string(body), "accounts=1")
}

func (s *WebAPITestSuite) TestUnknownRoute() {
	resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/nope", "")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Equal("application/problem+json", resp.Header.Get(fiber.HeaderContentType))
	pd := testutils.DecodeJSON[common.ProblemDetails](s.T(), resp)
	s.Equal(fiber.StatusNotFound, pd.Status)
	s.Equal("Not Found", pd.Title)
	s.Equal("/nope", pd.Instance)
}

func TestWebAPITestSuite(t *testing.T) {
	suite.Run(t, new(WebAPITestSuite))
}

func TestRateLimit(t *testing.T) {
	cfg := testutils.TestConfig()
	cfg.RateLimit.MaxRequests = 5
	cfg.RateLimit.Window = time.Second
	app := webapi.SetupApp(testutils.NewTestApp(t, cfg, nil))

	for i := range 6 {
		resp := testutils.MakeRequest(app, fiber.MethodGet, "/", "")
		resp.Body.Close() //nolint:errcheck
		if i < 5 {
			assert.Equal(t, fiber.StatusOK, resp.StatusCode, "Expected OK for request %d", i+1)
		} else {
			assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode, "Expected Too Many Requests for request %d", i+1)
		}
	}

	// Another client is not affected.
	resp := testutils.MakeRequest(app, fiber.MethodGet, "/", "", "X-Forwarded-For", "10.0.0.2, 10.0.0.1")
	resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Wait for the rate limit window to reset
	time.Sleep(2 * time.Second)
	resp = testutils.MakeRequest(app, fiber.MethodGet, "/", "")
	resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "Expected OK after rate limit reset")
}

func TestRecoverFromPanic(t *testing.T) {
	app := webapi.SetupApp(testutils.NewTestApp(t, nil, nil))
	app.Get("/panic", func(*fiber.Ctx) error { panic("boom") })

	resp := testutils.MakeRequest(app, http.MethodGet, "/panic", "")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	pd := testutils.DecodeJSON[common.ProblemDetails](t, resp)
	assert.Equal(t, "Internal Server Error", pd.Title)
}
