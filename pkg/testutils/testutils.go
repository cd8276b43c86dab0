// Package testutils provides helpers for exercising the HTTP surface in tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/stretchr/testify/require"
	infraeventbus "github.com/wlsc/accounts/infra/eventbus"
	"github.com/wlsc/accounts/infra/provider"
	infrarepo "github.com/wlsc/accounts/infra/repository/account"
	"github.com/wlsc/accounts/pkg/app"
	"github.com/wlsc/accounts/pkg/config"
	"github.com/wlsc/accounts/pkg/currency"
)

// TestConfig returns the configuration the defaults would produce, without
// touching the process environment.
func TestConfig() *config.App {
	return &config.App{
		Env:       "test",
		Server:    &config.Server{Scheme: "http", Host: "127.0.0.1", Port: 3000},
		Log:       &config.Log{Format: "text", TimeFormat: time.DateTime, Prefix: "[test]"},
		RateLimit: &config.RateLimit{MaxRequests: 10_000, Window: time.Minute},
		Converter: &config.Converter{Strategy: "identity"},
		API:       &config.API{Version: "1"},
	}
}

// NewTestApp assembles the application over fresh in-memory infrastructure.
// A nil converter means the identity converter. Logs are discarded.
func NewTestApp(t testing.TB, cfg *config.App, converter currency.Converter) *app.App {
	t.Helper()
	log.SetOutput(io.Discard)
	if cfg == nil {
		cfg = TestConfig()
	}
	if converter == nil {
		converter = provider.NewIdentityConverter()
	}
	logger := slog.New(slog.DiscardHandler)
	return app.New(&app.Deps{
		Repository: infrarepo.NewMemory(),
		Converter:  converter,
		EventBus:   infraeventbus.NewWithMemory(logger),
		Logger:     logger,
	}, cfg)
}

// MakeRequest is a helper for making HTTP requests in tests. headers are
// key/value pairs.
func MakeRequest(app *fiber.App, method, path, body string, headers ...string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err) // For standalone tests, panic on error
	}
	return resp
}

// DecodeJSON reads resp's body into a T and closes it.
func DecodeJSON[T any](t testing.TB, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}
