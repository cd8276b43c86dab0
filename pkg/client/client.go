// Package client is a Go client for the accounts HTTP API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/wlsc/accounts/pkg/domain/account"
	accountweb "github.com/wlsc/accounts/webapi/account"
	"github.com/wlsc/accounts/webapi/common"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-success answer from the server.
type APIError struct {
	Status int
	Title  string
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("API returned status %d: %s", e.Status, e.Title)
	}
	return fmt.Sprintf("API returned status %d: %s: %s", e.Status, e.Title, e.Detail)
}

// Client talks to one accounts server.
type Client struct {
	baseURL string
	version string
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every request. Context deadlines that are sooner win.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithAPIVersion sets the X-API-Version header sent with every request.
func WithAPIVersion(v string) Option {
	return func(c *Client) { c.version = v }
}

// New creates a client for the server at baseURL, e.g. http://localhost:3000.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		version: "1",
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListAccounts returns every account on the server.
func (c *Client) ListAccounts(ctx context.Context) ([]accountweb.AccountDTO, error) {
	status, body, err := c.do(ctx, fiber.Get(c.baseURL+"/accounts"))
	if err != nil {
		return nil, err
	}
	if status != fiber.StatusOK {
		return nil, apiError(status, body)
	}
	var accounts []accountweb.AccountDTO
	if err := json.Unmarshal(body, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return accounts, nil
}

// CreateAccount registers a. A taken id yields an error matching
// account.ErrAccountAlreadyExists.
func (c *Client) CreateAccount(ctx context.Context, a accountweb.AccountDTO) error {
	status, body, err := c.do(ctx, fiber.Put(c.baseURL+"/accounts").JSON(a))
	if err != nil {
		return err
	}
	switch status {
	case fiber.StatusCreated:
		return nil
	case fiber.StatusNotModified:
		return fmt.Errorf("%w: %s", account.ErrAccountAlreadyExists, a.ID)
	default:
		return apiError(status, body)
	}
}

// RemoveAll deletes every account on the server.
func (c *Client) RemoveAll(ctx context.Context) error {
	status, body, err := c.do(ctx, fiber.Delete(c.baseURL+"/accounts"))
	if err != nil {
		return err
	}
	if status != fiber.StatusOK {
		return apiError(status, body)
	}
	return nil
}

// Transfer moves money between two accounts. Rejected transfers are
// returned as *APIError carrying the server's diagnostic.
func (c *Client) Transfer(ctx context.Context, req accountweb.TransferRequest) error {
	status, body, err := c.do(ctx, fiber.Post(c.baseURL+"/accounts/transfer").JSON(req))
	if err != nil {
		return err
	}
	if status != fiber.StatusOK {
		return apiError(status, body)
	}
	return nil
}

func (c *Client) do(ctx context.Context, a *fiber.Agent) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if until := time.Until(deadline); until < timeout {
			timeout = until
		}
	}
	a.Set(common.HeaderAPIVersion, c.version).Timeout(timeout)

	status, body, errs := a.Bytes()
	if len(errs) > 0 {
		return 0, nil, fmt.Errorf("failed to make request: %w", errors.Join(errs...))
	}
	return status, body, nil
}

func apiError(status int, body []byte) error {
	e := &APIError{Status: status, Title: utils.StatusMessage(status)}
	var pd common.ProblemDetails
	if json.Unmarshal(body, &pd) == nil && pd.Title != "" {
		e.Title, e.Detail = pd.Title, pd.Detail
	} else if len(body) > 0 {
		e.Detail = string(body)
	}
	return e
}
