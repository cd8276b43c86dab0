package account

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/wlsc/accounts/pkg/config"
	"github.com/wlsc/accounts/pkg/domain/account"
	accountsvc "github.com/wlsc/accounts/pkg/service/account"
	"github.com/wlsc/accounts/webapi/common"
)

// Routes registers the account endpoints. All of them are versioned through
// the X-API-Version header.
//
// Routes:
//   - GET    /accounts          : List all accounts.
//   - PUT    /accounts          : Register a new account.
//   - DELETE /accounts          : Remove all accounts.
//   - POST   /accounts/transfer : Transfer money between two accounts.
func Routes(app fiber.Router, accountSvc *accountsvc.Service, cfg *config.App) {
	accounts := app.Group("/accounts", common.APIVersion(cfg.API.Version))
	accounts.Get("", ListAccounts(accountSvc))
	accounts.Put("", CreateAccount(accountSvc))
	accounts.Delete("", RemoveAccounts(accountSvc))
	accounts.Post("/transfer", Transfer(accountSvc))
}

// ErrorToStatusCode maps account error kinds to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, account.ErrAccountAlreadyExists):
		return fiber.StatusNotModified
	case errors.Is(err, account.ErrNegativeAmount),
		errors.Is(err, account.ErrSourceNotFound),
		errors.Is(err, account.ErrDestinationNotFound),
		errors.Is(err, account.ErrInsufficientFunds),
		errors.Is(err, account.ErrOverflow),
		errors.Is(err, account.ErrInvalidAccount):
		return fiber.StatusBadRequest
	case errors.Is(err, account.ErrConversionUnavailable):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// ListAccounts returns a Fiber handler listing every account.
// @Summary List accounts
// @Description Returns all registered accounts ordered by id. Amounts are in the smallest currency unit.
// @Tags accounts
// @Produce json
// @Param X-API-Version header string false "API version" default(1)
// @Success 200 {array} AccountDTO "Accounts"
// @Failure 404 {object} common.ProblemDetails "Unsupported API version"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router /accounts [get]
func ListAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts := accountSvc.ListAccounts(c.UserContext())
		dtos := make([]AccountDTO, 0, len(accounts))
		for _, a := range accounts {
			dtos = append(dtos, ToAccountDTO(a))
		}
		return c.JSON(dtos)
	}
}

// CreateAccount returns a Fiber handler registering a new account.
// An account whose id is already taken is left untouched and answered with 304.
// @Summary Register an account
// @Description Registers a new account. When currency is omitted it is derived from the customer's locale.
// @Tags accounts
// @Accept json
// @Produce json
// @Param X-API-Version header string false "API version" default(1)
// @Param request body AccountDTO true "Account"
// @Success 201 {object} common.Response "Account created"
// @Header 201 {string} Location "/account/{id}"
// @Success 304 "Account already exists"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Unsupported API version"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts [put]
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Info("Requested account creation")
		input, err := common.BindAndValidate[AccountDTO](c)
		if input == nil {
			return err // error response already written
		}
		a, err := input.ToAccount()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account", err, ErrorToStatusCode(err))
		}
		if err := accountSvc.Create(c.UserContext(), a); err != nil {
			status := ErrorToStatusCode(err)
			if status == fiber.StatusNotModified {
				log.Info(err.Error())
				return c.SendStatus(status)
			}
			log.Errorf("Failed to create account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create account", err, status)
		}
		log.Infof("Account %s created", a.ID)
		c.Location("/account/" + a.ID)
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", ToAccountDTO(a))
	}
}

// RemoveAccounts returns a Fiber handler removing every account.
// @Summary Remove all accounts
// @Tags accounts
// @Produce json
// @Param X-API-Version header string false "API version" default(1)
// @Success 200 {object} common.Response "All accounts removed"
// @Failure 404 {object} common.ProblemDetails "Unsupported API version"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router /accounts [delete]
func RemoveAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Info("Requested removal of all accounts")
		accountSvc.RemoveAll(c.UserContext())
		return common.SuccessResponseJSON(c, fiber.StatusOK, "All accounts were removed", nil)
	}
}

// Transfer returns a Fiber handler moving money between two accounts.
// @Summary Transfer money
// @Description Withdraws amount from the source account and deposits its equivalent into the destination account.
// @Description The amount is in the source account's currency units. Zero amounts are accepted and change nothing.
// @Description Transferring to the same account is allowed and leaves the balance unchanged.
// @Description If the accounts are removed (and possibly re-created) while the transfer is in flight, it fails with 400 "account not found" and nothing is written, even when an account with that id exists again.
// @Tags accounts
// @Accept json
// @Produce json
// @Param X-API-Version header string false "API version" default(1)
// @Param request body TransferRequest true "Transfer details"
// @Success 200 {object} common.Response "Transfer successful"
// @Failure 400 {object} common.ProblemDetails "Negative amount, unknown account, insufficient funds or overflow"
// @Failure 404 {object} common.ProblemDetails "Unsupported API version"
// @Failure 422 {object} common.ProblemDetails "Conversion unavailable"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts/transfer [post]
func Transfer(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err // error response already written
		}
		mt := input.ToMoneyTransfer()
		log.Infof("Initializing money transfer from %s to %s account", mt.FromAccountID, mt.ToAccountID)
		if err := accountSvc.Transfer(c.UserContext(), mt); err != nil {
			log.Infof("Money transfer failed: %v", err)
			return common.ProblemDetailsJSON(c, "Transfer failed", err, ErrorToStatusCode(err))
		}
		log.Infof("Money transfer from %s to %s account was successful", mt.FromAccountID, mt.ToAccountID)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful", nil)
	}
}
