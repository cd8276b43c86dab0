// Package webapi provides the HTTP surface of the accounts service.
// Endpoints live in sub-packages:
// - account: account listing, registration, removal and transfers
// - common: response envelopes, request binding and shared middleware
package webapi

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
	"github.com/wlsc/accounts/pkg/app"
	accountweb "github.com/wlsc/accounts/webapi/account"
	"github.com/wlsc/accounts/webapi/common"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "accounts",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			title := "Internal Server Error"
			var fe *fiber.Error
			if errors.As(err, &fe) {
				title = utils.StatusMessage(fe.Code)
			}
			return common.ProblemDetailsJSON(c, title, err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	fiberApp.Use(limiter.New(limiter.Config{
		Max:          app.Config.RateLimit.MaxRequests,
		Expiration:   app.Config.RateLimit.Window,
		KeyGenerator: common.ClientKey,
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString(fmt.Sprintf("Accounts API is running! 🚀 accounts=%d", app.AccountService.Count()))
		},
	)

	accountweb.Routes(fiberApp, app.AccountService, app.Config)
	return fiberApp
}
