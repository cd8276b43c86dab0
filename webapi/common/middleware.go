package common

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// HeaderAPIVersion carries the requested and served API version.
const HeaderAPIVersion = "X-API-Version"

// APIVersion serves requests that ask for version, or for no version at all.
// Any other requested version is answered with 404: that route does not exist.
func APIVersion(version string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requested := strings.TrimSpace(c.Get(HeaderAPIVersion))
		if requested != "" && requested != version {
			return ProblemDetailsJSON(c, "Not Found",
				fmt.Errorf("API version %q is not supported", requested),
				fiber.StatusNotFound,
			)
		}
		c.Set(HeaderAPIVersion, version)
		return c.Next()
	}
}

// ClientKey identifies the caller for rate limiting.
// Uses X-Forwarded-For when behind a proxy, then X-Real-IP, then the peer address.
func ClientKey(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		// Take the first IP in the chain
		if first, _, found := strings.Cut(forwardedFor, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwardedFor)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
