package middleware

import (
	"net/url"
	"strings"

	"github.com/SeloLim/naturia/internal/config"
	"github.com/gofiber/fiber/v2"
)

// Auth-required path prefixes.
var protectedPaths = []string{"/profile", "/cart", "/checkout", "/orders"}

// Pages for anonymous visitors only. Matched exactly: the action routes
// underneath (/auth/logout, /auth/session) must stay reachable for
// authenticated users.
var publicOnlyPaths = []string{"/auth"}

// RouteGuard decides allow, redirect-to-auth-with-return-path, or
// redirect-home from access-token cookie presence alone. It never inspects
// token signature or expiry: an expired-but-present token passes here and
// fails at the API layer. UX convenience, not a security boundary.
func RouteGuard(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		hasToken := c.Cookies(cfg.AccessTokenCookie) != ""

		if matchesPrefix(path, protectedPaths) && !hasToken {
			query := url.Values{"redirect": {path}}
			return c.Redirect("/auth?"+query.Encode(), fiber.StatusFound)
		}
		if hasToken {
			for _, p := range publicOnlyPaths {
				if path == p {
					return c.Redirect("/", fiber.StatusFound)
				}
			}
		}
		return c.Next()
	}
}

func matchesPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
