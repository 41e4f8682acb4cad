package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// setAccessCookie stores the access token client-readable so the
// presentation layer can see session presence.
func (m *Manager) setAccessCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     m.cfg.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		Domain:   m.cfg.CookieDomain,
		Expires:  time.Now().Add(m.cfg.AccessTokenMaxAge),
		Secure:   m.cfg.CookieSecure,
		HTTPOnly: false,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// setRefreshCookie stores the refresh token HTTP-only; client code cannot
// read it, only this layer's exchange call uses it.
func (m *Manager) setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     m.cfg.RefreshTokenCookie,
		Value:    token,
		Path:     "/",
		Domain:   m.cfg.CookieDomain,
		Expires:  time.Now().Add(m.cfg.RefreshTokenMaxAge),
		Secure:   m.cfg.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (m *Manager) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   m.cfg.CookieDomain,
		Expires:  time.Now().Add(-time.Hour),
		Secure:   m.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
