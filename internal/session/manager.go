// Package session owns the browser-facing auth session. Tokens live in two
// trust domains: the access token in a client-readable cookie, the refresh
// token in an HTTP-only cookie that only this server-side layer reads and
// exchanges.
//
// Session states: Anonymous -> Authenticating -> Authenticated;
// Authenticated -> Refreshing -> Authenticated | Anonymous (refresh failed);
// any state -> Anonymous on explicit logout.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SeloLim/naturia/internal/adminapi"
	"github.com/SeloLim/naturia/internal/config"
	"github.com/SeloLim/naturia/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionExpired     = errors.New("session expired")
)

type Manager struct {
	api *adminapi.Client
	cfg *config.Config
}

func NewManager(api *adminapi.Client, cfg *config.Config) *Manager {
	return &Manager{api: api, cfg: cfg}
}

// Login exchanges credentials for a token pair and persists both cookies.
// Subsequent authenticated calls pick the access token up from the request.
func (m *Manager) Login(c *fiber.Ctx, email, password string) (*models.User, error) {
	pair, err := m.api.Login(c.UserContext(), email, password)
	if err != nil {
		if adminapi.IsStatus(err, http.StatusUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	m.setAccessCookie(c, pair.AccessToken)
	m.setRefreshCookie(c, pair.RefreshToken)
	return &pair.User, nil
}

// Register creates the account but does not persist a session; the caller
// redirects to the login page.
func (m *Manager) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	pair, err := m.api.Register(ctx, email, password, fullName)
	if err != nil {
		return nil, err
	}
	return &pair.User, nil
}

// Logout clears both cookies. Server-side token revocation is not
// guaranteed; the admin API revokes independently.
func (m *Manager) Logout(c *fiber.Ctx) {
	m.clearCookie(c, m.cfg.AccessTokenCookie)
	m.clearCookie(c, m.cfg.RefreshTokenCookie)
}

// AccessToken returns the raw access token from the request cookie, or ""
// for an anonymous session.
func (m *Manager) AccessToken(c *fiber.Ctx) string {
	return c.Cookies(m.cfg.AccessTokenCookie)
}

// IsAuthenticated is a pure presence check on the access token.
func (m *Manager) IsAuthenticated(c *fiber.Ctx) bool {
	return m.AccessToken(c) != ""
}

// Refresh exchanges the HTTP-only refresh token for a new access token.
// When no refresh token is obtainable, the session ends immediately.
func (m *Manager) Refresh(c *fiber.Ctx) (string, error) {
	refreshToken := c.Cookies(m.cfg.RefreshTokenCookie)
	if refreshToken == "" {
		m.Logout(c)
		return "", fmt.Errorf("no refresh token: %w", ErrSessionExpired)
	}

	resp, err := m.api.RefreshToken(c.UserContext(), refreshToken)
	if err != nil {
		m.Logout(c)
		return "", fmt.Errorf("refresh rejected: %w", ErrSessionExpired)
	}

	m.setAccessCookie(c, resp.AccessToken)
	if resp.RefreshToken != "" {
		// Token rotation: the admin API issued a replacement.
		m.setRefreshCookie(c, resp.RefreshToken)
	}
	return resp.AccessToken, nil
}

// Profile fetches the current user. On a 401 it attempts exactly one token
// refresh and retries once; a second failure ends the session and the error
// propagates. The single retry is a deliberate bound against refresh loops.
func (m *Manager) Profile(c *fiber.Ctx) (*models.User, error) {
	token := m.AccessToken(c)
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	user, err := m.api.Profile(c.UserContext(), token)
	if err == nil {
		return user, nil
	}
	if !adminapi.IsStatus(err, http.StatusUnauthorized) {
		return nil, err
	}

	slog.Info("access token rejected, refreshing session")
	newToken, err := m.Refresh(c)
	if err != nil {
		return nil, err
	}

	user, err = m.api.Profile(c.UserContext(), newToken)
	if err != nil {
		m.Logout(c)
		return nil, fmt.Errorf("profile fetch after refresh: %w", err)
	}
	return user, nil
}

// CurrentUserID decodes the sub claim of the access token without verifying
// the signature. Identity extraction only; the admin API is the authority on
// token validity.
func (m *Manager) CurrentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := m.tokenClaims(c)
	if err != nil {
		return uuid.Nil, err
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, ErrNotAuthenticated
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed subject claim: %w", err)
	}
	return id, nil
}

// TokenExpiresAt exposes the access token expiry for the presentation
// layer. The route guard deliberately does not consult it.
func (m *Manager) TokenExpiresAt(c *fiber.Ctx) (time.Time, error) {
	claims, err := m.tokenClaims(c)
	if err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}
	return exp.Time, nil
}

func (m *Manager) tokenClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token := m.AccessToken(c)
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("malformed access token: %w", err)
	}
	return claims, nil
}
