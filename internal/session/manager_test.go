package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SeloLim/naturia/internal/adminapi"
	"github.com/SeloLim/naturia/internal/config"
	"github.com/SeloLim/naturia/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	expiredToken = "expired-token"
	freshToken   = "fresh-token"
	goodRefresh  = "refresh-1"
)

// fakeAuthAPI mimics the admin auth endpoints: profile rejects the expired
// access token, refresh mints a fresh one (or fails when broken).
type fakeAuthAPI struct {
	refreshCalls  atomic.Int64
	refreshBroken bool
	userID        uuid.UUID
}

func (f *fakeAuthAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+freshToken {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(models.User{ID: f.userID, Email: "amy@example.com", FullName: "Amy"})
	})
	mux.HandleFunc("/api/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		f.refreshCalls.Add(1)
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if f.refreshBroken || body.RefreshToken != goodRefresh {
			http.Error(w, `{"error":"invalid refresh token"}`, http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": freshToken})
	})
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "hunter22!" {
			http.Error(w, `{"error":"invalid email or password"}`, http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  freshToken,
			"refresh_token": goodRefresh,
			"user":          models.User{ID: f.userID, Email: body.Email},
		})
	})
	return mux
}

func testConfig() *config.Config {
	return &config.Config{
		AccessTokenCookie:  "naturia_access_token",
		RefreshTokenCookie: "naturia_refresh_token",
		AccessTokenMaxAge:  15 * time.Minute,
		RefreshTokenMaxAge: 168 * time.Hour,
	}
}

func setupManager(t *testing.T) (*Manager, *fakeAuthAPI, *fiber.App) {
	t.Helper()
	fake := &fakeAuthAPI{userID: uuid.New()}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	m := NewManager(adminapi.New(srv.URL, 2*time.Second), testConfig())

	app := fiber.New()
	app.Get("/me", func(c *fiber.Ctx) error {
		user, err := m.Profile(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
		}
		return c.JSON(user)
	})
	app.Post("/login", func(c *fiber.Ctx) error {
		var body struct{ Email, Password string }
		if err := c.BodyParser(&body); err != nil {
			return err
		}
		if _, err := m.Login(c, body.Email, body.Password); err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return m, fake, app
}

func withCookies(req *http.Request, access, refresh string) *http.Request {
	if access != "" {
		req.AddCookie(&http.Cookie{Name: "naturia_access_token", Value: access})
	}
	if refresh != "" {
		req.AddCookie(&http.Cookie{Name: "naturia_refresh_token", Value: refresh})
	}
	return req
}

func TestProfileRefreshesExactlyOnce(t *testing.T) {
	_, fake, app := setupManager(t)

	req := withCookies(httptest.NewRequest(http.MethodGet, "/me", nil), expiredToken, goodRefresh)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 after refresh retry, got %d", resp.StatusCode)
	}
	if got := fake.refreshCalls.Load(); got != 1 {
		t.Fatalf("expected exactly 1 refresh attempt, got %d", got)
	}

	// the refreshed access token was persisted for subsequent calls
	var newAccess string
	for _, ck := range resp.Cookies() {
		if ck.Name == "naturia_access_token" {
			newAccess = ck.Value
		}
	}
	if newAccess != freshToken {
		t.Fatalf("expected refreshed access cookie, got %q", newAccess)
	}
}

func TestRefreshFailureEndsSession(t *testing.T) {
	_, fake, app := setupManager(t)
	fake.refreshBroken = true

	req := withCookies(httptest.NewRequest(http.MethodGet, "/me", nil), expiredToken, goodRefresh)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 when refresh fails, got %d", resp.StatusCode)
	}
	if got := fake.refreshCalls.Load(); got != 1 {
		t.Fatalf("the single-retry bound was violated: %d refresh calls", got)
	}

	// both cookies cleared: the session transitioned to Anonymous
	for _, ck := range resp.Cookies() {
		if ck.Name == "naturia_access_token" || ck.Name == "naturia_refresh_token" {
			if ck.Value != "" && !ck.Expires.Before(time.Now()) {
				t.Fatalf("cookie %s not cleared: %+v", ck.Name, ck)
			}
		}
	}
}

func TestNoRefreshTokenFailsImmediately(t *testing.T) {
	_, fake, app := setupManager(t)

	// HTTP-only refresh cookie absent: refresh is unobtainable
	req := withCookies(httptest.NewRequest(http.MethodGet, "/me", nil), expiredToken, "")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if got := fake.refreshCalls.Load(); got != 0 {
		t.Fatalf("no refresh token available, yet %d exchange calls were made", got)
	}
}

func TestLoginSetsBothTrustDomains(t *testing.T) {
	_, _, app := setupManager(t)

	req := httptest.NewRequest(http.MethodPost, "/login", jsonBody(`{"email":"amy@example.com","password":"hunter22!"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}

	var access, refresh *http.Cookie
	for _, ck := range resp.Cookies() {
		switch ck.Name {
		case "naturia_access_token":
			access = ck
		case "naturia_refresh_token":
			refresh = ck
		}
	}
	if access == nil || access.Value != freshToken {
		t.Fatalf("access cookie not set: %+v", access)
	}
	if access.HttpOnly {
		t.Fatalf("access cookie must stay client-readable")
	}
	if refresh == nil || refresh.Value != goodRefresh {
		t.Fatalf("refresh cookie not set: %+v", refresh)
	}
	if !refresh.HttpOnly {
		t.Fatalf("refresh cookie must be HTTP-only")
	}
}

func TestInvalidCredentials(t *testing.T) {
	_, _, app := setupManager(t)

	req := httptest.NewRequest(http.MethodPost, "/login", jsonBody(`{"email":"amy@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if len(resp.Cookies()) != 0 {
		t.Fatalf("failed login must not set cookies")
	}
}
