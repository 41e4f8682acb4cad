package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SeloLim/naturia/internal/config"
	"github.com/gofiber/fiber/v2"
)

func guardApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{AccessTokenCookie: "naturia_access_token"}
	app := fiber.New()
	app.Use(RouteGuard(cfg))
	app.All("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRouteGuard(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		token        string
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "protected path without token redirects to auth with return path",
			path:         "/cart",
			wantStatus:   http.StatusFound,
			wantLocation: "/auth?redirect=%2Fcart",
		},
		{
			name:         "protected subpath without token",
			path:         "/profile/addresses",
			wantStatus:   http.StatusFound,
			wantLocation: "/auth?redirect=%2Fprofile%2Faddresses",
		},
		{
			name:       "protected path with token allowed",
			path:       "/cart",
			token:      "tok",
			wantStatus: http.StatusOK,
		},
		{
			name:         "public-only path with token redirects home",
			path:         "/auth",
			token:        "tok",
			wantStatus:   http.StatusFound,
			wantLocation: "/",
		},
		{
			name:       "public-only path without token allowed",
			path:       "/auth",
			wantStatus: http.StatusOK,
		},
		{
			name:       "auth action routes stay reachable when signed in",
			path:       "/auth/logout",
			token:      "tok",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unlisted path always allowed",
			path:       "/products",
			wantStatus: http.StatusOK,
		},
		{
			name:       "prefix match requires a path boundary",
			path:       "/cartoons",
			wantStatus: http.StatusOK,
		},
		{
			name:       "expired-but-present token still passes the guard",
			path:       "/orders/NAT-123",
			token:      "expired-but-present",
			wantStatus: http.StatusOK,
		},
	}

	app := guardApp(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: "naturia_access_token", Value: tt.token})
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantLocation != "" {
				if got := resp.Header.Get("Location"); got != tt.wantLocation {
					t.Fatalf("location = %q, want %q", got, tt.wantLocation)
				}
			}
		})
	}
}

func TestMatchesPrefix(t *testing.T) {
	prefixes := []string{"/cart", "/checkout"}
	tests := []struct {
		path string
		want bool
	}{
		{"/cart", true},
		{"/cart/", true},
		{"/cart/items", true},
		{"/cartel", false},
		{"/checkout/orders", true},
		{"/", false},
	}
	for _, tt := range tests {
		if got := matchesPrefix(tt.path, prefixes); got != tt.want {
			t.Fatalf("matchesPrefix(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
