package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Remote admin API (source of truth for all persistent data)
	AdminAPIURL string
	APITimeout  time.Duration

	// Session cookies
	AccessTokenCookie  string
	RefreshTokenCookie string
	CookieDomain       string
	CookieSecure       bool
	AccessTokenMaxAge  time.Duration
	RefreshTokenMaxAge time.Duration

	// Checkout
	ShippingFee int64
	TaxRate     float64

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		AdminAPIURL: getEnv("ADMIN_API_URL", ""),
		APITimeout:  parseDuration(getEnv("API_TIMEOUT", "10s")),

		AccessTokenCookie:  getEnv("ACCESS_TOKEN_COOKIE", "naturia_access_token"),
		RefreshTokenCookie: getEnv("REFRESH_TOKEN_COOKIE", "naturia_refresh_token"),
		CookieDomain:       getEnv("COOKIE_DOMAIN", ""),
		CookieSecure:       getEnv("COOKIE_SECURE", "false") == "true",
		AccessTokenMaxAge:  parseDuration(getEnv("ACCESS_TOKEN_MAX_AGE", "15m")),
		RefreshTokenMaxAge: parseDuration(getEnv("REFRESH_TOKEN_MAX_AGE", "168h")),

		ShippingFee: parseInt(getEnv("SHIPPING_FEE", "10000")),
		TaxRate:     parseFloat(getEnv("TAX_RATE", "0.08")),

		Port:        getEnv("PORT", "3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

func parseInt(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
