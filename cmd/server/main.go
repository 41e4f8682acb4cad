package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/joho/godotenv"

	"github.com/SeloLim/naturia/internal/adminapi"
	"github.com/SeloLim/naturia/internal/cart"
	"github.com/SeloLim/naturia/internal/catalog"
	"github.com/SeloLim/naturia/internal/checkout"
	"github.com/SeloLim/naturia/internal/config"
	"github.com/SeloLim/naturia/internal/handlers"
	"github.com/SeloLim/naturia/internal/logging"
	"github.com/SeloLim/naturia/internal/middleware"
	"github.com/SeloLim/naturia/internal/profile"
	"github.com/SeloLim/naturia/internal/routes"
	"github.com/SeloLim/naturia/internal/session"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	cfg := config.Load()

	if cfg.AdminAPIURL == "" {
		slog.Error("ADMIN_API_URL environment variable is required")
		os.Exit(1)
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Admin API client and services
	api := adminapi.New(cfg.AdminAPIURL, cfg.APITimeout)
	calc := cart.NewCalculator(cfg.ShippingFee, cfg.TaxRate)

	sessions := session.NewManager(api, cfg)
	carts := cart.NewService(api, calc)
	checkouts := checkout.NewService(api, calc)
	profiles := profile.NewService(api)
	catalogs := catalog.NewService(api)

	// Handlers
	authHandler := handlers.NewAuthHandler(sessions)
	cartHandler := handlers.NewCartHandler(sessions, carts)
	checkoutHandler := handlers.NewCheckoutHandler(sessions, carts, checkouts, profiles)
	profileHandler := handlers.NewProfileHandler(sessions, profiles)
	catalogHandler := handlers.NewCatalogHandler(catalogs)
	healthHandler := handlers.NewHealthHandler()

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, authHandler, cartHandler, checkoutHandler, profileHandler, catalogHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("storefront starting", "port", cfg.Port, "admin_api", cfg.AdminAPIURL)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
