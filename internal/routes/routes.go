package routes

import (
	"time"

	"github.com/SeloLim/naturia/internal/config"
	"github.com/SeloLim/naturia/internal/handlers"
	"github.com/SeloLim/naturia/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	cartHandler *handlers.CartHandler,
	checkoutHandler *handlers.CheckoutHandler,
	profileHandler *handlers.ProfileHandler,
	catalogHandler *handlers.CatalogHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	// General rate limiter: 120 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Protected/public-only path enforcement by cookie presence
	app.Use(middleware.RouteGuard(cfg))

	// Catalog — public browse surface
	app.Get("/products", catalogHandler.Products)
	app.Get("/categories", catalogHandler.Categories)
	app.Get("/skin-types", catalogHandler.SkinTypes)
	app.Get("/banners", catalogHandler.Banners)
	app.Get("/payment-methods", checkoutHandler.PaymentMethods)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := app.Group("/auth", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/session", authHandler.Session)

	// Cart
	app.Get("/cart", cartHandler.Get)
	app.Post("/cart/items", cartHandler.AddItem)
	app.Patch("/cart/items/:productID", cartHandler.UpdateItem)
	app.Delete("/cart/items/:productID", cartHandler.RemoveItem)

	// Checkout and orders
	app.Get("/checkout", checkoutHandler.Summary)
	app.Post("/checkout/orders", checkoutHandler.PlaceOrder)
	app.Get("/orders/:orderNumber", checkoutHandler.Order)

	// Profile and address book
	app.Get("/profile", profileHandler.Get)
	app.Patch("/profile", profileHandler.Update)
	app.Get("/profile/addresses", profileHandler.Addresses)
	app.Post("/profile/addresses", profileHandler.AddAddress)
	app.Patch("/profile/addresses/:addressID", profileHandler.UpdateAddress)
	app.Delete("/profile/addresses/:addressID", profileHandler.DeleteAddress)
	app.Post("/profile/addresses/:addressID/default", profileHandler.SetDefaultAddress)
}
