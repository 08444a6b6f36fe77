package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"shopd/internal/catalog"
	"shopd/internal/config"
	"shopd/internal/http/handlers"
	applog "shopd/internal/log"
	"shopd/internal/payments"
	"shopd/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	// Cart storage: in-memory by default; CART_DSN switches to SQLite
	// (":memory:" keeps it ephemeral, a path survives restarts for debugging).
	var store repos.CartStore
	if cfg.CartDSN != "" {
		s, err := repos.OpenSQLiteCartStore(cfg.CartDSN)
		if err != nil {
			log.Fatal(err)
		}
		store = s
	} else {
		store = repos.NewMemoryCartStore()
	}

	cat := catalog.Default()
	provider := payments.NewStripeClient(cfg.StripeSecretKey, 15*time.Second)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and answer generically; internals never reach the client.
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "internal",
				"message": "Something went wrong. Please try again.",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return !strings.HasPrefix(p, "/api/")
		},
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(cfg, store, cat, provider)

	app.Get("/api/products", deps.CatalogHandler.List)

	app.Get("/api/cart", deps.CartHandler.View)
	app.Post("/api/cart", deps.CartHandler.Add)
	app.Post("/api/cart/update", deps.CartHandler.Update)
	app.Post("/api/cart/remove", deps.CartHandler.Remove)
	app.Post("/api/cart/clear", deps.CartHandler.Clear)

	app.Post("/api/checkout", deps.CheckoutHandler.Create)

	// Client-side Stripe.js init token
	app.Get("/config", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"publishableKey": cfg.StripePublishableKey})
	})

	// Health & static frontend
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Static("/", cfg.PublicDir)
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "Page not found",
		})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
