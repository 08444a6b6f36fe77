package config

import (
	"log"
	"os"
)

type Config struct {
	Port                 string
	Domain               string // external base URL used for checkout redirect targets
	StripeSecretKey      string
	StripePublishableKey string
	CartDSN              string // empty = in-memory cart store; ":memory:" or a path = SQLite
	PublicDir            string
	LogFile              string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	domain := os.Getenv("DOMAIN")
	if domain == "" {
		domain = "http://localhost:" + port
	}
	secret := os.Getenv("STRIPE_SECRET_KEY")
	pub := os.Getenv("STRIPE_PUBLISHABLE_KEY")
	if secret == "" || pub == "" {
		log.Fatal("[config] missing STRIPE_SECRET_KEY / STRIPE_PUBLISHABLE_KEY")
	}
	public := os.Getenv("PUBLIC_DIR")
	if public == "" {
		public = "./web/public"
	}

	cfg := Config{
		Port:                 port,
		Domain:               domain,
		StripeSecretKey:      secret,
		StripePublishableKey: pub,
		CartDSN:              os.Getenv("CART_DSN"),
		PublicDir:            public,
		LogFile:              os.Getenv("LOG_FILE"),
	}
	log.Printf("[config] PORT=%s DOMAIN=%s CART_DSN=%s PUBLIC_DIR=%s LOG_FILE=%s",
		cfg.Port, cfg.Domain, cfg.CartDSN, cfg.PublicDir, cfg.LogFile)
	return cfg
}
