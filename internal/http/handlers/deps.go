package handlers

import (
	"github.com/go-playground/validator/v10"

	"shopd/internal/catalog"
	"shopd/internal/config"
	"shopd/internal/repos"
	"shopd/internal/services"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
}

func NewDeps(cfg config.Config, store repos.CartStore, cat *catalog.Catalog, provider services.SessionCreator) *Deps {
	cartSvc := services.NewCartService(store, cat)
	checkoutSvc := services.NewCheckoutService(cartSvc, provider, cfg.Domain)

	return &Deps{
		CatalogHandler:  &CatalogHandler{Catalog: cat},
		CartHandler:     &CartHandler{Cart: cartSvc, Validate: validator.New()},
		CheckoutHandler: &CheckoutHandler{Checkout: checkoutSvc},
	}
}
