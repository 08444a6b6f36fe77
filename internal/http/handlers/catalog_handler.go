package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopd/internal/catalog"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func (h *CatalogHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.List())
}
