package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopd/internal/domain"
	applog "shopd/internal/log"
	"shopd/internal/services"
)

type CheckoutHandler struct {
	Checkout *services.CheckoutService
}

func (h *CheckoutHandler) Create(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, err := h.Checkout.Create(c.UserContext(), sid)
	if err != nil {
		return respondError(c, err)
	}
	lines, _ := h.Checkout.Cart.Get(sid)
	applog.Info(c, "checkout.session.created", map[string]any{
		"items": domain.ItemCount(lines),
		"total": domain.TotalPrice(lines),
	})
	return c.JSON(fiber.Map{"sessionId": id})
}
