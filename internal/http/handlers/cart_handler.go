package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	applog "shopd/internal/log"
	"shopd/internal/services"
)

type CartHandler struct {
	Cart     *services.CartService
	Validate *validator.Validate
}

type addItemRequest struct {
	ID  string `json:"id" validate:"required"`
	Qty *int64 `json:"qty"` // omitted means 1
}

type setQuantityRequest struct {
	ID  string `json:"id" validate:"required"`
	Qty int64  `json:"qty"`
}

type removeItemRequest struct {
	ID string `json:"id" validate:"required"`
}

func (h *CartHandler) parse(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return err
	}
	return h.Validate.Struct(dst)
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	lines, err := h.Cart.Get(sid)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lines)
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req addItemRequest
	if err := h.parse(c, &req); err != nil {
		return respondBadPayload(c, err)
	}
	qty := int64(1)
	if req.Qty != nil {
		qty = *req.Qty
	}
	lines, err := h.Cart.Add(sid, req.ID, qty)
	if err != nil {
		return respondError(c, err)
	}
	applog.Info(c, "cart.add", map[string]any{"product": req.ID, "qty": qty})
	return c.JSON(lines)
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req setQuantityRequest
	if err := h.parse(c, &req); err != nil {
		return respondBadPayload(c, err)
	}
	lines, err := h.Cart.SetQuantity(sid, req.ID, req.Qty)
	if err != nil {
		return respondError(c, err)
	}
	applog.Info(c, "cart.update", map[string]any{"product": req.ID, "qty": req.Qty})
	return c.JSON(lines)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req removeItemRequest
	if err := h.parse(c, &req); err != nil {
		return respondBadPayload(c, err)
	}
	lines, err := h.Cart.Remove(sid, req.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lines)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Cart.Clear(sid); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
