package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shopd/internal/domain"
	applog "shopd/internal/log"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondError maps domain failures to a stable machine-readable kind plus a
// human message. Provider and internal detail is logged, never sent out.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidProduct):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{
			Error: "invalid_product", Message: "Invalid product"})
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{
			Error: "item_not_found", Message: "Item is not in the cart"})
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{
			Error: "empty_cart", Message: "Cart empty"})
	case errors.Is(err, domain.ErrCheckoutProvider):
		applog.Error(c, "checkout.provider", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody{
			Error: "checkout_failed", Message: "Could not start checkout. Please try again."})
	default:
		applog.Error(c, "server.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody{
			Error: "internal", Message: "Something went wrong. Please try again."})
	}
}

func respondBadPayload(c *fiber.Ctx, err error) error {
	applog.Security(c, "validation.fail", map[string]any{"err": err.Error()})
	return c.Status(fiber.StatusBadRequest).JSON(errorBody{
		Error: "bad_request", Message: "Malformed request body"})
}
