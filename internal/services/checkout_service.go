package services

import (
	"context"
	"fmt"

	"shopd/internal/domain"
	"shopd/internal/payments"
)

// SessionCreator is the payment provider seam; the real implementation is
// payments.StripeClient.
type SessionCreator interface {
	CreateSession(ctx context.Context, items []payments.LineItem, successURL, cancelURL string) (string, error)
}

// CheckoutService turns the current cart into a hosted payment session and
// hands back the provider's opaque session id. It never mutates the cart:
// with no confirmation webhook in this system, the client clears explicitly.
type CheckoutService struct {
	Cart     *CartService
	Provider SessionCreator
	BaseURL  string
}

func NewCheckoutService(cart *CartService, provider SessionCreator, baseURL string) *CheckoutService {
	return &CheckoutService{Cart: cart, Provider: provider, BaseURL: baseURL}
}

func (s *CheckoutService) Create(ctx context.Context, sessionID string) (string, error) {
	lines, err := s.Cart.Get(sessionID)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", domain.ErrEmptyCart
	}

	items := make([]payments.LineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, payments.LineItem{
			Name:       l.Name,
			Image:      l.Image,
			Currency:   l.Currency,
			UnitAmount: l.Price,
			Quantity:   l.Qty,
		})
	}

	id, err := s.Provider.CreateSession(ctx, items, s.BaseURL+"/success.html", s.BaseURL+"/cancel.html")
	if err != nil {
		// Provider detail stays server-side; handlers log it and answer generically.
		return "", fmt.Errorf("%w: %v", domain.ErrCheckoutProvider, err)
	}
	return id, nil
}
