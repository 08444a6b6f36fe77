package payments

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
)

// LineItem is one cart line as submitted to the payment provider.
// UnitAmount is in minor currency units.
type LineItem struct {
	Name       string
	Image      string
	Currency   string
	UnitAmount int64
	Quantity   int64
}

// StripeClient creates hosted Checkout Sessions. Each call is bounded by
// timeout so a slow provider fails the request instead of hanging it.
type StripeClient struct {
	timeout time.Duration
}

func NewStripeClient(secretKey string, timeout time.Duration) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{timeout: timeout}
}

func (c *StripeClient) CreateSession(ctx context.Context, items []LineItem, successURL, cancelURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(successURL),
		CancelURL:          stripe.String(cancelURL),
	}
	params.Context = ctx

	for _, it := range items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(it.Name),
		}
		if it.Image != "" {
			productData.Images = stripe.StringSlice([]string{it.Image})
		}
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(it.Currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(it.UnitAmount),
			},
			Quantity: stripe.Int64(it.Quantity),
		})
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return "", err
	}
	return sess.ID, nil
}
