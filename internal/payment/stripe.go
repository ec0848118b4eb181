package payment

import (
	"context"
	"fmt"
	"net/url"

	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
)

const (
	productName     = "Big 5 Detailed Archetype Report"
	unitAmountCents = 99 // $0.99
)

// StripeGateway creates Stripe Checkout sessions. Success redirects land on
// the render endpoint with paid=true; cancel returns to the landing page.
//
// Known gap: nothing binds the success redirect to a completed payment — the
// paid flag it carries is a bare query parameter any client can forge. A
// hardened version would verify the checkout session server-side (webhook or
// session lookup) before unlocking.
type StripeGateway struct {
	domain string
}

// NewStripeGateway configures the Stripe client with the secret key and
// returns a gateway whose redirect URLs are rooted at domain.
func NewStripeGateway(secretKey, domain string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{domain: domain}
}

// CreateSession implements Gateway. Provider errors are returned as-is for
// the handler to surface; there is no retry.
func (g *StripeGateway) CreateSession(ctx context.Context, traitCode string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(productName),
					},
					UnitAmount: stripe.Int64(unitAmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(g.successURL(traitCode)),
		CancelURL:  stripe.String(g.domain + "/"),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.URL, nil
}

func (g *StripeGateway) successURL(traitCode string) string {
	return fmt.Sprintf("%s/api/render-report?code=%s&paid=true",
		g.domain, url.QueryEscape(traitCode))
}
