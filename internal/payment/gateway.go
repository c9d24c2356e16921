// Package payment talks to the external card processor.
package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

var ErrInvalidAmount = errors.New("price must be positive and at most 999999.99")

// MaxMinorUnits is the largest amount Stripe accepts for a single charge
const MaxMinorUnits = 99999999

// Intent is the part of a processor payment intent the client needs
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// Gateway creates payment intents
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64) (*Intent, error)
}

// MinorUnits converts a decimal price into cents, rounding up. The product is first
// rounded to micro-units so binary float noise (1.1*100 = 110.00000000000001) does
// not add a cent.
func MinorUnits(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, ErrInvalidAmount
	}
	scaled := math.Ceil(math.Round(price*100*1e6) / 1e6)
	if scaled > MaxMinorUnits {
		return 0, ErrInvalidAmount
	}
	return int64(scaled), nil
}

// StripeGateway creates card payment intents in a fixed currency
type StripeGateway struct {
	api      *client.API
	currency string
}

// NewStripeGateway creates a gateway using secretKey
func NewStripeGateway(secretKey, currency string) *StripeGateway {
	return &StripeGateway{
		api:      client.New(secretKey, nil),
		currency: strings.ToLower(currency),
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}

// ErrDisabled is returned when no processor key is configured
var ErrDisabled = errors.New("payment processor is not configured")

// DisabledGateway refuses every intent; it stands in when running without a processor key
type DisabledGateway struct{}

func (DisabledGateway) CreateIntent(ctx context.Context, amount int64) (*Intent, error) {
	return nil, ErrDisabled
}
