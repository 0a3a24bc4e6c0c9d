// goudace | 2026
// stripe.go

package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"

	"github.com/goudace/shop-backend/internal/config"
)

// Charge is the outcome of a captured payment.
type Charge struct {
	ID     string
	Amount int64
}

// Charger captures a payment for a given amount against a tokenized source.
type Charger interface {
	Charge(ctx context.Context, amount int64, sourceToken string) (*Charge, error)
}

type StripeCharger struct {
	api      *client.API
	currency string
}

func NewStripeCharger(cfg config.StripeConfig) *StripeCharger {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &StripeCharger{api: api, currency: cfg.Currency}
}

func (c *StripeCharger) Charge(
	ctx context.Context,
	amount int64,
	sourceToken string,
) (*Charge, error) {
	params := &stripe.ChargeParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(c.currency),
	}
	if err := params.SetSource(sourceToken); err != nil {
		return nil, fmt.Errorf("set charge source: %w", err)
	}

	ch, err := c.api.Charges.New(params)
	if err != nil {
		return nil, fmt.Errorf("create charge: %w", err)
	}

	return &Charge{ID: ch.ID, Amount: ch.Amount}, nil
}
