package services

import (
	"context"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// PaymentIntents creates payment intents with the external processor and
// returns the client secret the frontend needs to complete the charge.
type PaymentIntents interface {
	Create(ctx context.Context, amount int64, currency string) (string, error)
}

type stripeIntents struct {
	api *client.API
}

func NewStripeIntents(secretKey string) PaymentIntents {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeIntents{api: api}
}

func (s *stripeIntents) Create(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
