// Package payment implements the payment gateway against Stripe. The gateway
// only reads: charges are created and confirmed client-side, the server's job
// is verifying what the provider actually recorded.
package payment

import (
	"context"

	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// MetadataBookingID is the metadata key under which the booking's UUID is
// attached to a PaymentIntent at creation time.
const MetadataBookingID = "booking_id"

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.APIKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, paymentIntentID string) (*usecase.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.Get(paymentIntentID, params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to retrieve payment intent")
	}

	return toUsecaseIntent(intent), nil
}

func toUsecaseIntent(intent *stripe.PaymentIntent) *usecase.PaymentIntent {
	result := &usecase.PaymentIntent{
		ID:          intent.ID,
		Status:      string(intent.Status),
		AmountCents: intent.Amount,
	}
	if raw, ok := intent.Metadata[MetadataBookingID]; ok {
		if id, err := uuid.Parse(raw); err == nil {
			result.BookingID = &id
		}
	}
	return result
}

// WebhookVerifier checks event signatures before any payload field is
// trusted. An unverifiable payload is rejected outright.
type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(cfg config.StripeConfig) *WebhookVerifier {
	return &WebhookVerifier{secret: cfg.WebhookSecret}
}

func (v *WebhookVerifier) Verify(payload []byte, signatureHeader string) (*stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, v.secret)
	if err != nil {
		return nil, errs.Wrap(err, "webhook signature verification failed")
	}
	return &event, nil
}
