package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	reqdto "hotel-admin/internal/handler/dto/request"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
)

// Provider event types the webhook acts on; everything else is acknowledged
// and dropped.
const (
	stripeSignatureHeader = "Stripe-Signature"
	maxWebhookBodyBytes   = 65536
)

// WebhookVerifier validates the provider's signature before the payload is
// parsed.
type WebhookVerifier interface {
	Verify(payload []byte, signatureHeader string) (*stripe.Event, error)
}

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
	verifier       WebhookVerifier
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase, verifier WebhookVerifier) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		verifier:       verifier,
	}
}

// @Summary Confirm payment
// @Description Verify a client-confirmed payment with the provider and mark the booking paid
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmPaymentRequest true "Payment confirmation"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/confirm [post]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookingRM, err := h.paymentUseCase.ConfirmPayment(c.Request.Context(), req.BookingID, req.PaymentIntentID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrPaymentNotVerified):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment could not be verified with the provider",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}

// @Summary Stripe webhook
// @Description Receive asynchronous payment events; signature-checked, idempotent
// @Tags payments
// @Accept json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /webhooks/stripe [post]
func (h *PaymentHandler) HandleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	event, err := h.verifier.Verify(payload, c.GetHeader(stripeSignatureHeader))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid webhook signature",
		})
		return
	}

	providerEvent, ok := toProviderEvent(event)
	if !ok {
		// Event types this service does not consume are acknowledged so the
		// provider stops retrying them.
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err := h.paymentUseCase.HandleProviderEvent(c.Request.Context(), providerEvent); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownPayment):
			// Acknowledged: retrying will not make the booking appear.
			c.JSON(http.StatusOK, gin.H{"status": "unmatched"})
		case errors.Is(err, usecase.ErrPaymentNotVerified):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Payment could not be verified with the provider",
			})
		default:
			// A 5xx makes the provider redeliver; the handler is idempotent.
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}

func toProviderEvent(event *stripe.Event) (usecase.ProviderEvent, bool) {
	switch string(event.Type) {
	case usecase.EventPaymentSucceeded, usecase.EventPaymentFailed:
	default:
		return usecase.ProviderEvent{}, false
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil || intent.ID == "" {
		return usecase.ProviderEvent{}, false
	}

	providerEvent := usecase.ProviderEvent{
		Type:            string(event.Type),
		PaymentIntentID: intent.ID,
	}
	if raw, ok := intent.Metadata["booking_id"]; ok {
		if id, err := uuid.Parse(raw); err == nil {
			providerEvent.BookingID = &id
		}
	}
	return providerEvent, true
}
