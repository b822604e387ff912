package request

import "github.com/google/uuid"

type ConfirmPaymentRequest struct {
	BookingID       uuid.UUID `json:"booking_id" binding:"required"`
	PaymentIntentID string    `json:"payment_intent_id" binding:"required"`
}
