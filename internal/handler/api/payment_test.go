//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"hotel-admin/internal/handler/api"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/usecase"
	"hotel-admin/internal/usecase/mocks"
	"hotel-admin/tests/common/builder"
	"hotel-admin/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"
)

const validSignature = "t=123,v1=valid"

// stubVerifier stands in for the Stripe signature check: it accepts one known
// signature header and returns a preconfigured event.
type stubVerifier struct {
	event *stripe.Event
}

func (v *stubVerifier) Verify(_ []byte, signatureHeader string) (*stripe.Event, error) {
	if signatureHeader != validSignature {
		return nil, errors.New("signature mismatch")
	}
	return v.event, nil
}

func paymentEvent(eventType, intentID string, bookingID *uuid.UUID) *stripe.Event {
	intent := map[string]any{"id": intentID}
	if bookingID != nil {
		intent["metadata"] = map[string]string{"booking_id": bookingID.String()}
	}
	raw, _ := json.Marshal(intent)
	return &stripe.Event{
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
}

type PaymentHandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockUseCase *mocks.MockPaymentUseCase
	verifier    *stubVerifier
	router      *gin.Engine
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = mocks.NewMockPaymentUseCase(s.mockCtrl)
	s.verifier = &stubVerifier{}
	handler := api.NewPaymentHandler(s.mockUseCase, s.verifier)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}

	s.router.POST("/payments/confirm", authMiddleware, handler.ConfirmPayment)
	// webhook endpoint is signature-authenticated, not staff-authenticated
	s.router.POST("/webhooks/stripe", handler.HandleStripeWebhook)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

// ================================================================================
// TestConfirmPayment
// ================================================================================

func (s *PaymentHandlerTestSuite) TestConfirmPayment() {
	url := "/payments/confirm"

	bookingID := uuid.New()
	intentID := "pi_test_123"
	reqBody := map[string]any{
		"booking_id":        bookingID.String(),
		"payment_intent_id": intentID,
	}

	returnRM := builder.NewBookingBuilder().WithStatus("paid").BuildRM()
	returnRM.ID = bookingID

	s.Run("success: returns 200 OK with the paid booking", func() {
		s.mockUseCase.EXPECT().ConfirmPayment(gomock.Any(), bookingID, intentID).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal("paid", response.Status)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"booking_id": bookingID.String()}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			useCaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				useCaseError:   usecase.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "payment not verified",
				useCaseError:   usecase.ErrPaymentNotVerified,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Payment could not be verified with the provider",
			},
			{
				name:           "internal server error",
				useCaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().ConfirmPayment(gomock.Any(), bookingID, intentID).
					Return(nil, tc.useCaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestHandleStripeWebhook
// ================================================================================

func (s *PaymentHandlerTestSuite) TestHandleStripeWebhook() {
	url := "/webhooks/stripe"
	intentID := "pi_test_456"
	payload := []byte(`{"id":"evt_1"}`)

	signedHeaders := map[string]string{"Stripe-Signature": validSignature}

	s.Run("success: succeeded event is forwarded with booking metadata", func() {
		bookingID := uuid.New()
		s.verifier.event = paymentEvent(usecase.EventPaymentSucceeded, intentID, &bookingID)

		expected := usecase.ProviderEvent{
			Type:            usecase.EventPaymentSucceeded,
			PaymentIntentID: intentID,
			BookingID:       &bookingID,
		}
		s.mockUseCase.EXPECT().HandleProviderEvent(gomock.Any(), expected).
			Return(nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, signedHeaders)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("processed", body["status"])
	})

	s.Run("success: failed event without metadata is forwarded with nil booking id", func() {
		s.verifier.event = paymentEvent(usecase.EventPaymentFailed, intentID, nil)

		expected := usecase.ProviderEvent{
			Type:            usecase.EventPaymentFailed,
			PaymentIntentID: intentID,
		}
		s.mockUseCase.EXPECT().HandleProviderEvent(gomock.Any(), expected).
			Return(nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, signedHeaders)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("processed", body["status"])
	})

	s.Run("success: unrecognized event type is acknowledged and ignored", func() {
		s.verifier.event = paymentEvent("charge.refunded", intentID, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, signedHeaders)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ignored", body["status"])
	})

	s.Run("success: event for an unknown payment is acknowledged as unmatched", func() {
		s.verifier.event = paymentEvent(usecase.EventPaymentSucceeded, intentID, nil)

		s.mockUseCase.EXPECT().HandleProviderEvent(gomock.Any(), gomock.Any()).
			Return(usecase.ErrUnknownPayment).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, signedHeaders)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("unmatched", body["status"])
	})

	s.Run("error: 400 Bad Request on invalid signature", func() {
		s.verifier.event = paymentEvent(usecase.EventPaymentSucceeded, intentID, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": "t=123,v1=forged"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid webhook signature")
	})

	s.Run("error: 400 Bad Request when the event fails re-verification", func() {
		s.verifier.event = paymentEvent(usecase.EventPaymentSucceeded, intentID, nil)

		s.mockUseCase.EXPECT().HandleProviderEvent(gomock.Any(), gomock.Any()).
			Return(usecase.ErrPaymentNotVerified).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, signedHeaders)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Payment could not be verified with the provider")
	})

	s.Run("error: 500 triggers provider redelivery on transient failures", func() {
		s.verifier.event = paymentEvent(usecase.EventPaymentSucceeded, intentID, nil)

		s.mockUseCase.EXPECT().HandleProviderEvent(gomock.Any(), gomock.Any()).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, signedHeaders)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("success: event with malformed intent payload is ignored", func() {
		s.verifier.event = &stripe.Event{
			Type: stripe.EventType(usecase.EventPaymentSucceeded),
			Data: &stripe.EventData{Raw: []byte(`{"id":""}`)},
		}

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, signedHeaders)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ignored", body["status"])
	})
}
