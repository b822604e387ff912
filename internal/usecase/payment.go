package usecase

import (
	"context"
	"log/slog"
	"time"

	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// ProviderEvent is a provider webhook event after signature verification.
// The embedded status is only used for routing; the handler re-verifies the
// payment against the provider before any state change.
type ProviderEvent struct {
	Type            string
	PaymentIntentID string
	BookingID       *uuid.UUID
}

type PaymentUseCase interface {
	// ConfirmPayment is the synchronous client-confirmed path. It verifies
	// the payment with the provider and idempotently transitions the booking
	// to paid.
	ConfirmPayment(ctx context.Context, bookingID uuid.UUID, paymentIntentID string) (*readmodel.BookingRM, error)
	// HandleProviderEvent is the asynchronous webhook path. The same payment
	// may also arrive through ConfirmPayment; both are safe to repeat.
	HandleProviderEvent(ctx context.Context, event ProviderEvent) error
}

type paymentUseCaseImpl struct {
	bookingRepo   BookingRepository
	gateway       PaymentGateway
	notifier      Notifier
	pool          *pgxpool.Pool
	verifyTimeout time.Duration
}

func NewPaymentUseCase(
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	notifier Notifier,
	pool *pgxpool.Pool,
	verifyTimeout time.Duration,
) PaymentUseCase {
	return &paymentUseCaseImpl{
		bookingRepo:   bookingRepo,
		gateway:       gateway,
		notifier:      notifier,
		pool:          pool,
		verifyTimeout: verifyTimeout,
	}
}

func (u *paymentUseCaseImpl) ConfirmPayment(ctx context.Context, bookingID uuid.UUID, paymentIntentID string) (*readmodel.BookingRM, error) {
	if _, err := u.findBooking(ctx, bookingID); err != nil {
		return nil, err
	}

	intent, err := u.verifyIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}
	if intent.Status != PaymentIntentSucceeded {
		return nil, ErrPaymentNotVerified
	}

	if err := u.applyPaidTransition(ctx, bookingID, paymentIntentID, intent.AmountCents); err != nil {
		return nil, err
	}

	return u.findBooking(ctx, bookingID)
}

func (u *paymentUseCaseImpl) HandleProviderEvent(ctx context.Context, event ProviderEvent) error {
	switch event.Type {
	case EventPaymentSucceeded, EventPaymentFailed:
	default:
		// Unrecognized event types are acknowledged and ignored.
		return nil
	}

	bookingID, err := u.resolveBookingID(ctx, event)
	if err != nil {
		return err
	}

	intent, err := u.verifyIntent(ctx, event.PaymentIntentID)
	if err != nil {
		return err
	}

	// The provider's current status is ground truth, not the event body: a
	// stale failure event for a payment that later succeeded must not mark
	// the booking failed.
	if intent.Status == PaymentIntentSucceeded {
		return u.applyPaidTransition(ctx, bookingID, event.PaymentIntentID, intent.AmountCents)
	}

	if event.Type == EventPaymentFailed {
		changed, err := u.bookingRepo.MarkPaymentFailed(ctx, u.pool, bookingID, event.PaymentIntentID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if changed {
			slog.Info("booking marked payment_failed",
				"booking_id", bookingID,
				"payment_intent_id", event.PaymentIntentID)
		}
		return nil
	}

	// A succeeded event whose payment no longer verifies as succeeded: do
	// not transition on ambiguous state.
	return ErrPaymentNotVerified
}

// applyPaidTransition performs the idempotent transition. The conditional
// UPDATE closes the race between the client-confirmed call and the webhook:
// exactly one caller observes changed=true and sends the notification.
func (u *paymentUseCaseImpl) applyPaidTransition(ctx context.Context, bookingID uuid.UUID, paymentIntentID string, amountCents int64) error {
	changed, err := u.bookingRepo.MarkPaid(ctx, u.pool, bookingID, paymentIntentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !changed {
		// Already paid: repeated delivery is a no-op success.
		return nil
	}

	u.sendPaymentConfirmation(ctx, bookingID, amountCents)
	return nil
}

func (u *paymentUseCaseImpl) resolveBookingID(ctx context.Context, event ProviderEvent) (uuid.UUID, error) {
	if event.BookingID != nil {
		return *event.BookingID, nil
	}

	rm, err := u.bookingRepo.FindByPaymentIntentID(ctx, u.pool, event.PaymentIntentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrUnknownPayment
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm.ID, nil
}

// verifyIntent asks the provider for the payment's current state under a
// bounded timeout. A timeout or transport failure is a verification failure,
// never an implicit success.
func (u *paymentUseCaseImpl) verifyIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error) {
	verifyCtx, cancel := context.WithTimeout(ctx, u.verifyTimeout)
	defer cancel()

	intent, err := u.gateway.RetrieveIntent(verifyCtx, paymentIntentID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentNotVerified)
	}
	return intent, nil
}

func (u *paymentUseCaseImpl) findBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	rm, err := u.bookingRepo.FindByID(ctx, u.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *paymentUseCaseImpl) sendPaymentConfirmation(ctx context.Context, bookingID uuid.UUID, amountCents int64) {
	rm, err := u.bookingRepo.FindByID(ctx, u.pool, bookingID)
	if err != nil {
		slog.Warn("failed to load booking for payment notification",
			"booking_id", bookingID,
			"error", err)
		return
	}

	if amountCents == 0 {
		amountCents = rm.TotalCents
	}

	err = u.notifier.SendPaymentConfirmation(ctx, PaymentNotification{
		GuestName:   rm.GuestName,
		GuestEmail:  rm.GuestEmail,
		Locale:      rm.GuestLocale,
		RoomNumber:  rm.RoomNumber,
		CheckIn:     rm.CheckIn,
		AmountCents: amountCents,
	})
	if err != nil {
		slog.Warn("payment confirmation notification failed",
			"booking_id", bookingID,
			"guest_email", rm.GuestEmail,
			"error", err)
	}
}
