package usecase

import (
	"context"
	"log/slog"
	"time"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/domain/guest"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/db"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/readmodel"
	"hotel-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NewGuestParams struct {
	FirstName       string
	LastName        string
	Email           string
	SecondGuestName *string
	Street          *string
	City            *string
	PostalCode      *string
	Country         *string
	Locale          string
}

type CreateBookingParams struct {
	RoomNumber      string
	CheckIn         time.Time
	CheckOut        time.Time
	PartySize       int
	DiscountPercent int
	Status          string // empty defaults to pending
	// Exactly one of GuestID (existing guest) or NewGuest must be set.
	GuestID  *uuid.UUID
	NewGuest *NewGuestParams
}

type UpdateBookingParams struct {
	RoomNumber      string
	CheckIn         time.Time
	CheckOut        time.Time
	PartySize       int
	DiscountPercent int
	Status          string
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*readmodel.BookingRM, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, params UpdateBookingParams) (*readmodel.BookingRM, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
	GetBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	ListBookings(ctx context.Context) ([]*readmodel.BookingListRM, error)
	GetSummary(ctx context.Context) (*readmodel.SummaryRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo  BookingRepository
	guestRepo    GuestRepository
	roomRepo     RoomRepository
	availability *AvailabilityChecker
	notifier     Notifier
	pool         *pgxpool.Pool
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	guestRepo GuestRepository,
	roomRepo RoomRepository,
	availability *AvailabilityChecker,
	notifier Notifier,
	pool *pgxpool.Pool,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo:  bookingRepo,
		guestRepo:    guestRepo,
		roomRepo:     roomRepo,
		availability: availability,
		notifier:     notifier,
		pool:         pool,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*readmodel.BookingRM, error) {
	period, discount, status, verr := validateBookingFields(params.CheckIn, params.CheckOut, params.PartySize, params.DiscountPercent, params.Status)
	validateGuestChoice(verr, params.GuestID, params.NewGuest)
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	roomRM, err := u.resolveRoom(ctx, params.RoomNumber)
	if err != nil {
		return nil, err
	}

	// Fast pre-check outside the transaction; the authoritative check runs
	// again inside with the room row locked.
	overlap, err := u.availability.HasOverlap(ctx, u.pool, roomRM.ID, period, nil)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrRoomUnavailable
	}

	rm, err := shared.WithDefaultRetry(ctx, u.pool, func(tx db.DBTX) (*readmodel.BookingRM, error) {
		if lockErr := u.roomRepo.LockByID(ctx, tx, roomRM.ID); lockErr != nil {
			return nil, errs.Mark(lockErr, ErrDatabaseOperationFailed)
		}

		overlap, overlapErr := u.availability.HasOverlap(ctx, tx, roomRM.ID, period, nil)
		if overlapErr != nil {
			return nil, overlapErr
		}
		if overlap {
			return nil, ErrRoomUnavailable
		}

		guestID, guestErr := u.resolveOrCreateGuest(ctx, tx, params.GuestID, params.NewGuest)
		if guestErr != nil {
			return nil, guestErr
		}

		entity, domainErr := booking.NewBooking(roomRM.ID, roomRM.RateCents, guestID, period, params.PartySize, discount, status)
		if domainErr != nil {
			return nil, domainErr
		}

		id, createErr := u.bookingRepo.Create(ctx, tx, entity)
		if createErr != nil {
			return nil, errs.Mark(createErr, ErrDatabaseOperationFailed)
		}

		return u.bookingRepo.FindByID(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}

	u.sendBookingConfirmation(ctx, rm)

	return rm, nil
}

func (u *bookingUseCaseImpl) UpdateBooking(ctx context.Context, id uuid.UUID, params UpdateBookingParams) (*readmodel.BookingRM, error) {
	period, discount, status, verr := validateBookingFields(params.CheckIn, params.CheckOut, params.PartySize, params.DiscountPercent, params.Status)
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	entity, err := u.bookingRepo.FindEntityByID(ctx, u.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	roomRM, err := u.resolveRoom(ctx, params.RoomNumber)
	if err != nil {
		return nil, err
	}

	excludeID := entity.ID()
	overlap, err := u.availability.HasOverlap(ctx, u.pool, roomRM.ID, period, &excludeID)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrRoomUnavailable
	}

	rm, err := shared.WithDefaultRetry(ctx, u.pool, func(tx db.DBTX) (*readmodel.BookingRM, error) {
		if lockErr := u.roomRepo.LockByID(ctx, tx, roomRM.ID); lockErr != nil {
			return nil, errs.Mark(lockErr, ErrDatabaseOperationFailed)
		}

		overlap, overlapErr := u.availability.HasOverlap(ctx, tx, roomRM.ID, period, &excludeID)
		if overlapErr != nil {
			return nil, overlapErr
		}
		if overlap {
			return nil, ErrRoomUnavailable
		}

		updated := booking.Reconstruct(
			entity.ID(), roomRM.ID, entity.GuestID(),
			entity.Period(), params.PartySize, entity.Discount(), entity.Total(),
			status, entity.PaymentIntentID(), entity.CreatedAt(), entity.UpdatedAt(),
		)
		if reschedErr := updated.Reschedule(period, roomRM.RateCents, discount); reschedErr != nil {
			return nil, reschedErr
		}

		if updateErr := u.bookingRepo.Update(ctx, tx, updated); updateErr != nil {
			return nil, errs.Mark(updateErr, ErrDatabaseOperationFailed)
		}

		return u.bookingRepo.FindByID(ctx, tx, updated.ID())
	})
	if err != nil {
		return nil, err
	}

	u.sendBookingConfirmation(ctx, rm)

	return rm, nil
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	if err := u.bookingRepo.UpdateStatus(ctx, u.pool, id, booking.StatusCancelled); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.GetBooking(ctx, id)
}

func (u *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if err := u.bookingRepo.Delete(ctx, u.pool, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	rm, err := u.bookingRepo.FindByID(ctx, u.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context) ([]*readmodel.BookingListRM, error) {
	list, err := u.bookingRepo.List(ctx, u.pool)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return list, nil
}

func (u *bookingUseCaseImpl) GetSummary(ctx context.Context) (*readmodel.SummaryRM, error) {
	summary, err := u.bookingRepo.Summary(ctx, u.pool)
	if err != nil {
		return nil, errs.Wrap(err, "failed to compute booking summary")
	}
	return summary, nil
}

func (u *bookingUseCaseImpl) resolveRoom(ctx context.Context, number string) (*readmodel.RoomRM, error) {
	roomRM, err := u.roomRepo.FindByNumber(ctx, u.pool, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}
	return roomRM, nil
}

func (u *bookingUseCaseImpl) resolveOrCreateGuest(ctx context.Context, tx db.DBTX, guestID *uuid.UUID, newGuest *NewGuestParams) (uuid.UUID, error) {
	if guestID != nil {
		guestRM, err := u.guestRepo.FindByID(ctx, tx, *guestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, ErrGuestNotFound
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return guestRM.ID, nil
	}

	email, err := guest.NewEmail(newGuest.Email)
	if err != nil {
		return uuid.Nil, &ValidationError{Fields: map[string]string{"guest.email": "invalid email address"}}
	}

	entity, err := guest.NewGuest(newGuest.FirstName, newGuest.LastName, email, newGuest.SecondGuestName, guest.Address{
		Street:     newGuest.Street,
		City:       newGuest.City,
		PostalCode: newGuest.PostalCode,
		Country:    newGuest.Country,
	}, newGuest.Locale)
	if err != nil {
		return uuid.Nil, &ValidationError{Fields: map[string]string{"guest.name": err.Error()}}
	}

	id, err := u.guestRepo.Create(ctx, tx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateEmail
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

// sendBookingConfirmation is best-effort: failures are logged and never fail
// the committed operation.
func (u *bookingUseCaseImpl) sendBookingConfirmation(ctx context.Context, rm *readmodel.BookingRM) {
	err := u.notifier.SendBookingConfirmation(ctx, BookingNotification{
		GuestName:  rm.GuestName,
		GuestEmail: rm.GuestEmail,
		Locale:     rm.GuestLocale,
		RoomNumber: rm.RoomNumber,
		CheckIn:    rm.CheckIn,
		CheckOut:   rm.CheckOut,
		TotalCents: rm.TotalCents,
	})
	if err != nil {
		slog.Warn("booking confirmation notification failed",
			"booking_id", rm.ID,
			"guest_email", rm.GuestEmail,
			"error", err)
	}
}

func validateBookingFields(
	checkIn, checkOut time.Time,
	partySize, discountPercent int,
	statusStr string,
) (booking.StayPeriod, booking.DiscountPercent, booking.Status, *ValidationError) {
	verr := newValidationError()

	period, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		verr.add("check_out", "check-out must be after check-in")
	}

	if partySize < 1 {
		verr.add("party_size", "party size must be at least 1")
	}

	discount, err := booking.NewDiscountPercent(discountPercent)
	if err != nil {
		verr.add("discount_percent", "discount must be between 0 and 100")
	}

	status := booking.StatusPending
	if statusStr != "" {
		status, err = booking.NewStatus(statusStr)
		if err != nil {
			verr.add("status", "unknown booking status")
		}
	}

	return period, discount, status, verr
}

func validateGuestChoice(verr *ValidationError, guestID *uuid.UUID, newGuest *NewGuestParams) {
	if guestID == nil && newGuest == nil {
		verr.add("guest", "either guest_id or guest details are required")
		return
	}
	if newGuest != nil {
		if newGuest.FirstName == "" {
			verr.add("guest.first_name", "required")
		}
		if newGuest.LastName == "" {
			verr.add("guest.last_name", "required")
		}
		if newGuest.Email == "" {
			verr.add("guest.email", "required")
		}
	}
}
