package usecase

import (
	"context"
	"time"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/domain/guest"
	"hotel-admin/internal/domain/room"
	"hotel-admin/internal/infra/db"
	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=mocks/ports.go -package=mocks

// BookingRepository is the write/read surface of the reservation store. All
// methods accept a DBTX so a caller can run them inside a transaction.
type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.BookingRM, error)
	FindEntityByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindByPaymentIntentID(ctx context.Context, dbtx db.DBTX, paymentIntentID string) (*readmodel.BookingRM, error)
	List(ctx context.Context, dbtx db.DBTX) ([]*readmodel.BookingListRM, error)
	// ExistsOverlapping reports whether any blocking booking for the room
	// overlaps the period. excludeID skips one booking when re-checking an edit.
	ExistsOverlapping(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, period booking.StayPeriod, excludeID *uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
	// MarkPaid performs the conditional transition to paid in a single UPDATE
	// and reports whether a row actually changed.
	MarkPaid(ctx context.Context, dbtx db.DBTX, id uuid.UUID, paymentIntentID string) (bool, error)
	MarkPaymentFailed(ctx context.Context, dbtx db.DBTX, id uuid.UUID, paymentIntentID string) (bool, error)
	Summary(ctx context.Context, dbtx db.DBTX) (*readmodel.SummaryRM, error)
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type GuestRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, g *guest.Guest) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, g *guest.Guest) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.GuestRM, error)
	List(ctx context.Context, dbtx db.DBTX) ([]*readmodel.GuestRM, error)
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, r *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, r *room.Room) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.RoomRM, error)
	FindByNumber(ctx context.Context, dbtx db.DBTX, number string) (*readmodel.RoomRM, error)
	// LockByID takes a row lock on the room so the overlap re-check and the
	// booking write serialize against concurrent writers for the same room.
	LockByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	List(ctx context.Context, dbtx db.DBTX) ([]*readmodel.RoomRM, error)
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type StaffRepository interface {
	FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*readmodel.AuthorizedStaffRM, string, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.AuthorizedStaffRM, error)
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

// BookingNotification carries everything the notifier needs; it never reads
// the store itself.
type BookingNotification struct {
	GuestName  string
	GuestEmail string
	Locale     string
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
	TotalCents int64
}

type PaymentNotification struct {
	GuestName   string
	GuestEmail  string
	Locale      string
	RoomNumber  string
	CheckIn     time.Time
	AmountCents int64
}

// Notifier sends are best-effort: callers log failures and never let them
// fail the primary operation.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, n BookingNotification) error
	SendPaymentConfirmation(ctx context.Context, n PaymentNotification) error
}

const PaymentIntentSucceeded = "succeeded"

// PaymentIntent is the provider's view of a payment. BookingID is populated
// from the intent metadata when the provider has it.
type PaymentIntent struct {
	ID          string
	Status      string
	AmountCents int64
	BookingID   *uuid.UUID
}

// PaymentGateway retrieves ground truth from the payment provider. A
// client-supplied "it succeeded" claim is never trusted without it.
type PaymentGateway interface {
	RetrieveIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error)
}
