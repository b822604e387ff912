package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayPeriod = errors.New("check-out must be after check-in")
	ErrInvalidDiscount   = errors.New("discount must be between 0 and 100")
	ErrInvalidPartySize  = errors.New("party size must be at least 1")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
)

// Booking is the reservation aggregate. The price is captured from the room
// rate at creation time and is not re-derived later unless the period or
// discount is explicitly edited.
type Booking struct {
	id              uuid.UUID
	roomID          uuid.UUID
	guestID         uuid.UUID
	period          StayPeriod
	partySize       int
	discount        DiscountPercent
	total           Money
	status          Status
	paymentIntentID *string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking prices the stay from the room's nightly rate and the requested
// discount. Party size is validated as positive only; the capacity of the
// room is advisory and not enforced here.
func NewBooking(
	roomID uuid.UUID,
	roomRateCents int64,
	guestID uuid.UUID,
	period StayPeriod,
	partySize int,
	discount DiscountPercent,
	status Status,
) (*Booking, error) {
	if partySize < 1 {
		return nil, ErrInvalidPartySize
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	total, err := NewMoney(TotalCents(roomRateCents, period.CheckIn(), period.CheckOut(), discount))
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:        uuid.New(),
		roomID:    roomID,
		guestID:   guestID,
		period:    period,
		partySize: partySize,
		discount:  discount,
		total:     total,
		status:    status,
	}, nil
}

func Reconstruct(
	id, roomID, guestID uuid.UUID,
	period StayPeriod,
	partySize int,
	discount DiscountPercent,
	total Money,
	status Status,
	paymentIntentID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		roomID:          roomID,
		guestID:         guestID,
		period:          period,
		partySize:       partySize,
		discount:        discount,
		total:           total,
		status:          status,
		paymentIntentID: paymentIntentID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) RoomID() uuid.UUID        { return b.roomID }
func (b *Booking) GuestID() uuid.UUID       { return b.guestID }
func (b *Booking) Period() StayPeriod       { return b.period }
func (b *Booking) PartySize() int           { return b.partySize }
func (b *Booking) Discount() DiscountPercent { return b.discount }
func (b *Booking) Total() Money             { return b.total }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) PaymentIntentID() *string { return b.paymentIntentID }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

func (b *Booking) IsBlocking() bool {
	return b.status.Blocks()
}

func (b *Booking) IsPaid() bool {
	return b.status == StatusPaid
}

// Reschedule moves the booking to a new period, re-pricing it from the given
// nightly rate. The availability of the new period is the lifecycle manager's
// responsibility.
func (b *Booking) Reschedule(period StayPeriod, roomRateCents int64, discount DiscountPercent) error {
	total, err := NewMoney(TotalCents(roomRateCents, period.CheckIn(), period.CheckOut(), discount))
	if err != nil {
		return err
	}

	b.period = period
	b.discount = discount
	b.total = total
	return nil
}

func (b *Booking) Cancel() {
	b.status = StatusCancelled
}

func (b *Booking) AttachPaymentIntent(id string) {
	b.paymentIntentID = &id
}
