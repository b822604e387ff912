//go:build unit || e2e

package builder

import (
	"time"

	dombooking "hotel-admin/internal/domain/booking"
	reqdto "hotel-admin/internal/handler/dto/request"
	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	RoomID          uuid.UUID
	RoomNumber      string
	RateCents       int64
	GuestID         uuid.UUID
	GuestName       string
	GuestEmail      string
	GuestLocale     string
	CheckIn         time.Time
	CheckOut        time.Time
	PartySize       int
	DiscountPercent int
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		RoomID:          uuid.New(),
		RoomNumber:      "101",
		RateCents:       8000,
		GuestID:         uuid.New(),
		GuestName:       "Ada Lovelace",
		GuestEmail:      "ada@example.com",
		GuestLocale:     "en",
		CheckIn:         time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		PartySize:       2,
		DiscountPercent: 0,
		Status:          string(dombooking.StatusPending),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	period, err := dombooking.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	discount, err := dombooking.NewDiscountPercent(b.DiscountPercent)
	if err != nil {
		return nil, err
	}
	status, err := dombooking.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.RoomID, b.RateCents, b.GuestID, period, b.PartySize, discount, status)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	guestID := b.GuestID
	return reqdto.CreateBookingRequest{
		RoomNumber:      b.RoomNumber,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		PartySize:       b.PartySize,
		DiscountPercent: b.DiscountPercent,
		GuestID:         &guestID,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTOWithNewGuest() reqdto.CreateBookingRequest {
	req := b.BuildCreateRequestDTO()
	req.GuestID = nil
	req.Guest = &reqdto.GuestDetails{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     b.GuestEmail,
		Locale:    b.GuestLocale,
	}
	return req
}

func (b *BookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookingRequest {
	return reqdto.UpdateBookingRequest{
		RoomNumber:      b.RoomNumber,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		PartySize:       b.PartySize,
		DiscountPercent: b.DiscountPercent,
		Status:          b.Status,
	}
}

func (b *BookingBuilder) BuildRM() *readmodel.BookingRM {
	nights := int64(dombooking.NumberOfNights(b.CheckIn, b.CheckOut))
	total := (nights*b.RateCents*int64(100-b.DiscountPercent) + 50) / 100
	return &readmodel.BookingRM{
		ID:              uuid.New(),
		RoomID:          b.RoomID,
		RoomNumber:      b.RoomNumber,
		GuestID:         b.GuestID,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestLocale:     b.GuestLocale,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		PartySize:       b.PartySize,
		DiscountPercent: b.DiscountPercent,
		TotalCents:      total,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListRM() *readmodel.BookingListRM {
	rm := b.BuildRM()
	return &readmodel.BookingListRM{
		ID:         rm.ID,
		RoomNumber: rm.RoomNumber,
		GuestName:  rm.GuestName,
		CheckIn:    rm.CheckIn,
		CheckOut:   rm.CheckOut,
		TotalCents: rm.TotalCents,
		Status:     rm.Status,
		CreatedAt:  rm.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithRoomNumber(number string) *BookingBuilder {
	b.RoomNumber = number
	return b
}

func (b *BookingBuilder) WithRateCents(rate int64) *BookingBuilder {
	b.RateCents = rate
	return b
}

func (b *BookingBuilder) WithPeriod(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithPartySize(size int) *BookingBuilder {
	b.PartySize = size
	return b
}

func (b *BookingBuilder) WithDiscountPercent(discount int) *BookingBuilder {
	b.DiscountPercent = discount
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}
