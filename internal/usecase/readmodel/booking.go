package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// BookingRM is the detail read model with room and guest resolved.
type BookingRM struct {
	ID              uuid.UUID  `json:"id"`
	RoomID          uuid.UUID  `json:"room_id"`
	RoomNumber      string     `json:"room_number"`
	GuestID         uuid.UUID  `json:"guest_id"`
	GuestName       string     `json:"guest_name"`
	GuestEmail      string     `json:"guest_email"`
	GuestLocale     string     `json:"guest_locale"`
	CheckIn         time.Time  `json:"check_in"`
	CheckOut        time.Time  `json:"check_out"`
	PartySize       int        `json:"party_size"`
	DiscountPercent int        `json:"discount_percent"`
	TotalCents      int64      `json:"total_cents"`
	Status          string     `json:"status"`
	PaymentIntentID *string    `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type BookingListRM struct {
	ID         uuid.UUID `json:"id"`
	RoomNumber string    `json:"room_number"`
	GuestName  string    `json:"guest_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	TotalCents int64     `json:"total_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// SummaryRM aggregates revenue over non-cancelled, non-failed bookings.
type SummaryRM struct {
	Bookings     int   `json:"bookings"`
	NightsBooked int   `json:"nights_booked"`
	RevenueCents int64 `json:"revenue_cents"`
}
