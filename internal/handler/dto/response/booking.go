package response

import (
	"time"

	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	RoomID          uuid.UUID `json:"roomId"`
	RoomNumber      string    `json:"roomNumber"`
	GuestID         uuid.UUID `json:"guestId"`
	GuestName       string    `json:"guestName"`
	GuestEmail      string    `json:"guestEmail"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	PartySize       int       `json:"partySize"`
	DiscountPercent int       `json:"discountPercent"`
	TotalCents      int64     `json:"totalCents"`
	Status          string    `json:"status"`
	PaymentIntentID *string   `json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomNumber string    `json:"roomNumber"`
	GuestName  string    `json:"guestName"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	TotalCents int64     `json:"totalCents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type SummaryResponse struct {
	Bookings     int   `json:"bookings"`
	NightsBooked int   `json:"nightsBooked"`
	RevenueCents int64 `json:"revenueCents"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingListRMs(rms []*readmodel.BookingListRM) []*BookingListResponse {
	result := make([]*BookingListResponse, len(rms))
	for i, rm := range rms {
		var resp BookingListResponse
		_ = copier.Copy(&resp, rm)
		result[i] = &resp
	}
	return result
}

func FromSummaryRM(rm *readmodel.SummaryRM) *SummaryResponse {
	var resp SummaryResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
