package request

import (
	"time"

	"hotel-admin/internal/usecase"

	"github.com/google/uuid"
)

type GuestDetails struct {
	FirstName       string  `json:"first_name" binding:"required"`
	LastName        string  `json:"last_name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	SecondGuestName *string `json:"second_guest_name,omitempty"`
	Street          *string `json:"street,omitempty"`
	City            *string `json:"city,omitempty"`
	PostalCode      *string `json:"postal_code,omitempty"`
	Country         *string `json:"country,omitempty"`
	Locale          string  `json:"locale,omitempty"`
}

type CreateBookingRequest struct {
	RoomNumber      string        `json:"room_number" binding:"required"`
	CheckIn         time.Time     `json:"check_in" binding:"required" time_format:"2006-01-02"`
	CheckOut        time.Time     `json:"check_out" binding:"required" time_format:"2006-01-02"`
	PartySize       int           `json:"party_size" binding:"required,min=1"`
	DiscountPercent int           `json:"discount_percent" binding:"min=0,max=100"`
	Status          string        `json:"status,omitempty"`
	GuestID         *uuid.UUID    `json:"guest_id,omitempty"`
	Guest           *GuestDetails `json:"guest,omitempty"`
}

func (r CreateBookingRequest) ToParams() usecase.CreateBookingParams {
	params := usecase.CreateBookingParams{
		RoomNumber:      r.RoomNumber,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		PartySize:       r.PartySize,
		DiscountPercent: r.DiscountPercent,
		Status:          r.Status,
		GuestID:         r.GuestID,
	}
	if r.Guest != nil {
		params.NewGuest = &usecase.NewGuestParams{
			FirstName:       r.Guest.FirstName,
			LastName:        r.Guest.LastName,
			Email:           r.Guest.Email,
			SecondGuestName: r.Guest.SecondGuestName,
			Street:          r.Guest.Street,
			City:            r.Guest.City,
			PostalCode:      r.Guest.PostalCode,
			Country:         r.Guest.Country,
			Locale:          r.Guest.Locale,
		}
	}
	return params
}

type UpdateBookingRequest struct {
	RoomNumber      string    `json:"room_number" binding:"required"`
	CheckIn         time.Time `json:"check_in" binding:"required" time_format:"2006-01-02"`
	CheckOut        time.Time `json:"check_out" binding:"required" time_format:"2006-01-02"`
	PartySize       int       `json:"party_size" binding:"required,min=1"`
	DiscountPercent int       `json:"discount_percent" binding:"min=0,max=100"`
	Status          string    `json:"status,omitempty"`
}

func (r UpdateBookingRequest) ToParams() usecase.UpdateBookingParams {
	return usecase.UpdateBookingParams{
		RoomNumber:      r.RoomNumber,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		PartySize:       r.PartySize,
		DiscountPercent: r.DiscountPercent,
		Status:          r.Status,
	}
}
