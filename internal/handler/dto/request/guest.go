package request

import (
	"hotel-admin/internal/usecase"
)

type GuestRequest struct {
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

func (r GuestRequest) ToParams() usecase.GuestParams {
	return usecase.GuestParams{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		SecondGuestName: r.SecondGuestName,
		Street:          r.Street,
		City:            r.City,
		PostalCode:      r.PostalCode,
		Country:         r.Country,
		Locale:          r.Locale,
	}
}
