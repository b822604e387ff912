package response

import (
	"time"

	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GuestResponse struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	SecondGuestName *string   `json:"secondGuestName,omitempty"`
	Street          *string   `json:"street,omitempty"`
	City            *string   `json:"city,omitempty"`
	PostalCode      *string   `json:"postalCode,omitempty"`
	Country         *string   `json:"country,omitempty"`
	Locale          string    `json:"locale"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromGuestRM(rm *readmodel.GuestRM) *GuestResponse {
	var resp GuestResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromGuestRMs(rms []*readmodel.GuestRM) []*GuestResponse {
	result := make([]*GuestResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromGuestRM(rm)
	}
	return result
}
