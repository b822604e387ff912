package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type GuestRM struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	SecondGuestName *string   `json:"second_guest_name,omitempty"`
	Street          *string   `json:"street,omitempty"`
	City            *string   `json:"city,omitempty"`
	PostalCode      *string   `json:"postal_code,omitempty"`
	Country         *string   `json:"country,omitempty"`
	Locale          string    `json:"locale"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
