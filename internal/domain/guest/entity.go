package guest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("guest name cannot be empty")
)

// Guest is a hotel guest record. The email address doubles as the uniqueness
// constraint and the notification target.
type Guest struct {
	id              uuid.UUID
	firstName       string
	lastName        string
	email           Email
	secondGuestName *string
	street          *string
	city            *string
	postalCode      *string
	country         *string
	locale          string
	createdAt       time.Time
	updatedAt       time.Time
}

type Address struct {
	Street     *string
	City       *string
	PostalCode *string
	Country    *string
}

func NewGuest(firstName, lastName string, email Email, secondGuestName *string, addr Address, locale string) (*Guest, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrEmptyName
	}
	if locale == "" {
		locale = "en"
	}

	return &Guest{
		id:              uuid.New(),
		firstName:       firstName,
		lastName:        lastName,
		email:           email,
		secondGuestName: secondGuestName,
		street:          addr.Street,
		city:            addr.City,
		postalCode:      addr.PostalCode,
		country:         addr.Country,
		locale:          locale,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	firstName, lastName string,
	email Email,
	secondGuestName *string,
	addr Address,
	locale string,
	createdAt, updatedAt time.Time,
) *Guest {
	return &Guest{
		id:              id,
		firstName:       firstName,
		lastName:        lastName,
		email:           email,
		secondGuestName: secondGuestName,
		street:          addr.Street,
		city:            addr.City,
		postalCode:      addr.PostalCode,
		country:         addr.Country,
		locale:          locale,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (g *Guest) ID() uuid.UUID            { return g.id }
func (g *Guest) FirstName() string        { return g.firstName }
func (g *Guest) LastName() string         { return g.lastName }
func (g *Guest) Email() Email             { return g.email }
func (g *Guest) SecondGuestName() *string { return g.secondGuestName }
func (g *Guest) Locale() string           { return g.locale }
func (g *Guest) CreatedAt() time.Time     { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time     { return g.updatedAt }

func (g *Guest) Address() Address {
	return Address{
		Street:     g.street,
		City:       g.city,
		PostalCode: g.postalCode,
		Country:    g.country,
	}
}

func (g *Guest) FullName() string {
	return g.firstName + " " + g.lastName
}
