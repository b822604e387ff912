//go:build unit || e2e

package builder

import (
	"time"

	domguest "hotel-admin/internal/domain/guest"
	reqdto "hotel-admin/internal/handler/dto/request"
	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type GuestBuilder struct {
	FirstName string
	LastName  string
	Email     string
	Locale    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewGuestBuilder() *GuestBuilder {
	now := time.Now()
	return &GuestBuilder{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Locale:    "en",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (g *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(g)
	return g
}

// Build methods
func (g *GuestBuilder) BuildDomain() (*domguest.Guest, error) {
	email, err := domguest.NewEmail(g.Email)
	if err != nil {
		return nil, err
	}
	return domguest.NewGuest(g.FirstName, g.LastName, email, nil, domguest.Address{}, g.Locale)
}

func (g *GuestBuilder) BuildRequestDTO() reqdto.GuestRequest {
	return reqdto.GuestRequest{
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Email:     g.Email,
		Locale:    g.Locale,
	}
}

func (g *GuestBuilder) BuildRM() *readmodel.GuestRM {
	return &readmodel.GuestRM{
		ID:        uuid.New(),
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Email:     g.Email,
		Locale:    g.Locale,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// Fluent builder methods
func (g *GuestBuilder) WithFirstName(name string) *GuestBuilder {
	g.FirstName = name
	return g
}

func (g *GuestBuilder) WithLastName(name string) *GuestBuilder {
	g.LastName = name
	return g
}

func (g *GuestBuilder) WithEmail(email string) *GuestBuilder {
	g.Email = email
	return g
}

func (g *GuestBuilder) WithLocale(locale string) *GuestBuilder {
	g.Locale = locale
	return g
}
