package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyNumber     = errors.New("room number cannot be empty")
	ErrNegativeRate    = errors.New("nightly rate cannot be negative")
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
)

// Room is identified to staff by its number (the business key); the UUID is
// internal. The nightly rate is captured into a booking at creation time, so
// a later rate change never reprices existing bookings.
type Room struct {
	id          uuid.UUID
	number      string
	rateCents   int64
	capacity    int
	roomType    string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(number string, rateCents int64, capacity int, roomType, description string) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyNumber
	}
	if rateCents < 0 {
		return nil, ErrNegativeRate
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:          uuid.New(),
		number:      number,
		rateCents:   rateCents,
		capacity:    capacity,
		roomType:    roomType,
		description: description,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	number string,
	rateCents int64,
	capacity int,
	roomType, description string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:          id,
		number:      number,
		rateCents:   rateCents,
		capacity:    capacity,
		roomType:    roomType,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Number() string       { return r.number }
func (r *Room) RateCents() int64     { return r.rateCents }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) RoomType() string     { return r.roomType }
func (r *Room) Description() string  { return r.description }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
