//go:build unit || e2e

package builder

import (
	"time"

	domroom "hotel-admin/internal/domain/room"
	reqdto "hotel-admin/internal/handler/dto/request"
	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	Number      string
	RateCents   int64
	Capacity    int
	RoomType    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		Number:      "101",
		RateCents:   8000,
		Capacity:    2,
		RoomType:    "double",
		Description: "Double room with garden view",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(r.Number, r.RateCents, r.Capacity, r.RoomType, r.Description)
}

func (r *RoomBuilder) BuildRequestDTO() reqdto.RoomRequest {
	return reqdto.RoomRequest{
		Number:      r.Number,
		RateCents:   r.RateCents,
		Capacity:    r.Capacity,
		RoomType:    r.RoomType,
		Description: r.Description,
	}
}

func (r *RoomBuilder) BuildRM() *readmodel.RoomRM {
	return &readmodel.RoomRM{
		ID:          uuid.New(),
		Number:      r.Number,
		RateCents:   r.RateCents,
		Capacity:    r.Capacity,
		RoomType:    r.RoomType,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithNumber(number string) *RoomBuilder {
	r.Number = number
	return r
}

func (r *RoomBuilder) WithRateCents(rate int64) *RoomBuilder {
	r.RateCents = rate
	return r
}

func (r *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	r.Capacity = capacity
	return r
}
