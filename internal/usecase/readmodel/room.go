package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type RoomRM struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"`
	RateCents   int64     `json:"rate_cents"`
	Capacity    int       `json:"capacity"`
	RoomType    string    `json:"room_type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
