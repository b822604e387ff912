package request

import (
	"hotel-admin/internal/usecase"
)

type RoomRequest struct {
	Number      string `json:"number" binding:"required"`
	RateCents   int64  `json:"rate_cents" binding:"min=0"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	RoomType    string `json:"room_type,omitempty"`
	Description string `json:"description,omitempty"`
}

func (r RoomRequest) ToParams() usecase.RoomParams {
	return usecase.RoomParams{
		Number:      r.Number,
		RateCents:   r.RateCents,
		Capacity:    r.Capacity,
		RoomType:    r.RoomType,
		Description: r.Description,
	}
}
