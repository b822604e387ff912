package response

import (
	"time"

	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"`
	RateCents   int64     `json:"rateCents"`
	Capacity    int       `json:"capacity"`
	RoomType    string    `json:"roomType"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromRoomRM(rm *readmodel.RoomRM) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromRoomRMs(rms []*readmodel.RoomRM) []*RoomResponse {
	result := make([]*RoomResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromRoomRM(rm)
	}
	return result
}
