package response

import "hotel-admin/internal/usecase/readmodel"

type LoginResponse struct {
	AccessToken string                       `json:"access_token"`
	Staff       *readmodel.AuthorizedStaffRM `json:"staff"`
}
