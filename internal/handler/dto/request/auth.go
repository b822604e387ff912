package request

import (
	"hotel-admin/internal/domain/staff"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToCredentials() (staff.Credentials, error) {
	return staff.NewCredentials(r.Email, r.Password)
}
