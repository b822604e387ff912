package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedStaffRM struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
