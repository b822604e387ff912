//go:build unit || e2e

package builder

import (
	"time"

	domstaff "hotel-admin/internal/domain/staff"
	reqdto "hotel-admin/internal/handler/dto/request"
	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type StaffBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
	Role     domstaff.Role
	IsActive bool
}

func NewStaffBuilder() *StaffBuilder {
	return &StaffBuilder{
		ID:       uuid.New(),
		Email:    "manager@example.com",
		Password: "correct-horse-battery",
		Role:     domstaff.RoleManager,
		IsActive: true,
	}
}

func (s *StaffBuilder) With(mutate func(*StaffBuilder)) *StaffBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *StaffBuilder) BuildCredentials() (domstaff.Credentials, error) {
	return domstaff.NewCredentials(s.Email, s.Password)
}

func (s *StaffBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    s.Email,
		Password: s.Password,
	}
}

func (s *StaffBuilder) BuildRM() *readmodel.AuthorizedStaffRM {
	lastLogin := time.Now().Add(-time.Hour)
	return &readmodel.AuthorizedStaffRM{
		ID:        s.ID,
		Email:     s.Email,
		Role:      s.Role.String(),
		IsActive:  s.IsActive,
		LastLogin: &lastLogin,
	}
}

// Fluent builder methods
func (s *StaffBuilder) WithEmail(email string) *StaffBuilder {
	s.Email = email
	return s
}

func (s *StaffBuilder) WithPassword(password string) *StaffBuilder {
	s.Password = password
	return s
}

func (s *StaffBuilder) WithRole(role domstaff.Role) *StaffBuilder {
	s.Role = role
	return s
}

func (s *StaffBuilder) AsInactive() *StaffBuilder {
	s.IsActive = false
	return s
}
