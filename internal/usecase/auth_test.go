//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"hotel-admin/internal/domain/staff"
	"hotel-admin/internal/pkg/clock"
	"hotel-admin/internal/pkg/jwt"
	"hotel-admin/internal/pkg/password"
	"hotel-admin/internal/usecase"
	"hotel-admin/internal/usecase/mocks"
	"hotel-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockStaff  *mocks.MockStaffRepository
	jwtService *jwt.Service
	useCase    usecase.AuthUseCase
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStaff = mocks.NewMockStaffRepository(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret", time.Hour, clock.NewRealClock())
	s.useCase = usecase.NewAuthUseCase(s.mockStaff, s.jwtService, nil)
}

func (s *AuthUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	b := builder.NewStaffBuilder()
	rm := b.BuildRM()
	creds, err := b.BuildCredentials()
	s.Require().NoError(err)
	hash, err := password.HashPassword(b.Password)
	s.Require().NoError(err)

	s.Run("success: returns a token validating back to the staff", func() {
		s.mockStaff.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), b.Email).
			Return(rm, hash, nil).Times(1)
		s.mockStaff.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), rm.ID).
			Return(nil).Times(1)

		token, staffRM, err := s.useCase.Login(context.Background(), creds)
		s.NoError(err)
		s.Equal(rm, staffRM)

		staffID, role, err := s.useCase.ValidateToken(token)
		s.NoError(err)
		s.Equal(rm.ID, staffID)
		s.Equal(staff.RoleManager, role)
	})

	s.Run("error: unknown email", func() {
		s.mockStaff.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), b.Email).
			Return(nil, "", notFoundErr("staff not found")).Times(1)

		_, _, err := s.useCase.Login(context.Background(), creds)
		s.ErrorIs(err, usecase.ErrStaffNotFound)
	})

	s.Run("error: wrong password", func() {
		s.mockStaff.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), b.Email).
			Return(rm, hash, nil).Times(1)

		wrong, err := staff.NewCredentials(b.Email, "not-the-password")
		s.Require().NoError(err)

		_, _, loginErr := s.useCase.Login(context.Background(), wrong)
		s.ErrorIs(loginErr, usecase.ErrInvalidCredentials)
	})

	s.Run("error: inactive account", func() {
		inactive := builder.NewStaffBuilder().AsInactive().BuildRM()
		s.mockStaff.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), b.Email).
			Return(inactive, hash, nil).Times(1)

		_, _, err := s.useCase.Login(context.Background(), creds)
		s.ErrorIs(err, usecase.ErrStaffInactive)
	})
}

func (s *AuthUseCaseTestSuite) TestGetCurrentStaff() {
	rm := builder.NewStaffBuilder().BuildRM()

	s.Run("success", func() {
		s.mockStaff.EXPECT().FindByID(gomock.Any(), gomock.Any(), rm.ID).
			Return(rm, nil).Times(1)

		result, err := s.useCase.GetCurrentStaff(context.Background(), rm.ID)
		s.NoError(err)
		s.Equal(rm, result)
	})

	s.Run("error: staff not found", func() {
		id := uuid.New()
		s.mockStaff.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).
			Return(nil, notFoundErr("staff not found")).Times(1)

		_, err := s.useCase.GetCurrentStaff(context.Background(), id)
		s.ErrorIs(err, usecase.ErrStaffNotFound)
	})

	s.Run("error: inactive staff", func() {
		inactive := builder.NewStaffBuilder().AsInactive().BuildRM()
		s.mockStaff.EXPECT().FindByID(gomock.Any(), gomock.Any(), inactive.ID).
			Return(inactive, nil).Times(1)

		_, err := s.useCase.GetCurrentStaff(context.Background(), inactive.ID)
		s.ErrorIs(err, usecase.ErrStaffInactive)
	})
}

func (s *AuthUseCaseTestSuite) TestValidateToken() {
	s.Run("error: garbage token", func() {
		_, _, err := s.useCase.ValidateToken("not-a-jwt")
		s.ErrorIs(err, usecase.ErrTokenValidation)
	})

	s.Run("error: expired token", func() {
		clk := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
		expiredService := jwt.NewService("test-secret", time.Hour, clk)
		expiredUseCase := usecase.NewAuthUseCase(s.mockStaff, expiredService, nil)

		token, err := expiredService.GenerateToken(uuid.New(), staff.RoleManager)
		s.Require().NoError(err)

		_, _, validateErr := expiredUseCase.ValidateToken(token)
		s.ErrorIs(validateErr, usecase.ErrTokenValidation)
	})
}
