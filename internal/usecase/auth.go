package usecase

import (
	"context"

	"hotel-admin/internal/domain/staff"
	"hotel-admin/internal/pkg/jwt"
	"hotel-admin/internal/pkg/password"
	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthUseCase interface {
	Login(ctx context.Context, credentials staff.Credentials) (string, *readmodel.AuthorizedStaffRM, error)
	GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*readmodel.AuthorizedStaffRM, error)
	ValidateToken(tokenString string) (uuid.UUID, staff.Role, error)
}

type authUseCaseImpl struct {
	staffRepo  StaffRepository
	jwtService *jwt.Service
	pool       *pgxpool.Pool
}

func NewAuthUseCase(staffRepo StaffRepository, jwtService *jwt.Service, pool *pgxpool.Pool) AuthUseCase {
	return &authUseCaseImpl{
		staffRepo:  staffRepo,
		jwtService: jwtService,
		pool:       pool,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials staff.Credentials) (string, *readmodel.AuthorizedStaffRM, error) {
	staffRM, err := a.validateStaff(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	role, err := staff.NewRole(staffRM.Role)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(staffRM.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.staffRepo.UpdateLastLogin(ctx, a.pool, staffRM.ID); err != nil {
		return "", nil, err
	}

	return token, staffRM, nil
}

func (a *authUseCaseImpl) validateStaff(ctx context.Context, credentials staff.Credentials) (*readmodel.AuthorizedStaffRM, error) {
	staffRM, hashedPassword, err := a.staffRepo.FindByEmail(ctx, a.pool, credentials.Email().String())
	if err != nil || staffRM == nil {
		return nil, ErrStaffNotFound
	}

	if !staffRM.IsActive {
		return nil, ErrStaffInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return staffRM, nil
}

func (a *authUseCaseImpl) GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*readmodel.AuthorizedStaffRM, error) {
	staffRM, err := a.staffRepo.FindByID(ctx, a.pool, staffID)
	if err != nil || staffRM == nil {
		return nil, ErrStaffNotFound
	}

	if !staffRM.IsActive {
		return nil, ErrStaffInactive
	}

	return staffRM, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, staff.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.StaffID, role, nil
}
