package usecase

import (
	"context"

	"hotel-admin/internal/domain/guest"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GuestParams struct {
	FirstName       string
	LastName        string
	Email           string
	SecondGuestName *string
	Street          *string
	City            *string
	PostalCode      *string
	Country         *string
	Locale          string
}

type GuestUseCase interface {
	CreateGuest(ctx context.Context, params GuestParams) (*readmodel.GuestRM, error)
	UpdateGuest(ctx context.Context, id uuid.UUID, params GuestParams) (*readmodel.GuestRM, error)
	GetGuest(ctx context.Context, id uuid.UUID) (*readmodel.GuestRM, error)
	ListGuests(ctx context.Context) ([]*readmodel.GuestRM, error)
	// DeleteGuest refuses to remove a guest that bookings still reference.
	DeleteGuest(ctx context.Context, id uuid.UUID) error
}

type guestUseCaseImpl struct {
	guestRepo GuestRepository
	pool      *pgxpool.Pool
}

func NewGuestUseCase(guestRepo GuestRepository, pool *pgxpool.Pool) GuestUseCase {
	return &guestUseCaseImpl{guestRepo: guestRepo, pool: pool}
}

func (u *guestUseCaseImpl) CreateGuest(ctx context.Context, params GuestParams) (*readmodel.GuestRM, error) {
	entity, err := buildGuest(params)
	if err != nil {
		return nil, err
	}

	id, err := u.guestRepo.Create(ctx, u.pool, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.GetGuest(ctx, id)
}

func (u *guestUseCaseImpl) UpdateGuest(ctx context.Context, id uuid.UUID, params GuestParams) (*readmodel.GuestRM, error) {
	current, err := u.GetGuest(ctx, id)
	if err != nil {
		return nil, err
	}

	entity, err := buildGuest(params)
	if err != nil {
		return nil, err
	}
	updated := guest.Reconstruct(
		id,
		entity.FirstName(), entity.LastName(), entity.Email(),
		entity.SecondGuestName(), entity.Address(), entity.Locale(),
		current.CreatedAt, current.UpdatedAt,
	)

	if err := u.guestRepo.Update(ctx, u.pool, updated); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.GetGuest(ctx, id)
}

func (u *guestUseCaseImpl) GetGuest(ctx context.Context, id uuid.UUID) (*readmodel.GuestRM, error) {
	rm, err := u.guestRepo.FindByID(ctx, u.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, errs.Wrap(err, "failed to find guest")
	}
	return rm, nil
}

func (u *guestUseCaseImpl) ListGuests(ctx context.Context) ([]*readmodel.GuestRM, error) {
	list, err := u.guestRepo.List(ctx, u.pool)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list guests")
	}
	return list, nil
}

func (u *guestUseCaseImpl) DeleteGuest(ctx context.Context, id uuid.UUID) error {
	if err := u.guestRepo.Delete(ctx, u.pool, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrGuestNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrGuestHasBookings
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func buildGuest(params GuestParams) (*guest.Guest, error) {
	verr := newValidationError()
	if params.FirstName == "" {
		verr.add("first_name", "required")
	}
	if params.LastName == "" {
		verr.add("last_name", "required")
	}

	email, err := guest.NewEmail(params.Email)
	if err != nil {
		verr.add("email", "invalid email address")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	entity, err := guest.NewGuest(params.FirstName, params.LastName, email, params.SecondGuestName, guest.Address{
		Street:     params.Street,
		City:       params.City,
		PostalCode: params.PostalCode,
		Country:    params.Country,
	}, params.Locale)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"name": err.Error()}}
	}
	return entity, nil
}
