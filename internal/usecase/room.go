package usecase

import (
	"context"

	"hotel-admin/internal/domain/room"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomParams struct {
	Number      string
	RateCents   int64
	Capacity    int
	RoomType    string
	Description string
}

type RoomUseCase interface {
	CreateRoom(ctx context.Context, params RoomParams) (*readmodel.RoomRM, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, params RoomParams) (*readmodel.RoomRM, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error)
	ListRooms(ctx context.Context) ([]*readmodel.RoomRM, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type roomUseCaseImpl struct {
	roomRepo RoomRepository
	pool     *pgxpool.Pool
}

func NewRoomUseCase(roomRepo RoomRepository, pool *pgxpool.Pool) RoomUseCase {
	return &roomUseCaseImpl{roomRepo: roomRepo, pool: pool}
}

func (u *roomUseCaseImpl) CreateRoom(ctx context.Context, params RoomParams) (*readmodel.RoomRM, error) {
	entity, err := buildRoom(params)
	if err != nil {
		return nil, err
	}

	id, err := u.roomRepo.Create(ctx, u.pool, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateRoom
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.GetRoom(ctx, id)
}

func (u *roomUseCaseImpl) UpdateRoom(ctx context.Context, id uuid.UUID, params RoomParams) (*readmodel.RoomRM, error) {
	current, err := u.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	entity, err := buildRoom(params)
	if err != nil {
		return nil, err
	}
	updated := room.Reconstruct(
		id,
		entity.Number(), entity.RateCents(), entity.Capacity(),
		entity.RoomType(), entity.Description(),
		current.CreatedAt, current.UpdatedAt,
	)

	// Existing bookings keep the rate captured at creation; a rate change
	// only affects bookings created or rescheduled afterwards.
	if err := u.roomRepo.Update(ctx, u.pool, updated); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateRoom
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.GetRoom(ctx, id)
}

func (u *roomUseCaseImpl) GetRoom(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error) {
	rm, err := u.roomRepo.FindByID(ctx, u.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}
	return rm, nil
}

func (u *roomUseCaseImpl) ListRooms(ctx context.Context) ([]*readmodel.RoomRM, error) {
	list, err := u.roomRepo.List(ctx, u.pool)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}
	return list, nil
}

func (u *roomUseCaseImpl) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	if err := u.roomRepo.Delete(ctx, u.pool, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func buildRoom(params RoomParams) (*room.Room, error) {
	entity, err := room.NewRoom(params.Number, params.RateCents, params.Capacity, params.RoomType, params.Description)
	if err != nil {
		switch err {
		case room.ErrEmptyNumber:
			return nil, &ValidationError{Fields: map[string]string{"number": "required"}}
		case room.ErrNegativeRate:
			return nil, &ValidationError{Fields: map[string]string{"rate_cents": "must not be negative"}}
		case room.ErrInvalidCapacity:
			return nil, &ValidationError{Fields: map[string]string{"capacity": "must be at least 1"}}
		}
		return nil, err
	}
	return entity, nil
}
