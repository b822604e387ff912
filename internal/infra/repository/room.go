package repository

import (
	"context"

	"hotel-admin/internal/domain/room"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/db"
	"hotel-admin/internal/pkg/pgconv"
	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

const roomColumns = `id, number, rate_cents, capacity, room_type, description, created_at, updated_at`

func (r *RoomRepository) Create(ctx context.Context, dbtx db.DBTX, rm *room.Room) (uuid.UUID, error) {
	const query = `
INSERT INTO rooms (id, number, rate_cents, capacity, room_type, description)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		rm.ID(), rm.Number(), rm.RateCents(), rm.Capacity(), rm.RoomType(), rm.Description(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err, classifyWriteErr(err))
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, dbtx db.DBTX, rm *room.Room) error {
	const query = `
UPDATE rooms
SET number = $2, rate_cents = $3, capacity = $4, room_type = $5,
    description = $6, updated_at = now()
WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query,
		rm.ID(), rm.Number(), rm.RateCents(), rm.Capacity(), rm.RoomType(), rm.Description(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err, classifyWriteErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.RoomRM, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
	rm, err := scanRoomRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return rm, nil
}

func (r *RoomRepository) FindByNumber(ctx context.Context, dbtx db.DBTX, number string) (*readmodel.RoomRM, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE number = $1`, number)
	rm, err := scanRoomRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by number", err)
	}
	return rm, nil
}

// LockByID takes a FOR UPDATE row lock so concurrent booking writers for the
// same room serialize before their overlap re-checks.
func (r *RoomRepository) LockByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	var locked uuid.UUID
	err := dbtx.QueryRow(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock room", err)
	}
	return nil
}

func (r *RoomRepository) List(ctx context.Context, dbtx db.DBTX) ([]*readmodel.RoomRM, error) {
	rows, err := dbtx.Query(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY number`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*readmodel.RoomRM
	for rows.Next() {
		rm, err := scanRoomRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}
	return result, nil
}

func (r *RoomRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err, classifyWriteErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanRoomRM(row interface{ Scan(dest ...any) error }) (*readmodel.RoomRM, error) {
	var (
		rm                   readmodel.RoomRM
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&rm.ID, &rm.Number, &rm.RateCents, &rm.Capacity,
		&rm.RoomType, &rm.Description, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}
