package repository

import (
	"context"

	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/db"
	"hotel-admin/internal/pkg/pgconv"
	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type StaffRepository struct{}

func NewStaffRepository() *StaffRepository {
	return &StaffRepository{}
}

func (r *StaffRepository) FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*readmodel.AuthorizedStaffRM, string, error) {
	const query = `
SELECT id, email, role, is_active, last_login, password_hash
FROM staff
WHERE email = $1`

	var (
		rm           readmodel.AuthorizedStaffRM
		lastLogin    pgtype.Timestamptz
		passwordHash string
	)
	err := dbtx.QueryRow(ctx, query, email).Scan(
		&rm.ID, &rm.Email, &rm.Role, &rm.IsActive, &lastLogin, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find staff by email", err)
	}

	if lastLogin.Valid {
		t := pgconv.TimeFromPgtype(lastLogin)
		rm.LastLogin = &t
	}
	return &rm, passwordHash, nil
}

func (r *StaffRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.AuthorizedStaffRM, error) {
	const query = `
SELECT id, email, role, is_active, last_login
FROM staff
WHERE id = $1`

	var (
		rm        readmodel.AuthorizedStaffRM
		lastLogin pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&rm.ID, &rm.Email, &rm.Role, &rm.IsActive, &lastLogin,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff by ID", err)
	}

	if lastLogin.Valid {
		t := pgconv.TimeFromPgtype(lastLogin)
		rm.LastLogin = &t
	}
	return &rm, nil
}

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `UPDATE staff SET last_login = now(), updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("staff not found", nil, infra.KindNotFound)
	}
	return nil
}
