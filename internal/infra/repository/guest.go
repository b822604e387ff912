package repository

import (
	"context"

	"hotel-admin/internal/domain/guest"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/db"
	"hotel-admin/internal/pkg/pgconv"
	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GuestRepository struct{}

func NewGuestRepository() *GuestRepository {
	return &GuestRepository{}
}

const guestColumns = `id, first_name, last_name, email, second_guest_name,
       street, city, postal_code, country, locale, created_at, updated_at`

func (r *GuestRepository) Create(ctx context.Context, dbtx db.DBTX, g *guest.Guest) (uuid.UUID, error) {
	const query = `
INSERT INTO guests (id, first_name, last_name, email, second_guest_name,
                    street, city, postal_code, country, locale)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

	addr := g.Address()
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		g.ID(), g.FirstName(), g.LastName(), g.Email().String(),
		pgconv.StringPtrToPgtype(g.SecondGuestName()),
		pgconv.StringPtrToPgtype(addr.Street), pgconv.StringPtrToPgtype(addr.City),
		pgconv.StringPtrToPgtype(addr.PostalCode), pgconv.StringPtrToPgtype(addr.Country),
		g.Locale(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create guest", err, classifyWriteErr(err))
	}
	return id, nil
}

func (r *GuestRepository) Update(ctx context.Context, dbtx db.DBTX, g *guest.Guest) error {
	const query = `
UPDATE guests
SET first_name = $2, last_name = $3, email = $4, second_guest_name = $5,
    street = $6, city = $7, postal_code = $8, country = $9, locale = $10,
    updated_at = now()
WHERE id = $1`

	addr := g.Address()
	tag, err := dbtx.Exec(ctx, query,
		g.ID(), g.FirstName(), g.LastName(), g.Email().String(),
		pgconv.StringPtrToPgtype(g.SecondGuestName()),
		pgconv.StringPtrToPgtype(addr.Street), pgconv.StringPtrToPgtype(addr.City),
		pgconv.StringPtrToPgtype(addr.PostalCode), pgconv.StringPtrToPgtype(addr.Country),
		g.Locale(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update guest", err, classifyWriteErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *GuestRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.GuestRM, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+guestColumns+` FROM guests WHERE id = $1`, id)
	rm, err := scanGuestRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest by ID", err)
	}
	return rm, nil
}

func (r *GuestRepository) List(ctx context.Context, dbtx db.DBTX) ([]*readmodel.GuestRM, error) {
	rows, err := dbtx.Query(ctx, `SELECT `+guestColumns+` FROM guests ORDER BY last_name, first_name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	defer rows.Close()

	var result []*readmodel.GuestRM
	for rows.Next() {
		rm, err := scanGuestRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read guest rows", err)
	}
	return result, nil
}

func (r *GuestRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete guest", err, classifyWriteErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanGuestRM(row interface{ Scan(dest ...any) error }) (*readmodel.GuestRM, error) {
	var (
		rm                         readmodel.GuestRM
		secondGuestName            pgtype.Text
		street, city, postal, ctry pgtype.Text
		createdAt, updatedAt       pgtype.Timestamptz
	)
	err := row.Scan(
		&rm.ID, &rm.FirstName, &rm.LastName, &rm.Email, &secondGuestName,
		&street, &city, &postal, &ctry, &rm.Locale, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rm.SecondGuestName = pgconv.StringPtrFromPgtype(secondGuestName)
	rm.Street = pgconv.StringPtrFromPgtype(street)
	rm.City = pgconv.StringPtrFromPgtype(city)
	rm.PostalCode = pgconv.StringPtrFromPgtype(postal)
	rm.Country = pgconv.StringPtrFromPgtype(ctry)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}
