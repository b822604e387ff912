package repository

import (
	"context"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/db"
	"hotel-admin/internal/pkg/pgconv"
	"hotel-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const bookingDetailQuery = `
SELECT b.id, b.room_id, r.number, b.guest_id,
       g.first_name, g.last_name, g.email, g.locale,
       b.check_in, b.check_out, b.party_size, b.discount_percent,
       b.total_cents, b.status, b.payment_intent_id,
       b.created_at, b.updated_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN guests g ON g.id = b.guest_id
`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
INSERT INTO bookings (id, room_id, guest_id, check_in, check_out, party_size,
                      discount_percent, total_cents, status, payment_intent_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		b.ID(), b.RoomID(), b.GuestID(),
		pgconv.DateToPgtype(b.Period().CheckIn()), pgconv.DateToPgtype(b.Period().CheckOut()),
		b.PartySize(), b.Discount().Value(), b.Total().Cents(),
		b.Status().String(), pgconv.StringPtrToPgtype(b.PaymentIntentID()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err, classifyWriteErr(err))
	}
	return id, nil
}

func (r *BookingRepository) Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	const query = `
UPDATE bookings
SET room_id = $2, check_in = $3, check_out = $4, party_size = $5,
    discount_percent = $6, total_cents = $7, status = $8, updated_at = now()
WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query,
		b.ID(), b.RoomID(),
		pgconv.DateToPgtype(b.Period().CheckIn()), pgconv.DateToPgtype(b.Period().CheckOut()),
		b.PartySize(), b.Discount().Value(), b.Total().Cents(), b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err, classifyWriteErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.BookingRM, error) {
	row := dbtx.QueryRow(ctx, bookingDetailQuery+"WHERE b.id = $1", id)
	rm, err := scanBookingRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return rm, nil
}

func (r *BookingRepository) FindByPaymentIntentID(ctx context.Context, dbtx db.DBTX, paymentIntentID string) (*readmodel.BookingRM, error) {
	row := dbtx.QueryRow(ctx, bookingDetailQuery+"WHERE b.payment_intent_id = $1", paymentIntentID)
	rm, err := scanBookingRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found for payment intent", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by payment intent", err)
	}
	return rm, nil
}

func (r *BookingRepository) FindEntityByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	const query = `
SELECT id, room_id, guest_id, check_in, check_out, party_size,
       discount_percent, total_cents, status, payment_intent_id,
       created_at, updated_at
FROM bookings
WHERE id = $1`

	var (
		bID, roomID, guestID uuid.UUID
		checkIn, checkOut    pgtype.Date
		partySize, discount  int
		totalCents           int64
		status               string
		paymentIntentID      pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&bID, &roomID, &guestID, &checkIn, &checkOut, &partySize,
		&discount, &totalCents, &status, &paymentIntentID,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking entity", err)
	}

	period, err := booking.NewStayPeriod(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking period is invalid", err)
	}
	disc, err := booking.NewDiscountPercent(discount)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking discount is invalid", err)
	}
	total, err := booking.NewMoney(totalCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking total is invalid", err)
	}
	st, err := booking.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking status is invalid", err)
	}

	return booking.Reconstruct(
		bID, roomID, guestID, period, partySize, disc, total, st,
		pgconv.StringPtrFromPgtype(paymentIntentID),
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *BookingRepository) List(ctx context.Context, dbtx db.DBTX) ([]*readmodel.BookingListRM, error) {
	const query = `
SELECT b.id, r.number, g.first_name, g.last_name,
       b.check_in, b.check_out, b.total_cents, b.status, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN guests g ON g.id = b.guest_id
ORDER BY b.check_in DESC, b.created_at DESC`

	rows, err := dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingListRM
	for rows.Next() {
		var (
			id                  uuid.UUID
			roomNumber          string
			firstName, lastName string
			checkIn, checkOut   pgtype.Date
			totalCents          int64
			status              string
			createdAt           pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &roomNumber, &firstName, &lastName,
			&checkIn, &checkOut, &totalCents, &status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &readmodel.BookingListRM{
			ID:         id,
			RoomNumber: roomNumber,
			GuestName:  firstName + " " + lastName,
			CheckIn:    pgconv.DateFromPgtype(checkIn),
			CheckOut:   pgconv.DateFromPgtype(checkOut),
			TotalCents: totalCents,
			Status:     status,
			CreatedAt:  pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

// ExistsOverlapping uses the half-open interval predicate: a blocking booking
// collides iff its check_in < candidate check_out AND its check_out >
// candidate check_in. Back-to-back stays on the same day never match.
func (r *BookingRepository) ExistsOverlapping(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, period booking.StayPeriod, excludeID *uuid.UUID) (bool, error) {
	const query = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE room_id = $1
      AND status <> 'cancelled'
      AND check_in < $3
      AND check_out > $2
      AND ($4::uuid IS NULL OR id <> $4)
)`

	var exists bool
	err := dbtx.QueryRow(ctx, query,
		roomID,
		pgconv.DateToPgtype(period.CheckIn()), pgconv.DateToPgtype(period.CheckOut()),
		uuidPtrToPgtype(excludeID),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	const query = `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// MarkPaid is the idempotent paid transition: the WHERE clause makes repeated
// confirmations no-ops, and the affected-row count tells the caller whether
// this call was the one that performed the transition.
func (r *BookingRepository) MarkPaid(ctx context.Context, dbtx db.DBTX, id uuid.UUID, paymentIntentID string) (bool, error) {
	const query = `
UPDATE bookings
SET status = 'paid', payment_intent_id = $2, updated_at = now()
WHERE id = $1 AND status <> 'paid'`

	tag, err := dbtx.Exec(ctx, query, id, paymentIntentID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark booking paid", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	return false, r.requireExists(ctx, dbtx, id)
}

// MarkPaymentFailed never downgrades a paid or cancelled booking.
func (r *BookingRepository) MarkPaymentFailed(ctx context.Context, dbtx db.DBTX, id uuid.UUID, paymentIntentID string) (bool, error) {
	const query = `
UPDATE bookings
SET status = 'payment_failed', payment_intent_id = $2, updated_at = now()
WHERE id = $1 AND status NOT IN ('paid', 'cancelled', 'payment_failed')`

	tag, err := dbtx.Exec(ctx, query, id, paymentIntentID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark booking payment_failed", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	return false, r.requireExists(ctx, dbtx, id)
}

func (r *BookingRepository) Summary(ctx context.Context, dbtx db.DBTX) (*readmodel.SummaryRM, error) {
	const query = `
SELECT COUNT(*),
       COALESCE(SUM(check_out - check_in), 0),
       COALESCE(SUM(total_cents), 0)
FROM bookings
WHERE status NOT IN ('cancelled', 'payment_failed')`

	var rm readmodel.SummaryRM
	err := dbtx.QueryRow(ctx, query).Scan(&rm.Bookings, &rm.NightsBooked, &rm.RevenueCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute booking summary", err)
	}
	return &rm, nil
}

func (r *BookingRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) requireExists(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	var exists bool
	err := dbtx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return infra.WrapRepoErr("failed to check booking existence", err)
	}
	if !exists {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanBookingRM(row interface{ Scan(dest ...any) error }) (*readmodel.BookingRM, error) {
	var (
		rm                   readmodel.BookingRM
		firstName, lastName  string
		checkIn, checkOut    pgtype.Date
		paymentIntentID      pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&rm.ID, &rm.RoomID, &rm.RoomNumber, &rm.GuestID,
		&firstName, &lastName, &rm.GuestEmail, &rm.GuestLocale,
		&checkIn, &checkOut, &rm.PartySize, &rm.DiscountPercent,
		&rm.TotalCents, &rm.Status, &paymentIntentID,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rm.GuestName = firstName + " " + lastName
	rm.CheckIn = pgconv.DateFromPgtype(checkIn)
	rm.CheckOut = pgconv.DateFromPgtype(checkOut)
	rm.PaymentIntentID = pgconv.StringPtrFromPgtype(paymentIntentID)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}

func uuidPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
