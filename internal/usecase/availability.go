package usecase

import (
	"context"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/infra/db"
	"hotel-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

// AvailabilityChecker decides whether a candidate period collides with an
// existing blocking booking for the room. It fails closed: a store error is
// propagated, never reported as "no overlap".
type AvailabilityChecker struct {
	bookingRepo BookingRepository
}

func NewAvailabilityChecker(bookingRepo BookingRepository) *AvailabilityChecker {
	return &AvailabilityChecker{bookingRepo: bookingRepo}
}

// HasOverlap runs against the given DBTX so the lifecycle manager can call it
// both as a fast pre-check on the pool and as the authoritative re-check
// inside the booking transaction while the room row is locked.
func (a *AvailabilityChecker) HasOverlap(
	ctx context.Context,
	dbtx db.DBTX,
	roomID uuid.UUID,
	period booking.StayPeriod,
	excludeBookingID *uuid.UUID,
) (bool, error) {
	overlap, err := a.bookingRepo.ExistsOverlapping(ctx, dbtx, roomID, period, excludeBookingID)
	if err != nil {
		return false, errs.Wrap(err, "overlap check failed")
	}
	return overlap, nil
}
