//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-admin/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPeriod(t *testing.T, checkIn, checkOut time.Time) booking.StayPeriod {
	t.Helper()
	p, err := booking.NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)
	return p
}

func TestNewStayPeriod(t *testing.T) {
	t.Run("valid period", func(t *testing.T) {
		p, err := booking.NewStayPeriod(date(2026, 7, 1), date(2026, 7, 4))
		require.NoError(t, err)
		assert.Equal(t, date(2026, 7, 1), p.CheckIn())
		assert.Equal(t, date(2026, 7, 4), p.CheckOut())
		assert.Equal(t, 3, p.Nights())
	})

	t.Run("normalizes timestamps to midnight UTC", func(t *testing.T) {
		checkIn := time.Date(2026, 7, 1, 15, 30, 0, 0, time.UTC)
		checkOut := time.Date(2026, 7, 4, 9, 0, 0, 0, time.UTC)

		p, err := booking.NewStayPeriod(checkIn, checkOut)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 7, 1), p.CheckIn())
		assert.Equal(t, date(2026, 7, 4), p.CheckOut())
	})

	t.Run("same day is rejected", func(t *testing.T) {
		_, err := booking.NewStayPeriod(date(2026, 7, 1), date(2026, 7, 1))
		require.ErrorIs(t, err, booking.ErrInvalidStayPeriod)
	})

	t.Run("swapped dates are rejected", func(t *testing.T) {
		_, err := booking.NewStayPeriod(date(2026, 7, 4), date(2026, 7, 1))
		require.ErrorIs(t, err, booking.ErrInvalidStayPeriod)
	})
}

func TestStayPeriodOverlaps(t *testing.T) {
	base := mustPeriod(t, date(2026, 7, 10), date(2026, 7, 15))

	tests := []struct {
		name  string
		other booking.StayPeriod
		want  bool
	}{
		{
			name:  "identical period overlaps",
			other: mustPeriod(t, date(2026, 7, 10), date(2026, 7, 15)),
			want:  true,
		},
		{
			name:  "contained period overlaps",
			other: mustPeriod(t, date(2026, 7, 11), date(2026, 7, 13)),
			want:  true,
		},
		{
			name:  "partial overlap at start",
			other: mustPeriod(t, date(2026, 7, 8), date(2026, 7, 11)),
			want:  true,
		},
		{
			name:  "partial overlap at end",
			other: mustPeriod(t, date(2026, 7, 14), date(2026, 7, 20)),
			want:  true,
		},
		{
			name:  "checkout day equals checkin day does not overlap",
			other: mustPeriod(t, date(2026, 7, 15), date(2026, 7, 18)),
			want:  false,
		},
		{
			name:  "checkin day equals checkout day does not overlap",
			other: mustPeriod(t, date(2026, 7, 5), date(2026, 7, 10)),
			want:  false,
		},
		{
			name:  "disjoint periods do not overlap",
			other: mustPeriod(t, date(2026, 8, 1), date(2026, 8, 5)),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			// the predicate is symmetric
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestStayPeriodContains(t *testing.T) {
	p := mustPeriod(t, date(2026, 7, 10), date(2026, 7, 15))

	assert.True(t, p.Contains(date(2026, 7, 10)))
	assert.True(t, p.Contains(date(2026, 7, 14)))
	assert.False(t, p.Contains(date(2026, 7, 15)), "checkout day is outside the half-open interval")
	assert.False(t, p.Contains(date(2026, 7, 9)))
}

func TestNormalizeDate(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "midnight UTC unchanged",
			in:   date(2026, 7, 1),
			want: date(2026, 7, 1),
		},
		{
			name: "afternoon truncates to the same day",
			in:   time.Date(2026, 7, 1, 16, 45, 12, 999, time.UTC),
			want: date(2026, 7, 1),
		},
		{
			name: "late evening in EST is the next day in UTC",
			in:   time.Date(2026, 7, 1, 22, 0, 0, 0, est),
			want: date(2026, 7, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.NormalizeDate(tt.in))
		})
	}
}

func TestNewDiscountPercent(t *testing.T) {
	for _, v := range []int{0, 1, 50, 99, 100} {
		d, err := booking.NewDiscountPercent(v)
		require.NoError(t, err)
		assert.Equal(t, v, d.Value())
	}

	for _, v := range []int{-1, 101, 200} {
		_, err := booking.NewDiscountPercent(v)
		require.ErrorIs(t, err, booking.ErrInvalidDiscount)
	}
}

func TestNewMoney(t *testing.T) {
	m, err := booking.NewMoney(21600)
	require.NoError(t, err)
	assert.Equal(t, int64(21600), m.Cents())
	assert.Equal(t, "216.00", m.String())

	_, err = booking.NewMoney(-1)
	require.ErrorIs(t, err, booking.ErrNegativeAmount)
}

func TestNewStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "paid", "completed", "cancelled", "payment_failed"} {
		status, err := booking.NewStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := booking.NewStatus("unknown")
	require.ErrorIs(t, err, booking.ErrInvalidStatus)

	assert.False(t, booking.StatusCancelled.Blocks())
	assert.True(t, booking.StatusPending.Blocks())
	assert.True(t, booking.StatusPaymentFailed.Blocks())

	assert.False(t, booking.StatusCancelled.CountsTowardRevenue())
	assert.False(t, booking.StatusPaymentFailed.CountsTowardRevenue())
	assert.True(t, booking.StatusPaid.CountsTowardRevenue())
}
