//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-admin/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustDiscount(t *testing.T, v int) booking.DiscountPercent {
	t.Helper()
	d, err := booking.NewDiscountPercent(v)
	require.NoError(t, err)
	return d
}

func TestNumberOfNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "single night",
			checkIn:  date(2026, 7, 1),
			checkOut: date(2026, 7, 2),
			want:     1,
		},
		{
			name:     "three nights",
			checkIn:  date(2026, 7, 1),
			checkOut: date(2026, 7, 4),
			want:     3,
		},
		{
			name:     "swapped dates still count positive",
			checkIn:  date(2026, 7, 4),
			checkOut: date(2026, 7, 1),
			want:     3,
		},
		{
			name:     "same day is zero nights",
			checkIn:  date(2026, 7, 1),
			checkOut: date(2026, 7, 1),
			want:     0,
		},
		{
			name:     "partial day rounds up",
			checkIn:  date(2026, 7, 1),
			checkOut: time.Date(2026, 7, 2, 15, 0, 0, 0, time.UTC),
			want:     2,
		},
		{
			name:     "across month boundary",
			checkIn:  date(2026, 7, 30),
			checkOut: date(2026, 8, 2),
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.NumberOfNights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalCents(t *testing.T) {
	tests := []struct {
		name      string
		rateCents int64
		checkIn   time.Time
		checkOut  time.Time
		discount  int
		want      int64
	}{
		{
			name:      "three nights at 80.00 with 10 percent off",
			rateCents: 8000,
			checkIn:   date(2026, 7, 1),
			checkOut:  date(2026, 7, 4),
			discount:  10,
			want:      21600,
		},
		{
			name:      "zero discount reproduces the undiscounted total",
			rateCents: 8000,
			checkIn:   date(2026, 7, 1),
			checkOut:  date(2026, 7, 4),
			discount:  0,
			want:      24000,
		},
		{
			name:      "full discount prices to zero",
			rateCents: 8000,
			checkIn:   date(2026, 7, 1),
			checkOut:  date(2026, 7, 4),
			discount:  100,
			want:      0,
		},
		{
			name:      "half cent rounds up",
			rateCents: 333,
			checkIn:   date(2026, 7, 1),
			checkOut:  date(2026, 7, 2),
			discount:  50,
			want:      167, // 333 * 0.5 = 166.5
		},
		{
			name:      "sub half cent rounds down",
			rateCents: 333,
			checkIn:   date(2026, 7, 1),
			checkOut:  date(2026, 7, 2),
			discount:  67,
			want:      110, // 333 * 0.33 = 109.89
		},
		{
			name:      "zero nights is free",
			rateCents: 8000,
			checkIn:   date(2026, 7, 1),
			checkOut:  date(2026, 7, 1),
			discount:  0,
			want:      0,
		},
		{
			name:      "zero rate is free",
			rateCents: 0,
			checkIn:   date(2026, 7, 1),
			checkOut:  date(2026, 7, 4),
			discount:  0,
			want:      0,
		},
		{
			name:      "long stay stays exact",
			rateCents: 12999,
			checkIn:   date(2026, 1, 1),
			checkOut:  date(2026, 1, 31),
			discount:  15,
			want:      331475, // 30 * 12999 * 0.85 = 331474.5, rounds up
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.TotalCents(tt.rateCents, tt.checkIn, tt.checkOut, mustDiscount(t, tt.discount))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalCentsMatchesNightlySum(t *testing.T) {
	// Without a discount the total must equal nights x rate exactly.
	for nights := 1; nights <= 14; nights++ {
		checkIn := date(2026, 3, 1)
		checkOut := checkIn.AddDate(0, 0, nights)
		got := booking.TotalCents(7550, checkIn, checkOut, mustDiscount(t, 0))
		assert.Equal(t, int64(nights)*7550, got, "nights=%d", nights)
	}
}
