//go:build unit

package booking_test

import (
	"testing"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, 2, actual.PartySize())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, int64(24000), actual.Total().Cents())
		assert.Nil(t, actual.PaymentIntentID())
	})

	t.Run("discount is applied once on the final amount", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithDiscountPercent(10).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(21600), actual.Total().Cents())
	})

	t.Run("party size validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum party size",
				mutate: func(b *builder.BookingBuilder) { b.WithPartySize(1) },
			},
			{
				name:   "zero party size",
				mutate: func(b *builder.BookingBuilder) { b.WithPartySize(0) },
				errIs:  booking.ErrInvalidPartySize,
			},
			{
				name:   "negative party size",
				mutate: func(b *builder.BookingBuilder) { b.WithPartySize(-3) },
				errIs:  booking.ErrInvalidPartySize,
			},
		})
	})

	t.Run("status validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "confirmed status",
				mutate: func(b *builder.BookingBuilder) { b.WithStatus("confirmed") },
			},
			{
				name:   "unknown status",
				mutate: func(b *builder.BookingBuilder) { b.WithStatus("checked_in") },
				errIs:  booking.ErrInvalidStatus,
			},
		})
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b1, err1 := builder.NewBookingBuilder().BuildDomain()
		b2, err2 := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, b1.ID(), b2.ID())
	})
}

func TestReschedule(t *testing.T) {
	entity, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	period := mustPeriod(t, date(2026, 8, 1), date(2026, 8, 6))
	discount, err := booking.NewDiscountPercent(20)
	require.NoError(t, err)

	require.NoError(t, entity.Reschedule(period, 10000, discount))

	assert.Equal(t, period, entity.Period())
	assert.Equal(t, 20, entity.Discount().Value())
	// 5 nights x 100.00 x 0.8
	assert.Equal(t, int64(40000), entity.Total().Cents())
}

func TestCancel(t *testing.T) {
	entity, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	entity.Cancel()

	assert.Equal(t, booking.StatusCancelled, entity.Status())
	assert.False(t, entity.IsBlocking())
}

func TestAttachPaymentIntent(t *testing.T) {
	entity, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	entity.AttachPaymentIntent("pi_123")

	require.NotNil(t, entity.PaymentIntentID())
	assert.Equal(t, "pi_123", *entity.PaymentIntentID())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
