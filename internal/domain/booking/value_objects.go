package booking

import (
	"fmt"
	"time"
)

// StayPeriod is a half-open calendar interval [checkIn, checkOut): the guest
// occupies the room on the nights checkIn through checkOut minus one. Both
// dates are normalized to midnight UTC.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := NormalizeDate(checkIn)
	out := NormalizeDate(checkOut)

	if !out.After(in) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}

	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

func (p StayPeriod) Nights() int {
	return NumberOfNights(p.checkIn, p.checkOut)
}

// Overlaps implements the half-open interval predicate: two periods overlap
// iff aStart < bEnd && aEnd > bStart. A checkout and a checkin on the same
// day do not overlap.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && p.checkOut.After(other.checkIn)
}

func (p StayPeriod) Contains(day time.Time) bool {
	d := NormalizeDate(day)
	return !d.Before(p.checkIn) && d.Before(p.checkOut)
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format("2006-01-02"), p.checkOut.Format("2006-01-02"))
}

// NormalizeDate truncates a timestamp to its calendar date at midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DiscountPercent is a whole-number percentage in [0,100].
type DiscountPercent int

func NewDiscountPercent(v int) (DiscountPercent, error) {
	if v < 0 || v > 100 {
		return 0, ErrInvalidDiscount
	}
	return DiscountPercent(v), nil
}

func (d DiscountPercent) Value() int {
	return int(d)
}

// Money is a currency amount in cents. Integer arithmetic keeps price
// computation free of binary-float drift.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
