package booking

import "time"

// NumberOfNights is the ceiling of the absolute day difference between the
// two dates. The absolute value keeps the count positive even when a caller
// swaps check-in and check-out; the API boundary rejects swapped dates before
// they reach this function, so the leniency is a safety net, not a contract.
func NumberOfNights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}

	const day = 24 * time.Hour
	nights := diff / day
	if diff%day != 0 {
		nights++
	}
	return int(nights)
}

// TotalCents computes nights × rate with the discount applied, rounded
// half-up to the cent exactly once on the final amount. A discount of zero
// reproduces the undiscounted total to the cent. Non-positive night counts
// yield a zero price; rejecting them is the caller's job.
func TotalCents(rateCents int64, checkIn, checkOut time.Time, discount DiscountPercent) int64 {
	nights := int64(NumberOfNights(checkIn, checkOut))
	if nights <= 0 || rateCents <= 0 {
		return 0
	}

	base := nights * rateCents
	// base × (100 − discount) is in hundredths of a cent; +50 rounds half-up.
	return (base*int64(100-discount.Value()) + 50) / 100
}
