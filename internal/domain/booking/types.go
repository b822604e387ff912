package booking

type Status string

const (
	StatusPending       Status = "pending"
	StatusConfirmed     Status = "confirmed"
	StatusPaid          Status = "paid"
	StatusCompleted     Status = "completed"
	StatusCancelled     Status = "cancelled"
	StatusPaymentFailed Status = "payment_failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPaid, StatusCompleted, StatusCancelled, StatusPaymentFailed:
		return true
	default:
		return false
	}
}

// Blocks reports whether a booking in this status holds the room for overlap
// purposes. Only cancelled bookings free the period.
func (s Status) Blocks() bool {
	return s != StatusCancelled
}

// CountsTowardRevenue excludes cancelled and failed-payment bookings from
// revenue totals.
func (s Status) CountsTowardRevenue() bool {
	return s != StatusCancelled && s != StatusPaymentFailed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
