package usecase

import (
	"fmt"
	"sort"
	"strings"

	"hotel-admin/internal/pkg/errs"
)

var (
	ErrRoomNotFound     = errs.New("room not found")
	ErrGuestNotFound    = errs.New("guest not found")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrRoomUnavailable  = errs.New("room unavailable for the requested period")
	ErrDuplicateEmail   = errs.New("guest email already in use")
	ErrDuplicateRoom    = errs.New("room number already in use")
	ErrGuestHasBookings = errs.New("guest is referenced by bookings")

	ErrPaymentNotVerified = errs.New("payment not verified by provider")
	ErrUnknownPayment     = errs.New("payment does not match any booking")

	ErrStaffNotFound      = errs.New("staff not found")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrStaffInactive      = errs.New("staff account is inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ValidationError carries field-keyed messages from the parse-and-validate
// boundary. No store access happens once it is raised.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) add(field, msg string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
