//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"hotel-admin/internal/handler/dto/response"
	"hotel-admin/tests/common/authtest"
	"hotel-admin/tests/common/builder"
	"hotel-admin/tests/common/dbtest"
	"hotel-admin/tests/common/httptest"
	"hotel-admin/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	roomsURL    = "/api/rooms"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) login() string {
	return authtest.LoginStaff(s.T(), s.Router, "manager@example.com", "password123")
}

// =============================================================================
// TestBookingLifecycle - create, reprice, cancel, delete against a live DB
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: booking is created, repriced, cancelled and deleted", func() {
		t := s.T()
		token := s.login()

		// Create the room through the API
		roomReq := builder.NewRoomBuilder().WithNumber("301").WithRateCents(8000).BuildRequestDTO()
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, roomReq, token)
		require.Equal(t, http.StatusCreated, rw.Code, rw.Body.String())

		// Create a booking with inline guest details: 3 nights x 80.00
		reqBody := builder.NewBookingBuilder().
			WithRoomNumber("301").
			BuildCreateRequestDTOWithNewGuest()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "301", created.RoomNumber)
		require.Equal(t, int64(24000), created.TotalCents)
		require.Equal(t, "pending", created.Status)
		require.Equal(t, 1, s.Notifier.BookingCount(), "booking confirmation should have been sent")

		detailURL := bookingsURL + "/" + created.ID.String()

		// Reading it back returns exactly what creation reported
		fw := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, token)
		require.Equal(t, http.StatusOK, fw.Code, fw.Body.String())

		var fetched response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, fw.Body, &fetched))
		require.Empty(t, cmp.Diff(created, fetched))

		// Reschedule to 5 nights with a 20% discount: 5 x 80.00 x 0.8
		updateReq := builder.NewBookingBuilder().
			WithRoomNumber("301").
			WithPeriod(
				time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC),
			).
			WithDiscountPercent(20).
			WithStatus("confirmed").
			BuildUpdateRequestDTO()

		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, detailURL, updateReq, token)
		require.Equal(t, http.StatusOK, uw.Code, uw.Body.String())

		var updated response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, uw.Body, &updated))
		require.Equal(t, int64(32000), updated.TotalCents)
		require.Equal(t, "confirmed", updated.Status)

		// Cancel
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, detailURL+"/cancel", nil, token)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		var cancelled response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &cancelled))
		require.Equal(t, "cancelled", cancelled.Status)

		// Delete
		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, detailURL, nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, token)
		require.Equal(t, http.StatusNotFound, gw.Code)
	})

	s.Run("Error case: unauthenticated requests are rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestOverlapConflict - half-open period semantics against real SQL
// =============================================================================

func (s *BookingSuite) TestOverlapConflict() {
	s.Run("Error case: overlapping booking for the same room is rejected", func() {
		t := s.T()
		token := s.login()

		dbtest.CreateTestRoom(t, s.DB, "401", 8000, 2)
		guestID := dbtest.CreateTestGuest(t, s.DB, "Ada", "Lovelace", "ada@example.com")

		first := builder.NewBookingBuilder().WithRoomNumber("401")
		first.GuestID = guestID
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, first.BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// Second booking shifted by one night still overlaps [Jul 1, Jul 4)
		second := builder.NewBookingBuilder().
			WithRoomNumber("401").
			WithPeriod(
				time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC),
			)
		second.GuestID = guestID
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, second.BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusConflict, cw.Code, cw.Body.String())
	})

	s.Run("Normal case: back-to-back stays do not conflict", func() {
		t := s.T()
		token := s.login()

		dbtest.CreateTestRoom(t, s.DB, "401", 8000, 2)
		guestID := dbtest.CreateTestGuest(t, s.DB, "Ada", "Lovelace", "ada@example.com")

		first := builder.NewBookingBuilder().WithRoomNumber("401")
		first.GuestID = guestID
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, first.BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// Check-in on the previous booking's check-out day
		next := builder.NewBookingBuilder().
			WithRoomNumber("401").
			WithPeriod(
				time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 7, 7, 0, 0, 0, 0, time.UTC),
			)
		next.GuestID = guestID
		nw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, next.BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, nw.Code, nw.Body.String())
	})

	s.Run("Normal case: cancelled booking frees the period", func() {
		t := s.T()
		token := s.login()

		dbtest.CreateTestRoom(t, s.DB, "401", 8000, 2)
		guestID := dbtest.CreateTestGuest(t, s.DB, "Ada", "Lovelace", "ada@example.com")

		first := builder.NewBookingBuilder().WithRoomNumber("401")
		first.GuestID = guestID
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, first.BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/cancel", nil, token)
		require.Equal(t, http.StatusOK, cw.Code)

		retry := builder.NewBookingBuilder().WithRoomNumber("401")
		retry.GuestID = guestID
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, retry.BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, rw.Code, rw.Body.String())
	})
}

// =============================================================================
// TestConcurrentCreation - the row lock serializes racing writers
// =============================================================================

func (s *BookingSuite) TestConcurrentCreation() {
	s.Run("Normal case: exactly one of two racing bookings wins", func() {
		t := s.T()
		token := s.login()

		dbtest.CreateTestRoom(t, s.DB, "501", 8000, 2)
		guestID := dbtest.CreateTestGuest(t, s.DB, "Ada", "Lovelace", "ada@example.com")

		b := builder.NewBookingBuilder().WithRoomNumber("501")
		b.GuestID = guestID
		reqBody := b.BuildCreateRequestDTO()

		codes := make([]int, 2)
		var wg sync.WaitGroup
		for i := range codes {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
				codes[idx] = w.Code
			}(i)
		}
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "exactly one racing booking must be created, got codes %v", codes)
		require.Equal(t, 1, conflicted, "the losing booking must see a conflict, got codes %v", codes)
	})
}

// =============================================================================
// TestSummary - aggregate excludes cancelled bookings
// =============================================================================

func (s *BookingSuite) TestSummary() {
	s.Run("Normal case: summary counts only revenue-bearing bookings", func() {
		t := s.T()
		token := s.login()

		dbtest.CreateTestRoom(t, s.DB, "601", 10000, 2)
		guestID := dbtest.CreateTestGuest(t, s.DB, "Ada", "Lovelace", "ada@example.com")

		// Two bookings: 3 nights x 100.00 and 2 nights x 100.00
		first := builder.NewBookingBuilder().WithRoomNumber("601")
		first.GuestID = guestID
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, first.BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		second := builder.NewBookingBuilder().
			WithRoomNumber("601").
			WithPeriod(
				time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC),
			)
		second.GuestID = guestID
		sw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, second.BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, sw.Code, sw.Body.String())

		var cancelTarget response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &cancelTarget))

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+cancelTarget.ID.String()+"/cancel", nil, token)
		require.Equal(t, http.StatusOK, cw.Code)

		var summary response.SummaryResponse
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/summary", nil, token)
		require.Equal(t, http.StatusOK, gw.Code, gw.Body.String())
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &summary))

		require.Equal(t, 1, summary.Bookings)
		require.Equal(t, 3, summary.NightsBooked)
		require.Equal(t, int64(30000), summary.RevenueCents)
	})
}
