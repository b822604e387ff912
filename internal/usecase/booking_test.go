//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/usecase"
	"hotel-admin/internal/usecase/mocks"
	"hotel-admin/internal/usecase/readmodel"
	"hotel-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockBookings *mocks.MockBookingRepository
	mockGuests   *mocks.MockGuestRepository
	mockRooms    *mocks.MockRoomRepository
	mockNotifier *mocks.MockNotifier
	useCase      usecase.BookingUseCase
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = mocks.NewMockBookingRepository(s.mockCtrl)
	s.mockGuests = mocks.NewMockGuestRepository(s.mockCtrl)
	s.mockRooms = mocks.NewMockRoomRepository(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	availability := usecase.NewAvailabilityChecker(s.mockBookings)
	s.useCase = usecase.NewBookingUseCase(s.mockBookings, s.mockGuests, s.mockRooms, availability, s.mockNotifier, nil)
}

func (s *BookingUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func (s *BookingUseCaseTestSuite) TestCreateBooking() {
	b := builder.NewBookingBuilder()
	roomRM := builder.NewRoomBuilder().WithNumber(b.RoomNumber).BuildRM()
	roomRM.ID = b.RoomID

	baseParams := func() usecase.CreateBookingParams {
		guestID := b.GuestID
		return usecase.CreateBookingParams{
			RoomNumber:      b.RoomNumber,
			CheckIn:         b.CheckIn,
			CheckOut:        b.CheckOut,
			PartySize:       b.PartySize,
			DiscountPercent: b.DiscountPercent,
			GuestID:         &guestID,
		}
	}

	s.Run("error: swapped dates fail validation before any store access", func() {
		params := baseParams()
		params.CheckIn, params.CheckOut = params.CheckOut, params.CheckIn

		_, err := s.useCase.CreateBooking(context.Background(), params)

		var verr *usecase.ValidationError
		s.ErrorAs(err, &verr)
		s.Contains(verr.Fields, "check_out")
	})

	s.Run("error: all invalid fields reported at once", func() {
		params := baseParams()
		params.CheckIn, params.CheckOut = params.CheckOut, params.CheckIn
		params.PartySize = 0
		params.DiscountPercent = 150
		params.Status = "checked_in"

		_, err := s.useCase.CreateBooking(context.Background(), params)

		var verr *usecase.ValidationError
		s.ErrorAs(err, &verr)
		s.Contains(verr.Fields, "check_out")
		s.Contains(verr.Fields, "party_size")
		s.Contains(verr.Fields, "discount_percent")
		s.Contains(verr.Fields, "status")
	})

	s.Run("error: neither guest id nor guest details", func() {
		params := baseParams()
		params.GuestID = nil
		params.NewGuest = nil

		_, err := s.useCase.CreateBooking(context.Background(), params)

		var verr *usecase.ValidationError
		s.ErrorAs(err, &verr)
		s.Contains(verr.Fields, "guest")
	})

	s.Run("error: incomplete new guest details", func() {
		params := baseParams()
		params.GuestID = nil
		params.NewGuest = &usecase.NewGuestParams{FirstName: "Ada"}

		_, err := s.useCase.CreateBooking(context.Background(), params)

		var verr *usecase.ValidationError
		s.ErrorAs(err, &verr)
		s.Contains(verr.Fields, "guest.last_name")
		s.Contains(verr.Fields, "guest.email")
	})

	s.Run("error: unknown room number", func() {
		s.mockRooms.EXPECT().FindByNumber(gomock.Any(), gomock.Any(), b.RoomNumber).
			Return(nil, notFoundErr("room not found")).Times(1)

		_, err := s.useCase.CreateBooking(context.Background(), baseParams())
		s.ErrorIs(err, usecase.ErrRoomNotFound)
	})

	s.Run("error: overlapping booking blocks the period", func() {
		s.mockRooms.EXPECT().FindByNumber(gomock.Any(), gomock.Any(), b.RoomNumber).
			Return(roomRM, nil).Times(1)
		s.mockBookings.EXPECT().ExistsOverlapping(gomock.Any(), gomock.Any(), roomRM.ID, gomock.Any(), gomock.Nil()).
			Return(true, nil).Times(1)

		_, err := s.useCase.CreateBooking(context.Background(), baseParams())
		s.ErrorIs(err, usecase.ErrRoomUnavailable)
	})
}

func (s *BookingUseCaseTestSuite) TestUpdateBooking() {
	b := builder.NewBookingBuilder()
	entity, err := b.BuildDomain()
	s.Require().NoError(err)
	roomRM := builder.NewRoomBuilder().WithNumber(b.RoomNumber).BuildRM()
	roomRM.ID = b.RoomID

	params := usecase.UpdateBookingParams{
		RoomNumber:      b.RoomNumber,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		PartySize:       b.PartySize,
		DiscountPercent: b.DiscountPercent,
		Status:          b.Status,
	}

	s.Run("error: booking not found", func() {
		s.mockBookings.EXPECT().FindEntityByID(gomock.Any(), gomock.Any(), entity.ID()).
			Return(nil, notFoundErr("booking not found")).Times(1)

		_, err := s.useCase.UpdateBooking(context.Background(), entity.ID(), params)
		s.ErrorIs(err, usecase.ErrBookingNotFound)
	})

	s.Run("error: new period overlaps another booking", func() {
		s.mockBookings.EXPECT().FindEntityByID(gomock.Any(), gomock.Any(), entity.ID()).
			Return(entity, nil).Times(1)
		s.mockRooms.EXPECT().FindByNumber(gomock.Any(), gomock.Any(), b.RoomNumber).
			Return(roomRM, nil).Times(1)
		// the booking under edit is excluded from its own overlap check
		excludeID := entity.ID()
		s.mockBookings.EXPECT().ExistsOverlapping(gomock.Any(), gomock.Any(), roomRM.ID, gomock.Any(), &excludeID).
			Return(true, nil).Times(1)

		_, err := s.useCase.UpdateBooking(context.Background(), entity.ID(), params)
		s.ErrorIs(err, usecase.ErrRoomUnavailable)
	})
}

func (s *BookingUseCaseTestSuite) TestCancelBooking() {
	rm := builder.NewBookingBuilder().WithStatus("cancelled").BuildRM()

	s.Run("success: sets status cancelled and returns the fresh view", func() {
		s.mockBookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), rm.ID, booking.StatusCancelled).
			Return(nil).Times(1)
		s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), rm.ID).
			Return(rm, nil).Times(1)

		result, err := s.useCase.CancelBooking(context.Background(), rm.ID)
		s.NoError(err)
		s.Equal("cancelled", result.Status)
	})

	s.Run("error: booking not found", func() {
		s.mockBookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), rm.ID, booking.StatusCancelled).
			Return(notFoundErr("booking not found")).Times(1)

		_, err := s.useCase.CancelBooking(context.Background(), rm.ID)
		s.ErrorIs(err, usecase.ErrBookingNotFound)
	})
}

func (s *BookingUseCaseTestSuite) TestDeleteBooking() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockBookings.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(nil).Times(1)
		s.NoError(s.useCase.DeleteBooking(context.Background(), id))
	})

	s.Run("error: booking not found", func() {
		s.mockBookings.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(notFoundErr("booking not found")).Times(1)
		s.ErrorIs(s.useCase.DeleteBooking(context.Background(), id), usecase.ErrBookingNotFound)
	})
}

func (s *BookingUseCaseTestSuite) TestGetBooking() {
	rm := builder.NewBookingBuilder().BuildRM()

	s.Run("success", func() {
		s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), rm.ID).
			Return(rm, nil).Times(1)

		result, err := s.useCase.GetBooking(context.Background(), rm.ID)
		s.NoError(err)
		s.Equal(rm, result)
	})

	s.Run("error: booking not found", func() {
		s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), rm.ID).
			Return(nil, notFoundErr("booking not found")).Times(1)

		_, err := s.useCase.GetBooking(context.Background(), rm.ID)
		s.ErrorIs(err, usecase.ErrBookingNotFound)
	})
}

func (s *BookingUseCaseTestSuite) TestListBookings() {
	list := []*readmodel.BookingListRM{
		builder.NewBookingBuilder().BuildListRM(),
		builder.NewBookingBuilder().WithRoomNumber("202").BuildListRM(),
	}

	s.mockBookings.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(list, nil).Times(1)

	result, err := s.useCase.ListBookings(context.Background())
	s.NoError(err)
	s.Len(result, 2)
}

func (s *BookingUseCaseTestSuite) TestGetSummary() {
	summary := &readmodel.SummaryRM{Bookings: 4, NightsBooked: 11, RevenueCents: 97200}

	s.mockBookings.EXPECT().Summary(gomock.Any(), gomock.Any()).
		Return(summary, nil).Times(1)

	result, err := s.useCase.GetSummary(context.Background())
	s.NoError(err)
	s.Equal(summary, result)
}
