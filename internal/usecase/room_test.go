//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"hotel-admin/internal/usecase"
	"hotel-admin/internal/usecase/mocks"
	"hotel-admin/internal/usecase/readmodel"
	"hotel-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomUseCaseTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRooms *mocks.MockRoomRepository
	useCase   usecase.RoomUseCase
}

func (s *RoomUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRooms = mocks.NewMockRoomRepository(s.mockCtrl)
	s.useCase = usecase.NewRoomUseCase(s.mockRooms, nil)
}

func (s *RoomUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomUseCaseSuite(t *testing.T) {
	suite.Run(t, new(RoomUseCaseTestSuite))
}

func roomParams(b *builder.RoomBuilder) usecase.RoomParams {
	return usecase.RoomParams{
		Number:      b.Number,
		RateCents:   b.RateCents,
		Capacity:    b.Capacity,
		RoomType:    b.RoomType,
		Description: b.Description,
	}
}

func (s *RoomUseCaseTestSuite) TestCreateRoom() {
	b := builder.NewRoomBuilder()
	rm := b.BuildRM()

	s.Run("success: stores the room and returns the stored view", func() {
		s.mockRooms.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rm.ID, nil).Times(1)
		s.mockRooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), rm.ID).
			Return(rm, nil).Times(1)

		result, err := s.useCase.CreateRoom(context.Background(), roomParams(b))
		s.NoError(err)
		s.Equal(rm, result)
	})

	s.Run("error: validation failures name the offending field", func() {
		testCases := []struct {
			name   string
			mutate func(*builder.RoomBuilder)
			field  string
		}{
			{name: "empty number", mutate: func(b *builder.RoomBuilder) { b.Number = "" }, field: "number"},
			{name: "negative rate", mutate: func(b *builder.RoomBuilder) { b.RateCents = -100 }, field: "rate_cents"},
			{name: "zero capacity", mutate: func(b *builder.RoomBuilder) { b.Capacity = 0 }, field: "capacity"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				params := roomParams(builder.NewRoomBuilder().With(tc.mutate))

				_, err := s.useCase.CreateRoom(context.Background(), params)

				var verr *usecase.ValidationError
				s.ErrorAs(err, &verr)
				s.Contains(verr.Fields, tc.field)
			})
		}
	})

	s.Run("error: duplicate room number", func() {
		s.mockRooms.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, duplicateErr("rooms_number_key")).Times(1)

		_, err := s.useCase.CreateRoom(context.Background(), roomParams(b))
		s.ErrorIs(err, usecase.ErrDuplicateRoom)
	})
}

func (s *RoomUseCaseTestSuite) TestUpdateRoom() {
	b := builder.NewRoomBuilder()
	rm := b.BuildRM()

	s.Run("success: rate change takes effect without touching bookings", func() {
		updated := builder.NewRoomBuilder().WithRateCents(9500).BuildRM()
		updated.ID = rm.ID

		gomock.InOrder(
			s.mockRooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), rm.ID).
				Return(rm, nil),
			s.mockRooms.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil),
			s.mockRooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), rm.ID).
				Return(updated, nil),
		)

		params := roomParams(b)
		params.RateCents = 9500

		result, err := s.useCase.UpdateRoom(context.Background(), rm.ID, params)
		s.NoError(err)
		s.Equal(int64(9500), result.RateCents)
	})

	s.Run("error: room not found", func() {
		s.mockRooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), rm.ID).
			Return(nil, notFoundErr("room not found")).Times(1)

		_, err := s.useCase.UpdateRoom(context.Background(), rm.ID, roomParams(b))
		s.ErrorIs(err, usecase.ErrRoomNotFound)
	})

	s.Run("error: new number collides with another room", func() {
		s.mockRooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), rm.ID).
			Return(rm, nil).Times(1)
		s.mockRooms.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(duplicateErr("rooms_number_key")).Times(1)

		_, err := s.useCase.UpdateRoom(context.Background(), rm.ID, roomParams(b))
		s.ErrorIs(err, usecase.ErrDuplicateRoom)
	})
}

func (s *RoomUseCaseTestSuite) TestGetRoom() {
	rm := builder.NewRoomBuilder().BuildRM()

	s.Run("success", func() {
		s.mockRooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), rm.ID).
			Return(rm, nil).Times(1)

		result, err := s.useCase.GetRoom(context.Background(), rm.ID)
		s.NoError(err)
		s.Equal(rm, result)
	})

	s.Run("error: room not found", func() {
		s.mockRooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), rm.ID).
			Return(nil, notFoundErr("room not found")).Times(1)

		_, err := s.useCase.GetRoom(context.Background(), rm.ID)
		s.ErrorIs(err, usecase.ErrRoomNotFound)
	})
}

func (s *RoomUseCaseTestSuite) TestListRooms() {
	list := []*readmodel.RoomRM{
		builder.NewRoomBuilder().BuildRM(),
		builder.NewRoomBuilder().WithNumber("202").BuildRM(),
	}

	s.mockRooms.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(list, nil).Times(1)

	result, err := s.useCase.ListRooms(context.Background())
	s.NoError(err)
	s.Len(result, 2)
}

func (s *RoomUseCaseTestSuite) TestDeleteRoom() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockRooms.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(nil).Times(1)
		s.NoError(s.useCase.DeleteRoom(context.Background(), id))
	})

	s.Run("error: room not found", func() {
		s.mockRooms.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(notFoundErr("room not found")).Times(1)
		s.ErrorIs(s.useCase.DeleteRoom(context.Background(), id), usecase.ErrRoomNotFound)
	})
}
