//go:build unit

package queries_test

import (
	"context"
	"testing"

	"classreserve/internal/domain/classroom"
	"classreserve/internal/domain/reservation"
	"classreserve/internal/usecase/queries"
	queriesmock "classreserve/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockReservations *queriesmock.MockReservationReader
	mockClassrooms   *queriesmock.MockClassroomReader
	queries          queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservations = queriesmock.NewMockReservationReader(s.mockCtrl)
	s.mockClassrooms = queriesmock.NewMockClassroomReader(s.mockCtrl)
	s.queries = queries.NewReservationQueries(s.mockReservations, s.mockClassrooms)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) buildReservation(id int64, userID string, classroomID int64, dateStr, startStr, endStr string) *reservation.Reservation {
	date, err := reservation.ParseDate(dateStr)
	s.Require().NoError(err)
	start, err := reservation.ParseTimeOfDay(startStr)
	s.Require().NoError(err)
	end, err := reservation.ParseTimeOfDay(endStr)
	s.Require().NoError(err)
	return reservation.ReconstructReservation(id, userID, classroomID, date, reservation.ReconstructSlot(start, end))
}

func (s *ReservationQueriesTestSuite) buildClassroom(id int64, name, location string) *classroom.Classroom {
	room, err := classroom.NewClassroom(id, name, location, 30, nil)
	s.Require().NoError(err)
	return room
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	s.Run("success: view enriched with classroom attributes", func() {
		res := s.buildReservation(7, "alice", 1, "2026-09-16", "14:00", "15:00")
		s.mockReservations.EXPECT().Get(int64(7)).Return(res, true).Times(1)
		s.mockClassrooms.EXPECT().Get(int64(1)).
			Return(s.buildClassroom(1, "Room 101", "Building A"), true).Times(1)

		view, err := s.queries.GetByID(context.Background(), 7)
		s.Require().NoError(err)

		expected := &queries.ReservationView{
			ID:                7,
			ClassroomID:       1,
			ClassroomName:     "Room 101",
			ClassroomLocation: "Building A",
			UserID:            "alice",
			Date:              "2026-09-16",
			StartTime:         "14:00",
			EndTime:           "15:00",
		}
		if diff := cmp.Diff(expected, view); diff != "" {
			s.T().Errorf("ReservationView mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: deleted classroom gets a placeholder name", func() {
		res := s.buildReservation(8, "alice", 9, "2026-09-16", "14:00", "15:00")
		s.mockReservations.EXPECT().Get(int64(8)).Return(res, true).Times(1)
		s.mockClassrooms.EXPECT().Get(int64(9)).Return(nil, false).Times(1)

		view, err := s.queries.GetByID(context.Background(), 8)
		s.Require().NoError(err)
		s.Equal("Classroom 9", view.ClassroomName)
		s.Empty(view.ClassroomLocation)
	})

	s.Run("error: not found", func() {
		s.mockReservations.EXPECT().Get(int64(99)).Return(nil, false).Times(1)

		_, err := s.queries.GetByID(context.Background(), 99)
		s.ErrorIs(err, reservation.ErrNotFound)
	})
}

func (s *ReservationQueriesTestSuite) TestListByUser() {
	s.Run("sorts newest first", func() {
		rows := []*reservation.Reservation{
			s.buildReservation(1, "alice", 1, "2026-09-16", "09:00", "10:00"),
			s.buildReservation(2, "alice", 1, "2026-09-17", "14:00", "15:00"),
			s.buildReservation(3, "alice", 1, "2026-09-16", "15:00", "16:00"),
		}
		s.mockReservations.EXPECT().ByUser("alice").Return(rows).Times(1)
		room := s.buildClassroom(1, "Room 101", "Building A")
		s.mockClassrooms.EXPECT().Get(int64(1)).Return(room, true).Times(3)

		views, err := s.queries.ListByUser(context.Background(), "alice")
		s.Require().NoError(err)
		s.Require().Len(views, 3)
		s.Equal(int64(2), views[0].ID)
		s.Equal(int64(3), views[1].ID)
		s.Equal(int64(1), views[2].ID)
	})

	s.Run("no reservations is an empty list, not nil", func() {
		s.mockReservations.EXPECT().ByUser("bob").Return(nil).Times(1)

		views, err := s.queries.ListByUser(context.Background(), "bob")
		s.Require().NoError(err)
		s.NotNil(views)
		s.Empty(views)
	})
}

func (s *ReservationQueriesTestSuite) TestListByClassroom() {
	s.Run("success: passes the canonical date to the reader", func() {
		s.mockClassrooms.EXPECT().Exists(int64(1)).Return(true).Times(1)
		s.mockReservations.EXPECT().ByClassroom(int64(1), gomock.Any()).
			DoAndReturn(func(_ int64, date *string) []*reservation.Reservation {
				s.Require().NotNil(date)
				s.Equal("2026-09-16", *date)
				return nil
			}).Times(1)

		views, err := s.queries.ListByClassroom(context.Background(), 1, strPtr("2026-09-16"))
		s.Require().NoError(err)
		s.Empty(views)
	})

	s.Run("success: nil date lists everything", func() {
		s.mockClassrooms.EXPECT().Exists(int64(1)).Return(true).Times(1)
		rows := []*reservation.Reservation{
			s.buildReservation(1, "alice", 1, "2026-09-16", "09:00", "10:00"),
		}
		s.mockReservations.EXPECT().ByClassroom(int64(1), gomock.Nil()).Return(rows).Times(1)
		s.mockClassrooms.EXPECT().Get(int64(1)).
			Return(s.buildClassroom(1, "Room 101", "Building A"), true).Times(1)

		views, err := s.queries.ListByClassroom(context.Background(), 1, nil)
		s.Require().NoError(err)
		s.Len(views, 1)
	})

	s.Run("error: unknown classroom", func() {
		s.mockClassrooms.EXPECT().Exists(int64(99)).Return(false).Times(1)

		_, err := s.queries.ListByClassroom(context.Background(), 99, nil)
		s.ErrorIs(err, classroom.ErrNotFound)
	})

	s.Run("error: malformed date filter", func() {
		s.mockClassrooms.EXPECT().Exists(int64(1)).Return(true).Times(1)

		_, err := s.queries.ListByClassroom(context.Background(), 1, strPtr("16-09-2026"))
		s.ErrorIs(err, reservation.ErrInvalidDateFormat)
	})
}

func strPtr(s string) *string { return &s }
