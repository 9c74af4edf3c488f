//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"classreserve/internal/domain/reservation"
	"classreserve/internal/handler/api"
	resdto "classreserve/internal/handler/dto/response"
	"classreserve/internal/usecase/commands"
	"classreserve/internal/usecase/queries"
	"classreserve/tests/common/httptest"
	"classreserve/tests/common/testutil"
	commandsmock "classreserve/tests/mock/commands"
	queriesmock "classreserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// stand-in for the auth middleware
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", "alice")
	})

	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations", s.handler.GetUserReservations)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.DELETE("/reservations/:id", s.handler.CancelReservation)
	s.router.DELETE("/admin/reservations/:id", s.handler.AdminDeleteReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func createReservationBody() map[string]any {
	return map[string]any{
		"classroom_id": 1,
		"date":         "2026-09-16",
		"start_time":   "14:00",
		"end_time":     "15:00",
	}
}

func sampleView(id int64) *queries.ReservationView {
	return &queries.ReservationView{
		ID:                id,
		ClassroomID:       1,
		ClassroomName:     "Room 101",
		ClassroomLocation: "Building A",
		UserID:            "alice",
		Date:              "2026-09-16",
		StartTime:         "14:00",
		EndTime:           "15:00",
	}
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	params := commands.CreateReservationParams{
		ClassroomID: 1,
		Date:        "2026-09-16",
		StartTime:   "14:00",
		EndTime:     "15:00",
	}

	s.Run("success: 201 with the new id", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), "alice", params).
			Return(int64(7), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createReservationBody(), "")

		var response resdto.CreateReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(7), response.ID)
		s.Equal("Reservation created", response.Message)
	})

	s.Run("command errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"unknown classroom", commands.ErrClassroomNotFound, http.StatusNotFound},
			{"bad date", reservation.ErrInvalidDateFormat, http.StatusBadRequest},
			{"bad time", reservation.ErrInvalidTimeFormat, http.StatusBadRequest},
			{"past time", reservation.ErrPastTime, http.StatusBadRequest},
			{"invalid slot", reservation.ErrInvalidSlot, http.StatusBadRequest},
			{"slot conflict", reservation.ErrSlotConflict, http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), "alice", params).
					Return(int64(0), tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createReservationBody(), "")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 400 on missing fields", func() {
		for _, field := range []string{"classroom_id", "date", "start_time", "end_time"} {
			s.Run("missing "+field, func() {
				body := createReservationBody()
				testutil.Field(field, nil)(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetUserReservations() {
	s.mockQueries.EXPECT().ListByUser(gomock.Any(), "alice").
		Return([]*queries.ReservationView{sampleView(2), sampleView(1)}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")

	var response []*resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 2)
	s.Equal(int64(2), response[0].ID)
	s.Equal("Room 101", response[0].ClassroomName)
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7)).
			Return(sampleView(7), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/7", nil, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(7), response.ID)
		s.Equal("alice", response.UserID)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(99)).
			Return(nil, reservation.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/99", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 on a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/abc", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(7), "alice").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/7", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(99), "alice").
			Return(reservation.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/99", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 403 when not the owner", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(7), "alice").
			Return(reservation.ErrNotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/7", nil, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestAdminDeleteReservation() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().AdminDelete(gomock.Any(), int64(7)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/reservations/7", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().AdminDelete(gomock.Any(), int64(99)).
			Return(reservation.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/reservations/99", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
