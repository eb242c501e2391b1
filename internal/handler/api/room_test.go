//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/client"
	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/handler/api"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/tests/common/httptest"
	queriesmock "coworking-booking/tests/mock/queries"
	usecasemock "coworking-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func sampleRoom() *queries.RoomView {
	return &queries.RoomView{
		ID:         "sala-1",
		Name:       "Sala Executiva A",
		Capacity:   6,
		HourlyRate: decimal.NewFromInt(80),
		Amenities:  []string{"Projetor", "Wi-Fi"},
		Available:  true,
		AreaM2:     25,
	}
}

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockRooms    *queriesmock.MockRoomQueries
	mockCalendar *queriesmock.MockCalendarQueries
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRooms = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.mockCalendar = queriesmock.NewMockCalendarQueries(s.mockCtrl)

	validator := usecasemock.NewMockTokenValidator(s.mockCtrl)
	stubTokens(validator)
	auth := middleware.NewAuthMiddleware(validator)

	rooms := api.NewRoomHandler(s.mockRooms)
	cal := api.NewCalendarHandler(s.mockCalendar)

	g := s.router.Group("/api")
	g.GET("/rooms", rooms.List)
	g.GET("/rooms/:id", rooms.Get)
	g.GET("/rooms/:id/quote", rooms.Quote)
	g.GET("/calendar", auth.RequireAuth(), cal.Get)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestList() {
	s.Run("success: lists rooms with rates in cents", func() {
		s.mockRooms.EXPECT().List(gomock.Any()).Return([]*queries.RoomView{sampleRoom()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms", nil, "")

		var body []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("sala-1", body[0].ID)
		s.Equal("80.00", body[0].HourlyRate.String())
		s.Equal([]string{"Projetor", "Wi-Fi"}, body[0].Amenities)
		s.Equal(25, body[0].AreaM2)
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockRooms.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *RoomHandlerTestSuite) TestGet() {
	s.Run("success: returns one room", func() {
		s.mockRooms.EXPECT().GetByID(gomock.Any(), "sala-1").Return(sampleRoom(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/sala-1", nil, "")

		var body resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Sala Executiva A", body.Name)
	})

	s.Run("error: 404 for an unknown room", func() {
		s.mockRooms.EXPECT().GetByID(gomock.Any(), "sala-9").Return(nil, queries.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/sala-9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

func (s *RoomHandlerTestSuite) TestQuote() {
	s.Run("success: prices a slot", func() {
		start, _ := calendar.ParseTimeOfDay("09:00")
		end, _ := calendar.ParseTimeOfDay("11:00")
		quote := &queries.Quote{
			RoomID:    "sala-1",
			StartTime: start,
			EndTime:   end,
			Plan:      "fiscal",
			Total:     reservation.NewMoney(decimal.NewFromInt(144)),
		}
		s.mockRooms.EXPECT().Quote(gomock.Any(), "sala-1", "09:00", "11:00", "fiscal").Return(quote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/rooms/sala-1/quote?startTime=09:00&endTime=11:00&plan=fiscal", nil, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("144.00", body.TotalValue.String())
		s.Equal("fiscal", body.Plan)
	})

	s.Run("error: 400 when a time is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/sala-1/quote?startTime=09:00", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "startTime and endTime are required")
	})

	s.Run("error: maps query errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"bad time", errs.Mark(calendar.ErrInvalidTimeOfDay, reservation.ErrInvalidInterval), http.StatusBadRequest, "End time must be after start time"},
			{"bad plan", client.ErrInvalidPlan, http.StatusBadRequest, "Invalid plan"},
			{"unknown room", queries.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRooms.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
					"/api/rooms/sala-1/quote?startTime=09:00&endTime=11:00", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *RoomHandlerTestSuite) TestCalendar() {
	anchor, _ := calendar.ParseCivilDate("2024-12-20")

	s.Run("success: defaults to the month view", func() {
		start, _ := calendar.ParseTimeOfDay("09:00")
		end, _ := calendar.ParseTimeOfDay("11:00")
		view := &queries.CalendarView{
			View:   calendar.ViewMonth,
			Anchor: anchor,
			Days: []queries.CalendarDay{
				{Date: anchor, InMonth: true, Reservations: []reservation.CalendarEntry{{
					ID:         "res-1",
					ClientID:   "maria",
					RoomID:     "sala-1",
					RoomName:   "Sala Executiva A",
					Start:      start,
					End:        end,
					Status:     reservation.StatusInProgress,
					TotalValue: reservation.NewMoney(decimal.NewFromInt(160)),
				}}},
			},
			Rooms: []*queries.RoomView{sampleRoom()},
		}
		s.mockCalendar.EXPECT().Calendar(gomock.Any(), calendar.ViewMonth, anchor, "").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/calendar?date=2024-12-20", nil, mariaToken)

		var body resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("month", body.View)
		s.Equal("2024-12-20", body.Date)
		s.Require().Len(body.Days, 1)
		s.Require().Len(body.Days[0].Reservations, 1)
		s.Equal("in-progress", body.Days[0].Reservations[0].Status)
		s.Equal("160.00", body.Days[0].Reservations[0].TotalValue.String())
	})

	s.Run("success: clients only see the slot of other clients' bookings", func() {
		start, _ := calendar.ParseTimeOfDay("14:00")
		end, _ := calendar.ParseTimeOfDay("15:00")
		foreign := func() *queries.CalendarView {
			return &queries.CalendarView{
				View:   calendar.ViewDay,
				Anchor: anchor,
				Days: []queries.CalendarDay{
					{Date: anchor, InMonth: true, Reservations: []reservation.CalendarEntry{{
						ID:         "res-2",
						ClientID:   "carlos.silva",
						ClientName: "Dr. Carlos Eduardo Silva",
						RoomID:     "sala-1",
						RoomName:   "Sala Executiva A",
						Start:      start,
						End:        end,
						Status:     reservation.StatusConfirmed,
						Notes:      "Audiência",
						TotalValue: reservation.NewMoney(decimal.NewFromInt(64)),
					}}},
				},
			}
		}
		s.mockCalendar.EXPECT().Calendar(gomock.Any(), calendar.ViewDay, anchor, "").Return(foreign(), nil).Times(2)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/calendar?view=day&date=2024-12-20", nil, mariaToken)

		s.Equal(http.StatusOK, rec.Code)
		s.NotContains(rec.Body.String(), "carlos.silva")
		s.NotContains(rec.Body.String(), "Audiência")
		s.NotContains(rec.Body.String(), "totalValue")

		var body resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Days[0].Reservations, 1)
		entry := body.Days[0].Reservations[0]
		s.Equal("res-2", entry.ID)
		s.Equal("14:00", entry.StartTime)
		s.Equal("confirmed", entry.Status)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/calendar?view=day&date=2024-12-20", nil, adminToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		entry = body.Days[0].Reservations[0]
		s.Equal("carlos.silva", entry.ClientID)
		s.Equal("Audiência", entry.Notes)
		s.Equal("64.00", entry.TotalValue.String())
	})

	s.Run("success: passes the room filter and view", func() {
		s.mockCalendar.EXPECT().Calendar(gomock.Any(), calendar.ViewWeek, anchor, "sala-2").
			Return(&queries.CalendarView{View: calendar.ViewWeek, Anchor: anchor}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/calendar?view=week&date=2024-12-20&roomId=sala-2", nil, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on an unknown view", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/calendar?view=year&date=2024-12-20", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "View must be one of")
	})

	s.Run("error: 400 without an anchor date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/calendar", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/calendar?date=2024-12-20", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
