//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"fuelstation/internal/handler/api"
	"fuelstation/internal/handler/middleware"
	"fuelstation/internal/pkg/errs"
	"fuelstation/internal/usecase/queries"
	"fuelstation/tests/common/builder"
	"fuelstation/tests/common/httptest"
	commandsmock "fuelstation/tests/mock/commands"
	queriesmock "fuelstation/tests/mock/queries"

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

	identity := middleware.IdentityMiddleware()
	s.router.POST("/reservations", identity, s.handler.CreateReservation)
	s.router.GET("/reservations", identity, s.handler.GetUserReservations)
	s.router.GET("/reservations/:id", identity, s.handler.GetReservation)
	s.router.DELETE("/reservations/:id", identity, s.handler.CancelReservation)
	s.router.GET("/columns/:id/reservations", s.handler.GetColumnReservations)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func userHeaders() map[string]string {
	return map[string]string{"X-User-ID": "10"}
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	reqBody := map[string]any{
		"column_id":  1,
		"start_time": start.Format(time.RFC3339),
	}
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().
			Reserve(gomock.Any(), int64(10), int64(1), start).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, userHeaders())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("active", body["status"])
	})

	s.Run("error: 401 without X-User-ID header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "X-User-ID")
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"column_id": "not-a-number"}, userHeaders())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps command errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"column not found", errs.ErrColumnNotFound, http.StatusNotFound},
			{"invalid time slot", errs.ErrInvalidTimeSlot, http.StatusBadRequest},
			{"column unavailable", errs.ErrColumnUnavailable, http.StatusUnprocessableEntity},
			{"slot conflict", errs.ErrSlotConflict, http.StatusConflict},
			{"daily limit", errs.ErrDailyLimitExceeded, http.StatusConflict},
			{"unexpected failure", errors.New("database error"), http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, userHeaders())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/1", nil, userHeaders())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(1, body["id"])
	})

	s.Run("error: 404 when reservation is missing", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), int64(2)).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/2", nil, userHeaders())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 on non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/abc", nil, userHeaders())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), int64(1)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/1", nil, userHeaders())
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when reservation is missing", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), int64(2)).
			Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/2", nil, userHeaders())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestGetUserReservations() {
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: lists the caller's reservations", func() {
		s.mockQueries.EXPECT().
			ActiveForUser(gomock.Any(), int64(10), gomock.Any()).
			Return([]*queries.ReservationView{returnView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, userHeaders())

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 on bad from date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?from=tomorrow", nil, userHeaders())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid from date")
	})
}

func (s *ReservationHandlerTestSuite) TestGetColumnReservations() {
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: lists the column's active reservations", func() {
		s.mockQueries.EXPECT().
			ActiveForColumn(gomock.Any(), int64(1)).
			Return([]*queries.ReservationView{returnView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/columns/1/reservations", nil, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("active", body[0]["status"])
	})

	s.Run("success: a column with no holds returns an empty list", func() {
		s.mockQueries.EXPECT().
			ActiveForColumn(gomock.Any(), int64(2)).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/columns/2/reservations", nil, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 on non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/columns/abc/reservations", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid column ID")
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().
			ActiveForColumn(gomock.Any(), int64(3)).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/columns/3/reservations", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
