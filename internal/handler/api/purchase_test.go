//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"fuelstation/internal/handler/api"
	"fuelstation/internal/handler/middleware"
	"fuelstation/internal/pkg/errs"
	"fuelstation/internal/usecase/commands"
	"fuelstation/internal/usecase/queries"
	"fuelstation/tests/common/builder"
	"fuelstation/tests/common/httptest"
	commandsmock "fuelstation/tests/mock/commands"
	queriesmock "fuelstation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseCommands
	mockQueries  *queriesmock.MockTransactionQueries
	handler      *api.PurchaseHandler
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTransactionQueries(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockCommands, s.mockQueries)

	identity := middleware.IdentityMiddleware()
	s.router.POST("/purchases", identity, s.handler.CreatePurchase)
	s.router.GET("/transactions", identity, s.handler.GetUserTransactions)
	s.router.GET("/transactions/:id", identity, s.handler.GetTransaction)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

func purchaseHeaders(idempotencyKey string) map[string]string {
	headers := map[string]string{"X-User-ID": "10"}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}
	return headers
}

func (s *PurchaseHandlerTestSuite) TestCreatePurchase() {
	url := "/purchases"
	reqBody := map[string]any{
		"column_id":      1,
		"fuel_id":        1,
		"volume":         "70.00",
		"payment_method": "card",
	}
	returnView := builder.NewTransactionBuilder().BuildView()

	s.Run("success: returns 201 Created with the sale", func() {
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.PurchaseResult{Transaction: returnView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, purchaseHeaders(uuid.NewString()))

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		txn, ok := body["transaction"].(map[string]any)
		s.Require().True(ok)
		s.Equal("455.00", txn["total"])
		s.Equal(false, body["replayed"])
	})

	s.Run("success: replayed purchase returns 200 OK", func() {
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.PurchaseResult{Transaction: returnView, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, purchaseHeaders(uuid.NewString()))

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["replayed"])
	})

	s.Run("error: 400 without Idempotency-Key header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, purchaseHeaders(""))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 400 on malformed idempotency key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, purchaseHeaders("not-a-uuid"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid idempotency key")
	})

	s.Run("error: maps command errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"column not found", errs.ErrColumnNotFound, http.StatusNotFound},
			{"fuel not found", errs.ErrFuelNotFound, http.StatusNotFound},
			{"invalid volume", errs.ErrInvalidVolume, http.StatusBadRequest},
			{"invalid payment method", errs.ErrInvalidPaymentMethod, http.StatusBadRequest},
			{"fuel not offered", errs.ErrFuelNotOfferedAtColumn, http.StatusUnprocessableEntity},
			{"insufficient stock", errs.ErrInsufficientStock, http.StatusConflict},
			{"duplicate purchase", errs.ErrDuplicatePurchase, http.StatusConflict},
			{"in progress", errs.ErrIdempotencyInProgress, http.StatusConflict},
			{"unexpected failure", errors.New("database error"), http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Purchase(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, purchaseHeaders(uuid.NewString()))
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *PurchaseHandlerTestSuite) TestGetTransaction() {
	returnView := builder.NewTransactionBuilder().BuildView()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions/1", nil, purchaseHeaders(""))

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("455.00", body["total"])
	})

	s.Run("error: 404 when transaction is missing", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), int64(2)).
			Return(nil, errs.ErrTransactionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions/2", nil, purchaseHeaders(""))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Transaction not found")
	})
}

func (s *PurchaseHandlerTestSuite) TestGetUserTransactions() {
	returnView := builder.NewTransactionBuilder().BuildView()

	s.Run("success: lists the caller's transactions", func() {
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), int64(10)).
			Return([]*queries.TransactionView{returnView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions", nil, purchaseHeaders(""))

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})
}
