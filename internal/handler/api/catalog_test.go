//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"fuelstation/internal/handler/api"
	"fuelstation/internal/pkg/errs"
	"fuelstation/internal/usecase/queries"
	"fuelstation/tests/common/builder"
	"fuelstation/tests/common/httptest"
	commandsmock "fuelstation/tests/mock/commands"
	queriesmock "fuelstation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockCatalogQueries
	mockCommands *commandsmock.MockInventoryCommands
	handler      *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries, s.mockCommands)

	s.router.GET("/columns", s.handler.ListColumns)
	s.router.GET("/columns/:id/fuels", s.handler.ListColumnFuels)
	s.router.GET("/fuels", s.handler.ListFuels)
	s.router.POST("/fuels/:id/restock", s.handler.RestockFuel)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListColumns() {
	fuelView := builder.NewFuelBuilder().BuildView()
	columnView := &queries.ColumnView{ID: 1, Number: 1, IsAvailable: true, Fuels: []queries.FuelView{*fuelView}}

	s.Run("success: lists columns with offered fuels", func() {
		s.mockQueries.EXPECT().
			ListColumns(gomock.Any()).
			Return([]*queries.ColumnView{columnView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/columns", nil, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		fuels, ok := body[0]["fuels"].([]any)
		s.Require().True(ok)
		s.Len(fuels, 1)
	})
}

func (s *CatalogHandlerTestSuite) TestListFuels() {
	fuelView := builder.NewFuelBuilder().BuildView()

	s.Run("success: lists the fuel catalog", func() {
		s.mockQueries.EXPECT().
			ListFuels(gomock.Any()).
			Return([]*queries.FuelView{fuelView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fuels", nil, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("6.50", body[0]["price"])
	})
}

func (s *CatalogHandlerTestSuite) TestListColumnFuels() {
	fuelView := builder.NewFuelBuilder().BuildView()

	s.Run("success: lists fuels offered at a column", func() {
		s.mockQueries.EXPECT().
			FuelsOfferedAt(gomock.Any(), int64(1)).
			Return([]*queries.FuelView{fuelView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/columns/1/fuels", nil, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 on non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/columns/abc/fuels", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid column ID")
	})
}

func (s *CatalogHandlerTestSuite) TestRestockFuel() {
	url := "/fuels/1/restock"
	reqBody := map[string]any{"volume": "250.50"}

	s.Run("success: returns the new stock level", func() {
		s.mockCommands.EXPECT().
			Restock(gomock.Any(), int64(1), gomock.Any()).
			Return(decimal.RequireFromString("1250.50"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("1250.5", body["volume"])
	})

	s.Run("error: 404 on unknown fuel", func() {
		s.mockCommands.EXPECT().
			Restock(gomock.Any(), int64(1), gomock.Any()).
			Return(decimal.Zero, errs.ErrFuelNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Fuel not found")
	})

	s.Run("error: 400 on invalid volume", func() {
		s.mockCommands.EXPECT().
			Restock(gomock.Any(), int64(1), gomock.Any()).
			Return(decimal.Zero, errs.ErrInvalidVolume).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"volume": "-5"}, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Volume must be positive")
	})
}
