//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"fuelstation/internal/handler/middleware"
	"fuelstation/internal/pkg/config"
	"fuelstation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger := middleware.NewLogger(config.NewTestConfig().Log)
	require.NotNil(t, logger.GetSlogLogger())

	router := gin.New()
	router.Use(logger.LoggingMiddleware())

	var requestID string
	router.GET("/ping", func(c *gin.Context) {
		requestID = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, requestID)
}
