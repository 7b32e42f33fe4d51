package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"one-on-one-backend/internal/api/handlers"
	"one-on-one-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newHealthSuite(t *testing.T) (*testutils.HTTPTestSuite, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	handler := handlers.NewHealthHandler(db, "test")
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)
	return httpSuite, mock
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		httpSuite, mock := newHealthSuite(t)
		mock.ExpectPing()

		recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "test", response.Version)
		assert.Equal(t, "healthy", response.Services["database"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		httpSuite, mock := newHealthSuite(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Services["database"], "connection refused")
	})
}

func TestReadyAndLive(t *testing.T) {
	httpSuite, mock := newHealthSuite(t)
	mock.ExpectPing().WillReturnError(errors.New("starting up"))

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)
	var ready map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &ready)
	assert.Equal(t, false, ready["ready"])

	recorder = httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)
	var live map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &live)
	assert.Equal(t, true, live["alive"])
}
