package config

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	ce "github.com/redhatinsights/inventory-search-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	Load()

	assert.True(t, LoadedConfig.Loaded)
	assert.Equal(t, "info", LoadedConfig.Logging.Level)
	assert.Equal(t, DefaultInventoryTimeout, LoadedConfig.Clients.Inventory.Timeout)
	assert.Equal(t, DefaultTypewriterIntervalMs, LoadedConfig.Options.TypewriterIntervalMs)
	assert.Equal(t, DefaultSearchMenuTopLimit, LoadedConfig.Options.SearchMenuTopLimit)
	assert.Equal(t, "/metrics", LoadedConfig.Metrics.Path)
}

func TestGetTransport(t *testing.T) {
	Load()
	LoadedConfig.Clients.Inventory.Proxy = ""
	transport, err := GetTransport(5 * time.Second)
	require.NoError(t, err)
	assert.Nil(t, transport.Proxy)

	LoadedConfig.Clients.Inventory.Proxy = "http://proxy.example.com:3128"
	transport, err = GetTransport(5 * time.Second)
	require.NoError(t, err)
	assert.NotNil(t, transport.Proxy)

	LoadedConfig.Clients.Inventory.Proxy = "://bad"
	_, err = GetTransport(5 * time.Second)
	assert.Error(t, err)
	LoadedConfig.Clients.Inventory.Proxy = ""
}

func TestCustomHTTPErrorHandler(t *testing.T) {
	e := echo.New()

	cases := []struct {
		name     string
		given    error
		expected int
	}{
		{name: "ErrorResponse", given: ce.NewErrorResponse(http.StatusBadRequest, "bad", "detail"), expected: http.StatusBadRequest},
		{name: "EchoError", given: echo.NewHTTPError(http.StatusNotFound, "missing"), expected: http.StatusNotFound},
		{name: "PlainError", given: assert.AnError, expected: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			CustomHTTPErrorHandler(tc.given, c)
			assert.Equal(t, tc.expected, rec.Code)
		})
	}
}

func TestSkipLogging(t *testing.T) {
	e := echo.New()
	for path, skipped := range map[string]bool{
		"/ping":          true,
		"/ping/":         true,
		"/api/tags/":     false,
		"/api/workloads": false,
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, skipped, SkipLogging(c), path)
	}
}
