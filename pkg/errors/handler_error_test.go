package errors

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(http.StatusBadRequest, "title", "detail")
	assert.Len(t, resp.Errors, 1)
	assert.Equal(t, http.StatusBadRequest, resp.Errors[0].Status)
	assert.Equal(t, "title", resp.Errors[0].Title)
	assert.Equal(t, "detail", resp.Errors[0].Detail)
	assert.Contains(t, resp.Error(), "code=400")
}

func TestNewErrorResponseFromEchoError(t *testing.T) {
	resp := NewErrorResponseFromEchoError(echo.NewHTTPError(http.StatusNotFound, "missing"))
	assert.Len(t, resp.Errors, 1)
	assert.Equal(t, http.StatusNotFound, resp.Errors[0].Status)
	assert.Equal(t, "missing", resp.Errors[0].Detail)
}

func TestHttpCodeForClientError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HttpCodeForClientError(http.StatusNotFound))
	assert.Equal(t, http.StatusBadRequest, HttpCodeForClientError(http.StatusBadRequest))
	assert.Equal(t, http.StatusBadGateway, HttpCodeForClientError(http.StatusInternalServerError))
	assert.Equal(t, http.StatusBadGateway, HttpCodeForClientError(0))
}

func TestGetGeneralResponseCode(t *testing.T) {
	assert.Equal(t, 200, GetGeneralResponseCode(ErrorResponse{}))
	assert.Equal(t, 404, GetGeneralResponseCode(NewErrorResponse(404, "", "")))

	mixed := ErrorResponse{Errors: []HandlerError{
		{Status: 400},
		{Status: 502},
	}}
	assert.Equal(t, 500, GetGeneralResponseCode(mixed))
}
