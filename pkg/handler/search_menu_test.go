package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/redhatinsights/inventory-search-backend/pkg/api"
	"github.com/redhatinsights/inventory-search-backend/pkg/clients/inventory_client"
	"github.com/redhatinsights/inventory-search-backend/pkg/config"
	"github.com/redhatinsights/inventory-search-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postSearchMenu(t *testing.T, request api.SearchMenuRequest) (int, api.SearchMenuView) {
	t.Helper()

	payload, err := json.Marshal(request)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, fullRootPath()+"/search_menu/", strings.NewReader(string(payload)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	code, body, err := serveRouter(req, inventory_client.NewMockInventoryClient(t))
	require.NoError(t, err)

	var view api.SearchMenuView
	require.NoError(t, json.Unmarshal(body, &view))
	return code, view
}

func TestResolveMenuToolResultWins(t *testing.T) {
	code, view := postSearchMenu(t, api.SearchMenuRequest{
		ToolResult: utils.Ptr("42 hosts run SAP"),
		LocalItems: []api.SearchMenuItem{{Label: "host-1"}},
	})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, api.SearchMenuViewToolResult, view.Type)
	assert.Equal(t, "42 hosts run SAP", view.ToolResult)
	assert.Empty(t, view.Groups)
}

func TestResolveMenuGroupedResults(t *testing.T) {
	code, view := postSearchMenu(t, api.SearchMenuRequest{
		LocalItems:    []api.SearchMenuItem{{Label: "host-1"}},
		ExternalItems: []api.SearchMenuItem{{Label: "doc-1", External: true}},
	})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, api.SearchMenuViewResults, view.Type)
	require.Len(t, view.Groups, 2)
	assert.Equal(t, "External Results", view.Groups[0].Label)
	assert.Equal(t, "Search Results", view.Groups[1].Label)
	assert.True(t, view.Divider)
}

func TestResolveMenuEmpty(t *testing.T) {
	code, view := postSearchMenu(t, api.SearchMenuRequest{})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, api.SearchMenuViewEmpty, view.Type)
}

func TestResolveMenuBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, fullRootPath()+"/search_menu/", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	code, body, err := serveRouter(req, inventory_client.NewMockInventoryClient(t))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(body), "Error binding parameters")
}

func TestStreamToolResult(t *testing.T) {
	originalInterval := config.Get().Options.TypewriterIntervalMs
	config.Get().Options.TypewriterIntervalMs = 1
	defer func() {
		config.Get().Options.TypewriterIntervalMs = originalInterval
	}()

	req := httptest.NewRequest(http.MethodGet, fullRootPath()+"/search_menu/tool_result/?text=hi", nil)

	code, body, err := serveRouter(req, inventory_client.NewMockInventoryClient(t))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "data: h\n\ndata: hi\n\n", string(body))
}

func TestStreamToolResultMissingText(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, fullRootPath()+"/search_menu/tool_result/", nil)

	code, body, err := serveRouter(req, inventory_client.NewMockInventoryClient(t))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(body), "Missing parameter")
}
