package handler

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redhatinsights/inventory-search-backend/pkg/clients/inventory_client"
	"github.com/redhatinsights/inventory-search-backend/pkg/config"
	"github.com/redhatinsights/inventory-search-backend/pkg/instrumentation"
)

// serveRouter serves one request through an echo instance wired the way
// ConfigureEcho does, with routes registered against the given mock client.
func serveRouter(req *http.Request, client inventory_client.InventoryClient) (int, []byte, error) {
	router := echo.New()
	router.HTTPErrorHandler = config.CustomHTTPErrorHandler

	metrics := instrumentation.NewMetrics(prometheus.NewRegistry())
	group := router.Group(fullRootPath())
	RegisterTagRoutes(group, &client)
	RegisterSapSidRoutes(group, &client)
	RegisterWorkloadRoutes(group, &client, metrics)
	RegisterFilterCategoryRoutes(group)
	RegisterSearchMenuRoutes(group, metrics)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	response := rr.Result()
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	return response.StatusCode, body, err
}
