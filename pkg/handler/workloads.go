package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redhatinsights/inventory-search-backend/pkg/clients/inventory_client"
	"github.com/redhatinsights/inventory-search-backend/pkg/instrumentation"
)

type WorkloadHandler struct {
	client  inventory_client.InventoryClient
	metrics *instrumentation.Metrics
}

func RegisterWorkloadRoutes(group *echo.Group, client *inventory_client.InventoryClient, metrics *instrumentation.Metrics) {
	wh := WorkloadHandler{client: *client, metrics: metrics}

	group.GET("/workloads/", wh.checkWorkloads)
}

// CheckWorkloads godoc
// @Summary      Probe workload existence
// @ID           checkWorkloads
// @Description  Check which workload types exist in the org's inventory. The three probes run together; a single failing probe fails the call.
// @Tags         workloads
// @Accept       json
// @Produce      json
// @Param        workloads[] query []string false "Selected workload categories" collectionFormat(multi)
// @Param        sids[] query []string false "Selected SAP system IDs" collectionFormat(multi)
// @Success      200 {object} api.WorkloadsResponse
// @Failure      401 {object} ce.ErrorResponse
// @Failure      502 {object} ce.ErrorResponse
// @Router       /workloads/ [get]
func (wh *WorkloadHandler) checkWorkloads(c echo.Context) error {
	selection := ParseSelection(c)

	start := time.Now()
	resp, err := wh.client.WorkloadsCheck(c.Request().Context(), selection)
	if wh.metrics != nil {
		wh.metrics.WorkloadProbeLatency.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return clientErrorResponse("Error probing workloads", http.StatusBadGateway, err)
	}

	return c.JSON(http.StatusOK, resp)
}
