package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redhatinsights/inventory-search-backend/pkg/api"
	"github.com/redhatinsights/inventory-search-backend/pkg/clients/inventory_client"
	"github.com/redhatinsights/inventory-search-backend/pkg/filter"
)

type SapSidHandler struct {
	client inventory_client.InventoryClient
}

func RegisterSapSidRoutes(group *echo.Group, client *inventory_client.InventoryClient) {
	sh := SapSidHandler{client: *client}

	group.GET("/sap_sids/", sh.listSapSids)
}

// ListSapSids godoc
// @Summary      List SAP system IDs
// @ID           listSapSids
// @Description  List SAP system IDs present in the org's inventory under the workload selection.
// @Tags         sap_sids
// @Accept       json
// @Produce      json
// @Param        limit query int false "Number of items to return"
// @Param        offset query int false "Starting point for retrieving items"
// @Param        search query string false "Term to filter SIDs by"
// @Param        workloads[] query []string false "Selected workload categories" collectionFormat(multi)
// @Param        sids[] query []string false "Selected SAP system IDs" collectionFormat(multi)
// @Success      200 {object} api.SapSidCollectionResponse
// @Failure      400 {object} ce.ErrorResponse
// @Failure      401 {object} ce.ErrorResponse
// @Failure      502 {object} ce.ErrorResponse
// @Router       /sap_sids/ [get]
func (sh *SapSidHandler) listSapSids(c echo.Context) error {
	page := ParsePagination(c)
	selection := ParseSelection(c)

	params := inventory_client.ListParams{
		Tags:    c.Request().Form["tags"],
		Filter:  filter.BuildFilter(selection),
		PerPage: page.Limit,
		Page:    pageNumber(page),
		Search:  selection.Search,
	}

	resp, statusCode, err := sh.client.ListSapSids(c.Request().Context(), params)
	if err != nil {
		return clientErrorResponse("Error listing SAP system IDs", statusCode, err)
	}

	collection := api.SapSidCollectionResponse{Data: resp.Results}
	setCollectionResponseMetadata(&collection, c, resp.Total)
	return c.JSON(http.StatusOK, collection)
}
