package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redhatinsights/inventory-search-backend/pkg/api"
	"github.com/redhatinsights/inventory-search-backend/pkg/clients/inventory_client"
	"github.com/redhatinsights/inventory-search-backend/pkg/filter"
)

type TagHandler struct {
	client inventory_client.InventoryClient
}

func RegisterTagRoutes(group *echo.Group, client *inventory_client.InventoryClient) {
	th := TagHandler{client: *client}

	group.GET("/tags/", th.listTags)
}

// ListTags godoc
// @Summary      List host tags
// @ID           listTags
// @Description  List structured host tags matching the workload selection, ordered by tag name ascending.
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        limit query int false "Number of items to return"
// @Param        offset query int false "Starting point for retrieving items"
// @Param        search query string false "Term to filter tags by"
// @Param        workloads[] query []string false "Selected workload categories" collectionFormat(multi)
// @Param        sids[] query []string false "Selected SAP system IDs" collectionFormat(multi)
// @Param        tags query []string false "Already selected tags" collectionFormat(multi)
// @Success      200 {object} api.TagCollectionResponse
// @Failure      400 {object} ce.ErrorResponse
// @Failure      401 {object} ce.ErrorResponse
// @Failure      502 {object} ce.ErrorResponse
// @Router       /tags/ [get]
func (th *TagHandler) listTags(c echo.Context) error {
	page := ParsePagination(c)
	selection := ParseSelection(c)

	params := inventory_client.ListParams{
		Tags:           c.Request().Form["tags"],
		Filter:         filter.BuildFilter(selection),
		PerPage:        page.Limit,
		Page:           pageNumber(page),
		Search:         selection.Search,
		RegisteredWith: c.QueryParam("registered_with"),
	}

	resp, statusCode, err := th.client.ListTags(c.Request().Context(), params)
	if err != nil {
		return clientErrorResponse("Error listing tags", statusCode, err)
	}

	collection := api.TagCollectionResponse{Data: resp.Results}
	setCollectionResponseMetadata(&collection, c, resp.Total)
	return c.JSON(http.StatusOK, collection)
}
