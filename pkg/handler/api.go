package handler

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redhatinsights/inventory-search-backend/pkg/api"
	"github.com/redhatinsights/inventory-search-backend/pkg/clients/inventory_client"
	"github.com/redhatinsights/inventory-search-backend/pkg/config"
	ce "github.com/redhatinsights/inventory-search-backend/pkg/errors"
	"github.com/redhatinsights/inventory-search-backend/pkg/filter"
	"github.com/redhatinsights/inventory-search-backend/pkg/instrumentation"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

const DefaultOffset = 0
const DefaultLimit = 100
const DefaultSearch = ""
const MaxLimit = 200
const ApiVersion = "1.0"
const ApiVersionMajor = "1"

// nolint: lll
// @title InventorySearchBackend
// @version v1.0.0
// @description API for browsing and filtering host inventory on [console.redhat.com](https://console.redhat.com)
// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0
// @Host api.example.com
// @BasePath /api/inventory-search/v1.0/
// @query.collection.format multi
// @securityDefinitions.apikey RhIdentity
// @in header
// @name x-rh-identity

func RegisterRoutes(engine *echo.Echo, metrics *instrumentation.Metrics) {
	client, err := inventory_client.NewInventoryClient(metrics)
	if err != nil {
		panic(err)
	}

	paths := []string{fullRootPath(), majorRootPath()}
	for i := 0; i < len(paths); i++ {
		group := engine.Group(paths[i])
		RegisterTagRoutes(group, &client)
		RegisterSapSidRoutes(group, &client)
		RegisterWorkloadRoutes(group, &client, metrics)
		RegisterFilterCategoryRoutes(group)
		RegisterSearchMenuRoutes(group, metrics)
	}
}

func RegisterPing(engine *echo.Echo) {
	engine.GET("/ping", ping)
	engine.GET("/ping/", ping)
}

func ping(c echo.Context) error {
	return c.JSON(200, echo.Map{
		"message": "pong",
	})
}

func rootPrefix() string {
	pathPrefix, present := os.LookupEnv("PATH_PREFIX")
	if !present {
		pathPrefix = "api"
	}

	appName, present := os.LookupEnv("APP_NAME")
	if !present {
		appName = config.DefaultAppName
	}
	return filepath.Join("/", pathPrefix, appName)
}

func fullRootPath() string {
	return filepath.Join(rootPrefix(), "v"+ApiVersion)
}
func majorRootPath() string {
	return filepath.Join(rootPrefix(), "v"+ApiVersionMajor)
}

func createLink(c echo.Context, offset int) string {
	req := c.Request()
	q := req.URL.Query()
	page := ParsePagination(c)

	q.Set("limit", strconv.Itoa(page.Limit))
	q.Set("offset", strconv.Itoa(offset))

	params, _ := url.PathUnescape(q.Encode())
	return fmt.Sprintf("%v?%v", req.URL.Path, params)
}

// setCollectionResponseMetadata determines metadata of collection response based on context and collection size.
// Returns collection response with updated metadata.
func setCollectionResponseMetadata(collection api.CollectionMetadataSettable, c echo.Context, totalCount int64) api.CollectionMetadataSettable {
	page := ParsePagination(c)
	var lastPage int
	if int(totalCount) > 0 && (int(totalCount)%page.Limit) == 0 {
		lastPage = int(totalCount) - page.Limit
	} else {
		lastPage = int(totalCount) - int(totalCount)%page.Limit
	}
	links := api.Links{
		First: createLink(c, 0),
		Last:  createLink(c, lastPage),
	}
	if page.Offset+page.Limit < int(totalCount) {
		links.Next = createLink(c, page.Offset+page.Limit)
	}
	if page.Offset-page.Limit >= 0 {
		links.Prev = createLink(c, page.Offset-page.Limit)
	}

	collection.SetMetadata(api.ResponseMetadata{
		Count:  totalCount,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, links)
	return collection
}

func ParsePagination(c echo.Context) api.PaginationData {
	pageData := api.PaginationData{Limit: DefaultLimit, Offset: DefaultOffset}
	err := echo.QueryParamsBinder(c).
		Int("limit", &pageData.Limit).
		Int("offset", &pageData.Offset).
		BindError()

	if err != nil {
		log.Error().Err(err).Msg("Failed to bind pagination.")
	}

	if pageData.Limit <= 0 {
		pageData.Limit = DefaultLimit
	}
	if pageData.Limit > MaxLimit {
		pageData.Limit = MaxLimit
	}
	return pageData
}

// ParseSelection reads the workload filter state from query parameters:
// repeated workloads[] and sids[] values plus a free-text search term.
// Unknown workload names are dropped.
func ParseSelection(c echo.Context) filter.Selection {
	selection := filter.Selection{Search: DefaultSearch}
	err := echo.QueryParamsBinder(c).
		String("search", &selection.Search).
		BindError()
	if err != nil {
		log.Error().Err(err).Msg("Error parsing selection")
	}

	err = c.Request().ParseForm()
	if err != nil {
		log.Error().Err(err).Msg("Error parsing selection")
		return selection
	}
	q := c.Request().Form

	known := []string{filter.WorkloadSAP, filter.WorkloadAnsible, filter.WorkloadMssql}
	for _, name := range q["workloads[]"] {
		if !slices.Contains(known, name) {
			continue
		}
		if selection.Workloads == nil {
			selection.Workloads = map[string]filter.Workload{}
		}
		selection.Workloads[name] = filter.Workload{Selected: true}
	}
	selection.SIDs = q["sids[]"]
	return selection
}

// pageNumber converts limit/offset paging into the 1-based page the
// inventory API expects.
func pageNumber(page api.PaginationData) int {
	return page.Offset/page.Limit + 1
}

func clientErrorResponse(title string, statusCode int, err error) error {
	return ce.NewErrorResponse(ce.HttpCodeForClientError(statusCode), title, err.Error())
}
