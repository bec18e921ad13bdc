package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/redhatinsights/inventory-search-backend/pkg/api"
	"github.com/redhatinsights/inventory-search-backend/pkg/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoContext(target string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestParsePagination(t *testing.T) {
	page := ParsePagination(echoContext("/tags/"))
	assert.Equal(t, DefaultLimit, page.Limit)
	assert.Equal(t, DefaultOffset, page.Offset)

	page = ParsePagination(echoContext("/tags/?limit=20&offset=40"))
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 40, page.Offset)

	page = ParsePagination(echoContext("/tags/?limit=-5"))
	assert.Equal(t, DefaultLimit, page.Limit)

	page = ParsePagination(echoContext("/tags/?limit=9000"))
	assert.Equal(t, MaxLimit, page.Limit)
}

func TestParseSelection(t *testing.T) {
	sel := ParseSelection(echoContext("/workloads/?workloads[]=SAP&workloads[]=Microsoft+SQL&workloads[]=Bogus&sids[]=S01&search=hana"))
	assert.True(t, sel.Workloads[filter.WorkloadSAP].Selected)
	assert.True(t, sel.Workloads[filter.WorkloadMssql].Selected)
	assert.False(t, sel.Workloads["Bogus"].Selected)
	assert.Equal(t, []string{"S01"}, sel.SIDs)
	assert.Equal(t, "hana", sel.Search)

	sel = ParseSelection(echoContext("/workloads/"))
	assert.Nil(t, sel.Workloads)
	assert.Empty(t, sel.SIDs)
	assert.Equal(t, DefaultSearch, sel.Search)
}

func TestPageNumber(t *testing.T) {
	assert.Equal(t, 1, pageNumber(api.PaginationData{Limit: 100, Offset: 0}))
	assert.Equal(t, 1, pageNumber(api.PaginationData{Limit: 100, Offset: 50}))
	assert.Equal(t, 3, pageNumber(api.PaginationData{Limit: 20, Offset: 40}))
}

func TestSetCollectionResponseMetadata(t *testing.T) {
	c := echoContext("/tags/?limit=10&offset=10")
	response := setCollectionResponseMetadata(&api.TagCollectionResponse{}, c, 35)

	collection, ok := response.(*api.TagCollectionResponse)
	require.True(t, ok)
	assert.Equal(t, int64(35), collection.Meta.Count)
	assert.Equal(t, 10, collection.Meta.Limit)
	assert.Equal(t, 10, collection.Meta.Offset)
	assert.Contains(t, collection.Links.First, "offset=0")
	assert.Contains(t, collection.Links.Next, "offset=20")
	assert.Contains(t, collection.Links.Prev, "offset=0")
	assert.Contains(t, collection.Links.Last, "offset=30")
}
