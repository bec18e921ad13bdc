package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redhatinsights/inventory-search-backend/pkg/api"
	"github.com/redhatinsights/inventory-search-backend/pkg/filter"
)

type FilterCategoryHandler struct{}

func RegisterFilterCategoryRoutes(group *echo.Group) {
	fh := FilterCategoryHandler{}

	group.GET("/filter_categories/", fh.listFilterCategories)
}

// workloadCategories is the static schema the filter-menu renderer
// consumes. Category and item ids are stable, labels and decorations are
// display hints only.
var workloadCategories = api.FilterCategoriesResponse{
	Categories: []api.FilterCategory{
		{
			ID:   "workloads",
			Name: "Workloads",
			Groups: []api.FilterGroup{
				{
					Items: []api.FilterItem{
						{ID: filter.WorkloadSAP, Label: "SAP", Icon: "sap"},
						{ID: filter.WorkloadAnsible, Label: "Ansible Automation Platform", SecondaryLabel: "AAP", Color: "#EE0000", Icon: "ansible"},
						{ID: filter.WorkloadMssql, Label: "Microsoft SQL", SecondaryLabel: "MSSQL", Icon: "microsoft"},
					},
				},
			},
		},
		{
			ID:   "sap_sids",
			Name: "SAP IDs (SID)",
			Groups: []api.FilterGroup{
				{
					Label: "SAP Systems",
					Items: []api.FilterItem{},
				},
			},
		},
	},
}

// ListFilterCategories godoc
// @Summary      List filter categories
// @ID           listFilterCategories
// @Description  Serve the filter category schema rendered by the filter menu.
// @Tags         filter_categories
// @Accept       json
// @Produce      json
// @Success      200 {object} api.FilterCategoriesResponse
// @Failure      401 {object} ce.ErrorResponse
// @Router       /filter_categories/ [get]
func (fh *FilterCategoryHandler) listFilterCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, workloadCategories)
}
