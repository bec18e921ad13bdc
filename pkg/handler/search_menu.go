package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redhatinsights/inventory-search-backend/pkg/api"
	"github.com/redhatinsights/inventory-search-backend/pkg/config"
	ce "github.com/redhatinsights/inventory-search-backend/pkg/errors"
	"github.com/redhatinsights/inventory-search-backend/pkg/instrumentation"
	"github.com/redhatinsights/inventory-search-backend/pkg/searchmenu"
)

type SearchMenuHandler struct {
	metrics *instrumentation.Metrics
}

func RegisterSearchMenuRoutes(group *echo.Group, metrics *instrumentation.Metrics) {
	sh := SearchMenuHandler{metrics: metrics}

	group.POST("/search_menu/", sh.resolveMenu)
	group.GET("/search_menu/tool_result/", sh.streamToolResult)
}

// ResolveSearchMenu godoc
// @Summary      Resolve the search menu view
// @ID           resolveSearchMenu
// @Description  Pick which of the three search menu views renders for the given inputs.
// @Tags         search_menu
// @Accept       json
// @Produce      json
// @Param        body body api.SearchMenuRequest true "request body"
// @Success      200 {object} api.SearchMenuView
// @Failure      400 {object} ce.ErrorResponse
// @Failure      401 {object} ce.ErrorResponse
// @Router       /search_menu/ [post]
func (sh *SearchMenuHandler) resolveMenu(c echo.Context) error {
	var request api.SearchMenuRequest

	if err := c.Bind(&request); err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error binding parameters", err.Error())
	}

	view := searchmenu.Resolve(request)
	sh.metrics.RecordSearchMenuView(string(view.Type))

	return c.JSON(http.StatusOK, view)
}

// StreamToolResult godoc
// @Summary      Stream a tool result
// @ID           streamToolResult
// @Description  Reveal a tool result one character at a time as server-sent events, on a fixed per-character delay. Closing the connection cancels the reveal.
// @Tags         search_menu
// @Produce      text/event-stream
// @Param        text query string true "Tool result text to reveal"
// @Success      200
// @Failure      400 {object} ce.ErrorResponse
// @Failure      401 {object} ce.ErrorResponse
// @Router       /search_menu/tool_result/ [get]
func (sh *SearchMenuHandler) streamToolResult(c echo.Context) error {
	text := c.QueryParam("text")
	if text == "" {
		return ce.NewErrorResponse(http.StatusBadRequest, "Missing parameter", "text must not be empty")
	}

	interval := time.Duration(config.Get().Options.TypewriterIntervalMs) * time.Millisecond

	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().WriteHeader(http.StatusOK)

	typewriter := searchmenu.NewTypewriter(interval)
	defer typewriter.Stop()

	done := typewriter.Start(c.Request().Context(), text, func(revealed string) {
		fmt.Fprintf(c.Response(), "data: %s\n\n", revealed)
		c.Response().Flush()
	})
	<-done

	return nil
}
