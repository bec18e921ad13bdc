// Package searchmenu resolves the search menu inputs into exactly one of
// three views: a tool result, grouped results or the empty state.
package searchmenu

import (
	"fmt"

	"github.com/redhatinsights/inventory-search-backend/pkg/api"
)

const (
	externalGroupLabel = "External Results"
	sharedLocalLabel   = "Search Results"
)

// Resolve picks the view for the given menu inputs, in priority order:
// a present tool result wins outright and both item lists are ignored;
// otherwise any non-empty groups render, external first, with a divider
// only when both are present; the empty state renders only when nothing
// is there and no fetch is in flight.
func Resolve(req api.SearchMenuRequest) api.SearchMenuView {
	if req.ToolResult != nil {
		return api.SearchMenuView{
			Type:       api.SearchMenuViewToolResult,
			ToolResult: *req.ToolResult,
		}
	}

	view := api.SearchMenuView{Type: api.SearchMenuViewResults}
	if len(req.ExternalItems) > 0 {
		view.Groups = append(view.Groups, api.SearchMenuGroup{
			Label: externalGroupLabel,
			Items: req.ExternalItems,
		})
	}
	if len(req.LocalItems) > 0 {
		view.Groups = append(view.Groups, api.SearchMenuGroup{
			Label: localGroupLabel(len(req.LocalItems), len(req.ExternalItems) > 0),
			Items: req.LocalItems,
		})
	}
	view.Divider = len(req.ExternalItems) > 0 && len(req.LocalItems) > 0

	if len(view.Groups) == 0 {
		if req.IsFetching {
			return view
		}
		return api.SearchMenuView{Type: api.SearchMenuViewEmpty}
	}
	return view
}

// localGroupLabel reads "Search Results" when an external group renders
// above it and "Top N results" when the local group stands alone.
func localGroupLabel(localCount int, hasExternal bool) string {
	if hasExternal {
		return sharedLocalLabel
	}
	return fmt.Sprintf("Top %d results", localCount)
}
