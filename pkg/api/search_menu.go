package api

// SearchMenuItem is one display record of the search menu. Items are
// request scoped, a new search replaces the previous set.
type SearchMenuItem struct {
	ID       string `json:"id,omitempty"`       // Optional stable identifier
	Label    string `json:"label"`              // Display label
	External bool   `json:"external,omitempty"` // True for results sourced from an external (MCP) tool
}

// SearchMenuRequest carries the inputs the menu is rendered from
type SearchMenuRequest struct {
	LocalItems    []SearchMenuItem `json:"local_items"`               // Results from the local search index
	ExternalItems []SearchMenuItem `json:"external_items"`            // Results from external (MCP) tools
	ToolResult    *string          `json:"tool_result,omitempty"`     // Singleton tool result, overrides both item lists when set
	IsFetching    bool             `json:"is_fetching"`               // True while a search is in flight
}

type SearchMenuViewType string

const (
	SearchMenuViewToolResult SearchMenuViewType = "tool_result"
	SearchMenuViewResults    SearchMenuViewType = "results"
	SearchMenuViewEmpty      SearchMenuViewType = "empty"
)

// SearchMenuGroup is one labeled run of results in the rendered menu
type SearchMenuGroup struct {
	Label string           `json:"label,omitempty"` // Group heading
	Items []SearchMenuItem `json:"items"`
}

// SearchMenuView is the resolved menu: exactly one of the three view
// types, with groups populated only for the results view.
type SearchMenuView struct {
	Type       SearchMenuViewType `json:"type"`
	ToolResult string             `json:"tool_result,omitempty"` // Text of the tool result view
	Groups     []SearchMenuGroup  `json:"groups,omitempty"`      // External group first when present
	Divider    bool               `json:"divider,omitempty"`     // Divider between external and local groups
}
