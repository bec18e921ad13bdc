package api

// FilterItem is one selectable entry of a filter group
type FilterItem struct {
	ID             string `json:"id"`                        // Stable identifier of the filter entry
	Label          string `json:"label"`                     // Display label
	SecondaryLabel string `json:"secondary_label,omitempty"` // Optional label shown next to the primary one
	Color          string `json:"color,omitempty"`           // Optional display color
	Icon           string `json:"icon,omitempty"`            // Optional icon name
}

// FilterGroup is a labeled run of filter items within a category
type FilterGroup struct {
	Label string       `json:"label,omitempty"` // Optional group label
	Items []FilterItem `json:"items"`           // Entries of the group
}

// FilterCategory is a named section of the filter menu
type FilterCategory struct {
	ID     string        `json:"id"`   // Stable identifier of the category
	Name   string        `json:"name"` // Display name of the category
	Groups []FilterGroup `json:"groups"`
}

// FilterCategoriesResponse is the schema the filter menu renderer consumes
type FilterCategoriesResponse struct {
	Categories []FilterCategory `json:"categories"`
}
