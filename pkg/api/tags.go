package api

// Tag is a structured host tag as reported by the inventory API
type Tag struct {
	Namespace string `json:"namespace"` // Namespace the tag lives in, e.g. insights-client
	Key       string `json:"key"`       // Tag key
	Value     string `json:"value"`     // Tag value, may be empty
}

// TagItem holds one tag and the number of matching hosts carrying it
type TagItem struct {
	Tag   Tag   `json:"tag"`
	Count int64 `json:"count"` // Number of hosts tagged with this tag under the active filter
}

// TagCollectionResponse holds a page of tags returned to the filter menu
type TagCollectionResponse struct {
	Data  []TagItem        `json:"data"`  // List of tags
	Meta  ResponseMetadata `json:"meta"`  // Metadata about the request
	Links Links            `json:"links"` // Links to other pages of results
}

func (t *TagCollectionResponse) SetMetadata(meta ResponseMetadata, links Links) {
	t.Meta = meta
	t.Links = links
}
