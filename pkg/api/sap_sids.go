package api

// SapSidItem holds one SAP system ID and its host count
type SapSidItem struct {
	Value string `json:"value"` // Three character SAP system identifier
	Count int64  `json:"count"` // Number of hosts reporting this SID under the active filter
}

// SapSidCollectionResponse holds a page of SAP system IDs
type SapSidCollectionResponse struct {
	Data  []SapSidItem     `json:"data"`  // List of SAP system IDs
	Meta  ResponseMetadata `json:"meta"`  // Metadata about the request
	Links Links            `json:"links"` // Links to other pages of results
}

func (s *SapSidCollectionResponse) SetMetadata(meta ResponseMetadata, links Links) {
	s.Meta = meta
	s.Links = links
}
