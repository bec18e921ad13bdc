package cache

import (
	"context"
)

// A noop cache doesn't actually cache anything, but provides an implementation
// of the caching interfaces
type noOpCache struct {
}

func NewNoOpCache() *noOpCache {
	return &noOpCache{}
}

// GetTagList a NoOp version to fetch a cached tag-list response
func (c *noOpCache) GetTagList(ctx context.Context, query string) ([]byte, error) {
	return nil, NotFound
}

// SetTagList a NoOp version to store a tag-list response
func (c *noOpCache) SetTagList(ctx context.Context, query string, body []byte) error {
	return nil
}
