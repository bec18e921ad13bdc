// Package cache provides a response cache for upstream inventory queries.
package cache

import (
	"context"
	"errors"

	"github.com/redhatinsights/inventory-search-backend/pkg/config"
	"github.com/rs/zerolog/log"
)

var NotFound = errors.New("not found in cache")

type Cache interface {
	// GetTagList fetches a cached raw tag-list response for the current
	// identity and the given encoded query
	GetTagList(ctx context.Context, query string) ([]byte, error)
	// SetTagList stores a raw tag-list response
	SetTagList(ctx context.Context, query string, body []byte) error
}

func Initialize() Cache {
	if config.Get().Clients.Redis.Host != "" {
		return NewRedisCache()
	} else {
		log.Logger.Warn().Msg("No application cache in use")
		return NewNoOpCache()
	}
}
