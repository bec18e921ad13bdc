package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redhatinsights/inventory-search-backend/pkg/config"
	"github.com/redhatinsights/platform-go-middlewares/v2/identity"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *redis.Client
}

func NewRedisCache() *redisCache {
	c := config.Get()
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisUrl(),
		Username: c.Clients.Redis.Username,
		Password: c.Clients.Redis.Password,
		DB:       c.Clients.Redis.DB,
	})
	return &redisCache{
		client: client,
	}
}

// tagListKey scopes cached tag pages to the requesting org, two orgs
// never see each other's inventory
func tagListKey(ctx context.Context, query string) string {
	id := identity.GetIdentity(ctx)
	return fmt.Sprintf("tags:%v:%v", id.Identity.OrgID, query)
}

func (c *redisCache) GetTagList(ctx context.Context, query string) ([]byte, error) {
	return c.get(ctx, tagListKey(ctx, query))
}

func (c *redisCache) SetTagList(ctx context.Context, query string, body []byte) error {
	c.client.Set(ctx, tagListKey(ctx, query), body, config.Get().Clients.Redis.Expiration)
	return nil
}

func (c *redisCache) get(ctx context.Context, key string) ([]byte, error) {
	cmd := c.client.Get(ctx, key)
	if errors.Is(cmd.Err(), redis.Nil) {
		return nil, NotFound
	} else if cmd.Err() != nil {
		return nil, fmt.Errorf("redis error: %w", cmd.Err())
	}

	buf, err := cmd.Bytes()
	if err != nil {
		return nil, fmt.Errorf("redis bytes conversion error: %w", err)
	}
	return buf, err
}
