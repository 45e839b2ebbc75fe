package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/inotebook/internal/domain/entity"
	"github.com/oksasatya/inotebook/pkg/helpers"
)

const identityKeyPrefix = "user:identity:"

// IdentityCache keeps identity views in redis as JSON.
type IdentityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewIdentityCache(rdb *redis.Client, ttl time.Duration) *IdentityCache {
	return &IdentityCache{rdb: rdb, ttl: ttl}
}

func identityKey(id entity.UserID) string {
	return identityKeyPrefix + id.String()
}

func (c *IdentityCache) Get(ctx context.Context, id entity.UserID) (*entity.UserView, bool, error) {
	var view entity.UserView
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, identityKey(id), &view)
	if err != nil || !ok {
		return nil, false, err
	}
	return &view, true, nil
}

func (c *IdentityCache) Set(ctx context.Context, view *entity.UserView) error {
	return helpers.RedisSetJSON(ctx, c.rdb, identityKey(view.ID), view, c.ttl)
}
