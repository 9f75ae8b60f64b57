package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrRoleNotCached    = errors.New("role not cached")
	ErrRedisUnavailable = errors.New("redis unavailable")
)

const (
	RoleIDPrefix = "role:name"
	RoleIDTTL    = 10 * time.Minute
)

// RoleCache 角色 id 按名字的缓存。角色目录不可变，miss 或 redis 故障时回源 MySQL。
type RoleCache struct{}

func (r *RoleCache) GetRoleID(name string) (string, error) {
	if Client == nil {
		return "", ErrRedisUnavailable
	}
	key := fmt.Sprintf("%s:%s", RoleIDPrefix, name)
	id, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrRoleNotCached
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return id, nil
}

func (r *RoleCache) SetRoleID(name, id string) error {
	if Client == nil {
		return ErrRedisUnavailable
	}
	key := fmt.Sprintf("%s:%s", RoleIDPrefix, name)
	if err := Client.Set(context.Background(), key, id, RoleIDTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}
