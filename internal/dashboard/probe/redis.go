package probe

import (
	"VCS_Sandbox_Dashboard/pkg/access"
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisProbe checks the cache service directly instead of going through the primary service.
type RedisProbe struct {
	client redis.Cmdable
}

func NewRedisProbe(client redis.Cmdable) *RedisProbe {
	return &RedisProbe{client: client}
}

func (p *RedisProbe) Check(ctx context.Context) (any, error) {
	res, err := p.client.Ping(ctx).Result()
	if err != nil {
		return nil, access.NewNoResponseError(fmt.Errorf("RedisProbe.Check: %w", err))
	}
	return res, nil
}
