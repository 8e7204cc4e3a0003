package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

//go:generate mockgen -source=cache.go -destination=../mocks/backend/mock_cache.go -package=mockbackend

// CacheClient manages keys in the cache service through the primary service.
type CacheClient interface {
	Set(ctx context.Context, key string, value string) (Response, error)
	SetWithTTL(ctx context.Context, key string, value string, seconds int64) (Response, error)
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) (Response, error)
	Keys(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, key string) (bool, error)
	Increment(ctx context.Context, key string, delta int64) (int64, error)
	Decrement(ctx context.Context, key string, delta int64) (int64, error)
	Expire(ctx context.Context, key string, seconds int64) (Response, error)
	TTL(ctx context.Context, key string) (int64, error)
}

type cacheClient struct {
	c *Client
}

func (*cacheClient) path(op string, key string) string {
	return fmt.Sprintf("%s/redis/%s/%s", ServiceOnePrefix, op, url.PathEscape(key))
}

func (r *cacheClient) Set(ctx context.Context, key string, value string) (Response, error) {
	return r.c.Post(ctx, r.path("set", key), []byte(value))
}

func (r *cacheClient) SetWithTTL(ctx context.Context, key string, value string, seconds int64) (Response, error) {
	return r.c.Post(ctx, fmt.Sprintf("%s/ttl/%d", r.path("set", key), seconds), []byte(value))
}

func (r *cacheClient) Get(ctx context.Context, key string) (string, error) {
	res, err := r.c.Get(ctx, r.path("get", key))
	if err != nil {
		return "", err
	}
	return res.Text(), nil
}

func (r *cacheClient) Delete(ctx context.Context, key string) (Response, error) {
	return r.c.Do(ctx, http.MethodDelete, r.path("delete", key), nil)
}

func (r *cacheClient) Keys(ctx context.Context) ([]string, error) {
	res, err := r.c.Get(ctx, ServiceOnePrefix+"/redis/keys")
	if err != nil {
		return nil, err
	}
	keys := []string{}
	if err = res.Decode(&keys); err != nil {
		return nil, fmt.Errorf("CacheClient.Keys: %w", err)
	}
	return keys, nil
}

func (r *cacheClient) Exists(ctx context.Context, key string) (bool, error) {
	res, err := r.c.Get(ctx, r.path("exists", key))
	if err != nil {
		return false, err
	}
	exists, err := strconv.ParseBool(strings.TrimSpace(res.Text()))
	if err != nil {
		return false, fmt.Errorf("CacheClient.Exists: %w", err)
	}
	return exists, nil
}

func (r *cacheClient) Increment(ctx context.Context, key string, delta int64) (int64, error) {
	return r.counter(ctx, "increment", key, delta)
}

func (r *cacheClient) Decrement(ctx context.Context, key string, delta int64) (int64, error) {
	return r.counter(ctx, "decrement", key, delta)
}

// counter calls the path without a delta segment when delta is 0.
func (r *cacheClient) counter(ctx context.Context, op string, key string, delta int64) (int64, error) {
	path := r.path(op, key)
	if delta != 0 {
		path = fmt.Sprintf("%s/%d", path, delta)
	}
	res, err := r.c.Post(ctx, path, nil)
	if err != nil {
		return 0, err
	}
	return parseInt(res)
}

func (r *cacheClient) Expire(ctx context.Context, key string, seconds int64) (Response, error) {
	return r.c.Do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.path("expire", key), seconds), nil)
}

func (r *cacheClient) TTL(ctx context.Context, key string) (int64, error) {
	res, err := r.c.Get(ctx, r.path("ttl", key))
	if err != nil {
		return 0, err
	}
	return parseInt(res)
}

func parseInt(res Response) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(res.Text()), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("CacheClient: unexpected body %q: %w", res.Text(), err)
	}
	return v, nil
}

func NewCacheClient(c *Client) CacheClient {
	return &cacheClient{c: c}
}
