package handler

import (
	"VCS_Sandbox_Dashboard/internal/dashboard/api/dto/request"
	"VCS_Sandbox_Dashboard/internal/dashboard/api/dto/response"
	"VCS_Sandbox_Dashboard/internal/dashboard/backend"
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -source=cache_handler.go -destination=../../mocks/api/handler/mock_cache_handler.go -package=mockhandler

type CacheHandler interface {
	ListKeys() gin.HandlerFunc
	GetKey() gin.HandlerFunc
	SetKey() gin.HandlerFunc
	DeleteKey() gin.HandlerFunc
	KeyExists() gin.HandlerFunc
	KeyTTL() gin.HandlerFunc
	IncrementKey() gin.HandlerFunc
	DecrementKey() gin.HandlerFunc
	ExpireKey() gin.HandlerFunc
}

type cacheHandler struct {
	logger Logger
	cache  backend.CacheClient
}

func (h *cacheHandler) ListKeys() gin.HandlerFunc {
	return func(c *gin.Context) {
		keys, err := h.cache.Keys(c.Request.Context())
		if err != nil {
			err = fmt.Errorf("CacheHandler.ListKeys: %w", err)
			backendError(c, h.logger, err, "failed to list keys")
			return
		}
		if keys == nil {
			keys = []string{}
		}
		c.JSON(http.StatusOK, response.KeysResponse{
			Keys: keys,
		})
	}
}

func (h *cacheHandler) GetKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		value, err := h.cache.Get(c.Request.Context(), key)
		if err != nil {
			if isNotFound(err) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Key not found",
				})
				return
			}
			err = fmt.Errorf("CacheHandler.GetKey: %w", err)
			backendError(c, h.logger, err, fmt.Sprintf("failed to get key %s", key))
			return
		}
		c.JSON(http.StatusOK, response.KeyValueResponse{
			Key:   key,
			Value: value,
		})
	}
}

func (h *cacheHandler) SetKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		var req request.SetKeyRequest
		if !bindJSON(c, &req) {
			return
		}
		var err error
		if req.TTLSeconds > 0 {
			_, err = h.cache.SetWithTTL(c.Request.Context(), key, req.Value, req.TTLSeconds)
		} else {
			_, err = h.cache.Set(c.Request.Context(), key, req.Value)
		}
		if err != nil {
			err = fmt.Errorf("CacheHandler.SetKey: %w", err)
			backendError(c, h.logger, err, fmt.Sprintf("failed to set key %s", key))
			return
		}
		c.JSON(http.StatusOK, response.KeyValueResponse{
			Key:   key,
			Value: req.Value,
		})
	}
}

func (h *cacheHandler) DeleteKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		if _, err := h.cache.Delete(c.Request.Context(), key); err != nil {
			if isNotFound(err) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Key not found",
				})
				return
			}
			err = fmt.Errorf("CacheHandler.DeleteKey: %w", err)
			backendError(c, h.logger, err, fmt.Sprintf("failed to delete key %s", key))
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: fmt.Sprintf("Key %s deleted", key),
		})
	}
}

func (h *cacheHandler) KeyExists() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		exists, err := h.cache.Exists(c.Request.Context(), key)
		if err != nil {
			err = fmt.Errorf("CacheHandler.KeyExists: %w", err)
			backendError(c, h.logger, err, fmt.Sprintf("failed to check key %s", key))
			return
		}
		c.JSON(http.StatusOK, response.ExistsResponse{
			Key:    key,
			Exists: exists,
		})
	}
}

func (h *cacheHandler) KeyTTL() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		ttl, err := h.cache.TTL(c.Request.Context(), key)
		if err != nil {
			err = fmt.Errorf("CacheHandler.KeyTTL: %w", err)
			backendError(c, h.logger, err, fmt.Sprintf("failed to get ttl of key %s", key))
			return
		}
		c.JSON(http.StatusOK, response.TTLResponse{
			Key: key,
			TTL: ttl,
		})
	}
}

func (h *cacheHandler) IncrementKey() gin.HandlerFunc {
	return h.counter("increment", h.cache.Increment)
}

func (h *cacheHandler) DecrementKey() gin.HandlerFunc {
	return h.counter("decrement", h.cache.Decrement)
}

// counter adjusts a numeric key. The body is optional; without it the backend's default step applies.
func (h *cacheHandler) counter(op string, apply func(ctx context.Context, key string, delta int64) (int64, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		var req request.CounterRequest
		if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
			return
		}
		value, err := apply(c.Request.Context(), key, req.Delta)
		if err != nil {
			err = fmt.Errorf("CacheHandler.counter: %w", err)
			backendError(c, h.logger, err, fmt.Sprintf("failed to %s key %s", op, key))
			return
		}
		c.JSON(http.StatusOK, response.CounterResponse{
			Key:   key,
			Value: value,
		})
	}
}

func (h *cacheHandler) ExpireKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		var req request.ExpireRequest
		if !bindJSON(c, &req) {
			return
		}
		if _, err := h.cache.Expire(c.Request.Context(), key, *req.Seconds); err != nil {
			if isNotFound(err) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Key not found",
				})
				return
			}
			err = fmt.Errorf("CacheHandler.ExpireKey: %w", err)
			backendError(c, h.logger, err, fmt.Sprintf("failed to expire key %s", key))
			return
		}
		c.JSON(http.StatusOK, response.TTLResponse{
			Key: key,
			TTL: *req.Seconds,
		})
	}
}

func NewCacheHandler(logger *zap.Logger, cache backend.CacheClient) CacheHandler {
	return &cacheHandler{
		logger: NewLogger(logger),
		cache:  cache,
	}
}
