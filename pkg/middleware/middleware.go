package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIDHeader     = "X-Request-ID"
	RequestIDContextKey = "request_id"
)

type HTTPMiddleware interface {
	RequestID() gin.HandlerFunc
	AccessLog() gin.HandlerFunc
	Cors(allowOrigins []string) gin.HandlerFunc
}

type httpMiddleware struct {
	logger *zap.Logger
}

// RequestID keeps the caller's request id or assigns a new one, and echoes it back.
func (m *httpMiddleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (m *httpMiddleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("http_method", c.Request.Method),
			zap.String("http_path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(RequestIDContextKey)),
		}
		switch {
		case status >= 500:
			m.logger.Warn("request completed", fields...)
		default:
			m.logger.Debug("request completed", fields...)
		}
	}
}

func (m *httpMiddleware) Cors(allowOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(allowOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", RequestIDHeader}
	cfg.ExposeHeaders = []string{RequestIDHeader}
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}

func NewHTTPMiddleware(logger *zap.Logger) HTTPMiddleware {
	return &httpMiddleware{
		logger: logger,
	}
}
