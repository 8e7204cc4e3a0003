package routes

import (
	"VCS_Sandbox_Dashboard/internal/dashboard/api/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetUpStatusRoutes(r *gin.Engine, handler handler.StatusHandler) {
	r.GET("/healthz", handler.Liveness())
	statusRoutes := r.Group("/api")
	statusRoutes.GET("/status", handler.GetStatus())
	statusRoutes.POST("/status/refresh", handler.RefreshStatus())
	statusRoutes.PUT("/status/auto-refresh", handler.SetAutoRefresh())
	statusRoutes.GET("/system/stats", handler.GetSystemStats())
}

func SetUpServiceRoutes(r *gin.Engine, handler handler.ServiceHandler) {
	serviceRoutes := r.Group("/api")
	serviceRoutes.GET("/services/:name/ping", handler.PingService())
	serviceRoutes.POST("/service-one/actions/:action", handler.RunAction())
	serviceRoutes.POST("/service-one/gauge", handler.SetGauge())
	serviceRoutes.GET("/service-one/health", handler.ServiceOneHealth())
	serviceRoutes.GET("/service-two/health", handler.ServiceTwoHealth())
}

func SetUpCacheRoutes(r *gin.Engine, handler handler.CacheHandler) {
	cacheRoutes := r.Group("/api/redis/keys")
	cacheRoutes.GET("", handler.ListKeys())
	cacheRoutes.GET("/:key", handler.GetKey())
	cacheRoutes.PUT("/:key", handler.SetKey())
	cacheRoutes.DELETE("/:key", handler.DeleteKey())
	cacheRoutes.GET("/:key/exists", handler.KeyExists())
	cacheRoutes.GET("/:key/ttl", handler.KeyTTL())
	cacheRoutes.POST("/:key/increment", handler.IncrementKey())
	cacheRoutes.POST("/:key/decrement", handler.DecrementKey())
	cacheRoutes.PUT("/:key/expire", handler.ExpireKey())
}

func SetUpMessageRoutes(r *gin.Engine, handler handler.MessageHandler) {
	messageRoutes := r.Group("/api/messages")
	messageRoutes.POST("", handler.SendMessage())
	messageRoutes.GET("/feed", handler.GetFeed())
}

func SetUpMetricsRoute(r *gin.Engine, gatherer prometheus.Gatherer) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
