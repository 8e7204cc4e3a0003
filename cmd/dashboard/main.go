package main

import (
	"VCS_Sandbox_Dashboard/internal/dashboard/api/handler"
	"VCS_Sandbox_Dashboard/internal/dashboard/api/routes"
	"VCS_Sandbox_Dashboard/internal/dashboard/backend"
	"VCS_Sandbox_Dashboard/internal/dashboard/config"
	"VCS_Sandbox_Dashboard/internal/dashboard/monitor"
	"VCS_Sandbox_Dashboard/internal/dashboard/probe"
	"VCS_Sandbox_Dashboard/pkg/access"
	"VCS_Sandbox_Dashboard/pkg/infra"
	"VCS_Sandbox_Dashboard/pkg/logger"
	"VCS_Sandbox_Dashboard/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger("dashboard", appConfig.Server.LogLevel, fileSyncer)
	defer zapLogger.Sync()
	stopReload := logger.ReloadOnSignal(zapLogger, fileSyncer)
	defer stopReload()

	retryPolicy, err := access.NewRetryPolicy(appConfig.Monitor.RetryMaxAttempts, appConfig.Monitor.RetryBaseDelay)
	if err != nil {
		zapLogger.Fatal("invalid retry policy", zap.Error(err))
	}

	// set up backend clients
	client := backend.NewClient(appConfig.Backend.BaseURL, appConfig.Backend.RequestTimeout)
	serviceOne := backend.NewServiceOneClient(client)
	serviceTwo := backend.NewServiceTwoClient(client)
	gateway := backend.NewGatewayClient(client)
	checks := []monitor.Check{
		{Name: "Service One", Call: payload(serviceOne.Test)},
		{Name: "Service Two", Call: payload(serviceTwo.Test)},
		{Name: "API Gateway", Call: payload(gateway.Health)},
	}

	// set up direct probes
	if appConfig.Redis.Enabled() {
		redisConfig := infra.RedisConfig{
			Host:     appConfig.Redis.Host,
			Port:     appConfig.Redis.Port,
			Password: appConfig.Redis.Password,
			DB:       appConfig.Redis.DB,
		}
		redisClient, e := infra.NewRedisConnection(redisConfig)
		if e != nil {
			// the probe reports the cache offline until it comes up
			zapLogger.Warn("failed to connect to redis", zap.Error(e))
			redisClient = infra.NewRedisClient(redisConfig)
		}
		defer redisClient.Close()
		checks = append(checks, monitor.Check{Name: "Cache", Call: probe.NewRedisProbe(redisClient).Check})
		zapLogger.Info("cache probe enabled", zap.String("host", appConfig.Redis.Host))
	}
	var feed monitor.Feed
	if appConfig.Kafka.Enabled() {
		dialer := infra.NewKafkaDialer(appConfig.Backend.RequestTimeout)
		checks = append(checks, monitor.Check{Name: "Message Queue", Call: probe.NewKafkaProbe(dialer, appConfig.Kafka.Brokers, appConfig.Kafka.Topic).Check})

		reader := infra.NewKafkaReader(appConfig.Kafka.Brokers, appConfig.Kafka.FeedGroupID, appConfig.Kafka.Topic)
		feed = monitor.NewFeed(reader, appConfig.Kafka.FeedSize, zapLogger)
		feed.Start()
		zapLogger.Info("message feed started", zap.Strings("brokers", appConfig.Kafka.Brokers), zap.String("topic", appConfig.Kafka.Topic))
	}

	// set up monitor
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry := monitor.NewRegistry(zapLogger)
	registry.Start()
	statusMonitor := monitor.NewMonitor(checks, monitor.Config{
		CheckInterval: appConfig.Monitor.CheckInterval,
		UptimeTick:    appConfig.Monitor.UptimeTick,
		AutoRefresh:   appConfig.Monitor.AutoRefresh,
		RetryPolicy:   retryPolicy,
	}, registry, monitor.NewMetrics(promRegistry), zapLogger)
	if err = statusMonitor.Start(); err != nil {
		zapLogger.Fatal("failed to start monitor", zap.Error(err))
	}

	// set up handlers
	statusHandler := handler.NewStatusHandler(zapLogger, statusMonitor)
	serviceHandler := handler.NewServiceHandler(zapLogger, serviceOne, serviceTwo, gateway)
	cacheHandler := handler.NewCacheHandler(zapLogger, backend.NewCacheClient(client))
	messageHandler := handler.NewMessageHandler(zapLogger, backend.NewMessageClient(client), feed)

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	m := middleware.NewHTTPMiddleware(zapLogger)
	r.Use(gin.Recovery(), m.RequestID(), m.AccessLog(), m.Cors(appConfig.Server.CorsAllowOrigins))

	routes.SetUpStatusRoutes(r, statusHandler)
	routes.SetUpServiceRoutes(r, serviceHandler)
	routes.SetUpCacheRoutes(r, cacheHandler)
	routes.SetUpMessageRoutes(r, messageHandler)
	routes.SetUpMetricsRoute(r, promRegistry)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	if feed != nil {
		feed.Stop()
	}
	statusMonitor.Close()
	registry.Stop()
	zapLogger.Info("server exiting")
}

// payload adapts a backend call to a check whose payload is the decoded response body.
func payload(call func(ctx context.Context) (backend.Response, error)) access.Call[any] {
	return func(ctx context.Context) (any, error) {
		res, err := call(ctx)
		if err != nil {
			return nil, err
		}
		return res.Data(), nil
	}
}
