package handler

import (
	"VCS_Sandbox_Dashboard/internal/dashboard/api/dto/request"
	"VCS_Sandbox_Dashboard/internal/dashboard/api/dto/response"
	"VCS_Sandbox_Dashboard/internal/dashboard/monitor"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -source=status_handler.go -destination=../../mocks/api/handler/mock_status_handler.go -package=mockhandler

type StatusHandler interface {
	Liveness() gin.HandlerFunc
	GetStatus() gin.HandlerFunc
	RefreshStatus() gin.HandlerFunc
	SetAutoRefresh() gin.HandlerFunc
	GetSystemStats() gin.HandlerFunc
}

type statusHandler struct {
	logger  Logger
	monitor monitor.Monitor
}

func (s *statusHandler) Liveness() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Response{
			Message: "ok",
		})
	}
}

func (s *statusHandler) GetStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.monitor.Latest())
	}
}

func (s *statusHandler) RefreshStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.monitor.Refresh(c.Request.Context()))
	}
}

func (s *statusHandler) SetAutoRefresh() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.AutoRefreshRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := s.monitor.SetAutoRefresh(*req.Enabled); err != nil {
			err = fmt.Errorf("StatusHandler.SetAutoRefresh: %w", err)
			s.logger.LoggingError(c, err, "failed to toggle auto refresh", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, s.monitor.Latest())
	}
}

func (s *statusHandler) GetSystemStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.monitor.SystemStats(c.Request.Context()))
	}
}

func NewStatusHandler(logger *zap.Logger, monitor monitor.Monitor) StatusHandler {
	return &statusHandler{
		logger:  NewLogger(logger),
		monitor: monitor,
	}
}
