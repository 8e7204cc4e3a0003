package handler

import (
	"VCS_Sandbox_Dashboard/internal/dashboard/api/dto/request"
	"VCS_Sandbox_Dashboard/internal/dashboard/api/dto/response"
	"VCS_Sandbox_Dashboard/internal/dashboard/backend"
	"VCS_Sandbox_Dashboard/pkg/access"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service_handler.go -destination=../../mocks/api/handler/mock_service_handler.go -package=mockhandler

const (
	ActionTest               = "test"
	ActionTestMetrics        = "test-metrics"
	ActionIncrementCounter   = "increment-counter"
	ActionSimulateError      = "simulate-error"
	ActionLongOperation      = "long-operation"
	ActionDatabaseSimulation = "database-simulation"
)

type ServiceHandler interface {
	PingService() gin.HandlerFunc
	RunAction() gin.HandlerFunc
	SetGauge() gin.HandlerFunc
	ServiceOneHealth() gin.HandlerFunc
	ServiceTwoHealth() gin.HandlerFunc
}

type serviceHandler struct {
	logger     Logger
	serviceOne backend.ServiceOneClient
	serviceTwo backend.ServiceTwoClient
	gateway    backend.GatewayClient
	validator  *validator.Validate
	actions    map[string]access.Call[backend.Response]
}

func (s *serviceHandler) PingService() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		c.JSON(http.StatusOK, response.PingResponse{
			Service: name,
			Online:  backend.Ping(c.Request.Context(), s.serviceOne, s.serviceTwo, s.gateway, name),
		})
	}
}

// RunAction triggers one of the primary service's demo endpoints. A failing action is still a
// successful call of this endpoint; the failure is reported inside the result.
func (s *serviceHandler) RunAction() gin.HandlerFunc {
	return func(c *gin.Context) {
		action := strings.ToLower(c.Param("action"))
		if err := s.validator.Var(action, "required,oneof="+strings.Join(s.actionNames(), " ")); err != nil {
			c.JSON(http.StatusNotFound, response.Response{
				Message: fmt.Sprintf("Unknown action %s", c.Param("action")),
			})
			return
		}
		res, err := access.MeasureCall(c.Request.Context(), s.actions[action])
		result := response.ActionResult{
			Action:         action,
			ResponseTimeMs: res.ElapsedMs(),
		}
		if err != nil {
			s.logger.LoggingError(c, err, fmt.Sprintf("action %s failed", action), zap.WarnLevel)
			result.Error = access.NormalizeError(err)
		} else {
			result.Success = true
			result.Data = res.Payload.Data()
		}
		c.JSON(http.StatusOK, result)
	}
}

func (s *serviceHandler) actionNames() []string {
	return []string{ActionTest, ActionTestMetrics, ActionIncrementCounter, ActionSimulateError, ActionLongOperation, ActionDatabaseSimulation}
}

func (s *serviceHandler) SetGauge() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.GaugeRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := s.serviceOne.SetGauge(c.Request.Context(), *req.Value)
		if err != nil {
			err = fmt.Errorf("ServiceHandler.SetGauge: %w", err)
			backendError(c, s.logger, err, "failed to set gauge")
			return
		}
		c.JSON(http.StatusOK, response.BackendResponse{
			StatusCode: res.StatusCode,
			Data:       res.Data(),
		})
	}
}

func (s *serviceHandler) ServiceOneHealth() gin.HandlerFunc {
	return s.forward("service one health", s.serviceOne.Health)
}

func (s *serviceHandler) ServiceTwoHealth() gin.HandlerFunc {
	return s.forward("service two health", s.serviceTwo.Health)
}

func (s *serviceHandler) forward(description string, call func(ctx context.Context) (backend.Response, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := call(c.Request.Context())
		if err != nil {
			backendError(c, s.logger, err, fmt.Sprintf("failed to get %s", description))
			return
		}
		c.JSON(http.StatusOK, response.BackendResponse{
			StatusCode: res.StatusCode,
			Data:       res.Data(),
		})
	}
}

func NewServiceHandler(logger *zap.Logger, one backend.ServiceOneClient, two backend.ServiceTwoClient, gateway backend.GatewayClient) ServiceHandler {
	return &serviceHandler{
		logger:     NewLogger(logger),
		serviceOne: one,
		serviceTwo: two,
		gateway:    gateway,
		validator:  validator.New(),
		actions: map[string]access.Call[backend.Response]{
			ActionTest:               one.Test,
			ActionTestMetrics:        one.TestMetrics,
			ActionIncrementCounter:   one.IncrementCounter,
			ActionSimulateError:      one.SimulateError,
			ActionLongOperation:      one.LongOperation,
			ActionDatabaseSimulation: one.DatabaseSimulation,
		},
	}
}
