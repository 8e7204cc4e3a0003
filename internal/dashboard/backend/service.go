package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

//go:generate mockgen -source=service.go -destination=../mocks/backend/mock_service.go -package=mockbackend

type ServiceOneClient interface {
	Test(ctx context.Context) (Response, error)
	TestMetrics(ctx context.Context) (Response, error)
	IncrementCounter(ctx context.Context) (Response, error)
	SimulateError(ctx context.Context) (Response, error)
	LongOperation(ctx context.Context) (Response, error)
	DatabaseSimulation(ctx context.Context) (Response, error)
	SetGauge(ctx context.Context, value int) (Response, error)
	Health(ctx context.Context) (Response, error)
	Metrics(ctx context.Context) (Response, error)
	Info(ctx context.Context) (Response, error)
}

type ServiceTwoClient interface {
	Test(ctx context.Context) (Response, error)
	Health(ctx context.Context) (Response, error)
}

type GatewayClient interface {
	Health(ctx context.Context) (Response, error)
}

type serviceOneClient struct {
	c *Client
}

func (s *serviceOneClient) Test(ctx context.Context) (Response, error) {
	return s.c.Get(ctx, ServiceOnePrefix+"/one/get")
}

func (s *serviceOneClient) TestMetrics(ctx context.Context) (Response, error) {
	return s.c.Get(ctx, ServiceOnePrefix+"/metrics/test")
}

func (s *serviceOneClient) IncrementCounter(ctx context.Context) (Response, error) {
	return s.c.Post(ctx, ServiceOnePrefix+"/metrics/increment-counter", nil)
}

func (s *serviceOneClient) SimulateError(ctx context.Context) (Response, error) {
	return s.c.Get(ctx, ServiceOnePrefix+"/metrics/simulate-error")
}

func (s *serviceOneClient) LongOperation(ctx context.Context) (Response, error) {
	return s.c.Get(ctx, ServiceOnePrefix+"/metrics/long-operation")
}

func (s *serviceOneClient) DatabaseSimulation(ctx context.Context) (Response, error) {
	return s.c.Get(ctx, ServiceOnePrefix+"/metrics/database-simulation")
}

func (s *serviceOneClient) SetGauge(ctx context.Context, value int) (Response, error) {
	return s.c.Post(ctx, fmt.Sprintf("%s/metrics/set-gauge/%d", ServiceOnePrefix, value), nil)
}

func (s *serviceOneClient) Health(ctx context.Context) (Response, error) {
	return s.c.Get(ctx, ServiceOnePrefix+"/actuator/health")
}

func (s *serviceOneClient) Metrics(ctx context.Context) (Response, error) {
	return s.c.Get(ctx, ServiceOnePrefix+"/actuator/metrics")
}

func (s *serviceOneClient) Info(ctx context.Context) (Response, error) {
	return s.c.Get(ctx, ServiceOnePrefix+"/actuator/info")
}

func NewServiceOneClient(c *Client) ServiceOneClient {
	return &serviceOneClient{c: c}
}

// unknownHealth is reported by backends that may not expose an actuator endpoint.
var unknownHealth = Response{
	StatusCode: http.StatusOK,
	Body:       []byte(`{"status":"Unknown"}`),
}

type serviceTwoClient struct {
	c *Client
}

func (s *serviceTwoClient) Test(ctx context.Context) (Response, error) {
	return s.c.Get(ctx, ServiceTwoPrefix+"/two/get")
}

// Health never fails; an unreachable actuator reports an Unknown status.
func (s *serviceTwoClient) Health(ctx context.Context) (Response, error) {
	res, err := s.c.Get(ctx, ServiceTwoPrefix+"/actuator/health")
	if err != nil {
		return unknownHealth, nil
	}
	return res, nil
}

func NewServiceTwoClient(c *Client) ServiceTwoClient {
	return &serviceTwoClient{c: c}
}

type gatewayClient struct {
	c *Client
}

// Health never fails; an unreachable actuator reports an Unknown status.
func (g *gatewayClient) Health(ctx context.Context) (Response, error) {
	res, err := g.c.Get(ctx, "/actuator/health")
	if err != nil {
		return unknownHealth, nil
	}
	return res, nil
}

func NewGatewayClient(c *Client) GatewayClient {
	return &gatewayClient{c: c}
}

// Ping reports whether the named service answers its test endpoint.
func Ping(ctx context.Context, one ServiceOneClient, two ServiceTwoClient, gateway GatewayClient, name string) bool {
	var err error
	switch strings.ToLower(name) {
	case "service-one":
		_, err = one.Test(ctx)
	case "service-two":
		_, err = two.Test(ctx)
	case "api-gateway":
		_, err = gateway.Health(ctx)
	default:
		return false
	}
	return err == nil
}
