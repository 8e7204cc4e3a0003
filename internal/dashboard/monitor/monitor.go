package monitor

import (
	"VCS_Sandbox_Dashboard/pkg/access"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=monitor.go -destination=../mocks/monitor/mock_monitor.go -package=mockmonitor

type Monitor interface {
	Start() error
	Close()
	Latest() Snapshot
	Refresh(ctx context.Context) Snapshot
	SetAutoRefresh(enabled bool) error
	AutoRefresh() bool
	SystemStats(ctx context.Context) SystemStats
}

// Check is one named backend the monitor polls.
type Check struct {
	Name string
	Call access.Call[any]
}

type ServiceStatus struct {
	Name           string        `json:"name"`
	Status         access.Status `json:"status"`
	Response       string        `json:"response,omitempty"`
	LastCheck      *time.Time    `json:"last_check,omitempty"`
	ResponseTimeMs *int64        `json:"response_time_ms,omitempty"`
}

type Snapshot struct {
	Services    []ServiceStatus        `json:"services"`
	Stats       access.AggregateStatus `json:"stats"`
	LastRefresh *time.Time             `json:"last_refresh,omitempty"`
	Uptime      string                 `json:"uptime"`
	AutoRefresh bool                   `json:"auto_refresh"`
}

type SystemStats struct {
	access.AggregateStatus
	Services []access.Outcome `json:"services"`
}

type Config struct {
	CheckInterval time.Duration
	UptimeTick    time.Duration
	AutoRefresh   bool
	RetryPolicy   access.RetryPolicy
}

type monitor struct {
	checks   []Check
	cfg      Config
	registry Registry
	metrics  *Metrics
	logger   *zap.Logger

	mu          sync.RWMutex
	services    []ServiceStatus
	lastRefresh *time.Time
	uptime      string

	autoRefresh atomic.Bool
	closed      atomic.Bool
	startedAt   time.Time
	now         func() time.Time
}

func (m *monitor) Start() error {
	m.startedAt = m.now()
	if err := m.registry.Register(SurfaceUptime, m.cfg.UptimeTick, m.tickUptime); err != nil {
		return fmt.Errorf("Monitor.Start: %w", err)
	}
	if m.autoRefresh.Load() {
		if err := m.registry.Register(SurfaceServices, m.cfg.CheckInterval, m.refreshJob); err != nil {
			return fmt.Errorf("Monitor.Start: %w", err)
		}
		return nil
	}
	go m.refreshJob()
	return nil
}

// Close stops both polling surfaces. Checks still in flight finish but their results are dropped.
func (m *monitor) Close() {
	m.closed.Store(true)
	m.registry.Unregister(SurfaceServices)
	m.registry.Unregister(SurfaceUptime)
}

func (m *monitor) SetAutoRefresh(enabled bool) error {
	if m.closed.Load() {
		return nil
	}
	m.autoRefresh.Store(enabled)
	if !enabled {
		m.registry.Unregister(SurfaceServices)
		return nil
	}
	if m.registry.Active(SurfaceServices) {
		return nil
	}
	if err := m.registry.Register(SurfaceServices, m.cfg.CheckInterval, m.refreshJob); err != nil {
		return fmt.Errorf("Monitor.SetAutoRefresh: %w", err)
	}
	return nil
}

func (m *monitor) AutoRefresh() bool {
	return m.autoRefresh.Load()
}

func (m *monitor) Latest() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	services := make([]ServiceStatus, len(m.services))
	copy(services, m.services)
	return Snapshot{
		Services:    services,
		Stats:       summarizeStatuses(services),
		LastRefresh: m.lastRefresh,
		Uptime:      m.uptime,
		AutoRefresh: m.autoRefresh.Load(),
	}
}

func (m *monitor) refreshJob() {
	m.Refresh(context.Background())
}

// Refresh checks every backend concurrently and publishes a new snapshot.
func (m *monitor) Refresh(ctx context.Context) Snapshot {
	if m.closed.Load() {
		return m.Latest()
	}
	started := m.now()
	m.markChecking(started)

	elapsed := make([]time.Duration, len(m.checks))
	calls := make([]access.NamedCall, len(m.checks))
	for i, c := range m.checks {
		retried := func(ctx context.Context) (any, error) {
			return access.RetryCall(ctx, c.Call, m.cfg.RetryPolicy)
		}
		calls[i] = access.NamedCall{
			Name: c.Name,
			Call: access.WithLogging(m.logger, c.Name, func(ctx context.Context) (any, error) {
				res, err := access.MeasureCall(ctx, retried)
				elapsed[i] = res.Elapsed
				if err != nil {
					return nil, err
				}
				return res.Payload, nil
			}),
		}
	}
	outcomes := access.CheckAllServices(ctx, calls)

	if m.closed.Load() {
		return m.Latest()
	}
	checkedAt := m.now()
	services := make([]ServiceStatus, len(outcomes))
	for i, o := range outcomes {
		ms := elapsed[i].Milliseconds()
		services[i] = ServiceStatus{
			Name:           o.Service,
			Status:         o.Status,
			Response:       stringify(o.Data),
			LastCheck:      &checkedAt,
			ResponseTimeMs: &ms,
		}
		m.metrics.ObserveCheck(o.Service, o.Status, elapsed[i])
	}
	stats := access.Summarize(outcomes)
	m.metrics.SetHealth(stats)

	m.mu.Lock()
	m.services = services
	m.mu.Unlock()
	m.logger.Info("service check finished",
		zap.Int("online", stats.Online),
		zap.Int("offline", stats.Offline),
		zap.Int("health_percentage", stats.HealthPercentage))
	return m.Latest()
}

// markChecking publishes a copy of the current statuses with every service set to checking.
func (m *monitor) markChecking(at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	services := make([]ServiceStatus, len(m.services))
	for i, s := range m.services {
		s.Status = access.StatusChecking
		services[i] = s
	}
	m.services = services
	m.lastRefresh = &at
}

func (m *monitor) SystemStats(ctx context.Context) SystemStats {
	calls := make([]access.NamedCall, len(m.checks))
	for i, c := range m.checks {
		calls[i] = access.NamedCall{
			Name: c.Name,
			Call: access.WithLogging(m.logger, c.Name, c.Call),
		}
	}
	outcomes := access.CheckAllServices(ctx, calls)
	return SystemStats{
		AggregateStatus: access.Summarize(outcomes),
		Services:        outcomes,
	}
}

func (m *monitor) tickUptime() {
	if m.closed.Load() {
		return
	}
	minutes := int(m.now().Sub(m.startedAt) / time.Minute)
	m.mu.Lock()
	m.uptime = fmt.Sprintf("%dm", minutes)
	m.mu.Unlock()
}

func summarizeStatuses(services []ServiceStatus) access.AggregateStatus {
	outcomes := make([]access.Outcome, len(services))
	for i, s := range services {
		outcomes[i] = access.Outcome{Service: s.Name, Status: s.Status}
	}
	return access.Summarize(outcomes)
}

func stringify(data any) string {
	switch v := data.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	}
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(b)
}

func NewMonitor(checks []Check, cfg Config, registry Registry, metrics *Metrics, logger *zap.Logger) Monitor {
	services := make([]ServiceStatus, len(checks))
	for i, c := range checks {
		services[i] = ServiceStatus{
			Name:   c.Name,
			Status: access.StatusChecking,
		}
	}
	if cfg.RetryPolicy.MaxAttempts < 1 {
		cfg.RetryPolicy.MaxAttempts = 1
	}
	m := &monitor{
		checks:   checks,
		cfg:      cfg,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
		services: services,
		uptime:   "0m",
		now:      time.Now,
	}
	m.autoRefresh.Store(cfg.AutoRefresh)
	return m
}
