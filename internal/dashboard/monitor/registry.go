package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	SurfaceServices = "services"
	SurfaceUptime   = "uptime"
)

// Registry keeps one repeating timer per surface.
type Registry interface {
	// Register runs job once right away and then every interval until the surface is unregistered.
	// A non-positive interval runs job only once. Registering an existing surface replaces its timer.
	Register(surface string, interval time.Duration, job func()) error
	// Unregister cancels the surface's timer. Runs already in progress are not interrupted.
	Unregister(surface string)
	Active(surface string) bool
	Start()
	Stop()
}

type registry struct {
	cron    *cron.Cron
	mu      sync.Mutex
	entries map[string]cron.EntryID
	logger  *zap.Logger
}

func (r *registry) Register(surface string, interval time.Duration, job func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.entries[surface]; ok {
		r.cron.Remove(id)
		delete(r.entries, surface)
	}
	if interval > 0 {
		id, err := r.cron.AddFunc(fmt.Sprintf("@every %s", interval), job)
		if err != nil {
			return fmt.Errorf("Registry.Register %s: %w", surface, err)
		}
		r.entries[surface] = id
	}
	go job()
	r.logger.Debug("surface registered", zap.String("surface", surface), zap.Duration("interval", interval))
	return nil
}

func (r *registry) Unregister(surface string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.entries[surface]; ok {
		r.cron.Remove(id)
		delete(r.entries, surface)
		r.logger.Debug("surface unregistered", zap.String("surface", surface))
	}
}

func (r *registry) Active(surface string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[surface]
	return ok
}

func (r *registry) Start() {
	r.cron.Start()
}

// Stop cancels every timer and waits for running jobs to return.
func (r *registry) Stop() {
	<-r.cron.Stop().Done()
	r.mu.Lock()
	defer r.mu.Unlock()
	for surface, id := range r.entries {
		r.cron.Remove(id)
		delete(r.entries, surface)
	}
}

func NewRegistry(logger *zap.Logger) Registry {
	return &registry{
		cron:    cron.New(cron.WithChain(cron.Recover(cronLogger{logger.Sugar()}))),
		entries: make(map[string]cron.EntryID),
		logger:  logger,
	}
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
