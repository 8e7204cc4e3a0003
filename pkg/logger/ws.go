package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ReopenableWriteSyncer is a zapcore.WriteSyncer backed by a file that can be reopened after rotation.
type ReopenableWriteSyncer struct {
	path string
	mu   sync.RWMutex
	file *os.File
}

// NewReopenableWriteSyncer creates the parent directory of path if needed and opens the file.
func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("NewReopenableWriteSyncer: %w", err)
		}
	}
	ws := &ReopenableWriteSyncer{
		path: path,
	}
	if err := ws.Reload(); err != nil {
		return nil, fmt.Errorf("NewReopenableWriteSyncer: %w", err)
	}
	return ws, nil
}

func (ws *ReopenableWriteSyncer) Reload() error {
	file, err := os.OpenFile(ws.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	ws.mu.Lock()
	old := ws.file
	ws.file = file
	ws.mu.Unlock()
	if old != nil {
		return old.Close()
	}
	return nil
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (int, error) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.file.Write(p)
}

func (ws *ReopenableWriteSyncer) Sync() error {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.file.Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.file.Close()
}
