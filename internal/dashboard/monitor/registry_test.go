package monitor

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegistry_RegisterRunsImmediately(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	r.Start()
	defer r.Stop()

	done := make(chan struct{}, 1)
	require.NoError(t, r.Register(SurfaceServices, 0, func() { done <- struct{}{} }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job was not run on registration")
	}
	assert.False(t, r.Active(SurfaceServices))
}

func TestRegistry_RegisterRepeats(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	r.Start()
	defer r.Stop()

	var runs atomic.Int32
	require.NoError(t, r.Register(SurfaceUptime, time.Second, func() { runs.Add(1) }))
	assert.True(t, r.Active(SurfaceUptime))

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 3*time.Second, 50*time.Millisecond)
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	r.Start()
	defer r.Stop()

	var runs atomic.Int32
	require.NoError(t, r.Register(SurfaceServices, time.Second, func() { runs.Add(1) }))
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond)

	r.Unregister(SurfaceServices)
	assert.False(t, r.Active(SurfaceServices))

	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	// unknown surfaces are ignored
	r.Unregister("unknown")
}

func TestRegistry_RegisterReplacesTimer(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	r.Start()
	defer r.Stop()

	var first, second atomic.Int32
	require.NoError(t, r.Register(SurfaceServices, time.Second, func() { first.Add(1) }))
	require.NoError(t, r.Register(SurfaceServices, time.Second, func() { second.Add(1) }))

	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, int32(1), first.Load())
	assert.GreaterOrEqual(t, second.Load(), int32(2))
}

func TestRegistry_PanicIsRecovered(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	r.Start()
	defer r.Stop()

	var runs atomic.Int32
	require.NoError(t, r.Register(SurfaceUptime, time.Second, func() {
		if runs.Add(1) > 1 {
			panic("tick failed")
		}
	}))

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, 4*time.Second, 50*time.Millisecond)
}

func TestRegistry_Stop(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	r.Start()

	require.NoError(t, r.Register(SurfaceServices, time.Second, func() {}))
	require.NoError(t, r.Register(SurfaceUptime, time.Second, func() {}))
	r.Stop()

	assert.False(t, r.Active(SurfaceServices))
	assert.False(t, r.Active(SurfaceUptime))
}
