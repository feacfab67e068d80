package playback

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimator_CompletesOnce(t *testing.T) {
	a := NewAnimator(time.Millisecond)

	var completions atomic.Int32
	var lastProgress atomic.Value
	lastProgress.Store(0.0)
	done := make(chan struct{})

	a.Start(0, 20*time.Millisecond,
		func(p float64) { lastProgress.Store(p) },
		func() {
			if completions.Add(1) == 1 {
				close(done)
			}
		})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("animator never completed")
	}
	time.Sleep(20 * time.Millisecond)

	require.Equal(t, int32(1), completions.Load())
	assert.InDelta(t, 1.0, lastProgress.Load().(float64), 1e-9,
		"final tick must land exactly on 1")
}

func TestAnimator_ZeroTotalDoesNotRun(t *testing.T) {
	a := NewAnimator(time.Millisecond)

	var ticks atomic.Int32
	a.Start(0, 0,
		func(float64) { ticks.Add(1) },
		func() { ticks.Add(1) })

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, ticks.Load(), "externally timed slide must not animate")
}

func TestAnimator_FromOneCompletesImmediately(t *testing.T) {
	a := NewAnimator(time.Millisecond)

	completed := false
	a.Start(1, time.Second, func(float64) {}, func() { completed = true })

	assert.True(t, completed)
}

func TestAnimator_StopCancelsCallbacks(t *testing.T) {
	a := NewAnimator(time.Millisecond)

	var mu sync.Mutex
	stopped := false
	callbackAfterStop := false

	a.Start(0, 50*time.Millisecond,
		func(float64) {
			mu.Lock()
			if stopped {
				callbackAfterStop = true
			}
			mu.Unlock()
		},
		func() {
			mu.Lock()
			if stopped {
				callbackAfterStop = true
			}
			mu.Unlock()
		})

	time.Sleep(5 * time.Millisecond)
	a.Stop()
	mu.Lock()
	stopped = true
	mu.Unlock()

	time.Sleep(60 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.False(t, callbackAfterStop, "no callback may fire after Stop")
}

func TestAnimator_StartCancelsPreviousRun(t *testing.T) {
	a := NewAnimator(time.Millisecond)

	var firstTicks atomic.Int32
	a.Start(0, time.Second, func(float64) { firstTicks.Add(1) }, func() {})

	done := make(chan struct{})
	var once sync.Once
	a.Start(0.5, 20*time.Millisecond,
		func(float64) {},
		func() { once.Do(func() { close(done) }) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second run never completed")
	}

	settled := firstTicks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, firstTicks.Load(), "first run must stay cancelled")
}
