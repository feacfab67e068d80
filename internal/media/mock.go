package media

import (
	"sync"
	"time"
)

// Mock is a test double for Player. Safe for concurrent use, since the
// controller drives it from multiple goroutines.
type Mock struct {
	mu       sync.Mutex
	status   Status
	duration time.Duration
	playing  bool

	loadCalls []string
	playCount int
	pauseCnt  int
	stopCount int
	seekCount int

	events chan Event
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		status: StatusIdle,
		events: make(chan Event, 16),
	}
}

func (m *Mock) LoadAndPrepare(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls = append(m.loadCalls, url)
	m.status = StatusBuffering
}

func (m *Mock) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = true
	m.playCount++
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = false
	m.pauseCnt++
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = false
	m.status = StatusIdle
	m.stopCount++
}

func (m *Mock) SeekToStart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCount++
}

func (m *Mock) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	close(m.events)
	return nil
}

// Test helpers

func (m *Mock) SetStatus(s Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = s
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.loadCalls))
	copy(out, m.loadCalls)
	return out
}

func (m *Mock) PlayCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCount
}

func (m *Mock) PauseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCnt
}

func (m *Mock) StopCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopCount
}

func (m *Mock) SeekCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seekCount
}

func (m *Mock) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

// SimulateReady marks the player prepared and emits EventReady.
func (m *Mock) SimulateReady(d time.Duration) {
	m.mu.Lock()
	m.status = StatusReady
	m.duration = d
	m.mu.Unlock()
	m.events <- Event{Kind: EventReady, Duration: d}
}

// SimulateBuffering emits a buffering event.
func (m *Mock) SimulateBuffering() {
	m.mu.Lock()
	m.status = StatusBuffering
	m.mu.Unlock()
	m.events <- Event{Kind: EventBuffering}
}

// SimulateError emits an error event.
func (m *Mock) SimulateError(err error) {
	m.events <- Event{Kind: EventError, Err: err}
}

// Verify Mock implements Player at compile time.
var _ Player = (*Mock)(nil)
