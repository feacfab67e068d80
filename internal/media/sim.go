package media

import (
	"sync"
	"time"
)

// Sim is a clock-driven player used by the demo host. It mimics the
// asynchronous preparation of a real decoder: LoadAndPrepare reports
// buffering, then after PrepDelay reports ready with the configured
// duration. No media is decoded.
type Sim struct {
	mu       sync.Mutex
	status   Status
	duration time.Duration
	playing  bool
	timer    *time.Timer
	closed   bool

	// PrepDelay is how long preparation takes before EventReady.
	PrepDelay time.Duration
	// MediaDuration is the duration reported once ready.
	MediaDuration time.Duration

	events chan Event
}

// NewSim creates a simulated player.
func NewSim(prepDelay, mediaDuration time.Duration) *Sim {
	return &Sim{
		PrepDelay:     prepDelay,
		MediaDuration: mediaDuration,
		events:        make(chan Event, 16),
	}
}

func (s *Sim) LoadAndPrepare(_ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.status = StatusBuffering
	s.send(Event{Kind: EventBuffering})

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.PrepDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		s.status = StatusReady
		s.duration = s.MediaDuration
		s.send(Event{Kind: EventReady, Duration: s.duration})
	})
}

func (s *Sim) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.status != StatusReady || s.playing {
		return
	}
	s.playing = true
	s.send(Event{Kind: EventPlayingChanged, Playing: true})
}

func (s *Sim) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.playing {
		return
	}
	s.playing = false
	s.send(Event{Kind: EventPlayingChanged, Playing: false})
}

func (s *Sim) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.playing = false
	s.status = StatusIdle
}

func (s *Sim) SeekToStart() {}

func (s *Sim) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Sim) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

func (s *Sim) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

func (s *Sim) Events() <-chan Event { return s.events }

func (s *Sim) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	close(s.events)
	return nil
}

// send must be called with mu held.
func (s *Sim) send(e Event) {
	select {
	case s.events <- e:
	default:
		// Drop if buffer full.
	}
}

// Verify Sim implements Player at compile time.
var _ Player = (*Sim)(nil)
