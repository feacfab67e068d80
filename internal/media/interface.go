// Package media defines the video player contract consumed by the
// playback controller when a story contains a video slide. The single
// player instance is exclusively owned and sequenced by the controller;
// other layers only read its status.
package media

import "time"

// Status represents the player preparation state.
type Status int

const (
	StatusIdle Status = iota
	StatusBuffering
	StatusReady
	StatusEnded
)

// String returns the status name for debugging.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusBuffering:
		return "Buffering"
	case StatusReady:
		return "Ready"
	case StatusEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// EventKind discriminates player events.
type EventKind int

const (
	EventBuffering EventKind = iota
	// EventReady carries the discovered media duration.
	EventReady
	EventPlayingChanged
	EventError
)

// Event is emitted by the player as preparation and playback progress.
type Event struct {
	Kind     EventKind
	Duration time.Duration // EventReady
	Playing  bool          // EventPlayingChanged
	Err      error         // EventError
}

// Player defines the media player contract for dependency injection and
// testing.
type Player interface {
	// LoadAndPrepare starts asynchronous preparation of the given URL.
	// Progress is reported on Events.
	LoadAndPrepare(url string)
	Play()
	Pause()
	Stop()
	SeekToStart()
	Status() Status
	Duration() time.Duration
	Events() <-chan Event
	Close() error
}
