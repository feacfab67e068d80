package stories

import "time"

// ProgressState represents the lifecycle of a single slide.
//
// The state machine has four states with the following transitions:
//
//	┌────────┐    resume     ┌────────┐
//	│  Start │ ─────────────▶│ Resume │
//	└────────┘               └────────┘
//	                           │    │
//	                    pause  │    │ complete
//	                           ▼    ▼
//	                   ┌────────┐  ┌──────────┐
//	                   │  Pause │  │ Complete │
//	                   └────────┘  └──────────┘
//	                           │      ▲
//	                           └──────┘ (slide advanced past)
//
// Slides before the current one are always Complete with progress 1,
// slides after it are always Start with progress 0. Only the current
// slide holds Resume or Pause.
type ProgressState int

const (
	Start ProgressState = iota
	Resume
	Pause
	Complete
)

// String returns the state name for debugging.
func (s ProgressState) String() string {
	switch s {
	case Start:
		return "Start"
	case Resume:
		return "Resume"
	case Pause:
		return "Pause"
	case Complete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// CanResume reports whether playback may resume from this state.
// Resuming from Resume or Complete is a no-op to avoid double-counting.
func (s ProgressState) CanResume() bool {
	return s == Start || s == Pause
}

// Slide is one unit of display time within a story: either a timed image
// or a video whose duration is discovered asynchronously.
type Slide struct {
	ProgressState ProgressState
	Current       bool
	Progress      float64
	// Duration of zero marks a slide whose timing is determined
	// externally (a video duration that has not arrived yet). Such a
	// slide does not auto-advance until a duration is set.
	Duration time.Duration
	Video    bool
	URL      string
}
