package playback

import (
	"github.com/example/reel/internal/errmsg"
	"github.com/example/reel/internal/stories"
)

// SnapshotChange is emitted on every state transition.
type SnapshotChange struct {
	Previous stories.State
	Current  stories.State
}

// CurrentChange is emitted whenever the (story, slide) pair changes.
//
// Emitted by:
//   - Init: once the initial snapshot is built
//   - Next/Previous/JumpTo: on slide or story boundary crossings
//
// NOT emitted by:
//   - Pause/Resume/SetProgress: lifecycle changes on the same slide
//
// The host should handle all per-slide side effects (content swap,
// analytics) in response to this event.
type CurrentChange struct {
	StoryID    string
	SlideIndex int
}

// FinishedEvent is emitted exactly once per session, on natural
// completion, swipe-past-edge, dismissal, or load error teardown.
type FinishedEvent struct{}

// ErrorEvent is emitted when an asynchronous operation fails. Failures
// carried here never interrupt playback; the session-start load failure
// additionally flips readiness to Error.
type ErrorEvent struct {
	Op  errmsg.Op
	Err error
}

// Message formats the event for display.
func (e ErrorEvent) Message() string {
	return errmsg.Format(e.Op, e.Err)
}
