package playback

import "github.com/example/reel/internal/stories"

// Service defines the playback controller contract. It is the single
// source of truth for a stories session: external stimuli (ticks, taps,
// swipes, focus changes, async store and media callbacks) funnel through
// these operations; state never mutates anywhere else.
//
// Operations are safe to call from the event-dispatch goroutine and from
// the controller's own async callbacks; they serialize internally.
type Service interface {
	// Init asynchronously loads shown records, builds the initial
	// snapshot, and kicks off media preparation when the deck contains a
	// video slide. A new Init supersedes and cancels an in-flight one;
	// a load failure surfaces as Error readiness and tears the session
	// down through the finished event.
	Init(data Data)

	// Next advances to the next slide, crossing into the next story's
	// first unseen slide at story boundaries, and finishes the session
	// after the last slide of the last story.
	Next()
	// Previous mirrors Next backward; on the very first slide of the
	// very first story it resets the slide instead of underflowing.
	Previous()
	// JumpTo steps the current story toward the given index. A no-op
	// when the index already matches.
	JumpTo(storyIndex int)

	// Pause freezes the current slide.
	Pause()
	// Resume restarts the current slide. Guarded: it only takes effect
	// from Start or Pause, and, for a video slide, once the player is
	// prepared. A successful resume first issues the durable shown
	// write for the current story.
	Resume()
	// SetProgress applies an animation tick. Ignored unless the current
	// slide is in Resume state, guarding against stray callbacks racing
	// a pause or a boundary change.
	SetProgress(progress float64)

	// Finish stamps the current slide complete, stops media, and emits
	// the finished event exactly once.
	Finish()
	// Idle returns readiness to Idle and stops media, without emitting
	// the finished event.
	Idle()

	// Snapshot returns the current immutable state.
	Snapshot() stories.State

	// Subscribe creates a new event subscription.
	Subscribe() *Subscription

	// Close shuts down the session.
	Close() error
}
