package storyview

import "github.com/example/reel/internal/playback"

// snapshotMsg carries a playback state transition.
type snapshotMsg struct {
	change playback.SnapshotChange
}

// currentMsg carries a (story, slide) boundary crossing.
type currentMsg struct {
	change playback.CurrentChange
}

// finishedMsg signals the session completed.
type finishedMsg struct{}

// errorMsg carries a non-fatal playback error.
type errorMsg struct {
	event playback.ErrorEvent
}

// subscriptionDoneMsg signals the subscription was torn down.
type subscriptionDoneMsg struct{}
