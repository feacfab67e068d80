// Package storyview is the terminal surface for a stories session. It
// bridges playback events into the message loop, drives the auto-advance
// animator, and maps key presses onto the touch gestures of the original
// surface.
package storyview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/reel/internal/pager"
	"github.com/example/reel/internal/playback"
	"github.com/example/reel/internal/stories"
)

// animKey identifies the slide run the animator is currently driving. A
// new run starts only when the key changes; progress ticks on the same
// slide leave the run alone.
type animKey struct {
	storyIndex    int
	slideIndex    int
	progressState stories.ProgressState
	duration      int64
}

// Model is the bubbletea model for the story viewer.
type Model struct {
	ctrl     playback.Service
	sub      *playback.Subscription
	animator *playback.Animator

	// sync is built lazily on the first Ready snapshot, once the story
	// count is known.
	sync *pager.Synchronizer

	snapshot   stories.State
	pageCount  int
	fingerDown bool
	lastAnim   animKey
	lastErr    string
	quitting   bool

	width  int
	height int

	keys keyMap
}

// New creates the story viewer over an already-initialized playback
// service.
func New(ctrl playback.Service, animator *playback.Animator) *Model {
	return &Model{
		ctrl:     ctrl,
		sub:      ctrl.Subscribe(),
		animator: animator,
		snapshot: ctrl.Snapshot(),
		keys:     defaultKeyMap(),
	}
}

// Init starts the subscription readers.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		waitForSnapshot(m.sub),
		waitForCurrent(m.sub),
		waitForFinished(m.sub),
		waitForError(m.sub),
		waitForDone(m.sub),
	)
}
