package pager

import "sync"

// Controller is the slice of the playback service the synchronizer
// drives.
type Controller interface {
	Next()
	Previous()
	JumpTo(storyIndex int)
	Pause()
	Resume()
	Finish()
}

// Synchronizer keeps the page position and the controller's current
// story mutually consistent.
//
// Two independent triggers feed it: controller state changes
// (SyncCurrent) and raw page-position changes (SetPosition). Gesture
// consumption and page updates are not atomically ordered with respect
// to each other, so both paths run the same reconcile and must each
// reach the correct close decision; the closing flag makes the close
// idempotent.
type Synchronizer struct {
	mu sync.Mutex

	pages      []Page
	position   int
	fingerDown bool
	closing    bool

	ctrl     Controller
	scrollTo func(page int)
}

// New creates a synchronizer over storyCount stories, positioned on
// initialStory. scrollTo commands the host pager to a page; the host
// echoes completed scrolls back through SetPosition.
func New(storyCount, initialStory int, ctrl Controller, scrollTo func(page int)) *Synchronizer {
	return &Synchronizer{
		pages:    BuildPages(storyCount),
		position: PageFor(initialStory),
		ctrl:     ctrl,
		scrollTo: scrollTo,
	}
}

// Position returns the current page position.
func (s *Synchronizer) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// FingerDown returns the finger-down gate.
func (s *Synchronizer) FingerDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fingerDown
}

// SetFingerDown updates the finger-down gate shared with the gesture
// layer. A release while resting on a sentinel closes the session; on
// content, a press pauses and a release resumes.
func (s *Synchronizer) SetFingerDown(down bool) {
	s.mu.Lock()
	s.fingerDown = down
	if s.closeOnSentinelLocked() {
		s.mu.Unlock()
		s.ctrl.Finish()
		return
	}
	closing := s.closing
	s.mu.Unlock()
	if closing {
		return
	}

	if down {
		s.ctrl.Pause()
	} else {
		s.ctrl.Resume()
	}
}

// SetPosition records a raw page-position change (a user swipe) and
// aligns the controller to it.
func (s *Synchronizer) SetPosition(position int) {
	s.mu.Lock()
	s.position = position
	if s.closeOnSentinelLocked() {
		s.mu.Unlock()
		s.ctrl.Finish()
		return
	}
	page := s.pages[s.position]
	closing := s.closing
	s.mu.Unlock()

	if closing || page.Kind != Content {
		return
	}
	s.ctrl.JumpTo(page.StoryIndex)
}

// SyncCurrent aligns the page position to a controller state change:
// command a scroll when the position disagrees, then pause or resume per
// the finger-down gate. Resting on a sentinel either closes (finger up)
// or does nothing at all (finger down, the user is still mid-swipe).
func (s *Synchronizer) SyncCurrent(storyIndex int) {
	s.mu.Lock()
	if s.closeOnSentinelLocked() {
		s.mu.Unlock()
		s.ctrl.Finish()
		return
	}
	if s.closing || s.pages[s.position].Kind == Sentinel {
		s.mu.Unlock()
		return
	}
	target := PageFor(storyIndex)
	mismatch := target != s.position
	fingerDown := s.fingerDown
	s.mu.Unlock()

	if mismatch {
		s.scrollTo(target)
	}
	if fingerDown {
		s.ctrl.Pause()
	} else {
		s.ctrl.Resume()
	}
}

// Tap maps a tap at x on a surface of the given width to a backward or
// forward step.
func (s *Synchronizer) Tap(x, width int) {
	if x < width/2 {
		s.ctrl.Previous()
	} else {
		s.ctrl.Next()
	}
}

// closeOnSentinelLocked is the shared close decision: resting on a
// sentinel with no finger down closes the session exactly once. Must be
// called with mu held; returns true when the caller should invoke
// Finish.
func (s *Synchronizer) closeOnSentinelLocked() bool {
	if s.closing {
		return false
	}
	if s.pages[s.position].Kind != Sentinel {
		return false
	}
	if s.fingerDown {
		// Mid-swipe: the user may still drag back onto content.
		return false
	}
	s.closing = true
	return true
}
