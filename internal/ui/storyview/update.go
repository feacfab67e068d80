package storyview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/reel/internal/pager"
	"github.com/example/reel/internal/stories"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.FocusMsg:
		m.ctrl.Resume()
		return m, nil

	case tea.BlurMsg:
		m.ctrl.Pause()
		return m, nil

	case snapshotMsg:
		m.applySnapshot(msg)
		return m, waitForSnapshot(m.sub)

	case currentMsg:
		if m.sync != nil {
			if idx := m.storyIndexByID(msg.change.StoryID); idx >= 0 {
				m.sync.SyncCurrent(idx)
			}
		}
		return m, waitForCurrent(m.sub)

	case finishedMsg:
		m.animator.Stop()
		m.quitting = true
		return m, tea.Quit

	case errorMsg:
		m.lastErr = msg.event.Message()
		return m, waitForError(m.sub)

	case subscriptionDoneMsg:
		m.animator.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.animator.Stop()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Dismiss):
		m.ctrl.Finish()

	case key.Matches(msg, m.keys.TapLeft):
		if m.sync != nil {
			m.sync.Tap(0, m.surfaceWidth())
		}

	case key.Matches(msg, m.keys.TapRight):
		if m.sync != nil {
			m.sync.Tap(m.surfaceWidth()-1, m.surfaceWidth())
		}

	case key.Matches(msg, m.keys.SwipeLeft):
		m.swipe(-1)

	case key.Matches(msg, m.keys.SwipeRight):
		m.swipe(+1)

	case key.Matches(msg, m.keys.Finger):
		if m.sync != nil {
			m.fingerDown = !m.fingerDown
			m.sync.SetFingerDown(m.fingerDown)
		}

	case key.Matches(msg, m.keys.Toggle):
		m.togglePlayback()
	}
	return m, nil
}

// swipe moves the virtual pager one page in the given direction and
// reports the settled position, the way a real pager would after the
// scroll animation.
func (m *Model) swipe(delta int) {
	if m.sync == nil {
		return
	}
	target := m.sync.Position() + delta
	if target < 0 || target >= m.pageCount {
		return
	}
	m.sync.SetPosition(target)
}

func (m *Model) togglePlayback() {
	st := m.snapshot
	if st.Readiness != stories.Ready || st.CurrentStoryIndex() < 0 {
		return
	}
	if st.CurrentSlide().ProgressState == stories.Resume {
		m.ctrl.Pause()
	} else {
		m.ctrl.Resume()
	}
}

func (m *Model) applySnapshot(msg snapshotMsg) {
	prev := msg.change.Previous
	m.snapshot = msg.change.Current

	if m.sync == nil &&
		prev.Readiness != stories.Ready &&
		m.snapshot.Readiness == stories.Ready &&
		m.snapshot.CurrentStoryIndex() >= 0 {
		m.buildSynchronizer()
		// Auto-start: the initial snapshot leaves the slide at rest.
		m.ctrl.Resume()
	}

	m.updateAnimator()
}

func (m *Model) buildSynchronizer() {
	storyCount := len(m.snapshot.Stories)
	m.pageCount = storyCount + 2
	m.sync = pager.New(storyCount, m.snapshot.CurrentStoryIndex(), m.ctrl, func(page int) {
		// The terminal pager has no scroll animation: a commanded
		// scroll settles immediately, so echo it straight back.
		m.sync.SetPosition(page)
	})
}

// updateAnimator restarts or stops the auto-advance run when the slide
// identity or lifecycle changed. Progress ticks on the same slide leave
// the run in place.
func (m *Model) updateAnimator() {
	st := m.snapshot
	if st.Readiness != stories.Ready || st.CurrentStoryIndex() < 0 {
		m.animator.Stop()
		m.lastAnim = animKey{}
		return
	}

	slide := st.CurrentSlide()
	current := animKey{
		storyIndex:    st.CurrentStoryIndex(),
		slideIndex:    st.CurrentSlideIndex(),
		progressState: slide.ProgressState,
		duration:      int64(slide.Duration),
	}
	if current == m.lastAnim {
		return
	}
	m.lastAnim = current

	if slide.ProgressState != stories.Resume {
		m.animator.Stop()
		return
	}
	m.animator.Start(slide.Progress, slide.Duration, m.ctrl.SetProgress, m.ctrl.Next)
}

func (m *Model) storyIndexByID(id string) int {
	for i, story := range m.snapshot.Stories {
		if story.ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) surfaceWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 80
}
