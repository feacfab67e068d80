package storyview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/example/reel/internal/stories"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.snapshot.Readiness {
	case stories.Idle:
		return statusStyle.Render("loading stories...")
	case stories.Error:
		msg := "failed to start stories session"
		if m.lastErr != "" {
			msg = m.lastErr
		}
		return errorStyle.Render(msg)
	}

	if m.snapshot.CurrentStoryIndex() < 0 {
		return statusStyle.Render("loading stories...")
	}

	story := m.snapshot.CurrentStory()
	innerWidth := m.surfaceWidth() - 4
	if innerWidth < 20 {
		innerWidth = 20
	}

	var b strings.Builder
	b.WriteString(m.renderProgressBars(story, innerWidth))
	b.WriteString("\n")
	b.WriteString(m.renderHeader(story, innerWidth))
	b.WriteString("\n\n")
	b.WriteString(m.renderSlide(story, innerWidth))
	b.WriteString("\n\n")
	b.WriteString(m.renderStatus(story))

	out := frameStyle.Width(innerWidth + 2).Render(b.String())
	out += "\n" + m.renderFooter()
	return out
}

// renderProgressBars draws one segmented bar per slide of the current
// story: full for completed slides, partial for the current one, empty
// for the rest.
func (m *Model) renderProgressBars(story stories.Story, width int) string {
	n := len(story.Slides)
	if n == 0 {
		return ""
	}
	segWidth := (width - (n - 1)) / n
	if segWidth < 1 {
		segWidth = 1
	}

	segments := make([]string, 0, n)
	for _, slide := range story.Slides {
		filled := 0
		switch {
		case slide.ProgressState == stories.Complete:
			filled = segWidth
		case slide.Current:
			filled = int(slide.Progress * float64(segWidth))
			if filled > segWidth {
				filled = segWidth
			}
		}
		seg := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, segWidth-filled)
		segments = append(segments, seg)
	}
	return strings.Join(segments, " ")
}

func (m *Model) renderHeader(story stories.Story, width int) string {
	title := applyGradient(story.ID, gradientFrom, gradientTo)
	badge := ""
	if story.Shown {
		badge = shownBadgeStyle.Render("seen")
	}
	gap := width - lipgloss.Width(title) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + badge
}

func (m *Model) renderSlide(story stories.Story, width int) string {
	idx := story.CurrentSlideIndex()
	if idx < 0 {
		return ""
	}
	slide := story.Slides[idx]

	label := fmt.Sprintf("slide %d/%d", idx+1, len(story.Slides))
	if slide.Video {
		label += "  [video]"
	}
	if slide.URL != "" {
		label += "  " + hintStyle.Render(slide.URL)
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(label)
}

func (m *Model) renderStatus(story stories.Story) string {
	idx := story.CurrentSlideIndex()
	if idx < 0 {
		return ""
	}
	slide := story.Slides[idx]

	var status string
	switch slide.ProgressState {
	case stories.Resume:
		status = "playing"
	case stories.Pause:
		status = "paused"
	case stories.Complete:
		status = "done"
	default:
		if slide.Video && slide.Duration <= 0 {
			status = "buffering"
		} else {
			status = "ready"
		}
	}
	if m.fingerDown {
		status += "  (finger down)"
	}
	return statusStyle.Render(status)
}

func (m *Model) renderFooter() string {
	var parts []string
	if m.sync != nil && m.onSentinel() {
		parts = append(parts, sentinelStyle.Render("release to close"))
	}
	if m.lastErr != "" {
		parts = append(parts, errorStyle.Render(m.lastErr))
	}
	parts = append(parts, hintStyle.Render(
		"←/→ tap  h/l swipe  f finger  space pause  d dismiss  q quit"))
	return strings.Join(parts, "\n")
}

func (m *Model) onSentinel() bool {
	pos := m.sync.Position()
	return pos == 0 || pos == m.pageCount-1
}
