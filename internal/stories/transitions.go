package stories

import (
	"slices"
	"time"

	"github.com/example/reel/internal/shown"
)

// Initial builds the session snapshot from the caller-supplied stories and
// the loaded shown records.
//
// Slide selection per story:
//   - no record, or the story is fully shown: the first slide
//   - partially shown: the first unseen slide (max shown index + 1)
//
// Unshown stories are sorted first (stable); the order is then fixed for
// the lifetime of the session. The story matching targetID becomes
// current and readiness flips to Ready.
func Initial(input []Story, targetID string, records []shown.Record) State {
	out := State{
		Stories:   make([]Story, len(input)),
		Readiness: Ready,
	}
	for i, story := range input {
		record := findRecord(records, story.ID)

		startIndex := 0
		if record != nil && !record.Shown {
			startIndex = record.MaxShownSlideIndex + 1
			if startIndex >= len(story.Slides) {
				startIndex = 0
			}
		}

		slides := cloneSlides(story.Slides)
		video := false
		for j := range slides {
			slides[j].Current = j == startIndex
			if j < startIndex {
				slides[j].ProgressState = Complete
				slides[j].Progress = 1
			} else {
				slides[j].ProgressState = Start
				slides[j].Progress = 0
			}
			if slides[j].Video {
				video = true
			}
		}

		story.Slides = slides
		story.Shown = record != nil && record.Shown
		story.Current = story.ID == targetID
		story.Video = video
		out.Stories[i] = story
	}

	slices.SortStableFunc(out.Stories, func(a, b Story) int {
		switch {
		case !a.Shown && b.Shown:
			return -1
		case a.Shown && !b.Shown:
			return 1
		default:
			return 0
		}
	})

	return out
}

func findRecord(records []shown.Record, storiesID string) *shown.Record {
	for i := range records {
		if records[i].StoriesID == storiesID {
			return &records[i]
		}
	}
	return nil
}

// AdvanceToSlide moves the current story to the given slide index: earlier
// slides become Complete/1, the target becomes Start/0 and current, later
// slides become Start/0.
func (s State) AdvanceToSlide(newSlideIndex int) State {
	return s.progress(Start, 0, s.CurrentStoryIndex(), newSlideIndex).
		currentSlide(newSlideIndex)
}

// ResetCurrentSlide rewinds the current slide back to Start/0 without
// moving. Used for the boundary bounce on the very first slide of the
// very first story.
func (s State) ResetCurrentSlide() State {
	return s.progress(Start, 0, s.CurrentStoryIndex(), s.CurrentSlideIndex())
}

// Finish stamps the current slide Complete/1 as the terminal marker
// before session teardown.
func (s State) Finish() State {
	return s.progress(Complete, 1, s.CurrentStoryIndex(), s.CurrentSlideIndex())
}

// AdvanceToStory flips the current story and positions it on the given
// slide. Every other story's slides settle into a resting snapshot
// relative to their own remembered current slide.
func (s State) AdvanceToStory(newStoryIndex, newSlideIndex int) State {
	out := s.progress(Start, 0, newStoryIndex, newSlideIndex)
	for j := range out.Stories[newStoryIndex].Slides {
		out.Stories[newStoryIndex].Slides[j].Current = j == newSlideIndex
	}
	for i := range out.Stories {
		out.Stories[i].Current = i == newStoryIndex
	}
	return out
}

// Pause freezes the current slide at its current progress.
func (s State) Pause() State {
	return s.progress(Pause, s.CurrentSlide().Progress, s.CurrentStoryIndex(), s.CurrentSlideIndex())
}

// Resume restarts the current slide from its current progress.
func (s State) Resume() State {
	return s.ResumeAt(s.CurrentSlide().Progress)
}

// ResumeAt restarts the current slide from the given progress, supporting
// resumption from partial progress after the host was backgrounded.
func (s State) ResumeAt(progress float64) State {
	return s.progress(Resume, progress, s.CurrentStoryIndex(), s.CurrentSlideIndex())
}

// WithDuration rewrites one slide's duration, used once a video's real
// duration becomes known.
func (s State) WithDuration(storyIndex, slideIndex int, d time.Duration) State {
	out := s.clone()
	out.Stories[storyIndex].Slides[slideIndex].Duration = d
	return out
}

// WithReadiness returns the snapshot with the given readiness.
func (s State) WithReadiness(r Readiness) State {
	out := s.clone()
	out.Readiness = r
	return out
}

// progress rewrites slide progress states: within the target story slides
// before the target index become Complete/1, the target takes the given
// state and progress, the rest become Start/0. All other stories settle
// into the resting snapshot around their own current slide.
func (s State) progress(ps ProgressState, progress float64, storyIndex, slideIndex int) State {
	out := s.clone()
	for i := range out.Stories {
		story := &out.Stories[i]
		if i == storyIndex {
			for j := range story.Slides {
				switch {
				case j < slideIndex:
					story.Slides[j].ProgressState = Complete
					story.Slides[j].Progress = 1
				case j == slideIndex:
					story.Slides[j].ProgressState = ps
					story.Slides[j].Progress = progress
				default:
					story.Slides[j].ProgressState = Start
					story.Slides[j].Progress = 0
				}
			}
			continue
		}
		resting := story.CurrentSlideIndex()
		for j := range story.Slides {
			if j < resting {
				story.Slides[j].ProgressState = Complete
				story.Slides[j].Progress = 1
			} else {
				story.Slides[j].ProgressState = Start
				story.Slides[j].Progress = 0
			}
		}
	}
	return out
}

// currentSlide re-marks which slide is current within the current story.
func (s State) currentSlide(newCurrentIndex int) State {
	out := s.clone()
	storyIndex := out.CurrentStoryIndex()
	for j := range out.Stories[storyIndex].Slides {
		out.Stories[storyIndex].Slides[j].Current = j == newCurrentIndex
	}
	return out
}
