package stories

// Readiness represents the session readiness.
type Readiness int

const (
	Idle Readiness = iota
	Ready
	Error
)

// String returns the readiness name.
func (r Readiness) String() string {
	switch r {
	case Idle:
		return "Idle"
	case Ready:
		return "Ready"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// State is an immutable snapshot of the whole playback session. All
// mutation goes through transition methods that return a new State; the
// receiver is never modified.
type State struct {
	Stories   []Story
	Readiness Readiness
}

// CurrentStoryIndex returns the index of the current story, or -1 before
// initialization.
func (s State) CurrentStoryIndex() int {
	for i, story := range s.Stories {
		if story.Current {
			return i
		}
	}
	return -1
}

// CurrentStory returns the current story. Panics before initialization.
func (s State) CurrentStory() Story {
	return s.Stories[s.CurrentStoryIndex()]
}

// CurrentSlideIndex returns the index of the current slide within the
// current story.
func (s State) CurrentSlideIndex() int {
	return s.CurrentStory().CurrentSlideIndex()
}

// CurrentSlide returns the current slide of the current story.
func (s State) CurrentSlide() Slide {
	story := s.CurrentStory()
	return story.Slides[story.CurrentSlideIndex()]
}

// SlideCount returns the number of slides in the current story.
func (s State) SlideCount() int {
	return len(s.CurrentStory().Slides)
}

func (s State) clone() State {
	out := State{
		Stories:   make([]Story, len(s.Stories)),
		Readiness: s.Readiness,
	}
	for i, story := range s.Stories {
		story.Slides = cloneSlides(story.Slides)
		out.Stories[i] = story
	}
	return out
}
