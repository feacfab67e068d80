package stories

import (
	"testing"
	"time"

	"github.com/example/reel/internal/shown"
)

func makeStory(id string, slideCount int) Story {
	slides := make([]Slide, slideCount)
	for i := range slides {
		slides[i].Duration = 5 * time.Second
	}
	return Story{ID: id, Slides: slides}
}

// checkSingleCurrent verifies exactly one story and exactly one slide per
// story is marked current.
func checkSingleCurrent(t *testing.T, st State) {
	t.Helper()

	currentStories := 0
	for _, story := range st.Stories {
		if story.Current {
			currentStories++
		}
		currentSlides := 0
		for _, slide := range story.Slides {
			if slide.Current {
				currentSlides++
			}
		}
		if currentSlides != 1 {
			t.Errorf("story %q has %d current slides, want 1", story.ID, currentSlides)
		}
	}
	if currentStories != 1 {
		t.Errorf("got %d current stories, want 1", currentStories)
	}
}

// checkRestingStory verifies slides before the story's current one are
// Complete/1 and slides after it are Start/0.
func checkRestingStory(t *testing.T, story Story) {
	t.Helper()

	current := story.CurrentSlideIndex()
	for j, slide := range story.Slides {
		switch {
		case j < current:
			if slide.ProgressState != Complete || slide.Progress != 1 {
				t.Errorf("story %q slide %d = %v/%v, want Complete/1",
					story.ID, j, slide.ProgressState, slide.Progress)
			}
		case j > current:
			if slide.ProgressState != Start || slide.Progress != 0 {
				t.Errorf("story %q slide %d = %v/%v, want Start/0",
					story.ID, j, slide.ProgressState, slide.Progress)
			}
		}
	}
}

func TestInitial_NoRecords(t *testing.T) {
	input := []Story{makeStory("a", 3), makeStory("b", 2)}

	st := Initial(input, "a", nil)

	if st.Readiness != Ready {
		t.Errorf("Readiness = %v, want Ready", st.Readiness)
	}
	if got := st.CurrentStory().ID; got != "a" {
		t.Errorf("current story = %q, want %q", got, "a")
	}
	if got := st.CurrentSlideIndex(); got != 0 {
		t.Errorf("current slide = %d, want 0", got)
	}
	checkSingleCurrent(t, st)
}

func TestInitial_PartiallyShownStartsAtFirstUnseen(t *testing.T) {
	input := []Story{makeStory("a", 4)}
	records := []shown.Record{{StoriesID: "a", MaxShownSlideIndex: 1, Shown: false}}

	st := Initial(input, "a", records)

	if got := st.CurrentSlideIndex(); got != 2 {
		t.Errorf("current slide = %d, want 2", got)
	}
	// Seen slides rest at Complete/1.
	for j := range 2 {
		slide := st.CurrentStory().Slides[j]
		if slide.ProgressState != Complete || slide.Progress != 1 {
			t.Errorf("slide %d = %v/%v, want Complete/1", j, slide.ProgressState, slide.Progress)
		}
	}
}

func TestInitial_FullyShownStartsAtFirstSlide(t *testing.T) {
	input := []Story{makeStory("a", 3)}
	records := []shown.Record{{StoriesID: "a", MaxShownSlideIndex: 2, Shown: true}}

	st := Initial(input, "a", records)

	if got := st.CurrentSlideIndex(); got != 0 {
		t.Errorf("current slide = %d, want 0", got)
	}
	if !st.CurrentStory().Shown {
		t.Error("story should be marked shown")
	}
}

func TestInitial_UnshownStoriesSortFirst(t *testing.T) {
	input := []Story{makeStory("a", 2), makeStory("b", 2), makeStory("c", 2)}
	records := []shown.Record{
		{StoriesID: "a", MaxShownSlideIndex: 1, Shown: true},
		{StoriesID: "c", MaxShownSlideIndex: 1, Shown: true},
	}

	st := Initial(input, "a", records)

	wantOrder := []string{"b", "a", "c"}
	for i, want := range wantOrder {
		if got := st.Stories[i].ID; got != want {
			t.Errorf("story[%d] = %q, want %q", i, got, want)
		}
	}
	// Target keeps currency through the reorder.
	if got := st.CurrentStory().ID; got != "a" {
		t.Errorf("current story = %q, want %q", got, "a")
	}
}

func TestInitial_DetectsVideoStory(t *testing.T) {
	story := makeStory("a", 2)
	story.Slides[1].Video = true

	st := Initial([]Story{story}, "a", nil)

	if !st.Stories[0].Video {
		t.Error("story with a video slide should be marked Video")
	}
}

func TestAdvanceToSlide(t *testing.T) {
	st := Initial([]Story{makeStory("a", 3)}, "a", nil)

	st = st.AdvanceToSlide(1)

	if got := st.CurrentSlideIndex(); got != 1 {
		t.Errorf("current slide = %d, want 1", got)
	}
	slides := st.CurrentStory().Slides
	if slides[0].ProgressState != Complete || slides[0].Progress != 1 {
		t.Errorf("slide 0 = %v/%v, want Complete/1", slides[0].ProgressState, slides[0].Progress)
	}
	if slides[1].ProgressState != Start || slides[1].Progress != 0 {
		t.Errorf("slide 1 = %v/%v, want Start/0", slides[1].ProgressState, slides[1].Progress)
	}
	if slides[2].ProgressState != Start {
		t.Errorf("slide 2 = %v, want Start", slides[2].ProgressState)
	}
	checkSingleCurrent(t, st)
}

func TestAdvanceToStory_RestsOtherStories(t *testing.T) {
	st := Initial([]Story{makeStory("a", 3), makeStory("b", 2)}, "a", nil)
	st = st.AdvanceToSlide(1).ResumeAt(0.5)

	st = st.AdvanceToStory(1, 0)

	if got := st.CurrentStory().ID; got != "b" {
		t.Errorf("current story = %q, want %q", got, "b")
	}
	checkSingleCurrent(t, st)
	// The departed story settles around its own current slide, dropping
	// the in-flight progress.
	checkRestingStory(t, st.Stories[0])
	if got := st.Stories[0].Slides[1].Progress; got != 0 {
		t.Errorf("departed slide progress = %v, want 0", got)
	}
}

func TestAdvanceToStory_RemembersSlidePosition(t *testing.T) {
	st := Initial([]Story{makeStory("a", 3), makeStory("b", 3)}, "a", nil)
	st = st.AdvanceToSlide(2)
	st = st.AdvanceToStory(1, 0)

	// Going back lands on a's remembered slide.
	st = st.AdvanceToStory(0, st.Stories[0].CurrentSlideIndex())

	if got := st.CurrentStory().ID; got != "a" {
		t.Errorf("current story = %q, want %q", got, "a")
	}
	if got := st.CurrentSlideIndex(); got != 2 {
		t.Errorf("current slide = %d, want 2", got)
	}
}

func TestPauseAndResumeKeepProgress(t *testing.T) {
	st := Initial([]Story{makeStory("a", 2)}, "a", nil)
	st = st.ResumeAt(0.3)

	st = st.Pause()
	if slide := st.CurrentSlide(); slide.ProgressState != Pause || slide.Progress != 0.3 {
		t.Errorf("after Pause: %v/%v, want Pause/0.3", slide.ProgressState, slide.Progress)
	}

	st = st.Resume()
	if slide := st.CurrentSlide(); slide.ProgressState != Resume || slide.Progress != 0.3 {
		t.Errorf("after Resume: %v/%v, want Resume/0.3", slide.ProgressState, slide.Progress)
	}
}

func TestResetCurrentSlide(t *testing.T) {
	st := Initial([]Story{makeStory("a", 2)}, "a", nil)
	st = st.ResumeAt(0.7)

	st = st.ResetCurrentSlide()

	if slide := st.CurrentSlide(); slide.ProgressState != Start || slide.Progress != 0 {
		t.Errorf("after reset: %v/%v, want Start/0", slide.ProgressState, slide.Progress)
	}
	if got := st.CurrentSlideIndex(); got != 0 {
		t.Errorf("current slide = %d, want 0", got)
	}
}

func TestFinish(t *testing.T) {
	st := Initial([]Story{makeStory("a", 2)}, "a", nil)
	st = st.AdvanceToSlide(1).ResumeAt(0.5)

	st = st.Finish()

	if slide := st.CurrentSlide(); slide.ProgressState != Complete || slide.Progress != 1 {
		t.Errorf("after Finish: %v/%v, want Complete/1", slide.ProgressState, slide.Progress)
	}
}

func TestWithDuration(t *testing.T) {
	story := makeStory("a", 2)
	story.Slides[1].Video = true
	story.Slides[1].Duration = 0
	st := Initial([]Story{story}, "a", nil)

	st = st.WithDuration(0, 1, 8*time.Second)

	if got := st.Stories[0].Slides[1].Duration; got != 8*time.Second {
		t.Errorf("duration = %v, want 8s", got)
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	st := Initial([]Story{makeStory("a", 3)}, "a", nil)
	before := st.CurrentSlide()

	_ = st.AdvanceToSlide(2)
	_ = st.ResumeAt(0.9)
	_ = st.Finish()

	after := st.CurrentSlide()
	if before != after {
		t.Errorf("receiver mutated: %+v != %+v", before, after)
	}
	if got := st.CurrentSlideIndex(); got != 0 {
		t.Errorf("current slide = %d, want 0", got)
	}
}

func TestWithReadiness(t *testing.T) {
	st := State{}.WithReadiness(Error)
	if st.Readiness != Error {
		t.Errorf("Readiness = %v, want Error", st.Readiness)
	}
	if got := st.CurrentStoryIndex(); got != -1 {
		t.Errorf("CurrentStoryIndex on empty state = %d, want -1", got)
	}
}
