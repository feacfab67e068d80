package playback

import (
	"time"

	"github.com/example/reel/internal/stories"
)

// Data is the session input: an ordered story deck plus the id of the
// story to open first.
type Data struct {
	TargetID string
	Stories  []StoryData
}

// StoryData describes one story supplied by the caller.
type StoryData struct {
	ID     string
	Slides []SlideData
}

// SlideData describes one slide: either a timed image or a video whose
// duration arrives asynchronously (Duration zero until then).
type SlideData struct {
	Duration time.Duration
	Video    bool
	URL      string
}

// build converts caller data into the pure state input and locates the
// video slide, if any, for media preparation.
func (d Data) build() (input []stories.Story, videoURL, videoStoryID string, videoSlideIndex int) {
	input = make([]stories.Story, len(d.Stories))
	for i, story := range d.Stories {
		slides := make([]stories.Slide, len(story.Slides))
		for j, slide := range story.Slides {
			slides[j] = stories.Slide{
				Duration: slide.Duration,
				Video:    slide.Video,
				URL:      slide.URL,
			}
			if slide.Video {
				videoURL = slide.URL
				videoStoryID = story.ID
				videoSlideIndex = j
			}
		}
		input[i] = stories.Story{ID: story.ID, Slides: slides}
	}
	return input, videoURL, videoStoryID, videoSlideIndex
}
