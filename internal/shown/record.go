// Package shown persists per-story playback watermarks so that reopening
// stories resumes where the user left off.
package shown

// Record is the persisted watermark for one story.
//
// MaxShownSlideIndex is the highest slide index the user has reached. It
// never decreases for a given story: the user can move backward through
// slides but the watermark only moves forward. Shown flips true once it
// has ever been true, or when the watermark reaches the last slide.
type Record struct {
	StoriesID          string
	MaxShownSlideIndex int
	Shown              bool
}
