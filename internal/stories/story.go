package stories

// Story is one unit of content: an ordered sequence of slides behind a
// stable id. Exactly one slide is current once the story is initialized.
type Story struct {
	ID      string
	Slides  []Slide
	Current bool
	Shown   bool
	Video   bool
}

// CurrentSlideIndex returns the index of the current slide, or -1 if the
// story has not been initialized yet.
func (s Story) CurrentSlideIndex() int {
	for i, slide := range s.Slides {
		if slide.Current {
			return i
		}
	}
	return -1
}

// LastSlideIndex returns the index of the last slide.
func (s Story) LastSlideIndex() int {
	return len(s.Slides) - 1
}

func cloneSlides(slides []Slide) []Slide {
	out := make([]Slide, len(slides))
	copy(out, slides)
	return out
}
