// Package pager reconciles an externally-owned scrollable page position
// with the controller's current story, using synthetic sentinel pages to
// detect "swiped past the edge".
package pager

// PageKind discriminates the page union.
type PageKind int

const (
	// Sentinel is a synthetic, content-less page flanking the story
	// sequence. Landing on one with no finger down closes the session.
	Sentinel PageKind = iota
	// Content is a real story page.
	Content
)

// Page is one entry of the virtual page sequence
// [sentinel, story_0 .. story_n-1, sentinel]. All sentinel handling goes
// through this union; raw indices never leak out.
type Page struct {
	Kind       PageKind
	StoryIndex int // valid for Content only
}

// BuildPages returns the virtual page sequence for the given story count.
func BuildPages(storyCount int) []Page {
	pages := make([]Page, 0, storyCount+2)
	pages = append(pages, Page{Kind: Sentinel})
	for i := range storyCount {
		pages = append(pages, Page{Kind: Content, StoryIndex: i})
	}
	pages = append(pages, Page{Kind: Sentinel})
	return pages
}

// PageFor returns the page index displaying the given story.
func PageFor(storyIndex int) int {
	return storyIndex + 1
}
