package playback

import (
	"context"
	"sync"
	"time"

	"github.com/example/reel/internal/errmsg"
	"github.com/example/reel/internal/media"
	"github.com/example/reel/internal/shown"
	"github.com/example/reel/internal/stories"
)

// Verify controller implements Service at compile time.
var _ Service = (*controller)(nil)

type controller struct {
	mu sync.Mutex

	store  shown.Store
	player media.Player // nil for image-only hosts

	state    stories.State
	finished bool

	initGen    int
	initCancel context.CancelFunc

	videoStoryID    string
	videoSlideIndex int

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates a new playback controller. The store is required; player
// may be nil when the host never plays video slides.
func New(store shown.Store, player media.Player) Service {
	return &controller{
		store:  store,
		player: player,
	}
}

func (c *controller) Init(data Data) {
	c.mu.Lock()
	if c.initCancel != nil {
		// Last caller wins: the superseded load is discarded even if it
		// completes later.
		c.initCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.initCancel = cancel
	c.initGen++
	gen := c.initGen
	c.mu.Unlock()

	go c.load(ctx, gen, data)
}

func (c *controller) load(ctx context.Context, gen int, data Data) {
	records, err := c.store.Load(ctx)

	c.mu.Lock()
	if c.initGen != gen || ctx.Err() != nil {
		c.mu.Unlock()
		return
	}
	c.finished = false
	if err != nil {
		// The load failure is terminal: surface the error, then tear the
		// session down through the regular finished path.
		c.applyLocked(c.state.WithReadiness(stories.Error))
		c.emitFinishedLocked()
		c.mu.Unlock()
		c.emitError(errmsg.OpSessionInit, err)
		return
	}

	input, videoURL, videoStoryID, videoSlideIndex := data.build()
	c.videoStoryID = videoStoryID
	c.videoSlideIndex = videoSlideIndex
	c.applyLocked(stories.Initial(input, data.TargetID, records))

	// Player setup stays under the generation check: a superseded load
	// must not clobber its successor's preparation with a late Stop.
	if c.player != nil {
		c.player.Stop()
		if videoURL != "" {
			c.player.LoadAndPrepare(videoURL)
			go c.consumePlayerEvents(ctx)
		}
	}
	c.mu.Unlock()
}

// consumePlayerEvents funnels asynchronous media callbacks into the
// controller's serialized operations. One consumer runs per Init; a
// superseding Init cancels it through ctx.
func (c *controller) consumePlayerEvents(ctx context.Context) {
	events := c.player.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev.Kind {
			case media.EventBuffering:
				c.Pause()
			case media.EventReady:
				if ev.Duration <= 0 {
					continue
				}
				c.applyVideoDuration(ev.Duration)
			case media.EventError:
				// Preparation failures leave the slide non-advancing;
				// the session stays up.
				c.emitError(errmsg.OpMediaPrepare, ev.Err)
			case media.EventPlayingChanged:
			}
		}
	}
}

// applyVideoDuration installs the discovered media duration on the video
// slide and resumes playback from it.
func (c *controller) applyVideoDuration(d time.Duration) {
	c.mu.Lock()
	storyIndex := -1
	for i, story := range c.state.Stories {
		if story.ID == c.videoStoryID {
			storyIndex = i
			break
		}
	}
	if storyIndex < 0 {
		c.mu.Unlock()
		return
	}
	c.applyLocked(c.state.WithDuration(storyIndex, c.videoSlideIndex, d))
	c.mu.Unlock()

	c.Resume()
}

func (c *controller) Next() {
	c.mu.Lock()
	if !c.readyLocked() {
		c.mu.Unlock()
		return
	}
	st := c.state
	nextSlide := st.CurrentSlideIndex() + 1
	if nextSlide == st.SlideCount() {
		nextStory := st.CurrentStoryIndex() + 1
		if nextStory == len(st.Stories) {
			c.finishLocked()
			c.mu.Unlock()
			return
		}
		c.advanceStoryLocked(nextStory)
		c.mu.Unlock()
		c.mediaBoundary()
		return
	}
	c.applyLocked(st.AdvanceToSlide(nextSlide))
	c.mu.Unlock()
	c.mediaBoundary()
}

func (c *controller) Previous() {
	c.mu.Lock()
	if !c.readyLocked() {
		c.mu.Unlock()
		return
	}
	st := c.state
	if st.CurrentSlideIndex() == 0 {
		if st.CurrentStoryIndex() == 0 {
			// Boundary bounce: reset instead of underflowing.
			c.applyLocked(st.ResetCurrentSlide())
		} else {
			c.advanceStoryLocked(st.CurrentStoryIndex() - 1)
		}
		c.mu.Unlock()
		c.mediaBoundary()
		return
	}
	c.applyLocked(st.AdvanceToSlide(st.CurrentSlideIndex() - 1))
	c.mu.Unlock()
	c.mediaBoundary()
}

func (c *controller) JumpTo(storyIndex int) {
	c.mu.Lock()
	if !c.readyLocked() {
		c.mu.Unlock()
		return
	}
	current := c.state.CurrentStoryIndex()
	switch {
	case storyIndex > current:
		c.advanceStoryLocked(current + 1)
	case storyIndex < current:
		c.advanceStoryLocked(current - 1)
	default:
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	c.mediaBoundary()
}

// advanceStoryLocked flips the current story, landing on that story's
// remembered current slide.
func (c *controller) advanceStoryLocked(newStoryIndex int) {
	slideIndex := c.state.Stories[newStoryIndex].CurrentSlideIndex()
	c.applyLocked(c.state.AdvanceToStory(newStoryIndex, slideIndex))
}

func (c *controller) Pause() {
	c.mu.Lock()
	if !c.readyLocked() {
		c.mu.Unlock()
		return
	}
	c.applyLocked(c.state.Pause())
	c.mu.Unlock()

	if c.player != nil {
		c.player.Pause()
	}
}

func (c *controller) Resume() {
	c.mu.Lock()
	if !c.readyLocked() {
		c.mu.Unlock()
		return
	}
	st := c.state
	if !st.CurrentSlide().ProgressState.CanResume() {
		c.mu.Unlock()
		return
	}
	videoNow := isVideoNow(st)
	if videoNow && c.player != nil && c.player.Status() != media.StatusReady {
		c.mu.Unlock()
		return
	}

	// Issue the durable shown write before flipping state so a crash
	// in between cannot leave the watermark behind the visible state.
	// The write itself is fire-and-forget: playback never blocks on it.
	story := st.CurrentStory()
	go c.writeShown(story)

	c.applyLocked(st.Resume())
	c.mu.Unlock()

	if videoNow && c.player != nil {
		c.player.Play()
	}
}

// writeShown read-modify-writes the story's record. The watermark never
// decreases: moving backward through slides keeps the stored maximum.
func (c *controller) writeShown(story stories.Story) {
	currentSlideIndex := story.CurrentSlideIndex()

	var previous *shown.Record
	for _, r := range c.store.Get() {
		if r.StoriesID == story.ID {
			record := r
			previous = &record
			break
		}
	}

	maxShown := 0
	switch {
	case previous == nil:
	case currentSlideIndex > previous.MaxShownSlideIndex:
		maxShown = currentSlideIndex
	default:
		maxShown = previous.MaxShownSlideIndex
	}

	record := shown.Record{
		StoriesID:          story.ID,
		MaxShownSlideIndex: maxShown,
		// A story counts as shown once it ever was, or once the
		// watermark reaches the last slide.
		Shown: (previous != nil && previous.Shown) || maxShown == story.LastSlideIndex(),
	}

	if err := c.store.Set(record); err != nil {
		// Shown tracking is advisory; playback continues.
		c.emitError(errmsg.OpShownSave, err)
	}
}

func (c *controller) SetProgress(progress float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.readyLocked() {
		return
	}
	if c.state.CurrentSlide().ProgressState != stories.Resume {
		return
	}
	c.applyLocked(c.state.ResumeAt(progress))
}

func (c *controller) Finish() {
	c.mu.Lock()
	if c.state.CurrentStoryIndex() >= 0 {
		c.finishLocked()
	}
	c.mu.Unlock()
}

// finishLocked stamps the terminal marker and emits the finished event
// exactly once per session.
func (c *controller) finishLocked() {
	c.applyLocked(c.state.Finish())
	if c.player != nil {
		c.player.Stop()
	}
	c.emitFinishedLocked()
}

// emitFinishedLocked sends the finished event, at most once per session.
// Must be called with mu held.
func (c *controller) emitFinishedLocked() {
	if c.finished {
		return
	}
	c.finished = true
	c.subsMu.RLock()
	for _, sub := range c.subs {
		sub.sendFinished()
	}
	c.subsMu.RUnlock()
}

func (c *controller) Idle() {
	c.mu.Lock()
	c.applyLocked(c.state.WithReadiness(stories.Idle))
	c.mu.Unlock()

	if c.player != nil {
		c.player.Stop()
	}
}

func (c *controller) Snapshot() stories.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

func (c *controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	if c.initCancel != nil {
		c.initCancel()
	}
	c.mu.Unlock()

	if c.player != nil {
		c.player.Stop()
	}

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()

	return nil
}

// readyLocked reports whether the session accepts playback operations.
func (c *controller) readyLocked() bool {
	return c.state.Readiness == stories.Ready && c.state.CurrentStoryIndex() >= 0
}

// applyLocked installs the next snapshot and fans out events. Must be
// called with mu held; sends are non-blocking.
func (c *controller) applyLocked(next stories.State) {
	prev := c.state
	c.state = next

	change := SnapshotChange{Previous: prev, Current: next}

	var current *CurrentChange
	if next.CurrentStoryIndex() >= 0 {
		story := next.CurrentStory()
		slideIndex := story.CurrentSlideIndex()
		if prev.CurrentStoryIndex() < 0 ||
			prev.CurrentStory().ID != story.ID ||
			prev.CurrentSlideIndex() != slideIndex {
			current = &CurrentChange{StoryID: story.ID, SlideIndex: slideIndex}
		}
	}

	c.subsMu.RLock()
	for _, sub := range c.subs {
		sub.sendSnapshot(change)
		if current != nil {
			sub.sendCurrent(*current)
		}
	}
	c.subsMu.RUnlock()
}

// mediaBoundary is the story/slide boundary treatment for the media
// player: pause whatever is playing and rewind for the next entry.
func (c *controller) mediaBoundary() {
	if c.player == nil {
		return
	}
	c.player.Pause()
	c.player.SeekToStart()
}

func (c *controller) emitError(op errmsg.Op, err error) {
	c.subsMu.RLock()
	for _, sub := range c.subs {
		sub.sendError(ErrorEvent{Op: op, Err: err})
	}
	c.subsMu.RUnlock()
}

func isVideoNow(st stories.State) bool {
	return st.CurrentStory().Video && st.CurrentSlide().Video
}
