package playback

import (
	"sync"
	"time"
)

const defaultAnimatorTick = 50 * time.Millisecond

// Animator drives the timed auto-advance of the current slide: linear
// progress from a starting point to 1 over the slide's remaining time.
//
// Start fully cancels any in-flight run before beginning a new one; a
// cancelled run never delivers another callback, so a pause/resume cycle
// cannot double-apply progress.
type Animator struct {
	mu     sync.Mutex
	cancel chan struct{}
	tick   time.Duration
}

// NewAnimator creates an animator with the given tick interval. A zero
// interval uses the default.
func NewAnimator(tick time.Duration) *Animator {
	if tick <= 0 {
		tick = defaultAnimatorTick
	}
	return &Animator{tick: tick}
}

// Start begins animating from the given progress across total duration,
// delivering onProgress on each tick and onComplete once progress
// reaches 1. A non-positive total means the slide's timing is determined
// externally: nothing runs until a real duration is set.
func (a *Animator) Start(from float64, total time.Duration, onProgress func(float64), onComplete func()) {
	a.Stop()

	if total <= 0 {
		return
	}
	if from >= 1 {
		onComplete()
		return
	}

	cancel := make(chan struct{})
	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()

	go a.run(cancel, from, total, onProgress, onComplete)
}

func (a *Animator) run(cancel chan struct{}, from float64, total time.Duration, onProgress func(float64), onComplete func()) {
	start := time.Now()
	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			progress := from + float64(time.Since(start))/float64(total)
			if progress >= 1 {
				select {
				case <-cancel:
					return
				default:
				}
				onProgress(1)
				onComplete()
				return
			}
			onProgress(progress)
		}
	}
}

// Stop fully cancels the in-flight run, if any.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		close(a.cancel)
		a.cancel = nil
	}
}
