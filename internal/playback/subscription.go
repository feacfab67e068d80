package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	SnapshotChanged <-chan SnapshotChange
	CurrentChanged  <-chan CurrentChange
	Finished        <-chan FinishedEvent
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	// Internal write channels
	snapshotCh chan SnapshotChange
	currentCh  chan CurrentChange
	finishedCh chan FinishedEvent
	errorCh    chan ErrorEvent
	doneCh     chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		snapshotCh: make(chan SnapshotChange, eventBufferSize),
		currentCh:  make(chan CurrentChange, eventBufferSize),
		finishedCh: make(chan FinishedEvent, 1),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.SnapshotChanged = s.snapshotCh
	s.CurrentChanged = s.currentCh
	s.Finished = s.finishedCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendSnapshot sends a snapshot change event (non-blocking).
func (s *Subscription) sendSnapshot(e SnapshotChange) {
	select {
	case s.snapshotCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendCurrent sends a current change event (non-blocking).
func (s *Subscription) sendCurrent(e CurrentChange) {
	select {
	case s.currentCh <- e:
	default:
	}
}

// sendFinished sends the finished event (non-blocking).
func (s *Subscription) sendFinished() {
	select {
	case s.finishedCh <- FinishedEvent{}:
	default:
	}
}

// sendError sends an error event (non-blocking).
func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
