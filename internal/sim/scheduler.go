package sim

import "sync/atomic"

// stepScheduler runs NextGeneration on behalf of the Simulation facade. The
// two implementations are behaviorally equivalent from the facade's point of
// view: one computes on a dedicated goroutine, the other inline on the
// caller. The facade never blocks on either.
type stepScheduler interface {
	// requestStep hands a snapshot to the scheduler. It reports false
	// when a computation is already outstanding (single-flight) or the
	// scheduler has been shut down; the snapshot is then dropped and the
	// caller may retry on a later tick.
	requestStep(snapshot Set) bool

	// tryResult polls for a finished generation without blocking.
	tryResult() (Set, bool)

	// busy reports whether a computation is outstanding. Callers use it on
	// the hot "apply now or defer" path, so it must not take locks.
	busy() bool

	// shutdown terminates the scheduler. An in-flight computation runs to
	// completion before shutdown returns; its result is discarded.
	shutdown()
}

// workerScheduler computes generations on a long-lived background goroutine.
// Work is handed over on a 1-buffered channel, so requestStep never blocks
// under single-flight discipline; closing that channel is the shutdown
// signal. Results come back on a 1-buffered single-producer/single-consumer
// channel, so the worker never blocks on send either. The inFlight flag is
// the lock-free busy indicator: set when work is dispatched, cleared when the
// result is taken.
type workerScheduler struct {
	inFlight atomic.Bool
	work     chan Set
	results  chan Set
	done     chan struct{}
	closed   bool
}

func newWorkerScheduler() *workerScheduler {
	s := &workerScheduler{
		work:    make(chan Set, 1),
		results: make(chan Set, 1),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *workerScheduler) run() {
	defer close(s.done)
	for snapshot := range s.work {
		s.results <- NextGeneration(snapshot)
	}
}

func (s *workerScheduler) requestStep(snapshot Set) bool {
	if s.closed {
		return false
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return false
	}
	s.work <- snapshot
	return true
}

func (s *workerScheduler) tryResult() (Set, bool) {
	select {
	case next := <-s.results:
		s.inFlight.Store(false)
		return next, true
	default:
		return nil, false
	}
}

func (s *workerScheduler) busy() bool { return s.inFlight.Load() }

func (s *workerScheduler) shutdown() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.work)
	<-s.done
}

// inlineScheduler computes the next generation synchronously on the calling
// goroutine. There is no outstanding-computation window, so busy is always
// false and the facade's deferral queue stays empty.
type inlineScheduler struct {
	pending Set
	ready   bool
}

func newInlineScheduler() *inlineScheduler { return &inlineScheduler{} }

func (s *inlineScheduler) requestStep(snapshot Set) bool {
	s.pending = NextGeneration(snapshot)
	s.ready = true
	return true
}

func (s *inlineScheduler) tryResult() (Set, bool) {
	if !s.ready {
		return nil, false
	}
	next := s.pending
	s.pending = nil
	s.ready = false
	return next, true
}

func (s *inlineScheduler) busy() bool { return false }

func (s *inlineScheduler) shutdown() {}
