package sim

import (
	"time"

	"sparselife/internal/view"
)

// DefaultScale is the edge length of a cell in normalized view space.
const DefaultScale = 0.1

// Snapshot is the persistable state of a simulation: the live cells plus the
// view parameters. It crosses the persistence boundary as plain data.
type Snapshot struct {
	Cells  []Cell   `json:"cells"`
	Offset view.Vec `json:"offset"`
	Scale  float64  `json:"scale"`
}

type actionKind int

const (
	actionClear actionKind = iota
	actionToggle
	actionLoad
)

// pendingAction is an input that arrived while a computation was
// outstanding. Actions replay in FIFO submission order once the result is
// committed.
type pendingAction struct {
	kind actionKind
	cell Cell
	snap Snapshot
}

// Simulation is the facade external callers interact with. It owns the live
// set, the auto-play timer, the deferred-input queue and the step scheduler.
// All methods must be called from a single goroutine; the only concurrency is
// inside the scheduler, which hands whole generations back and forth.
type Simulation struct {
	cells Set
	sched stepScheduler

	play     playState
	interval time.Duration
	queue    []pendingAction

	livingCount int
	stepCount   uint64
	popHistory  []int
	toggles     []uint64

	scale  float64
	offset view.Vec

	changes ChangeSet
	closed  bool
}

// New returns a Simulation that computes generations on a background worker
// goroutine. Callers must Close it to stop the worker.
func New() *Simulation {
	return newSimulation(newWorkerScheduler())
}

// NewSynchronous returns a Simulation that computes generations inline on the
// calling goroutine, for environments where a background worker is
// undesirable. The external contract is identical to New.
func NewSynchronous() *Simulation {
	return newSimulation(newInlineScheduler())
}

func newSimulation(sched stepScheduler) *Simulation {
	return &Simulation{
		cells:      make(Set),
		sched:      sched,
		interval:   DefaultInterval,
		popHistory: []int{0},
		scale:      DefaultScale,
	}
}

// Close shuts the scheduler down. It must be called on every exit path; a
// simulation left unclosed leaks its worker goroutine. Close is idempotent
// and discards any in-flight result.
func (s *Simulation) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.sched.shutdown()
}

// IsPlaying reports whether auto-play is active.
func (s *Simulation) IsPlaying() bool { return s.play.isPlaying() }

// LivingCount returns the current population size.
func (s *Simulation) LivingCount() int { return s.livingCount }

// StepCount returns the number of completed generations since the last clear.
func (s *Simulation) StepCount() uint64 { return s.stepCount }

// PopulationHistory returns one population entry per completed generation,
// seeded with a zero entry. Its length is always StepCount()+1.
func (s *Simulation) PopulationHistory() []int { return s.popHistory }

// ToggleRecord returns the step indices at which cells were manually toggled.
func (s *Simulation) ToggleRecord() []uint64 { return s.toggles }

// Interval returns the auto-play interval.
func (s *Simulation) Interval() time.Duration { return s.interval }

// SetInterval replaces the auto-play interval.
func (s *Simulation) SetInterval(d time.Duration) { s.interval = d }

// SpeedUp shortens the auto-play interval by the speed factor.
func (s *Simulation) SpeedUp() {
	s.interval = time.Duration(float64(s.interval) / speedFactor)
}

// SlowDown lengthens the auto-play interval by the speed factor.
func (s *Simulation) SlowDown() {
	s.interval = time.Duration(float64(s.interval) * speedFactor)
}

// Scale returns the current grid scale.
func (s *Simulation) Scale() float64 { return s.scale }

// SetScale updates the grid scale and records it for the renderer.
func (s *Simulation) SetScale(scale float64) {
	s.scale = scale
	s.changes.Scale = scale
	s.changes.ScaleSet = true
}

// Offset returns the current pan offset.
func (s *Simulation) Offset() view.Vec { return s.offset }

// SetOffset updates the pan offset and records it for the renderer.
func (s *Simulation) SetOffset(offset view.Vec) {
	s.offset = offset
	s.changes.Offset = offset
	s.changes.OffsetSet = true
}

// TogglePlaying flips auto-play. Entering auto-play fires one immediate step;
// leaving it has no side effect.
func (s *Simulation) TogglePlaying() {
	if s.play.isPlaying() {
		s.play.stop()
		return
	}
	s.Step()
	s.play.start()
}

// Step dispatches one generation to the scheduler. While a computation is
// outstanding the call is a no-op; the auto-play loop retries on a later
// tick. Step never blocks.
func (s *Simulation) Step() {
	if s.sched.busy() {
		return
	}
	if !s.sched.requestStep(s.cells.Clone()) {
		return
	}
	// The inline scheduler completes synchronously; commit right away so
	// callers observe the new generation on return.
	s.pollResult()
}

// ToggleCell flips the cell at c, or defers the flip while a computation is
// outstanding.
func (s *Simulation) ToggleCell(c Cell) {
	if s.sched.busy() {
		s.queue = append(s.queue, pendingAction{kind: actionToggle, cell: c})
		return
	}
	s.toggleAction(c)
}

// Clear empties the grid and resets the statistics, or defers doing so while
// a computation is outstanding.
func (s *Simulation) Clear() {
	if s.sched.busy() {
		s.queue = append(s.queue, pendingAction{kind: actionClear})
		return
	}
	s.clearAction()
}

// Load replaces the grid and view parameters with a saved snapshot, or
// defers doing so while a computation is outstanding.
func (s *Simulation) Load(snap Snapshot) {
	if s.sched.busy() {
		s.queue = append(s.queue, pendingAction{kind: actionLoad, snap: snap})
		return
	}
	s.loadAction(snap)
}

// Snapshot captures the current cells and view parameters for persistence.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Cells:  s.cells.Cells(),
		Offset: s.offset,
		Scale:  s.scale,
	}
}

// Update is the once-per-tick poll. It fires a due auto step, commits a
// finished generation if one arrived, replays deferred inputs, and returns
// the accumulated ChangeSet, resetting it for the next tick.
func (s *Simulation) Update() ChangeSet {
	if s.play.due(s.interval) && !s.sched.busy() {
		s.Step()
	}

	s.pollResult()

	out := s.changes
	s.changes = ChangeSet{}
	return out
}

// pollResult commits a finished generation when one is available: swap in the
// new live set, bump the counters, then drain the deferred-input queue before
// anything else can be dispatched.
func (s *Simulation) pollResult() {
	next, ok := s.sched.tryResult()
	if !ok {
		return
	}

	s.cells = next
	s.stepCount++
	s.livingCount = len(s.cells)
	s.popHistory = append(s.popHistory, s.livingCount)
	s.markCellsChanged()

	s.drainQueue()
}

// drainQueue replays deferred inputs head-to-tail through the same handlers
// used outside a computation window.
func (s *Simulation) drainQueue() {
	for len(s.queue) > 0 {
		a := s.queue[0]
		s.queue = s.queue[1:]
		switch a.kind {
		case actionClear:
			s.clearAction()
		case actionToggle:
			s.toggleAction(a.cell)
		case actionLoad:
			s.loadAction(a.snap)
		}
	}
	s.queue = nil
}

func (s *Simulation) toggleAction(c Cell) {
	if s.cells.Contains(c) {
		delete(s.cells, c)
		s.livingCount--
	} else {
		s.cells[c] = struct{}{}
		s.livingCount++
	}
	s.toggles = append(s.toggles, s.stepCount)
	s.markCellsChanged()
}

func (s *Simulation) clearAction() {
	s.cells = make(Set)
	s.livingCount = 0
	s.stepCount = 0
	s.popHistory = []int{0}
	s.toggles = nil
	s.markCellsChanged()
}

func (s *Simulation) loadAction(snap Snapshot) {
	s.clearAction()
	s.cells = NewSet(snap.Cells...)
	s.livingCount = len(s.cells)
	s.offset = snap.Offset
	if snap.Scale > 0 {
		s.scale = snap.Scale
	}
	s.markCellsChanged()
	s.changes.Scale = s.scale
	s.changes.ScaleSet = true
	s.changes.Offset = s.offset
	s.changes.OffsetSet = true
}

func (s *Simulation) markCellsChanged() {
	s.changes.Cells = s.cells.Cells()
	s.changes.CellsSet = true
}
