package engine

// State is the redraw policy of the scheduler.
type State int

const (
	// Idle renders only when something was invalidated.
	Idle State = iota
	// Animating renders every tick.
	Animating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	}
	return "unknown"
}

// Scheduler decides which ticks render a new frame.
type Scheduler struct {
	state State
	dirty bool
}

// NewScheduler starts idle with a pending first frame.
func NewScheduler() *Scheduler {
	return &Scheduler{dirty: true}
}

// State returns the current policy.
func (s *Scheduler) State() State {
	return s.state
}

// Invalidate requests one on-demand render.
func (s *Scheduler) Invalidate() {
	s.dirty = true
}

// Next moves to Animating while motion is in progress and back to Idle once
// it stops, and reports whether this tick should render.
func (s *Scheduler) Next(motion bool) bool {
	render := s.dirty || motion || s.state == Animating
	if motion {
		s.state = Animating
	} else {
		s.state = Idle
	}
	s.dirty = false
	return render
}
