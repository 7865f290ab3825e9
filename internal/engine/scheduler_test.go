package engine

import "testing"

func TestSchedulerPolicy(t *testing.T) {
	s := NewScheduler()

	steps := []struct {
		name       string
		invalidate bool
		motion     bool
		render     bool
		state      State
	}{
		{"first frame", false, false, true, Idle},
		{"idle stays quiet", false, false, false, Idle},
		{"on demand", true, false, true, Idle},
		{"quiet again", false, false, false, Idle},
		{"zoom starts", false, true, true, Animating},
		{"zoom continues", false, true, true, Animating},
		{"zoom settles, final frame", false, false, true, Idle},
		{"idle after settle", false, false, false, Idle},
	}

	for _, st := range steps {
		if st.invalidate {
			s.Invalidate()
		}
		if got := s.Next(st.motion); got != st.render {
			t.Errorf("%s: render = %v, want %v", st.name, got, st.render)
		}
		if s.State() != st.state {
			t.Errorf("%s: state = %v, want %v", st.name, s.State(), st.state)
		}
	}
}

func TestStateString(t *testing.T) {
	if Idle.String() != "idle" || Animating.String() != "animating" || State(7).String() != "unknown" {
		t.Error("unexpected State strings")
	}
}
