package stack

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Moving, "Moving"},
		{Out, "Out"},
		{In01, "In_01"},
		{In09, "In_09"},
		{State(42), "State(42)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}

func TestInserted(t *testing.T) {
	if Moving.Inserted() || Out.Inserted() {
		t.Error("Moving and Out are not inserted")
	}
	for s := In01; s <= In09; s++ {
		if !s.Inserted() {
			t.Errorf("%s should be inserted", s)
		}
	}
}

func TestFilterIndexRoundTrip(t *testing.T) {
	for i := 0; i < 9; i++ {
		s := FromFilterIndex(i)
		if !s.Inserted() {
			t.Fatalf("FromFilterIndex(%d) = %s, not inserted", i, s)
		}
		if got := s.FilterIndex(); got != i {
			t.Errorf("FilterIndex round trip: %d -> %s -> %d", i, s, got)
		}
	}
	if Out.FilterIndex() != -1 || Moving.FilterIndex() != -1 {
		t.Error("Out and Moving have no filter index")
	}
	if FromFilterIndex(-1) != Out || FromFilterIndex(9) != Out {
		t.Error("out-of-range indexes map to Out")
	}
}

func TestPatternWord(t *testing.T) {
	tests := []struct {
		name   string
		states []int
		want   int
	}{
		{"empty", nil, 0},
		{"all out", []int{0, 0, 0}, 0},
		{"all in", []int{1, 1, 1}, 7},
		{"leading blade is msb", []int{1, 0, 0}, 4},
		{"trailing blade is lsb", []int{0, 0, 1}, 1},
		{"invalid value", []int{1, 2, 1}, 0},
		{"negative value", []int{1, -1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PatternWord(tt.states); got != tt.want {
				t.Errorf("PatternWord(%v) = %d, want %d", tt.states, got, tt.want)
			}
		})
	}
}
