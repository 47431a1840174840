package stack

import "fmt"

// State is the motion readback of one blade actuator. Out is the retracted
// position; In01 through In09 are the numbered insert positions of a
// multi-position stage (a single-position blade only ever reports In01).
type State int

const (
	Moving State = iota
	Out
	In01
	In02
	In03
	In04
	In05
	In06
	In07
	In08
	In09
)

var stateNames = map[State]string{
	Moving: "Moving",
	Out:    "Out",
	In01:   "In_01",
	In02:   "In_02",
	In03:   "In_03",
	In04:   "In_04",
	In05:   "In_05",
	In06:   "In_06",
	In07:   "In_07",
	In08:   "In_08",
	In09:   "In_09",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Inserted reports whether the blade is at any insert position.
func (s State) Inserted() bool { return s >= In01 && s <= In09 }

// FilterIndex maps an insert state to its zero-based position index, or -1
// for Moving and Out.
func (s State) FilterIndex() int {
	if !s.Inserted() {
		return -1
	}
	return int(s - In01)
}

// FromFilterIndex maps a zero-based insert position back to its state.
// Indexes outside [0, 8] return Out.
func FromFilterIndex(i int) State {
	if i < 0 || i > 8 {
		return Out
	}
	return In01 + State(i)
}

// PatternWord packs a 0/1 insert pattern into an integer, blade 0 in the
// most significant bit. Any value outside {0, 1} makes the whole pattern
// unknown and the word reads 0.
func PatternWord(states []int) int {
	word := 0
	for _, s := range states {
		if s != 0 && s != 1 {
			return 0
		}
		word = word<<1 | s
	}
	return word
}
