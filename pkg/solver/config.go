package solver

import (
	"fmt"
	"math"
	"strings"
)

// Config is a resolved attenuator configuration: one insert/remove decision
// per blade plus the beam transmission that decision achieves. Configs are
// value objects; they are built once per solve and never mutated.
type Config struct {
	// FilterStates holds one 0/1 entry per blade, 1 meaning inserted.
	// A stuck blade (NaN transmission) is always 0.
	FilterStates []int

	// Transmission is the product of the transmission values of all
	// inserted blades. The empty configuration has transmission 1.0.
	Transmission float64

	// AllTransmissions is the per-blade transmission vector the
	// configuration was solved against, NaN marking stuck blades.
	AllTransmissions []float64
}

// newConfig builds a Config from a nominal bit-pattern and the transmission
// vector it was enumerated against. Bits at NaN positions are forced to
// zero, and the achieved transmission is recomputed on the exact resulting
// pattern so the product invariant holds bit-for-bit.
func newConfig(pattern []int, transmissions []float64) Config {
	states := make([]int, len(pattern))
	product := 1.0
	for i, bit := range pattern {
		if bit == 1 && !math.IsNaN(transmissions[i]) {
			states[i] = 1
			product *= transmissions[i]
		}
	}
	all := make([]float64, len(transmissions))
	copy(all, transmissions)
	return Config{FilterStates: states, Transmission: product, AllTransmissions: all}
}

// InsertedCount returns the number of inserted blades.
func (c Config) InsertedCount() int {
	n := 0
	for _, s := range c.FilterStates {
		n += s
	}
	return n
}

// String formats the configuration for logging and debug output.
func (c Config) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range c.FilterStates {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", s)
	}
	b.WriteByte(']')
	return fmt.Sprintf("<Config %s transmission=%g>", b.String(), c.Transmission)
}
