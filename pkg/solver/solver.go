package solver

import (
	"math"
	"sort"
	"strings"

	"github.com/pcdshub/hxr-attenuator/pkg/errors"
)

// Mode selects which of the two bracketing configurations a single-config
// accessor returns.
type Mode int

const (
	// ModeFloor selects the closest configuration whose transmission does
	// not exceed the desired value.
	ModeFloor Mode = iota + 1

	// ModeCeiling selects the closest configuration whose transmission is
	// at least the desired value.
	ModeCeiling
)

// String returns the mode name, or "unknown" for unrecognized values.
func (m Mode) String() string {
	switch m {
	case ModeFloor:
		return "floor"
	case ModeCeiling:
		return "ceiling"
	}
	return "unknown"
}

// ParseMode converts a mode name ("floor" or "ceiling", case-insensitive)
// to a Mode. Unrecognized names yield an INVALID_MODE error.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "floor":
		return ModeFloor, nil
	case "ceiling":
		return ModeCeiling, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidMode, "unrecognized mode %q", s)
}

// FindConfigs locates the two configurations bracketing the desired
// transmission tDes: the floor (closest achievable from below) and the
// ceiling (closest achievable from above).
//
// tBase is the transmission of any fixed attenuation upstream of the blade
// stack; the blade product is solved against the rescaled target tDes/tBase.
// Pass 1.0 when there is none.
//
// The search sorts the enumeration table by achieved transmission with a
// stable sort, so candidates tied on transmission keep their canonical
// enumeration order; the first index minimizing |achieved - target| wins.
// If the target is met exactly both returns are that configuration; if the
// target lies outside the achievable range both collapse onto the boundary
// configuration.
//
// When every blade is stuck the only achievable transmission is the empty
// product, and both returns are the all-removed configuration at 1.0.
func FindConfigs(transmissions []float64, tDes, tBase float64) (floor, ceiling Config, err error) {
	if tBase != 0 && tBase != 1 {
		tDes = tDes / tBase
	}

	table, err := Enumerate(transmissions)
	if err != nil {
		return Config{}, Config{}, err
	}

	order := make([]int, len(table))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return table[order[a]].Transmission < table[order[b]].Transmission
	})

	closest := 0
	best := math.Abs(table[order[0]].Transmission - tDes)
	for i := 1; i < len(order); i++ {
		if d := math.Abs(table[order[i]].Transmission - tDes); d < best {
			best = d
			closest = i
		}
	}

	var low, high int
	switch t := table[order[closest]].Transmission; {
	case t == tDes:
		low, high = closest, closest
	case t < tDes:
		low = closest
		high = min(closest+1, len(order)-1)
	default:
		high = closest
		low = max(closest-1, 0)
	}

	floor = newConfig(table[order[low]].Pattern, transmissions)
	ceiling = newConfig(table[order[high]].Pattern, transmissions)
	return floor, ceiling, nil
}

// BestConfig returns the floor or ceiling configuration for the desired
// transmission, according to mode. An unrecognized mode is an INVALID_MODE
// error; there are no transient failures to retry.
func BestConfig(transmissions []float64, tDes float64, mode Mode) (Config, error) {
	if mode != ModeFloor && mode != ModeCeiling {
		return Config{}, errors.New(errors.ErrCodeInvalidMode, "unrecognized mode %d", int(mode))
	}
	floor, ceiling, err := FindConfigs(transmissions, tDes, 1.0)
	if err != nil {
		return Config{}, err
	}
	if mode == ModeFloor {
		return floor, nil
	}
	return ceiling, nil
}
