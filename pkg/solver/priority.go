package solver

import (
	"math"

	"github.com/pcdshub/hxr-attenuator/pkg/errors"
)

// BestConfigWithMaterialPriority selects a single configuration for the
// desired transmission tDes, preferring to keep blades of materials earlier
// in materialOrder inserted over blades of materials later in the order.
//
// Materials are resolved one at a time, most preferred first. For each
// material the solver runs over just that material's movable blades with
// the residual target tDes divided by the transmission already committed,
// and the ceiling configuration is taken; its bits are merged into the
// result and its transmission folded into the running product. Later
// (less preferred) materials therefore only make up attenuation the
// preferred materials could not provide. The stage-wise ceiling pick keeps
// each partial product from undershooting its residual target, which is
// what yields the canonical prioritized patterns (see the fixture table in
// the package tests).
//
// A material missing from materialOrder is not an error: such materials are
// given the lowest priority, after every listed material, in order of first
// appearance. Operators add new filter materials more often than orderings
// get updated.
//
// materials and transmissions must have equal length; a mismatch is an
// INVALID_INPUT error. Stuck blades (NaN) are excluded per material, and a
// fully stuck stack resolves to the all-removed configuration at 1.0.
func BestConfigWithMaterialPriority(materials []string, transmissions []float64, materialOrder []string, tDes float64) (Config, error) {
	n := len(transmissions)
	if n == 0 {
		return Config{}, errors.New(errors.ErrCodeEmptyTransmissions, "no blade transmissions supplied")
	}
	if len(materials) != n {
		return Config{}, errors.New(errors.ErrCodeInvalidInput,
			"%d materials for %d transmissions", len(materials), n)
	}
	if n > MaxBlades {
		return Config{}, errors.New(errors.ErrCodeTooManyBlades,
			"%d blades exceeds the enumeration limit of %d", n, MaxBlades)
	}

	states := make([]int, n)
	total := 1.0

	for _, material := range materialSequence(materials, materialOrder) {
		// Compact sub-vector of this material's movable blades. Solving the
		// compact vector keeps the candidate table free of duplicate
		// products from unrelated blades, which would derail the adjacency
		// search in FindConfigs.
		var idx []int
		for i, m := range materials {
			if m == material && !math.IsNaN(transmissions[i]) {
				idx = append(idx, i)
			}
		}
		if len(idx) == 0 {
			continue
		}
		sub := make([]float64, len(idx))
		for j, i := range idx {
			sub[j] = transmissions[i]
		}

		residual := 0.0
		if total > 0 {
			residual = tDes / total
		}

		_, ceiling, err := FindConfigs(sub, residual, 1.0)
		if err != nil {
			return Config{}, err
		}
		for j, i := range idx {
			if ceiling.FilterStates[j] == 1 {
				states[i] = 1
			}
		}
		total *= ceiling.Transmission
	}

	return newConfig(states, transmissions), nil
}

// materialSequence returns the resolution order: every material from
// preference (deduplicated, skipping materials not present in the stack)
// followed by materials present in the stack but absent from the
// preference, in order of first appearance.
func materialSequence(materials, preference []string) []string {
	seen := make(map[string]bool)
	var seq []string
	for _, m := range preference {
		if !seen[m] {
			seen[m] = true
			seq = append(seq, m)
		}
	}
	for _, m := range materials {
		if !seen[m] {
			seen[m] = true
			seq = append(seq, m)
		}
	}
	return seq
}
