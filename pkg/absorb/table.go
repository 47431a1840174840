package absorb

import (
	"math"

	"github.com/pcdshub/hxr-attenuator/pkg/errors"
)

// Table is a uniform-grid tabulation of photoabsorption data for a single
// material: photon energy [eV], atomic scattering factor f2, and absorption
// coefficient μ [1/m].
type Table struct {
	formula  string
	energies []float64
	f2       []float64
	mu       []float64
	evMin    float64
	evMax    float64
	evInc    float64
}

// Formula returns the material formula the table was built for.
func (t *Table) Formula() string { return t.formula }

// Len returns the number of tabulated energies.
func (t *Table) Len() int { return len(t.energies) }

// Bounds returns the lowest and highest tabulated photon energies [eV].
func (t *Table) Bounds() (evMin, evMax float64) { return t.evMin, t.evMax }

// ClosestEnergy finds the tabulated photon energy nearest to eV and its
// index. Energies below the table floor clamp to the first row, energies
// above the table ceiling to the last.
func (t *Table) ClosestEnergy(eV float64) (closestEV float64, index int) {
	index = int(math.Round((eV - t.evMin) / t.evInc))
	if index < 0 {
		index = 0
	}
	if index >= len(t.energies) {
		index = len(t.energies) - 1
	}
	return t.energies[index], index
}

// Mu returns the absorption coefficient [1/m] at the tabulated energy
// closest to eV.
func (t *Table) Mu(eV float64) float64 {
	_, i := t.ClosestEnergy(eV)
	return t.mu[i]
}

// Transmission returns the fraction of incident flux a filter of the given
// thickness [m] passes at photon energy eV, using the nearest tabulated
// absorption coefficient.
//
// A negative thickness is an INVALID_INPUT error and a non-positive photon
// energy an INVALID_ENERGY error.
func (t *Table) Transmission(eV, thickness float64) (float64, error) {
	if thickness < 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "negative thickness %g m", thickness)
	}
	if eV <= 0 || math.IsNaN(eV) {
		return 0, errors.New(errors.ErrCodeInvalidEnergy, "photon energy %g eV out of range", eV)
	}
	return math.Exp(-t.Mu(eV) * thickness), nil
}
