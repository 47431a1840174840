// Package stack models a physical attenuator: an ordered set of insertable
// filter blades, each a slab of a single material, sharing one photon
// energy. It turns a stack definition into the per-blade transmission
// vector the solver consumes, with stuck blades marked NaN.
package stack

import (
	"math"

	"github.com/pcdshub/hxr-attenuator/pkg/absorb"
	"github.com/pcdshub/hxr-attenuator/pkg/errors"
)

// Blade is one insertable filter.
type Blade struct {
	// Index is the blade position in the stack, counted from the source.
	Index int `toml:"index"`

	// Material is the chemical formula of the filter, e.g. "Si" or "C".
	Material string `toml:"material"`

	// Thickness is the filter thickness along the beam [m].
	Thickness float64 `toml:"thickness_m"`

	// Stuck marks a blade whose motion has failed. Stuck blades are
	// excluded from solving: their transmission is reported as NaN.
	Stuck bool `toml:"stuck"`
}

// Stack is a full attenuator definition.
type Stack struct {
	// PhotonEnergyEV is the beam photon energy [eV] transmissions are
	// evaluated at.
	PhotonEnergyEV float64 `toml:"photon_energy_ev"`

	// MaterialOrder ranks materials for priority solving, most preferred
	// first. Materials present in the stack but absent here rank last.
	MaterialOrder []string `toml:"material_order"`

	Blades []Blade `toml:"blade"`
}

// Validate checks the stack for structural problems: no blades, duplicate
// or negative indexes, empty materials, non-positive thicknesses, or a
// non-positive photon energy. All failures carry validation error codes.
func (s *Stack) Validate() error {
	if len(s.Blades) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "stack has no blades")
	}
	if s.PhotonEnergyEV <= 0 || math.IsNaN(s.PhotonEnergyEV) {
		return errors.New(errors.ErrCodeInvalidEnergy,
			"photon energy %g eV must be positive", s.PhotonEnergyEV)
	}
	seen := make(map[int]bool, len(s.Blades))
	for _, b := range s.Blades {
		if b.Index < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "blade index %d is negative", b.Index)
		}
		if seen[b.Index] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate blade index %d", b.Index)
		}
		seen[b.Index] = true
		if b.Material == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "blade %d has no material", b.Index)
		}
		if b.Thickness <= 0 || math.IsNaN(b.Thickness) {
			return errors.New(errors.ErrCodeInvalidConfig,
				"blade %d thickness %g m must be positive", b.Index, b.Thickness)
		}
	}
	return nil
}

// Materials returns the per-blade material formulas, in blade order.
func (s *Stack) Materials() []string {
	out := make([]string, len(s.Blades))
	for i, b := range s.Blades {
		out[i] = b.Material
	}
	return out
}

// Transmissions evaluates each blade at the stack photon energy and returns
// the solver input vector: NaN for stuck blades, otherwise the table
// transmission for the blade's material and thickness. Each material in the
// stack must resolve through lookup; nil falls back to the builtin tables.
func (s *Stack) Transmissions(lookup func(formula string) (*absorb.Table, error)) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if lookup == nil {
		lookup = absorb.Builtin
	}

	out := make([]float64, len(s.Blades))
	for i, b := range s.Blades {
		if b.Stuck {
			out[i] = math.NaN()
			continue
		}
		table, err := lookup(b.Material)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "blade %d", b.Index)
		}
		tr, err := table.Transmission(s.PhotonEnergyEV, b.Thickness)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "blade %d", b.Index)
		}
		out[i] = tr
	}
	return out, nil
}
