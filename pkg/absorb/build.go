package absorb

import (
	"sort"

	"gonum.org/v1/gonum/interp"

	"github.com/pcdshub/hxr-attenuator/pkg/errors"
)

// Physical constants (CODATA 2018).
const (
	avogadro       = 6.02214076e23  // 1/mol
	planckEV       = 4.135667696e-15 // Planck constant [eV·s]
	speedOfLight   = 2.99792458e8   // [m/s]
	electronRadius = 2.8179403262e-15 // classical electron radius [m]
)

// Sample is one tabulated scattering-factor point: photon energy [eV] and
// the imaginary scattering factor f2.
type Sample struct {
	EnergyEV float64
	F2       float64
}

// BuildOptions control table construction.
type BuildOptions struct {
	// EVLow and EVHigh bound the energy grid [eV]. Defaults: 10 and 30000.
	EVLow  float64
	EVHigh float64

	// Resolution is the number of grid points per eV. Default: 1 (1 eV
	// spacing). The original tabulation used 10 (0.1 eV spacing), which at
	// the full 10–30000 eV range costs ~300k rows per material.
	Resolution float64

	// AtomicWeight [g/mol] and Density [g/m^3] override the builtin
	// material properties. Both required when the formula is unknown to
	// this package.
	AtomicWeight float64
	Density      float64
}

// materialProperties holds the physical data needed to turn scattering
// factors into absorption coefficients.
type materialProperties struct {
	atomicWeight float64 // g/mol
	density      float64 // g/m^3
}

// builtinProperties covers the standard blade materials. The carbon density
// is the diamond value: the AT2L0 blades are CVD diamond, not graphite.
var builtinProperties = map[string]materialProperties{
	"Si": {atomicWeight: 28.0855, density: 2.3296e6},
	"C":  {atomicWeight: 12.011, density: 3.51e6},
	"Al": {atomicWeight: 26.9815, density: 2.699e6},
}

// Build constructs an absorption table for the material from scattering-
// factor samples. The samples are resampled onto a uniform energy grid by
// piecewise-linear interpolation, and each f2 value is converted to an
// absorption coefficient:
//
//	μ = 2·r₀·h·c·f2/E · ρ · N_A/A
//
// with ρ the mass density and A the atomic weight. Material properties come
// from the builtin set unless overridden in opts; a formula with no builtin
// data and no overrides is an INVALID_MATERIAL error. The samples must be
// sorted by energy and cover the requested grid range.
func Build(formula string, samples []Sample, opts BuildOptions) (*Table, error) {
	if opts.EVLow == 0 {
		opts.EVLow = 10
	}
	if opts.EVHigh == 0 {
		opts.EVHigh = 30000
	}
	if opts.Resolution == 0 {
		opts.Resolution = 1
	}
	if opts.EVHigh <= opts.EVLow {
		return nil, errors.New(errors.ErrCodeInvalidEnergy,
			"empty energy range [%g, %g]", opts.EVLow, opts.EVHigh)
	}

	props, err := resolveProperties(formula, opts)
	if err != nil {
		return nil, err
	}

	if len(samples) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidTable,
			"%s: need at least 2 samples, got %d", formula, len(samples))
	}
	if !sort.SliceIsSorted(samples, func(i, j int) bool {
		return samples[i].EnergyEV < samples[j].EnergyEV
	}) {
		return nil, errors.New(errors.ErrCodeInvalidTable, "%s: samples not sorted by energy", formula)
	}
	if samples[0].EnergyEV > opts.EVLow || samples[len(samples)-1].EnergyEV < opts.EVHigh {
		return nil, errors.New(errors.ErrCodeInvalidTable,
			"%s: samples cover [%g, %g] eV but grid needs [%g, %g]",
			formula, samples[0].EnergyEV, samples[len(samples)-1].EnergyEV,
			opts.EVLow, opts.EVHigh)
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.EnergyEV
		ys[i] = s.F2
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "%s: fitting samples", formula)
	}

	num := int((opts.EVHigh-opts.EVLow)*opts.Resolution) + 1
	energies := make([]float64, num)
	f2 := make([]float64, num)
	mu := make([]float64, num)
	step := (opts.EVHigh - opts.EVLow) / float64(num-1)
	muScale := 2 * electronRadius * planckEV * speedOfLight *
		props.density * avogadro / props.atomicWeight
	for i := range energies {
		e := opts.EVLow + float64(i)*step
		energies[i] = e
		f2[i] = pl.Predict(e)
		mu[i] = muScale * f2[i] / e
	}

	return &Table{
		formula:  formula,
		energies: energies,
		f2:       f2,
		mu:       mu,
		evMin:    energies[0],
		evMax:    energies[num-1],
		evInc:    (energies[num-1] - energies[0]) / float64(num),
	}, nil
}

func resolveProperties(formula string, opts BuildOptions) (materialProperties, error) {
	props, ok := builtinProperties[formula]
	if opts.AtomicWeight > 0 {
		props.atomicWeight = opts.AtomicWeight
	}
	if opts.Density > 0 {
		props.density = opts.Density
	}
	if props.atomicWeight <= 0 || props.density <= 0 {
		if !ok {
			return materialProperties{}, errors.New(errors.ErrCodeInvalidMaterial,
				"no builtin properties for %q; supply AtomicWeight and Density", formula)
		}
		return materialProperties{}, errors.New(errors.ErrCodeInvalidMaterial,
			"incomplete properties for %q", formula)
	}
	return props, nil
}
