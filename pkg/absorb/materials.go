package absorb

import (
	"sort"
	"sync"

	"github.com/pcdshub/hxr-attenuator/pkg/errors"
)

// builtinSamples are coarse (energy [eV], f2) scattering-factor curves for
// the standard blade materials, reduced from the CXRO tabulations. They
// trade accuracy for a dependency-free default; load the full .nff tables
// with ParseNFF when precision matters. Each set spans the default 10 to
// 30000 eV grid and includes the K-edge discontinuity.
var builtinSamples = map[string][]Sample{
	"Si": {
		{10, 0.5}, {30, 2.1}, {100, 4.4}, {200, 7.8}, {400, 7.1},
		{700, 4.0}, {1000, 2.3}, {1500, 1.1}, {1838, 0.66},
		{1839, 4.2}, {2500, 2.9}, {3000, 2.2}, {5000, 0.98},
		{8000, 0.44}, {12000, 0.21}, {18000, 0.10}, {24000, 0.060},
		{30000, 0.040},
	},
	"C": {
		{10, 0.20}, {30, 0.95}, {100, 1.6}, {200, 0.64}, {283, 0.12},
		{284, 1.9}, {400, 1.4}, {700, 0.62}, {1000, 0.34},
		{1500, 0.16}, {2000, 0.089}, {3000, 0.038}, {5000, 0.021},
		{8000, 0.0091}, {12000, 0.0044}, {18000, 0.0022},
		{24000, 0.0013}, {30000, 0.00085},
	},
	"Al": {
		{10, 0.35}, {30, 1.5}, {72, 0.42}, {73, 3.1}, {100, 3.6},
		{200, 6.0}, {400, 4.9}, {700, 2.6}, {1000, 1.6},
		{1559, 0.77}, {1560, 4.1}, {2500, 2.2}, {3000, 1.6},
		{5000, 0.73}, {8000, 0.32}, {12000, 0.15}, {18000, 0.072},
		{24000, 0.042}, {30000, 0.027},
	},
}

var builtinTables = struct {
	sync.Mutex
	byFormula map[string]*Table
}{byFormula: make(map[string]*Table)}

// Builtin returns the absorption table for a standard blade material,
// built on first use from the builtin sample set and shared afterwards.
// Unknown formulas are an INVALID_MATERIAL error.
func Builtin(formula string) (*Table, error) {
	builtinTables.Lock()
	defer builtinTables.Unlock()

	if t, ok := builtinTables.byFormula[formula]; ok {
		return t, nil
	}
	samples, ok := builtinSamples[formula]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidMaterial,
			"%q is not an available material", formula)
	}
	t, err := Build(formula, samples, BuildOptions{})
	if err != nil {
		return nil, err
	}
	builtinTables.byFormula[formula] = t
	return t, nil
}

// Materials lists the formulas Builtin can serve.
func Materials() []string {
	out := make([]string, 0, len(builtinSamples))
	for f := range builtinSamples {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
