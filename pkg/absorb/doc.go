// Package absorb models X-ray photoabsorption of attenuator blade
// materials.
//
// For each material a Table holds absorption coefficients μ on a uniform
// photon-energy grid, derived from tabulated atomic scattering factors
// (Henke, Gullikson & Davis, At. Data Nucl. Data Tables 54, 1993). A blade
// of thickness d transmits the fraction
//
//	T = exp(-μ(E) · d)
//
// of the incident flux at photon energy E.
//
// Tables are built from (energy, f2) sample points with Build, which
// resamples onto a uniform grid by piecewise-linear interpolation and
// converts scattering factors to absorption coefficients. Sample points can
// be parsed from CXRO .nff files with ParseNFF, or taken from the coarse
// builtin sets for the standard blade materials (silicon, diamond,
// aluminum).
//
// A Table is immutable after construction and safe for concurrent use.
package absorb
