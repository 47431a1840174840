// Package solver finds attenuation blade configurations that approximate a
// desired X-ray beam transmission.
//
// The beam passes through a stack of N independently insertable blades. Each
// inserted blade multiplies the beam transmission by its own transmission
// coefficient; removed blades contribute nothing. The solver enumerates all
// 2^N insert/remove bit-patterns, computes the achieved transmission of each,
// and selects the patterns bracketing the requested value:
//
//	floor, ceiling, err := solver.FindConfigs(transmissions, 0.1, 1.0)
//
// Stuck blades are marked with math.NaN() in the transmission vector. They
// are never counted as inserted: a NaN entry contributes no factor to any
// candidate product, and its bit is forced to zero in returned
// configurations.
//
// BestConfigWithMaterialPriority additionally resolves among near-optimal
// patterns using an ordered material preference, keeping blades of preferred
// materials inserted ahead of the rest.
//
// # Cost
//
// Enumeration is O(2^N · N) in time and memory. This is fine at the physical
// scale of the instrument (N ≤ ~20) but grows exponentially; inputs above
// MaxBlades are rejected rather than silently capped. Callers must not pass
// an unbounded or externally controlled blade count.
//
// All functions are pure: no I/O, no retained state between calls, safe for
// concurrent use.
package solver
