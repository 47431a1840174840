package solver

import (
	"math"

	"github.com/pcdshub/hxr-attenuator/pkg/errors"
)

// Candidate is one row of the enumeration table: a nominal insert/remove
// bit-pattern and the beam transmission it achieves.
type Candidate struct {
	// Pattern is the nominal bit-pattern in canonical enumeration order.
	// The row is shared with other candidates for the same blade count and
	// must not be modified.
	Pattern []int

	// Transmission is the product of transmissions[i] over every i with
	// Pattern[i] == 1 and a finite transmission value. NaN (stuck) entries
	// contribute no factor regardless of their nominal bit, so a stuck
	// blade can never raise or lower any candidate's transmission.
	Transmission float64
}

// Enumerate computes the full 2^N table of insert/remove candidates for the
// given per-blade transmission vector. NaN entries mark stuck blades.
//
// The table is deterministic and ordered canonically (see patterns). Cost is
// O(2^N · N); vectors longer than MaxBlades are rejected with
// TOO_MANY_BLADES and empty vectors with EMPTY_TRANSMISSIONS.
func Enumerate(transmissions []float64) ([]Candidate, error) {
	n := len(transmissions)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeEmptyTransmissions, "no blade transmissions supplied")
	}
	if n > MaxBlades {
		return nil, errors.New(errors.ErrCodeTooManyBlades,
			"%d blades exceeds the enumeration limit of %d", n, MaxBlades)
	}

	rows := patterns(n)
	table := make([]Candidate, len(rows))
	for k, row := range rows {
		product := 1.0
		for i, bit := range row {
			if bit == 1 && !math.IsNaN(transmissions[i]) {
				product *= transmissions[i]
			}
		}
		table[k] = Candidate{Pattern: row, Transmission: product}
	}
	return table, nil
}
