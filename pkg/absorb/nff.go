package absorb

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pcdshub/hxr-attenuator/pkg/errors"
)

// ParseNFF reads scattering-factor samples from a CXRO .nff table: a header
// line followed by whitespace-separated rows of photon energy [eV], f1 and
// f2. Blank lines are skipped; f1 is read and discarded (only f2 enters the
// absorption calculation). Rows with missing or non-numeric fields are an
// INVALID_TABLE error.
func ParseNFF(r io.Reader) ([]Sample, error) {
	scanner := bufio.NewScanner(r)

	var samples []Sample
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if line == 1 {
			// Header, e.g. "E(eV)	f1	f2".
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 3 {
			return nil, errors.New(errors.ErrCodeInvalidTable,
				"line %d: expected 3 columns, got %d", line, len(fields))
		}
		energy, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "line %d: energy", line)
		}
		f2, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "line %d: f2", line)
		}
		samples = append(samples, Sample{EnergyEV: energy, F2: f2})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "reading nff data")
	}
	if len(samples) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidTable, "no data rows")
	}
	return samples, nil
}
