package stack

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pcdshub/hxr-attenuator/pkg/errors"
)

// Load reads a stack definition from a TOML file and validates it.
//
// Example:
//
//	photon_energy_ev = 9000.0
//	material_order = ["C", "Si"]
//
//	[[blade]]
//	index = 0
//	material = "C"
//	thickness_m = 25e-6
//
//	[[blade]]
//	index = 1
//	material = "Si"
//	thickness_m = 40e-6
//	stuck = true
func Load(path string) (*Stack, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "stack config")
		}
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads and validates a TOML stack definition.
func Parse(r io.Reader) (*Stack, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading stack config")
	}
	var s Stack
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing stack config")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
