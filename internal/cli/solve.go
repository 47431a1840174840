package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pcdshub/hxr-attenuator/pkg/errors"
	"github.com/pcdshub/hxr-attenuator/pkg/solver"
	"github.com/pcdshub/hxr-attenuator/pkg/stack"
)

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		configPath    string
		rawList       string
		tDes          float64
		tBase         float64
		modeName      string
		priority      bool
		materialsList string
		orderList     string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the blade pattern closest to a desired transmission",
		Long: `Find the insert/remove pattern whose total transmission is closest to
the desired value.

Blade transmissions come either from a stack definition (--config, a TOML
file with materials, thicknesses and the photon energy) or from a raw list
(--transmissions, comma-separated, "nan" for a stuck blade).

By default the floor configuration is returned: the closest pattern that
does not transmit more than requested. Use --mode ceiling for the closest
pattern from above, or --priority to resolve material preference (e.g.
insert diamond before silicon).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, configPath, rawList, tDes, tBase, modeName,
				priority, materialsList, orderList)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "stack definition TOML file")
	cmd.Flags().StringVarP(&rawList, "transmissions", "t", "", "comma-separated per-blade transmissions (nan = stuck)")
	cmd.Flags().Float64VarP(&tDes, "t-des", "d", 0, "desired transmission")
	cmd.Flags().Float64Var(&tBase, "t-base", 1.0, "fixed upstream transmission")
	cmd.Flags().StringVarP(&modeName, "mode", "m", "floor", "configuration mode: floor (default), ceiling")
	cmd.Flags().BoolVar(&priority, "priority", false, "resolve material priority order")
	cmd.Flags().StringVar(&materialsList, "materials", "", "comma-separated per-blade materials (with --transmissions --priority)")
	cmd.Flags().StringVar(&orderList, "material-order", "", "comma-separated material preference, most preferred first")
	_ = cmd.MarkFlagRequired("t-des")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, configPath, rawList string, tDes, tBase float64, modeName string, priority bool, materialsList, orderList string) error {
	if (configPath == "") == (rawList == "") {
		return errors.New(errors.ErrCodeInvalidInput, "exactly one of --config and --transmissions is required")
	}

	var (
		transmissions []float64
		materials     []string
		order         []string
		err           error
	)
	switch {
	case configPath != "":
		p := newProgress(c.Logger)
		var s *stack.Stack
		s, err = stack.Load(configPath)
		if err != nil {
			return err
		}
		transmissions, err = s.Transmissions(nil)
		if err != nil {
			return err
		}
		materials = s.Materials()
		order = s.MaterialOrder
		p.done(fmt.Sprintf("Evaluated %d blades at %g eV", len(s.Blades), s.PhotonEnergyEV))
	default:
		transmissions, err = parseTransmissions(rawList)
		if err != nil {
			return err
		}
		if materialsList != "" {
			materials = splitList(materialsList)
		}
		if orderList != "" {
			order = splitList(orderList)
		}
	}

	var cfg solver.Config
	if priority {
		if materials == nil {
			return errors.New(errors.ErrCodeInvalidInput, "--priority needs --config or --materials")
		}
		cfg, err = solver.BestConfigWithMaterialPriority(materials, transmissions, order, tDes)
		if err != nil {
			return err
		}
	} else {
		mode, merr := solver.ParseMode(modeName)
		if merr != nil {
			return merr
		}
		var floor, ceiling solver.Config
		floor, ceiling, err = solver.FindConfigs(transmissions, tDes, tBase)
		if err != nil {
			return err
		}
		cfg = floor
		if mode == solver.ModeCeiling {
			cfg = ceiling
		}
	}

	c.Logger.Debug("solved", "states", cfg.FilterStates, "transmission", cfg.Transmission)
	fmt.Println(renderConfig(cfg, materials))
	fmt.Println(renderSummary(tDes, cfg))
	return nil
}

// splitList splits a comma-separated flag value, trimming whitespace and
// dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
