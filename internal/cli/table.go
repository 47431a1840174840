package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pcdshub/hxr-attenuator/pkg/absorb"
	"github.com/pcdshub/hxr-attenuator/pkg/errors"
)

// tableCommand creates the table command for absorption lookups.
func (c *CLI) tableCommand() *cobra.Command {
	var (
		material  string
		energy    float64
		thickness float64
		nffPath   string
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Look up material transmission at a photon energy",
		Long: `Look up the transmission of a filter from its absorption table.

Tables for the builtin materials (Si, C, Al) are derived from coarse
scattering-factor curves; pass --nff with a CXRO .nff file for a
full-resolution table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTable(material, energy, thickness, nffPath)
		},
	}

	cmd.Flags().StringVarP(&material, "material", "m", "", "material formula, e.g. Si")
	cmd.Flags().Float64VarP(&energy, "energy", "e", 0, "photon energy [eV]")
	cmd.Flags().Float64VarP(&thickness, "thickness", "t", 0, "filter thickness [m]")
	cmd.Flags().StringVar(&nffPath, "nff", "", "CXRO .nff scattering-factor file")
	_ = cmd.MarkFlagRequired("material")
	_ = cmd.MarkFlagRequired("energy")
	_ = cmd.MarkFlagRequired("thickness")

	return cmd
}

func (c *CLI) runTable(material string, energy, thickness float64, nffPath string) error {
	var (
		table *absorb.Table
		err   error
	)
	if nffPath != "" {
		f, ferr := os.Open(nffPath)
		if ferr != nil {
			return errors.Wrap(errors.ErrCodeFileNotFound, ferr, "nff data")
		}
		defer f.Close()
		samples, perr := absorb.ParseNFF(f)
		if perr != nil {
			return perr
		}
		table, err = absorb.Build(material, samples, absorb.BuildOptions{})
	} else {
		table, err = absorb.Builtin(material)
	}
	if err != nil {
		return err
	}

	tr, err := table.Transmission(energy, thickness)
	if err != nil {
		return err
	}
	closest, _ := table.ClosestEnergy(energy)

	c.Logger.Debug("lookup", "material", material, "closest_ev", closest, "mu", table.Mu(energy))
	printInfo("%s  %g m at %g eV", StyleValue.Render(material), thickness, energy)
	printDetail("table row %g eV, μ %.4g 1/m", closest, table.Mu(energy))
	printSuccess("transmission %s", StyleNumber.Render(formatTransmission(tr)))
	return nil
}
