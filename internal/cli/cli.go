// Package cli implements the hxratt command-line interface.
//
// This package provides commands for solving attenuation blade
// configurations, looking up absorption tables, serving the HTTP API, and
// interactively planning a target transmission. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - solve: Find the blade pattern closest to a desired transmission
//   - table: Look up material transmission at a photon energy
//   - serve: Run the HTTP solver API
//   - plan: Interactively explore targets against a stack definition
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pcdshub/hxr-attenuator/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "hxratt"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Solve solid attenuator blade configurations",
		Long:         `hxratt computes insert/remove patterns for a stack of X-ray attenuation blades: given per-blade transmissions (or a stack definition with materials and thicknesses) and a desired total transmission, it finds the closest achievable configurations from below and above.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.planCommand())

	return root
}
