// Package cli provides the command-line interface for tristim.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tristim/internal/version"
	"github.com/jmylchreest/tristim/pkg/colour"
	"github.com/jmylchreest/tristim/pkg/illuminant"
)

// app carries state shared by all subcommands of one command tree.
type app struct {
	verbose    bool
	quiet      bool
	illuminant illuminant.Illuminant

	cfg    Config
	logger hclog.Logger
}

// NewRootCmd builds the tristim command tree.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "tristim",
		Short: "Colour conversion and chromatic adaptation",
		Long: `tristim converts colours between sRGB, CIE XYZ and CIELAB, and adapts
them between standard illuminants with the Bradford transform.

Colours can be given as hex codes (#rrggbb, #rgb), rgb(r, g, b) functions or
X11 colour names.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().VarP(newIlluminantFlag(&a.illuminant, a.cfg.Illuminant), "illuminant", "i",
		"working illuminant for XYZ values (env "+EnvIlluminant+")")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newAdaptCmd(a))
	rootCmd.AddCommand(newMixCmd(a))
	rootCmd.AddCommand(newIlluminantsCmd(a))
	rootCmd.AddCommand(newBalanceCmd(a))

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
// An interrupt cancels long running commands such as balance.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the environment configuration, applies flag overrides and
// creates the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadEnvConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cmd.Flags().Changed("illuminant") {
		cfg.Illuminant = a.illuminant
	}
	a.illuminant = cfg.Illuminant
	a.cfg = cfg

	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)
	colour.DisableColourOutput = cfg.NoColour || !colour.SupportsANSIColours(os.Stdout)

	a.logger.Debug("configuration loaded", "illuminant", cfg.Illuminant,
		"preview_width", cfg.PreviewWidth, "colour", !colour.DisableColourOutput)
	return nil
}

// newLogger returns the command line logger. Verbose wins over quiet.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tristim",
		Output: w,
		Level:  level,
	})
}

// newVersionCmd represents the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
