// Package cli implements the domcmp command.
package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/pthm/domcmp/internal/config"
)

// Version is the domcmp release.
const Version = "0.1.0"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	env config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. Defaults come from env.
func NewRootCommand(env config.Config) *cobra.Command {
	opts := &RootOptions{env: env}

	format := env.Format
	if format == "" {
		format = "text"
	}

	cmd := &cobra.Command{
		Use:   "domcmp",
		Short: "Play component manifests against HTML pages",
		Long: `domcmp drives a component engine against a static HTML page.

Components, pre-init events and a sequence of clicks, changes and lifecycle
operations are described in a YAML manifest. The run command prints the
resulting engine trace.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", format, "output format (json|text)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewAttrsCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// logLevel resolves the diagnostic level: --verbose wins over env.
func (o *RootOptions) logLevel() slog.Level {
	if o.Verbose {
		return slog.LevelDebug
	}
	return o.env.Level()
}
