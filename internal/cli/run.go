package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/domcmp"
	"github.com/pthm/domcmp/lib/dom"
	"github.com/pthm/domcmp/lib/manifest"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Page   string
	Strict bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <manifest>",
		Short: "Play a manifest and print the engine trace",
		Long: `Play a component manifest against an HTML page.

The page is taken from --page, or from the manifest's page key resolved
relative to the manifest file.

Example:
  domcmp run ./cart.yaml
  domcmp run --page ./cart.html --format json ./cart.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifest(opts, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.Page, "page", "", "HTML page (overrides the manifest)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "require a selector on every root component")

	return cmd
}

func runManifest(opts *RunOptions, path string, out, errOut io.Writer) error {
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: opts.logLevel()}))

	m, err := manifest.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load manifest", err)
	}

	pagePath := opts.Page
	if pagePath == "" {
		pagePath = m.PagePath()
	}
	if pagePath == "" {
		return NewExitError(ExitCommandError, "no page: set --page or the manifest page key")
	}
	f, err := os.Open(pagePath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open page", err)
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to parse page", err)
	}

	rec := domcmp.NewRecorder()
	engineOpts := []domcmp.Option{domcmp.WithLogger(logger), rec.Option()}
	if opts.Strict {
		engineOpts = append(engineOpts, domcmp.WithStrictSelectors())
	}
	e := domcmp.New(doc, engineOpts...)
	logger.Debug("playing manifest", "manifest", path, "page", pagePath, "engine", e.ID())

	playErr := m.Play(e, doc)
	if err := writeTrace(out, opts.Format, rec.Events()); err != nil {
		return WrapExitError(ExitFailure, "failed to write trace", err)
	}
	if playErr != nil {
		return WrapExitError(ExitFailure, "manifest run failed", playErr)
	}
	return nil
}

func writeTrace(w io.Writer, format string, events []domcmp.TraceEvent) error {
	if format == "json" {
		if events == nil {
			events = []domcmp.TraceEvent{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	}
	for _, ev := range events {
		if _, err := fmt.Fprintln(w, ev.String()); err != nil {
			return err
		}
	}
	return nil
}
