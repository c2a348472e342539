package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"

	"github.com/pthm/domcmp"
)

// AttrsOptions holds flags for the attrs command.
type AttrsOptions struct {
	*RootOptions
	Change  bool
	Payload string
	Sealed  bool
	Key     string
}

// NewAttrsCommand creates the attrs command.
func NewAttrsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AttrsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "attrs <action>",
		Short: "Print the data attributes that declare an action",
		Long: `Print the data attributes for an action element.

A JSON payload is signed (or sealed with --sealed) with --key, falling back
to DOMCMP_PAYLOAD_KEY.

Example:
  domcmp attrs save
  domcmp attrs qty --change --payload '{"sku":"A-1"}' --key dev-key`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printAttrs(opts, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.Change, "change", false, "fire on change instead of click")
	cmd.Flags().StringVar(&opts.Payload, "payload", "", "JSON payload to attach")
	cmd.Flags().BoolVar(&opts.Sealed, "sealed", false, "encrypt the payload")
	cmd.Flags().StringVar(&opts.Key, "key", "", "payload key (default $DOMCMP_PAYLOAD_KEY)")

	return cmd
}

func printAttrs(opts *AttrsOptions, action string, out io.Writer) error {
	b := domcmp.Action(action)
	if opts.Change {
		b.OnChange()
	}

	if opts.Payload != "" {
		key := opts.Key
		if key == "" {
			key = opts.env.PayloadKey
		}
		if key == "" {
			return NewExitError(ExitCommandError, "payload requires --key or DOMCMP_PAYLOAD_KEY")
		}
		var v any
		if err := json.Unmarshal([]byte(opts.Payload), &v); err != nil {
			return WrapExitError(ExitCommandError, "invalid payload JSON", err)
		}
		enc, err := domcmp.NewEncoder([]byte(key))
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid payload key", err)
		}
		if opts.Sealed {
			b.SealedPayload(enc, v)
		} else {
			b.Payload(enc, v)
		}
		if err := b.Err(); err != nil {
			return WrapExitError(ExitFailure, "failed to encode payload", err)
		}
	}

	return writeAttrs(out, opts.Format, b.Attrs())
}

func writeAttrs(w io.Writer, format string, attrs templ.Attributes) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(attrs)
	}
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		if _, err := fmt.Fprintf(w, "%s=%q\n", k, attrs[k]); err != nil {
			return err
		}
	}
	return nil
}
