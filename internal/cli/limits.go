package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/surreal"
	"github.com/roach88/surreal/transfinite"
)

// LimitsOptions holds flags for the limits command.
type LimitsOptions struct {
	*RootOptions
	Terms int
}

// NewLimitsCommand creates the limits command.
func NewLimitsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LimitsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "limits <omega|epsilon>",
		Short: "Inspect a transfinite number through bounded truncation",
		Long: `Inspect a transfinite number through bounded truncation.

Materializes the first N terms of the value's option productions, resolves
them to finite numbers, and shows the truncated finite value alongside the
lazy rendering.

Example:
  surreal limits omega --terms 6`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLimits(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Terms, "terms", 5, "number of production terms to materialize")

	return cmd
}

type limitsResult struct {
	Name      string  `json:"name"`
	Rendering string  `json:"rendering"`
	Terms     int     `json:"terms"`
	Resolved  bool    `json:"resolved"`
	Truncated string  `json:"truncated,omitempty"`
	Value     float64 `json:"value,omitempty"`
}

func (r limitsResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s = %s", r.Name, r.Rendering)
	if r.Resolved {
		fmt.Fprintf(&b, "\ntruncated to %d terms: %s = %v", r.Terms, r.Truncated, r.Value)
	} else {
		fmt.Fprintf(&b, "\ndid not resolve to a finite value within %d terms", r.Terms)
	}
	return b.String()
}

func runLimits(opts *LimitsOptions, name string, cmd *cobra.Command) error {
	if opts.Terms < 1 {
		return NewExitError(ExitCommandError, "--terms must be at least 1")
	}

	u := surreal.NewUniverse()
	var x *transfinite.Number
	switch name {
	case "omega":
		x = transfinite.Omega(u)
	case "epsilon":
		x = transfinite.Epsilon(u)
	default:
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown transfinite number %q (want omega or epsilon)", name))
	}

	result := limitsResult{
		Name:      x.Name(),
		Rendering: x.String(),
		Terms:     opts.Terms,
	}
	if fin, ok := x.Finite(opts.Terms); ok {
		result.Resolved = true
		result.Truncated = fin.String()
		result.Value = fin.Float()
	}
	slog.Debug("truncation finished", "name", name, "terms", opts.Terms, "resolved", result.Resolved)

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return out.Success(result)
}
