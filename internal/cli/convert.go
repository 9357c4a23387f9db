package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/surreal"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <float>",
		Short: "Convert a float to its best surreal approximation",
		Long: `Convert a float to its best surreal approximation.

The search walks outward in unit steps, then halves the increment until the
float projection of the constructed number matches the input. For dyadic
rationals the result is exact and round-trips through the projection.

Example:
  surreal convert 2.5`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

type convertResult struct {
	Input      float64 `json:"input"`
	Structure  string  `json:"structure"`
	Projection float64 `json:"projection"`
	Exact      bool    `json:"exact"`
}

func (r convertResult) String() string {
	return fmt.Sprintf("structure:  %s\nprojection: %v\nexact:      %v", r.Structure, r.Projection, r.Exact)
}

func runConvert(opts *RootOptions, arg string, cmd *cobra.Command) error {
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("not a float: %q", arg), err)
	}

	u := surreal.NewUniverse()
	x := u.FromFloat(f)
	slog.Debug("conversion finished", "input", f, "structures", u.Size())

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return out.Success(convertResult{
		Input:      f,
		Structure:  x.String(),
		Projection: x.Float(),
		Exact:      x.Float() == f,
	})
}
