package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosfd/internal/statics"
)

func newProbeCmd() *cobra.Command {
	var (
		flags beamFlags
		xq    float64
	)

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Read shear and moment at a section",
		Long: `Read V, M and N at the sampled section nearest to x.

The profile is sampled at --samples evenly spaced sections over [0, L];
the reported x is the sample position actually used. Ties go to the
section closer to support A.

Examples:
  # Section at 2.5 m of a 6 m span, 10 kN at midspan
  gosfd probe --span 6 --load 10 --x 2.5

  # Default probe is midspan
  gosfd probe -L 8 -t distributed -P 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, a, err := flags.analyze(cmd)
			if err != nil {
				return err
			}

			probe := *c.Probe
			if cmd.Flags().Changed("x") {
				probe = xq
			}
			if probe < 0 || probe > c.Span {
				loggerFromContext(cmd.Context()).Warn("probe outside the span, using nearest support section", "x", probe, "span", c.Span)
			}

			s := statics.NearestSample(a.Profile, probe)
			fmt.Fprintf(cmd.OutOrStdout(), "x = %.2f m  →  V = %.3f kN,  M = %.3f kN-m,  N = %.0f\n", s.X, s.V, s.M, s.N())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64VarP(&xq, "x", "x", 0, "Section position from support A (m) (default L/2)")

	return cmd
}
