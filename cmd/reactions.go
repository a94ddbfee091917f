package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosfd/internal/diagram"
	"github.com/alexiusacademia/gosfd/internal/statics"
)

const (
	ruleHeavy = "═══════════════════════════════════════════════════════════════"
	ruleLight = "───────────────────────────────────────────────────────────────"
)

func newReactionsCmd() *cobra.Command {
	var flags beamFlags

	cmd := &cobra.Command{
		Use:   "reactions",
		Short: "Compute the support reactions of a simply supported beam",
		Long: `Compute the vertical reactions RA (x = 0) and RB (x = L) of a simply
supported beam under one load, and check vertical equilibrium.

  Point load P at a:     RA = P(L - a)/L,  RB = Pa/L
  Uniform load w:        RA = RB = wL/2

Examples:
  # 10 kN at 4 m on a 6 m span
  gosfd reactions --span 6 --load 10 --position 4

  # 2 kN/m over the full span
  gosfd reactions -L 6 -t distributed -P 2

  # Factored point load from dead and live components
  gosfd reactions -L 6 --dead 5 --live 3 -a 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, err := flags.analyze(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printHeader(w, "SIMPLY SUPPORTED BEAM - SUPPORT REACTIONS")
			printInput(w, a)
			printReactions(w, a)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, ruleHeavy)
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, ruleHeavy)
	fmt.Fprintln(w)
}

func printInput(w io.Writer, a *statics.Analysis) {
	fmt.Fprintln(w, "INPUT DATA:")
	fmt.Fprintln(w, ruleLight)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Span (L):\t%.2f m\n", float64(a.Span))
	fmt.Fprintf(tw, "  Supports:\tSimple (pin at A, roller at B)\n")
	fmt.Fprintf(tw, "  Load:\t%s\n", describeLoad(a.Load))
	fmt.Fprintf(tw, "  Total load:\t%.3f kN\n", a.Load.Total(a.Span))
	tw.Flush()
	fmt.Fprintln(w)
}

func printReactions(w io.Writer, a *statics.Analysis) {
	fmt.Fprintln(w, "REACTIONS:")
	fmt.Fprintln(w, ruleLight)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  RA (x = 0):\t%.3f kN\n", a.Reactions.RA)
	fmt.Fprintf(tw, "  RB (x = L):\t%.3f kN\n", a.Reactions.RB)
	fmt.Fprintf(tw, "  Equilibrium (RA + RB - %s):\t%+.3e ≈ 0\n", totalSymbol(a.Load), a.Residual)
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprint(w, diagram.DrawBeamSketch(a.Span, a.Load, a.Reactions))
	fmt.Fprintln(w)
}
