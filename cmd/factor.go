package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosfd/internal/nscp"
	"github.com/alexiusacademia/gosfd/internal/statics"
)

func newFactorCmd() *cobra.Command {
	var (
		c          nscp.LoadComponents
		showAll    bool
		simplified bool
	)

	cmd := &cobra.Command{
		Use:   "factor",
		Short: "Calculate the factored load using NSCP load combinations",
		Long: `Calculate the factored design load based on NSCP 2015 load combinations.

Provide the unfactored components of the single beam load (kN for a
point load, kN/m for a uniform load). The governing value can be passed
to the other commands directly with the same --dead/--live/... flags.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Simple gravity loads (dead + live)
  gosfd factor --dead 5 --live 3

  # Show all combinations
  gosfd factor --dead 5 --live 3 --wind 2 --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.IsZero() {
				return fmt.Errorf("%w: provide at least one unfactored load component", statics.ErrInvalidInput)
			}

			combinations := nscp.LoadCombinations
			if simplified {
				combinations = nscp.SimplifiedCombinations
			}

			w := cmd.OutOrStdout()
			printHeader(w, "NSCP 2015 FACTORED LOAD CALCULATION")

			fmt.Fprintln(w, "UNFACTORED COMPONENTS:")
			fmt.Fprintln(w, ruleLight)
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			for _, row := range []struct {
				label string
				value float64
			}{
				{"Dead Load (D)", c.Dead},
				{"Live Load (L)", c.Live},
				{"Roof Live Load (Lr)", c.Roof},
				{"Wind Load (W)", c.Wind},
				{"Earthquake Load (E)", c.Earthquake},
				{"Rain Load (R)", c.Rain},
			} {
				if row.value != 0 {
					fmt.Fprintf(tw, "  %s:\t%.2f\n", row.label, row.value)
				}
			}
			tw.Flush()
			fmt.Fprintln(w)

			maxU, governing := nscp.Governing(c, combinations)

			if showAll {
				fmt.Fprintln(w, "LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
				fmt.Fprintln(w, ruleLight)
				tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "  #\tCombination\tU\n")
				fmt.Fprintf(tw, "  ─\t───────────\t─\n")
				for _, combo := range combinations {
					marker := ""
					if combo.ID == governing.ID {
						marker = " ← GOVERNS"
					}
					fmt.Fprintf(tw, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Factored(c), marker)
				}
				tw.Flush()
				fmt.Fprintln(w)
			}

			fmt.Fprintln(w, "RESULT:")
			fmt.Fprintln(w, ruleLight)
			if governing.ID == "" {
				fmt.Fprintln(w, "  No combination gives a positive factored load.")
				fmt.Fprintln(w)
				return nil
			}
			fmt.Fprintf(w, "  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
			fmt.Fprintln(w)
			fmt.Fprintf(w, "  ╔═══════════════════════════════════╗\n")
			fmt.Fprintf(w, "  ║  FACTORED LOAD (U) = %.2f\n", maxU)
			fmt.Fprintf(w, "  ╚═══════════════════════════════════╝\n")
			fmt.Fprintln(w)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.Float64VarP(&c.Dead, "dead", "d", 0, "Dead load component D")
	fl.Float64VarP(&c.Live, "live", "l", 0, "Live load component L")
	fl.Float64VarP(&c.Roof, "roof", "r", 0, "Roof live load component Lr")
	fl.Float64VarP(&c.Wind, "wind", "w", 0, "Wind load component W")
	fl.Float64VarP(&c.Earthquake, "earthquake", "e", 0, "Earthquake load component E")
	fl.Float64VarP(&c.Rain, "rain", "R", 0, "Rain load component R")
	fl.BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	fl.BoolVarP(&simplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")

	return cmd
}
