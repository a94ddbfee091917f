package cmd

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosfd/internal/version"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "gosfd",
		Short: "Shear force and bending moment diagrams for simple beams",
		Long: `gosfd - Go Shear Force & Bending Moment Diagrams

A teaching CLI for simply supported beams carrying a single load,
either a point load P at x = a or a uniform load w over the full span.

This tool computes:
  - Support reactions RA and RB with a vertical equilibrium check
  - Shear force V(x) and bending moment M(x) along the span
  - The internal forces at any section x
  - Factored design loads from NSCP 2015 load combinations

Shear and moment use the left-side free-body convention: the right
reaction RB is not part of any cut, so V(x) ends at -RB at x = L and
the jump back to zero happens at support B.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
		Run: func(cmd *cobra.Command, args []string) {
			printBanner(cmd)
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newReactionsCmd())
	root.AddCommand(newDiagramCmd())
	root.AddCommand(newProbeCmd())
	root.AddCommand(newFactorCmd())

	return root
}

func printBanner(cmd *cobra.Command) {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ╔═══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "  ║                                                           ║")
	fmt.Fprintf(w, "  ║   gosfd v%-49s║\n", version.Version)
	fmt.Fprintln(w, "  ║   Go Shear Force & Bending Moment Diagrams                ║")
	fmt.Fprintln(w, "  ║                                                           ║")
	fmt.Fprintln(w, "  ╚═══════════════════════════════════════════════════════════╝")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Simply supported beam, one point load or one uniform load.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Commands:")
	fmt.Fprintln(w, "    • reactions  Support reactions and equilibrium check")
	fmt.Fprintln(w, "    • diagram    V(x) and M(x) diagrams, image and XLSX export")
	fmt.Fprintln(w, "    • probe      Read V, M and N at a section")
	fmt.Fprintln(w, "    • factor     Factored load from NSCP load combinations")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Use 'gosfd --help' to see available commands.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ─────────────────────────────────────────────────────────────")
	fmt.Fprintf(w, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
	fmt.Fprintln(w)
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
