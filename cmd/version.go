package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosfd/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gosfd",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "gosfd v%s\n", version.Version)
			fmt.Fprintf(w, "commit: %s\nbuilt: %s\n", version.GitCommit, version.BuildTime)
			fmt.Fprintln(w, "Shear force and bending moment diagrams for simply supported beams")
		},
	}
}
