package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goshaft/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of goshaft",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "goshaft v%s\n", version.Version)
			fmt.Fprintf(w, "Build: %s (%s)\n", version.GitCommit, version.BuildTime)
			fmt.Fprintln(w, "Solid Shaft Sizing Tool")
		},
	}
}
