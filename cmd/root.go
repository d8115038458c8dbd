package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alexiusacademia/goshaft/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the goshaft command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "goshaft",
		Short: "Solid Shaft Sizing Tool",
		Long: `goshaft - Go Shaft Designer

A CLI tool for sizing solid circular steel shafts carrying a central
point load between two supports.

This tool helps mechanical designers:
  - Compute the required diameter from the bending stress equation
  - Check the bending stress of a chosen diameter
  - Resolve the design load from dead, live and impact loads
  - Export the shaft as an STL solid and a dimensioned drawing

The required diameter follows d = ∛(32·M / (π·σa)) with M = F·L/4
and σa = fy / n.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			printBanner(cmd.OutOrStdout())
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().String("config", "", "Config file (default $HOME/.goshaft/config.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDesignCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newMaterialsCmd())
	rootCmd.AddCommand(newConvertCmd())

	return rootCmd
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ╔═══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "  ║                                                           ║")
	fmt.Fprintf(w, "  ║   goshaft v%-47s║\n", version.Version)
	fmt.Fprintln(w, "  ║   Go Shaft Designer                                       ║")
	fmt.Fprintln(w, "  ║                                                           ║")
	fmt.Fprintln(w, "  ╚═══════════════════════════════════════════════════════════╝")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  A CLI tool for sizing solid circular shafts in bending.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Features:")
	fmt.Fprintln(w, "    • Required diameter from load, span, material and safety factor")
	fmt.Fprintln(w, "    • Bending stress check of a chosen diameter")
	fmt.Fprintln(w, "    • Service load combinations (D, D + L, D + L + I)")
	fmt.Fprintln(w, "    • STL solid and dimensioned drawing export")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Use 'goshaft --help' to see available commands.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ─────────────────────────────────────────────────────────────")
	fmt.Fprintf(w, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
	fmt.Fprintln(w)
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
