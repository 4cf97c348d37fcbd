// Package main implements the javagen CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"javagen/internal/diag"
	"javagen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "javagen",
	Short: "Java source synthesis engine for annotation processing",
	Long:  `javagen turns resolved model bundles into Java source fragments: annotation literals and override skeletons.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorModeFromFlag maps the --color flag to a printer mode.
func colorModeFromFlag(cmd *cobra.Command) diag.ColorMode {
	v, err := cmd.Flags().GetString("color")
	if err != nil {
		return diag.ColorAuto
	}
	switch v {
	case "on":
		return diag.ColorOn
	case "off":
		return diag.ColorOff
	default:
		return diag.ColorAuto
	}
}
