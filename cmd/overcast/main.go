package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"overcast/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "overcast",
	Short: "Type-compatibility and overload-resolution toolkit",
	Long:  `Overcast loads conversion-rule manifests and dry-runs overload resolution against them`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
