package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "javaparser",
	Short: "Hand-written recursive-descent Java parser",
	Long: `javaparser is a Go implementation of a recursive-descent parser for
Java 8 through approximately Java 14: modules, var local types, lambdas,
method references, switch expressions/arrows, enhanced try-with-resources,
and annotations everywhere.

It does no name resolution, type checking, or error recovery: the first
grammar violation is reported and parsing halts.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
