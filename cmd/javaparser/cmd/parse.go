package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-javaparser/parser"
	"github.com/spf13/cobra"
)

var (
	parseType string
	parseOut  string
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a Java source file and print its AST",
	Long: `Parse reads FILE, parses it as a single Java compilation unit, and prints
the resulting AST as an indented tree.

Exit code 0 on success; 1 if the source contains a syntax error, which is
printed to stderr as "file:line:col: message" (spec §6.3, §7).`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseType, "type", "Java", "source language (only \"Java\" is accepted)")
	parseCmd.Flags().StringVar(&parseOut, "out", "STDOUT", `output destination: a PATH, "STDOUT", or "NUL"`)
}

func runParse(cmd *cobra.Command, args []string) error {
	if parseType != "Java" {
		return fmt.Errorf("unsupported --type %q: only \"Java\" is accepted", parseType)
	}

	filename := args[0]
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	unit, perr := parser.ParseSource(src, filename)
	if perr != nil {
		if se, ok := perr.(*parser.SyntaxError); ok {
			fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", se.Filename, se.Line, se.Column, se.Message)
		} else {
			fmt.Fprintln(os.Stderr, perr)
		}
		return perr
	}

	if parseOut == "NUL" {
		return nil
	}

	w := os.Stdout
	if parseOut != "STDOUT" {
		f, err := os.Create(parseOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", parseOut, err)
		}
		defer f.Close()
		textDump(f, unit, 0)
		return nil
	}
	textDump(w, unit, 0)
	return nil
}
