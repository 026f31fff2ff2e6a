package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-javaparser/lexer"
	"github.com/cwbudde/go-javaparser/token"
	"github.com/spf13/cobra"
)

var (
	lexShowPos  bool
	lexEvalExpr string
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Java file and print the resulting tokens",
	Long: `Tokenize a Java source file and print the resulting token stream.

This is useful for debugging the lexer independently of the parser. Reads
from stdin if no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline source instead of reading from a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
}

func runLex(cmd *cobra.Command, args []string) error {
	src, filename, err := readInput(lexEvalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(src, filename)
	for {
		tok := l.NextToken()
		switch tok.Kind {
		case token.ENCODING, token.COMMENT:
			continue
		}
		printToken(tok)
		if tok.Kind == token.ENDMARKER {
			break
		}
	}
	return nil
}

func printToken(tok token.Token) {
	out := fmt.Sprintf("%-10s %q", tok.Kind, tok.Text)
	if lexShowPos {
		out += fmt.Sprintf(" @%s", tok.Start)
	}
	fmt.Println(out)
}

// readInput resolves the -e flag / file argument / stdin precedence shared
// by the lex and parse subcommands.
func readInput(eval string, args []string) ([]byte, string, error) {
	if eval != "" {
		return []byte(eval), "<eval>", nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return data, args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("reading stdin: %w", err)
	}
	return data, "<stdin>", nil
}
