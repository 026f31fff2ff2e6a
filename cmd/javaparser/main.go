// Command javaparser is the CLI front-end over package parser: it reads a
// Java source file and prints its parsed AST (spec §1, §6.3).
package main

import (
	"os"

	"github.com/cwbudde/go-javaparser/cmd/javaparser/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
