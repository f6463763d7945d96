// Command goscript is the CLI driver: eval/parse/lex/repl subcommands
// over the goscript interpreter.
package main

import (
	"os"

	"github.com/cwbudde/goscript/cmd/goscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
