package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/goscript/internal/lexer"
	"github.com/cwbudde/goscript/internal/token"
)

var (
	lexExpr     string
	lexShowPos  bool
	lexShowType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a goscript file or expression",
	Long: `Lex a goscript program and print the element sequence back as source
(tokens plus trivia, concatenated byte-for-byte with the input).

With --show-type/--show-pos, print one descriptive line per token
instead (trivia omitted), for debugging the lexer itself.

Examples:
  goscript lex script.gs
  goscript lex -e "1 + 2"
  goscript lex --show-type --show-pos script.gs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column) instead of round-tripping source")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names instead of round-tripping source")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, filename, err := resolveInput(lexExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	descriptive := lexShowPos || lexShowType

	var out strings.Builder
	for {
		tok := l.NextElement()
		if descriptive {
			printElement(tok)
		} else {
			out.WriteString(tok.Raw)
		}
		if tok.Type == token.EOF {
			break
		}
	}
	if !descriptive {
		fmt.Print(out.String())
	}

	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s: lex error: %s\n", filename, e.Error())
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(errs))
	}
	return nil
}

func printElement(tok token.Token) {
	var sb strings.Builder
	if lexShowType {
		fmt.Fprintf(&sb, "[%-12s]", tok.Type)
	}
	if tok.Literal != "" {
		fmt.Fprintf(&sb, " %q", tok.Literal)
	} else {
		fmt.Fprintf(&sb, " %s", tok.Type)
	}
	if lexShowPos {
		fmt.Fprintf(&sb, " @%s", tok.Pos)
	}
	fmt.Println(strings.TrimSpace(sb.String()))
}
