package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/goscript/internal/printer"
)

var (
	parseExpr string
	parseJSON bool
	parseYAML bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a goscript file or expression and print its AST",
	Long: `Parse a goscript program and print the resulting AST.

Defaults to JSON; pass --yaml for a YAML rendering instead.

Examples:
  goscript parse script.gs
  goscript parse --yaml script.gs
  goscript parse -e "1 + 2" --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the AST as JSON (default)")
	parseCmd.Flags().BoolVar(&parseYAML, "yaml", false, "print the AST as YAML")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := resolveInput(parseExpr, args)
	if err != nil {
		return err
	}

	script, err := parseSource(input, filename)
	if err != nil {
		return err
	}

	var b []byte
	if parseYAML {
		b, err = printer.ToYAML(script)
	} else {
		b, err = printer.ToJSON(script)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize AST: %w", err)
	}
	os.Stdout.Write(b)
	if parseYAML && (len(b) == 0 || b[len(b)-1] != '\n') {
		fmt.Println()
	}
	if !parseYAML {
		fmt.Println()
	}
	return nil
}
