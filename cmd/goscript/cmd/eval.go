package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/goscript/internal/runtime"
	"github.com/cwbudde/goscript/internal/vm"
)

var evalExpr string

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Parse and evaluate a goscript file or expression",
	Long: `Parse and evaluate a goscript program from a file or inline expression,
printing the value of the last evaluated expression statement.

Examples:
  # Run a script file
  goscript eval script.gs

  # Evaluate an inline expression
  goscript eval -e "1 + 2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runEval(cmd *cobra.Command, args []string) error {
	input, filename, err := resolveInput(evalExpr, args)
	if err != nil {
		return err
	}

	script, err := parseSource(input, filename)
	if err != nil {
		return err
	}

	// it.Out defaults to stderr (vm.New): diagnostics and console.log go
	// there, while stdout carries the result value so it stays
	// pipeline-friendly.
	it := vm.New()
	if err := runtime.Install(it); err != nil {
		return fmt.Errorf("failed to install runtime: %w", err)
	}

	result, err := it.EvalScript(script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: runtime error: %s\n", filename, err.Error())
		return fmt.Errorf("evaluation failed")
	}

	if state, payload := it.State(); state == vm.Throw {
		fmt.Fprintf(os.Stderr, "%s: uncaught exception: %s\n", filename, it.ToString(payload))
		return fmt.Errorf("evaluation failed")
	}

	fmt.Println(it.ToString(result))
	return nil
}
