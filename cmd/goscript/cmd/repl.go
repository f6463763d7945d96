package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/goscript/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive goscript session",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	r, err := repl.New("goscript> ")
	if err != nil {
		return err
	}
	if err := r.Start(os.Stdout); err != nil {
		return fmt.Errorf("repl error: %w", err)
	}
	return nil
}
