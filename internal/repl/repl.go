// Package repl implements the interactive read-eval-print loop for
// goscript: readline-backed line editing/history and colored output,
// following akashmaji946-go-mix/repl/repl.go's shape.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/cwbudde/goscript/internal/lexer"
	"github.com/cwbudde/goscript/internal/parser"
	"github.com/cwbudde/goscript/internal/runtime"
	"github.com/cwbudde/goscript/internal/vm"
)

var (
	promptColor = color.New(color.FgCyan)
	resultColor = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed)
	bannerColor = color.New(color.FgGreen)
)

// Repl is a single interactive session: one Interpreter whose global
// scope persists across lines, so earlier declarations stay visible.
type Repl struct {
	Prompt string
	it     *vm.Interpreter
}

// New constructs a Repl with a freshly-installed runtime.
func New(prompt string) (*Repl, error) {
	it := vm.New()
	if err := runtime.Install(it); err != nil {
		return nil, fmt.Errorf("failed to install runtime: %w", err)
	}
	return &Repl{Prompt: prompt, it: it}, nil
}

// Start runs the loop until `exit` is entered or EOF is reached.
func (r *Repl) Start(writer io.Writer) error {
	bannerColor.Fprintln(writer, "goscript REPL — type 'exit' or Ctrl+D to quit")

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	r.it.Out = writer

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return nil
		}
		rl.SaveHistory(line)
		r.evalLine(writer, line)
	}
}

func (r *Repl) evalLine(writer io.Writer, line string) {
	l := lexer.New(line)
	p := parser.New(l)
	script := p.ParseScript()

	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			errorColor.Fprintf(writer, "lex error: %s\n", e.Error())
		}
		return
	}
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			errorColor.Fprintf(writer, "parse error: %s\n", e.Error())
		}
		return
	}

	result, err := r.it.EvalScript(script)
	if err != nil {
		errorColor.Fprintf(writer, "runtime error: %s\n", err.Error())
		return
	}
	if state, payload := r.it.ResetState(); state == vm.Throw {
		errorColor.Fprintf(writer, "uncaught exception: %s\n", r.it.ToString(payload))
		return
	}

	resultColor.Fprintln(writer, r.it.ToString(result))
}
