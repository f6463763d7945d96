// Package conformance implements a test harness: a driver that
// enumerates test scripts and exercises the core twice per test (parse,
// then evaluate), reporting pass/fail. It never imports the CLI or REPL
// — only the core's exposed surface (construct VM, parse from lexer,
// evaluate AST, inspect execution state).
package conformance

import (
	"fmt"
	"io"

	"github.com/cwbudde/goscript/internal/lexer"
	"github.com/cwbudde/goscript/internal/parser"
	"github.com/cwbudde/goscript/internal/runtime"
	"github.com/cwbudde/goscript/internal/vm"
)

// Case is one named input script to run through parse+evaluate.
type Case struct {
	Name   string
	Source string
}

// Result is one case's outcome.
type Result struct {
	Name    string
	Passed  bool
	Detail  string // populated on failure: the error or exception text
}

// Run parses and evaluates every case independently (a fresh Interpreter
// per case, so one test can't leak state into the next) and returns one
// Result per case in order.
func Run(cases []Case) []Result {
	results := make([]Result, len(cases))
	for i, c := range cases {
		results[i] = runOne(c)
	}
	return results
}

func runOne(c Case) Result {
	l := lexer.New(c.Source)
	p := parser.New(l)
	script := p.ParseScript()

	if errs := l.Errors(); len(errs) > 0 {
		return Result{Name: c.Name, Passed: false, Detail: fmt.Sprintf("lex error: %s", errs[0].Error())}
	}
	if errs := p.Errors(); len(errs) > 0 {
		return Result{Name: c.Name, Passed: false, Detail: fmt.Sprintf("parse error: %s", errs[0].Error())}
	}

	it := vm.New()
	if err := runtime.Install(it); err != nil {
		return Result{Name: c.Name, Passed: false, Detail: fmt.Sprintf("runtime install failed: %s", err.Error())}
	}

	_, err := it.EvalScript(script)
	if err != nil {
		return Result{Name: c.Name, Passed: false, Detail: fmt.Sprintf("runtime error: %s", err.Error())}
	}
	if state, payload := it.State(); state == vm.Throw {
		return Result{Name: c.Name, Passed: false, Detail: fmt.Sprintf("uncaught exception: %s", it.ToString(payload))}
	}

	return Result{Name: c.Name, Passed: true}
}

// Report writes one pass/fail line per result to w, in order, and
// returns the number of failures.
func Report(w io.Writer, results []Result) int {
	failures := 0
	for _, r := range results {
		if r.Passed {
			fmt.Fprintf(w, "PASS %s\n", r.Name)
			continue
		}
		failures++
		fmt.Fprintf(w, "FAIL %s: %s\n", r.Name, r.Detail)
	}
	return failures
}
