package conformance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunReportsPassAndFail(t *testing.T) {
	cases := []Case{
		{Name: "add", Source: "1 + 2;"},
		{Name: "assert-pass", Source: "console.assert(true);"},
		{Name: "assert-fail", Source: "console.assert(false, 'nope');"},
		{Name: "throw-uncaught", Source: "throw 'boom';"},
		{Name: "lex-error", Source: "\"unterminated"},
		{Name: "parse-error", Source: "if (true"},
	}

	results := Run(cases)
	require.Len(t, results, len(cases))

	require.True(t, results[0].Passed)
	require.True(t, results[1].Passed)

	require.False(t, results[2].Passed)
	require.Contains(t, results[2].Detail, "Assertion failed")

	require.False(t, results[3].Passed)
	require.Contains(t, results[3].Detail, "uncaught exception")

	require.False(t, results[4].Passed)
	require.Contains(t, results[4].Detail, "lex error")

	require.False(t, results[5].Passed)
	require.Contains(t, results[5].Detail, "parse error")

	var sb strings.Builder
	failures := Report(&sb, results)
	require.Equal(t, 4, failures)
	require.Contains(t, sb.String(), "PASS add")
	require.Contains(t, sb.String(), "FAIL assert-fail")
}
