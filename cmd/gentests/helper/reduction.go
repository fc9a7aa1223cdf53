// Package helper holds the checks shared by the generated reduction tests.
package helper

import (
	"strings"
	"testing"
	"time"

	"github.com/vic/golam/pkg/constants"
	"github.com/vic/golam/pkg/lambda"
)

// CheckLambdaReduction fully reduces inputStr with every constant visible
// and compares the result with outputStr up to renaming of bound variables.
// It also replays the reduction step by step and checks both agree.
func CheckLambdaReduction(t *testing.T, testName string, inputStr string, outputStr string) {
	t.Helper()

	expected, err := lambda.Parse(strings.TrimSpace(outputStr))
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}
	term, err := lambda.Parse(strings.TrimSpace(inputStr))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	provider := constants.All()
	start := time.Now()
	res, err := lambda.Interpret(term, true, provider)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("%s: interpret error: %v", testName, err)
	}

	if !lambda.Equal(res.Term, expected) {
		t.Errorf("Mismatch in %s:\nInput:    %s\nExpected: %s\nActual:   %s",
			testName, inputStr, lambda.DeBruijn(expected), lambda.DeBruijn(res.Term))
	}

	last, steps := term, 0
	for step := range lambda.Steps(term, true, provider) {
		last = step
		steps++
	}
	if steps != res.Stats.Reductions {
		t.Errorf("%s: %d steps but %d reductions", testName, steps, res.Stats.Reductions)
	}
	replayed, err := lambda.Interpret(last, true, provider)
	if err != nil {
		t.Fatalf("%s: re-interpreting the last step %s: %v", testName, last, err)
	}
	if !lambda.Equal(replayed.Term, res.Term) {
		t.Errorf("%s: stepping reached %s, direct reduction %s", testName, replayed.Term, res.Term)
	}

	t.Logf("%s: %d reductions in %v", testName, res.Stats.Reductions, elapsed)
}
