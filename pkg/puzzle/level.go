package puzzle

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/vic/golam/pkg/constants"
	"github.com/vic/golam/pkg/lambda"
)

// CaseSource is a test case as written by a level author.
type CaseSource struct {
	Application string
	Expected    string
}

// Level is a level definition. Solutions must pass every test case and each
// wrong solution must fail at least one.
type Level struct {
	Name           string
	Section        constants.Section
	TestCases      []CaseSource
	Solutions      []string
	WrongSolutions []string
}

// SourceError is a tokenize or parse failure on a labelled source.
type SourceError struct {
	Label string
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("error parsing %s: %v", e.Label, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// WrongSolutionError reports a solution that does not solve a test case.
// Indices are 1-based.
type WrongSolutionError struct {
	Solution int
	TestCase int
	Expected lambda.Term
	Got      lambda.Term
}

func (e *WrongSolutionError) Error() string {
	return fmt.Sprintf("test case #%d is not solved by solution #%d.\nExpected: %s\nGot: %s",
		e.TestCase, e.Solution, e.Expected, e.Got)
}

// WrongSolutionIsCorrectError reports a wrong solution that passes every
// test case. The index is 1-based.
type WrongSolutionIsCorrectError struct {
	WrongSolution int
}

func (e *WrongSolutionIsCorrectError) Error() string {
	return fmt.Sprintf("wrong solution #%d passes all tests", e.WrongSolution)
}

// InterpretRunError reports a solution whose run failed to evaluate.
type InterpretRunError struct {
	Label string
	Err   error
}

func (e *InterpretRunError) Error() string {
	return fmt.Sprintf("error when interpreting %s: %v", e.Label, e.Err)
}

func (e *InterpretRunError) Unwrap() error { return e.Err }

// ParseSource parses src, labelling any failure with what the source is.
func ParseSource(label, src string) (lambda.Term, error) {
	t, err := lambda.Parse(src)
	if err != nil {
		return nil, &SourceError{Label: label, Err: err}
	}
	return t, nil
}

func parseAll(srcs []string, label string) ([]lambda.Term, error) {
	terms := make([]lambda.Term, len(srcs))
	for i, src := range srcs {
		t, err := ParseSource(fmt.Sprintf("%s #%d", label, i+1), src)
		if err != nil {
			return nil, err
		}
		terms[i] = t
	}
	return terms, nil
}

// Validate checks that a level is consistent: every source parses, every
// solution passes and every wrong solution fails.
func Validate(ctx context.Context, level Level, r lambda.Resolver) error {
	cases := make([]TestCase, len(level.TestCases))
	for i, src := range level.TestCases {
		app, err := ParseSource(fmt.Sprintf("test case #%d's application", i+1), src.Application)
		if err != nil {
			return err
		}
		exp, err := ParseSource(fmt.Sprintf("test case #%d's result", i+1), src.Expected)
		if err != nil {
			return err
		}
		cases[i] = TestCase{Application: app, Expected: exp}
	}
	solutions, err := parseAll(level.Solutions, "solution")
	if err != nil {
		return err
	}
	wrong, err := parseAll(level.WrongSolutions, "wrong solution")
	if err != nil {
		return err
	}

	results, err := CheckAll(ctx, solutions, cases, r)
	if err != nil {
		return fmt.Errorf("validating %s: %w", level.Name, err)
	}
	for si, res := range results {
		ci, failed := res.Failed()
		if !failed {
			continue
		}
		run := res.Runs[ci]
		if run.Err != nil {
			return &InterpretRunError{
				Label: fmt.Sprintf("solution #%d on test case #%d", si+1, ci+1),
				Err:   run.Err,
			}
		}
		return &WrongSolutionError{
			Solution: si + 1,
			TestCase: ci + 1,
			Expected: run.Case.Expected,
			Got:      run.Result.Term,
		}
	}

	results, err = CheckAll(ctx, wrong, cases, r)
	if err != nil {
		return fmt.Errorf("validating %s: %w", level.Name, err)
	}
	if _, wi, ok := lo.FindIndexOf(results, Result.Passed); ok {
		return &WrongSolutionIsCorrectError{WrongSolution: wi + 1}
	}
	return nil
}
