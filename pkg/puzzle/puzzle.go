// Package puzzle checks player solutions against the test cases of a level.
package puzzle

import (
	"context"
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/vic/golam/pkg/lambda"
)

// TestCase is an application that receives a solution and the term it must
// reduce to.
type TestCase struct {
	Application lambda.Term
	Expected    lambda.Term
}

// NewTestCase parses both sides of a test case.
func NewTestCase(application, expected string) (TestCase, error) {
	app, err := ParseSource("application", application)
	if err != nil {
		return TestCase{}, err
	}
	exp, err := ParseSource("expected result", expected)
	if err != nil {
		return TestCase{}, err
	}
	return TestCase{Application: app, Expected: exp}, nil
}

// Run is the outcome of one solution on one test case.
type Run struct {
	Case   TestCase
	Result lambda.Interpreted
	Err    error
}

// Correct reports whether the run terminated on the expected term.
func (r Run) Correct() bool {
	return r.Err == nil && lambda.Equal(r.Result.Term, r.Case.Expected)
}

// Run applies the test case to solution and fully reduces it. Every run has
// its own reduction counter.
func (tc TestCase) Run(solution lambda.Term, r lambda.Resolver) Run {
	res, err := lambda.Interpret(lambda.App{Fun: tc.Application, Arg: solution}, true, r)
	return Run{Case: tc, Result: res, Err: err}
}

// Result gathers the runs of one solution over every test case of a level.
type Result struct {
	Solution lambda.Term
	Runs     []Run
	// Stats is only meaningful when the solution passed.
	Stats lambda.AccStats
}

// Passed reports whether every run was correct.
func (r Result) Passed() bool {
	return lo.EveryBy(r.Runs, Run.Correct)
}

// Failed returns the index of the first incorrect run.
func (r Result) Failed() (int, bool) {
	_, idx, ok := lo.FindIndexOf(r.Runs, func(run Run) bool { return !run.Correct() })
	return idx, ok
}

func newResult(solution lambda.Term, runs []Run) Result {
	stats := lo.Map(runs, func(run Run, _ int) lambda.Stats { return run.Result.Stats })
	return Result{
		Solution: solution,
		Runs:     runs,
		Stats:    lambda.Accumulate(stats, solution),
	}
}

// Check runs solution against every case in parallel.
func Check(ctx context.Context, solution lambda.Term, cases []TestCase, r lambda.Resolver) (Result, error) {
	results, err := CheckAll(ctx, []lambda.Term{solution}, cases, r)
	if err != nil {
		return Result{}, err
	}
	return results[0], nil
}

// CheckAll runs every solution against every case, at most NumCPU runs at a
// time. Results are in the order of solutions. It only fails when ctx is
// done; a solution that does not terminate is reported in its Run.
func CheckAll(ctx context.Context, solutions []lambda.Term, cases []TestCase, r lambda.Resolver) ([]Result, error) {
	runs := make([][]Run, len(solutions))
	for i := range runs {
		runs[i] = make([]Run, len(cases))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for si, sol := range solutions {
		for ci, tc := range cases {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				runs[si][ci] = tc.Run(sol, r)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return lo.Map(solutions, func(sol lambda.Term, i int) Result {
		return newResult(sol, runs[i])
	}), nil
}

// Best returns the best stats among the passing results.
func Best(results []Result) (lambda.AccStats, bool) {
	passed := lo.Filter(results, func(r Result, _ int) bool { return r.Passed() })
	if len(passed) == 0 {
		return lambda.AccStats{}, false
	}
	best := passed[0].Stats
	for _, r := range passed[1:] {
		best = best.Best(r.Stats)
	}
	return best, true
}
