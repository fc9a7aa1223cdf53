package lambda

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Stats counts the work of one evaluation.
type Stats struct {
	Reductions int
}

// AccStats aggregates a solution's runs over all test cases.
type AccStats struct {
	// Mean reductions per test case, times 100 and rounded.
	Reductions int
	// Abstractions in the solution term.
	Functions int
}

// Accumulate aggregates the stats of running solution over several test
// cases.
func Accumulate(runs []Stats, solution Term) AccStats {
	var mean float64
	if len(runs) > 0 {
		total := lo.SumBy(runs, func(s Stats) int { return s.Reductions })
		mean = float64(total) / float64(len(runs))
	}
	return AccStats{
		Reductions: int(math.Round(mean * 100)),
		Functions:  Functions(solution),
	}
}

// Best merges two results keeping the lowest value of each field. The two
// minima may come from different runs.
func (a AccStats) Best(b AccStats) AccStats {
	return AccStats{
		Reductions: min(a.Reductions, b.Reductions),
		Functions:  min(a.Functions, b.Functions),
	}
}

// MeanReductions is the unscaled mean of reductions per test case.
func (a AccStats) MeanReductions() float64 {
	return float64(a.Reductions) / 100
}

func (a AccStats) String() string {
	return fmt.Sprintf("%.2f reductions, %d functions", a.MeanReductions(), a.Functions)
}
