package gentests

import _ "embed"
import "testing"
import "github.com/vic/golam/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_025_and_true_false_Reduction(t *testing.T) {
	helper.CheckLambdaReduction(t, "025_and_true_false", input, output)
}
