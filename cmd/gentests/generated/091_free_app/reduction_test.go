package gentests

import _ "embed"
import "testing"
import "github.com/vic/golam/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_091_free_app_Reduction(t *testing.T) {
	helper.CheckLambdaReduction(t, "091_free_app", input, output)
}
