package gentests

import _ "embed"
import "testing"
import "github.com/vic/golam/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_003_k_1_Reduction(t *testing.T) {
	helper.CheckLambdaReduction(t, "003_k_1", input, output)
}
