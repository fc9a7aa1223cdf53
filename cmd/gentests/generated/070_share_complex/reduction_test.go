package gentests

import _ "embed"
import "testing"
import "github.com/vic/golam/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_070_share_complex_Reduction(t *testing.T) {
	helper.CheckLambdaReduction(t, "070_share_complex", input, output)
}
