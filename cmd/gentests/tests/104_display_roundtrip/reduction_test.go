package gentests

import (
	_ "embed"
	"strings"
	"testing"

	"github.com/vic/golam/pkg/lambda"
)

//go:embed input.lam
var input string

// Test_104_display_roundtrip reduces each line and checks the displayed
// result parses back to the same term, shadowed names included.
func Test_104_display_roundtrip(t *testing.T) {
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		term, err := lambda.Parse(line)
		if err != nil {
			t.Fatalf("Parse error on %q: %v", line, err)
		}
		res, err := lambda.Interpret(term, true, nil)
		if err != nil {
			t.Fatalf("Interpret error on %q: %v", line, err)
		}
		shown := lambda.Display(res.Term)
		back, err := lambda.Parse(shown)
		if err != nil {
			t.Errorf("%q displayed as %q which does not parse: %v", line, shown, err)
			continue
		}
		if !lambda.Equal(back, res.Term) {
			t.Errorf("%q displayed as %q which parses to %s, want %s",
				line, shown, lambda.DeBruijn(back), lambda.DeBruijn(res.Term))
		}
	}
}
