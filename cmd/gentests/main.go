package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/golam/pkg/lambda"
)

type TestCase struct {
	Name   string
	Input  string
	Output string
}

const testTemplate = `package gentests

import _ "embed"
import "testing"
import "github.com/vic/golam/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_%s_Reduction(t *testing.T) {
	helper.CheckLambdaReduction(t, "%s", input, output)
}
`

func main() {
	tests := []TestCase{
		// Identity
		{"001_id", "x: x", "y: y"},
		{"002_id_id", "(x: x) (y: y)", "z: z"},

		// K Combinator (Erasure)
		{"003_k_1", "(x: y: x) a b", "a"},
		{"004_k_2", "(x: y: y) a b", "b"},
		{"005_erase_complex", "(x: y: x) a ((z: z) b)", "a"},

		// S Combinator (Sharing)
		{"006_s_1", "(x: y: z: x z (y z)) (a: b: a) (c: d: c) e", "e"},
		{"007_s_2", "(x: y: z: x z (y z)) (a: b: b) (c: d: c) e", "d: e"},

		// Church Numerals
		{"010_zero", "(f: x: x) f x", "x"},
		{"011_one", "(f: x: f x) f x", "f x"},
		{"012_two", "(f: x: f (f x)) f x", "f (f x)"},
		{"013_succ_0", "(n: f: x: f (n f x)) (f: x: x) f x", "f x"},
		{"014_succ_1", "(n: f: x: f (n f x)) (f: x: f x) f x", "f (f x)"},
		{"015_add_1_1", "(m: n: f: x: m f (n f x)) (f: x: f x) (f: x: f x) f x", "f (f x)"},
		{"016_mul_2_2", "(m: n: f: m (n f)) (f: x: f (f x)) (f: x: f (f x)) f x", "f (f (f (f x)))"},
		{"017_pred_3", "PRED (f: x: f (f (f x)))", "f: x: f (f x)"},
		{"018_iszero_succ", "ISZERO (SUCC ZERO) a b", "b"},

		// Logic
		{"020_true", "TRUE a b", "a"},
		{"021_false", "FALSE a b", "b"},
		{"022_not_true", "NOT TRUE a b", "b"},
		{"023_not_false", "NOT FALSE a b", "a"},
		{"024_and_true_true", "AND TRUE TRUE a b", "a"},
		{"025_and_true_false", "AND TRUE FALSE a b", "b"},
		{"026_or_false_true", "OR FALSE TRUE a b", "a"},

		// Pairs and lists
		{"030_pair_fst", "FST (PAIR a b)", "a"},
		{"031_pair_snd", "SND (PAIR a b)", "b"},
		{"032_isnil_nil", "ISNIL NIL a b", "a"},
		{"033_isnil_cons", "ISNIL (PAIR c NIL) a b", "b"},

		// Combinators
		{"040_compose", "COMPOSE (x: f x) (y: g y) a", "f (g a)"},
		{"041_flip", "FLIP (x: y: x) a b", "b"},

		// Capture avoidance
		{"050_free_shadow", "(x: y: x) y", "z: y"},
		{"051_share_app", "(f: f (f x)) (y: y)", "x"},
		{"052_under_binder", "a: (x: y: x) a", "a: y: a"},

		// Sharing
		{"070_share_complex", "(x: x (x a)) (y: y)", "a"},
		{"071_erase_shared", "(x: y: y) ((z: z) a) b", "b"},

		// Nested Lambdas
		{"080_nested_1", "x: y: z: x y z", "x: y: z: x y z"},
		{"081_nested_app", "(x: y: x y) a b", "a b"},

		// Free variables
		{"090_free_1", "x", "x"},
		{"091_free_app", "x y", "x y"},
		{"092_free_abs", "y: x y", "y: x y"},

		// Mixed
		{"100_mixed_1", "(x: x) ((y: y) a)", "a"},
	}

	baseDir := "cmd/gentests/generated"
	os.MkdirAll(baseDir, 0755)

	for _, tc := range tests {
		dir := filepath.Join(baseDir, tc.Name)
		os.MkdirAll(dir, 0755)

		// Normalize Input
		inTerm, err := lambda.Parse(tc.Input)
		if err != nil {
			fmt.Printf("Error parsing input for %s: %v\n", tc.Name, err)
			continue
		}

		// Normalize Output
		outTerm, err := lambda.Parse(tc.Output)
		if err != nil {
			fmt.Printf("Error parsing output for %s: %v\n", tc.Name, err)
			continue
		}

		testGo := fmt.Sprintf(testTemplate, tc.Name, tc.Name)

		os.WriteFile(filepath.Join(dir, "input.lam"), []byte(lambda.Display(inTerm)+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "output.lam"), []byte(lambda.Display(outTerm)+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "reduction_test.go"), []byte(testGo), 0644)
	}

	fmt.Printf("Generated %d tests\n", len(tests))
}
