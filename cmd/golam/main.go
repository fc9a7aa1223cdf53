package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vic/golam/pkg/constants"
	"github.com/vic/golam/pkg/lambda"
)

type options struct {
	resolve   bool
	steps     bool
	maxSteps  int
	constants constants.Provider
}

func main() {
	args := os.Args[1:]
	repl := len(args) > 0 && args[0] == "repl"
	if repl {
		args = args[1:]
	}

	fs := flag.NewFlagSet("golam", flag.ExitOnError)
	resolve := fs.Bool("resolve", true, "reduce inside function bodies and arguments")
	steps := fs.Bool("steps", false, "print every intermediate term")
	maxSteps := fs.Int("max-steps", 30, "maximum number of intermediate terms to print")
	consts := fs.String("constants", "all", "visible constants: all, none or <section>:<count>")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: golam [flags] [file]\n       golam repl [flags]\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	provider, err := parseProvider(*consts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	opts := options{resolve: *resolve, steps: *steps, maxSteps: *maxSteps, constants: provider}

	if repl {
		os.Exit(cmdRepl(opts))
	}

	var input []byte
	if fs.NArg() > 0 {
		input, err = os.ReadFile(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	term, err := lambda.Parse(string(input))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	res, err := evaluate(os.Stdout, term, opts)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Interpret error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(res.Term)

	fmt.Fprintf(os.Stderr, "\nStats:\n")
	fmt.Fprintf(os.Stderr, "Time: %v\n", elapsed)
	fmt.Fprintf(os.Stderr, "Reductions: %d\n", res.Stats.Reductions)
	fmt.Fprintf(os.Stderr, "Functions:  %d\n", lambda.Functions(res.Term))
}

// parseProvider reads the -constants flag.
func parseProvider(s string) (constants.Provider, error) {
	switch strings.ToLower(s) {
	case "all":
		return constants.All(), nil
	case "none":
		return constants.None(), nil
	}
	name, count, ok := strings.Cut(s, ":")
	if !ok {
		return constants.Provider{}, fmt.Errorf("invalid constants %q: expected all, none or <section>:<count>", s)
	}
	section, err := constants.ParseSection(name)
	if err != nil {
		return constants.Provider{}, err
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 0 {
		return constants.Provider{}, fmt.Errorf("invalid constant count %q", count)
	}
	return constants.New(section, n), nil
}

// evaluate interprets term, printing the intermediate terms to w when asked.
func evaluate(w io.Writer, term lambda.Term, opts options) (lambda.Interpreted, error) {
	if !opts.steps {
		return lambda.Interpret(term, opts.resolve, opts.constants)
	}

	s := lambda.NewStepper(term, opts.resolve, opts.constants)
	defer s.Stop()
	n := 0
	for {
		step, ok := s.Next()
		if !ok {
			break
		}
		n++
		if n <= opts.maxSteps {
			fmt.Fprintf(w, "%3d  %s\n", n, step)
		}
	}
	if n > opts.maxSteps {
		fmt.Fprintf(w, "     ... %d more steps\n", n-opts.maxSteps)
	}
	if err := s.Err(); err != nil {
		return lambda.Interpreted{}, err
	}
	res, ok := s.Result()
	if !ok {
		return lambda.Interpreted{}, errors.New("evaluation stopped")
	}
	return res, nil
}
