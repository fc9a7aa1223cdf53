package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/samber/lo"

	"github.com/vic/golam/pkg/lambda"
)

const (
	historyFile = ".golam_history"
	promptMain  = "λ> "
	promptCont  = ".. "
)

var (
	banner   = "golam playground\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands."
	helpText = `
REPL commands:
  :constants   List the visible constants
  :resolve     Toggle full resolution
  :steps       Toggle printing intermediate terms
  :quit        Exit the REPL
`
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func cmdRepl(opts options) int {
	fmt.Println(banner)
	opts.steps = true

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ln.SetCompleter(func(line string) []string {
		word := line[strings.LastIndexAny(line, " (:")+1:]
		if word == "" {
			return nil
		}
		return lo.FilterMap(opts.constants.Known(), func(name string, _ int) (string, bool) {
			return line[:len(line)-len(word)] + name, strings.HasPrefix(name, strings.ToUpper(word))
		})
	})

	for {
		src, ok := readTerm(ln)
		if !ok {
			fmt.Println()
			break
		}
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if strings.HasPrefix(src, ":") {
			if quit := command(strings.ToLower(src), &opts); quit {
				return 0
			}
			continue
		}

		term, err := lambda.Parse(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		for _, hint := range hints(term, opts) {
			fmt.Println(hint)
		}
		res, err := evaluate(os.Stdout, term, opts)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		fmt.Println(blue(res.Term.String()))
		fmt.Printf("%d reductions\n", res.Stats.Reductions)
	}
	return 0
}

// command runs a REPL command and reports whether the REPL should exit.
func command(cmd string, opts *options) bool {
	switch cmd {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Print(helpText)
	case ":constants":
		for _, name := range opts.constants.Known() {
			def, _ := opts.constants.Get(name)
			fmt.Printf("  %-8s %s\n", name, def)
		}
	case ":resolve":
		opts.resolve = !opts.resolve
		fmt.Printf("full resolution: %v\n", opts.resolve)
	case ":steps":
		opts.steps = !opts.steps
		fmt.Printf("show steps: %v\n", opts.steps)
	default:
		fmt.Printf("unknown command. Type :help for commands.\n")
	}
	return false
}

// hints suggests visible constants for unresolved names that look like typos.
func hints(term lambda.Term, opts options) []string {
	unknown := lo.Uniq(lo.Reject(lambda.Constants(term), func(name string, _ int) bool {
		_, ok := opts.constants.Get(name)
		return ok
	}))
	return lo.FilterMap(unknown, func(name string, _ int) (string, bool) {
		s, ok := opts.constants.Suggest(name)
		return fmt.Sprintf("%s is not a known constant, did you mean %s?", name, s), ok
	})
}

// readTerm reads lines until the parentheses balance.
func readTerm(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := lambda.Parse(src); errors.Is(err, lambda.ErrUnclosedParenthesis) {
			continue
		}
		return src, true
	}
}
