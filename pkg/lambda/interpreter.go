package lambda

import (
	"errors"
	"fmt"
	"log"
	"os"
)

var lambdaDebug = os.Getenv("LAMBDA_DEBUG") != ""

// MaxDepth bounds the recursion of a single evaluation. It catches
// non-terminating terms and also very deep finite ones.
const MaxDepth = 100

// InterpretError is an evaluation failure.
type InterpretError int

const (
	// ErrTooDeep means the term does not terminate, or is too large.
	ErrTooDeep InterpretError = iota + 1
	// ErrAlgorithm means an internal invariant was violated.
	ErrAlgorithm
)

func (e InterpretError) Error() string {
	switch e {
	case ErrTooDeep:
		return "recursion too deep: the term does not terminate or is too large"
	case ErrAlgorithm:
		return "internal interpreter error"
	default:
		return fmt.Sprintf("interpret error %d", int(e))
	}
}

// algorithmError panics under LAMBDA_DEBUG and logs otherwise.
func algorithmError(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if lambdaDebug {
		panic("lambda: algorithm error: " + msg)
	}
	log.Printf("lambda: algorithm error: %s", msg)
	return fmt.Errorf("%w: %s", ErrAlgorithm, msg)
}

// errStopped ends an evaluation whose step consumer stopped pulling.
var errStopped = errors.New("lambda: stepping stopped")

// Resolver looks up named constants. A nil Resolver resolves nothing.
type Resolver interface {
	Get(name string) (Term, bool)
}

// Interpreted is the outcome of a successful evaluation.
type Interpreted struct {
	Term  Term
	Stats Stats
}

type frameKind int

const (
	frameBody frameKind = iota // inside Abs.Body
	frameFun                   // inside App.Fun, sibling is the argument
	frameArg                   // inside App.Arg, sibling is the reduced function
)

// frame records how the subterm being evaluated plugs back into its parent.
type frame struct {
	kind    frameKind
	name    rune
	sibling Term
}

type evaluator struct {
	resolve bool
	consts  Resolver
	stats   Stats
	// yield receives the whole term after every beta-reduction. nil when not
	// stepping.
	yield  func(Term) bool
	frames []frame
}

func (e *evaluator) push(f frame) {
	if e.yield != nil {
		e.frames = append(e.frames, f)
	}
}

func (e *evaluator) pop() {
	if e.yield != nil {
		e.frames = e.frames[:len(e.frames)-1]
	}
}

// plug rebuilds the root term around t.
func (e *evaluator) plug(t Term) Term {
	for i := len(e.frames) - 1; i >= 0; i-- {
		f := e.frames[i]
		switch f.kind {
		case frameBody:
			t = Abs{Name: f.name, Body: t}
		case frameFun:
			t = App{Fun: t, Arg: f.sibling}
		case frameArg:
			t = App{Fun: f.sibling, Arg: t}
		}
	}
	return t
}

func (e *evaluator) eval(term Term, depth int) (Term, error) {
	if depth > MaxDepth {
		return nil, ErrTooDeep
	}
	if lambdaDebug {
		fmt.Printf("eval[%d]: %s\n", depth, DeBruijn(term))
	}

	switch t := term.(type) {
	case Const:
		if e.consts != nil {
			if def, ok := e.consts.Get(t.Name); ok {
				return e.eval(def, depth+1)
			}
		}
		return t, nil

	case Var:
		return t, nil

	case Abs:
		if !e.resolve {
			return t, nil
		}
		e.push(frame{kind: frameBody, name: t.Name})
		body, err := e.eval(t.Body, depth+1)
		e.pop()
		if err != nil {
			return nil, err
		}
		return Abs{Name: t.Name, Body: body}, nil

	case App:
		e.push(frame{kind: frameFun, sibling: t.Arg})
		fun, err := e.eval(t.Fun, depth+1)
		e.pop()
		if err != nil {
			return nil, err
		}

		arg := t.Arg
		if e.resolve {
			e.push(frame{kind: frameArg, sibling: fun})
			arg, err = e.eval(t.Arg, depth+1)
			e.pop()
			if err != nil {
				return nil, err
			}
		}

		abs, ok := fun.(Abs)
		if !ok {
			return App{Fun: fun, Arg: arg}, nil
		}

		e.stats.Reductions++
		reduced, err := replace(abs.Body, 0, arg)
		if err != nil {
			return nil, err
		}
		if e.yield != nil && !e.yield(e.plug(reduced)) {
			return nil, errStopped
		}
		return e.eval(reduced, depth+1)
	}

	return nil, algorithmError("eval: unexpected term %T", term)
}

// Interpret reduces root in normal order. Without fullyResolve, evaluation
// stops at weak head normal form: function bodies and arguments of stuck
// applications are left alone. Constants known to r are expanded when
// reached.
func Interpret(root Term, fullyResolve bool, r Resolver) (Interpreted, error) {
	e := &evaluator{resolve: fullyResolve, consts: r}
	term, err := e.eval(root, 0)
	if err != nil {
		return Interpreted{}, err
	}
	return Interpreted{Term: term, Stats: e.stats}, nil
}
