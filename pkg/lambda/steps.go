package lambda

import (
	"errors"
	"iter"
	"sync/atomic"
)

// Steps returns the intermediate terms of interpreting root: one term per
// beta-reduction, each being the whole root with that redex contracted.
//
// The sequence is single-use. It ends silently when no redex remains or when
// the evaluation fails; Interpret or a Stepper tell the two apart. Breaking
// out of the loop abandons the evaluation.
func Steps(root Term, fullyResolve bool, r Resolver) iter.Seq[Term] {
	var used atomic.Bool
	return func(yield func(Term) bool) {
		if used.Swap(true) {
			return
		}
		e := &evaluator{resolve: fullyResolve, consts: r, yield: yield}
		_, _ = e.eval(root, 0)
	}
}

// Stepper pulls intermediate terms one at a time.
type Stepper struct {
	next   func() (Term, bool)
	stop   func()
	done   bool
	result Interpreted
	err    error
}

// NewStepper prepares a stepwise evaluation of root. Nothing is evaluated
// until the first call to Next.
func NewStepper(root Term, fullyResolve bool, r Resolver) *Stepper {
	s := &Stepper{}
	seq := func(yield func(Term) bool) {
		e := &evaluator{resolve: fullyResolve, consts: r, yield: yield}
		term, err := e.eval(root, 0)
		if errors.Is(err, errStopped) {
			return
		}
		s.result = Interpreted{Term: term, Stats: e.stats}
		s.err = err
	}
	s.next, s.stop = iter.Pull(iter.Seq[Term](seq))
	return s
}

// Next returns the term after the next beta-reduction. It returns false once
// the evaluation has finished, failed or been stopped.
func (s *Stepper) Next() (Term, bool) {
	if s.done {
		return nil, false
	}
	t, ok := s.next()
	if !ok {
		s.done = true
	}
	return t, ok
}

// Stop abandons the evaluation. It is safe to call more than once.
func (s *Stepper) Stop() {
	s.done = true
	s.stop()
}

// Err returns the evaluation error once Next has returned false.
func (s *Stepper) Err() error {
	return s.err
}

// Result returns the final term and stats. ok is false until the evaluation
// ran to completion without error.
func (s *Stepper) Result() (Interpreted, bool) {
	if !s.done || s.err != nil || s.result.Term == nil {
		return Interpreted{}, false
	}
	return s.result, true
}
