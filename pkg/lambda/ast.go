package lambda

// Term represents a lambda calculus term.
//
// Variables are de Bruijn indexed: Var.Depth counts the binders between the
// use and its binder (0 = innermost). A Var whose depth reaches past every
// enclosing Abs of the root it is evaluated under is free relative to that
// root. Terms are immutable; every operation builds a new tree.
type Term interface {
	String() string
	isTerm()
}

// Const represents a named constant, resolved at evaluation time or left
// opaque.
type Const struct {
	Name string
}

func (Const) isTerm()          {}
func (c Const) String() string { return Display(c) }

// Var represents a variable usage. Name is the letter it was written with and
// only matters for display.
type Var struct {
	Depth int
	Name  rune
}

func (Var) isTerm()          {}
func (v Var) String() string { return Display(v) }

// Abs represents an abstraction (lambda).
type Abs struct {
	Name rune
	Body Term
}

func (Abs) isTerm()          {}
func (a Abs) String() string { return Display(a) }

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (App) isTerm()          {}
func (a App) String() string { return Display(a) }

// Equal reports whether a and b have the same de Bruijn skeleton. Letters of
// bound variables are ignored; a variable free relative to the roots is
// identified by its letter.
func Equal(a, b Term) bool {
	return equalAt(a, b, 0)
}

func equalAt(a, b Term, binders int) bool {
	switch x := a.(type) {
	case Const:
		y, ok := b.(Const)
		return ok && x.Name == y.Name
	case Var:
		y, ok := b.(Var)
		if !ok || x.Depth != y.Depth {
			return false
		}
		if x.Depth >= binders {
			return x.Name == y.Name
		}
		return true
	case Abs:
		y, ok := b.(Abs)
		return ok && equalAt(x.Body, y.Body, binders+1)
	case App:
		y, ok := b.(App)
		return ok && equalAt(x.Fun, y.Fun, binders) && equalAt(x.Arg, y.Arg, binders)
	}
	return false
}

// Functions counts the abstractions in t.
func Functions(t Term) int {
	switch t := t.(type) {
	case Abs:
		return 1 + Functions(t.Body)
	case App:
		return Functions(t.Fun) + Functions(t.Arg)
	}
	return 0
}

// Constants returns the constant names used in t, in order of appearance.
// Repeated uses are listed once per occurrence.
func Constants(t Term) []string {
	var names []string
	var walk func(Term)
	walk = func(t Term) {
		switch t := t.(type) {
		case Const:
			names = append(names, t.Name)
		case Abs:
			walk(t.Body)
		case App:
			walk(t.Fun)
			walk(t.Arg)
		}
	}
	walk(t)
	return names
}
