package lambda

import "testing"

func displayEq(t *testing.T, original, display string) {
	t.Helper()
	if got := Display(parseOK(t, original)); got != display {
		t.Errorf("Display(%q) = %q, want %q", original, got, display)
	}
}

func TestDisplay(t *testing.T) {
	displayEq(t, "A", "A")
	displayEq(t, "(x:x) A", "(x: x) A")
	displayEq(t, "x:y:A", "x: y: A")
	displayEq(t, "(x:x)", "x: x")
	displayEq(t, "(x:x x)(x:x x)", "(x: x x) (x: x x)")
}

func TestDisplayFuncPrefix(t *testing.T) {
	displayEq(t, "a:b:c: a", "a: b: c: a")
	displayEq(t, "x (x: (y: y x))", "x (x: y: y x)")
	displayEq(t, "f:x: (f (f x))", "f: x: f (f x)")
	displayEq(t, "f (x: x) y", "f (x: x) y")
}

func TestDisplayRightAssociative(t *testing.T) {
	displayEq(t, "((a b) c)", "a b c")
	displayEq(t, "(a (b c))", "a (b c)")
	displayEq(t, "((a b) c) d", "a b c d")
	displayEq(t, "((a: b) c)", "(a: b) c")
	displayEq(t, "x: x ((a b) c)", "x: x (a b c)")
}

func TestDisplayShadowedBinders(t *testing.T) {
	displayEq(t, "x: x: x", "x: x': x'")
	displayEq(t, "x: x: y: x", "x: x': y: x'")
	displayEq(t, "x: (x: x) x", "x: (x': x') x")
	displayEq(t, "f: (f: f: f) f", "f: (f': f'': f'') f")
	displayEq(t, "(x: x) (x: x)", "(x: x) (x: x)")
}

func TestDisplayShadowedFreeVariable(t *testing.T) {
	res, err := Interpret(parseOK(t, "(x: y: x) y"), true, nil)
	if err != nil {
		t.Fatalf("Interpret error: %v", err)
	}
	if got := Display(res.Term); got != "y: _y" {
		t.Errorf("Expected %q, got %q", "y: _y", got)
	}

	// Not shadowed: no binder named y.
	res, err = Interpret(parseOK(t, "(x: z: x) y"), true, nil)
	if err != nil {
		t.Fatalf("Interpret error: %v", err)
	}
	if got := Display(res.Term); got != "z: y" {
		t.Errorf("Expected %q, got %q", "z: y", got)
	}
}

func TestDisplayString(t *testing.T) {
	term := parseOK(t, "f: x: f (f x)")
	if term.String() != Display(term) {
		t.Errorf("String() should match Display")
	}
	if got := DeBruijn(term); got != "(f: (x: (f1 (f1 x0))))" {
		t.Errorf("DeBruijn = %q", got)
	}
}

// TestDisplayRoundTrip checks parse(display(t)) == t.
func TestDisplayRoundTrip(t *testing.T) {
	sources := []string{
		"A",
		"x",
		"x: x",
		"a b c d",
		"a (b (c d))",
		"(x: x) (y: y) z",
		"f: x: f (f x)",
		"x: x: x",
		"x: (x: x y) x",
		"f: (f: f: f f) f",
		"x (x: y: y x)",
		"(a: b: a) (c: c) TRUE",
		"p: q: p q (x: y: y) (f: f x q)",
		"a: b: c: (a: b c a) (b: a b)",
	}
	for _, src := range sources {
		term := parseOK(t, src)
		shown := Display(term)
		back, err := Parse(shown)
		if err != nil {
			t.Errorf("%q displayed as %q which does not parse: %v", src, shown, err)
			continue
		}
		if !Equal(back, term) {
			t.Errorf("%q displayed as %q which parses to %s, want %s", src, shown, DeBruijn(back), DeBruijn(term))
		}
	}
}

// TestDisplayRoundTripReduced covers reduced terms with shadowed free
// variables, which the parser alone never produces.
func TestDisplayRoundTripReduced(t *testing.T) {
	sources := []string{
		"(x: y: x) y",
		"(x: y: z: x y) (y z)",
		"(f: x: f) x",
	}
	for _, src := range sources {
		res, err := Interpret(parseOK(t, src), true, nil)
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		shown := Display(res.Term)
		back, err := Parse(shown)
		if err != nil {
			t.Errorf("%q displayed as %q which does not parse: %v", src, shown, err)
			continue
		}
		if !Equal(back, res.Term) {
			t.Errorf("%q displayed as %q which parses to %s, want %s", src, shown, DeBruijn(back), DeBruijn(res.Term))
		}
	}
}
