package lambda

// shift adds by to the depth of every variable of t that is free relative to
// t. cutoff is the number of binders already entered inside t.
func shift(t Term, by, cutoff int) (Term, error) {
	switch t := t.(type) {
	case Const:
		return t, nil
	case Var:
		if t.Depth < cutoff {
			return t, nil
		}
		return Var{Depth: t.Depth + by, Name: t.Name}, nil
	case Abs:
		body, err := shift(t.Body, by, cutoff+1)
		if err != nil {
			return nil, err
		}
		return Abs{Name: t.Name, Body: body}, nil
	case App:
		fun, err := shift(t.Fun, by, cutoff)
		if err != nil {
			return nil, err
		}
		arg, err := shift(t.Arg, by, cutoff)
		if err != nil {
			return nil, err
		}
		return App{Fun: fun, Arg: arg}, nil
	}
	return nil, algorithmError("shift: unexpected term %T", t)
}

// replace substitutes value for the variable bound target binders above each
// point of t, removing that binder. It is called on the body of the
// abstraction being applied, with target 0.
func replace(t Term, target int, value Term) (Term, error) {
	switch t := t.(type) {
	case Const:
		return t, nil
	case Var:
		switch {
		case t.Depth == target:
			// The copy now lives target binders deeper than value did.
			return shift(value, target, 0)
		case t.Depth > target:
			return Var{Depth: t.Depth - 1, Name: t.Name}, nil
		default:
			return t, nil
		}
	case Abs:
		body, err := replace(t.Body, target+1, value)
		if err != nil {
			return nil, err
		}
		return Abs{Name: t.Name, Body: body}, nil
	case App:
		fun, err := replace(t.Fun, target, value)
		if err != nil {
			return nil, err
		}
		arg, err := replace(t.Arg, target, value)
		if err != nil {
			return nil, err
		}
		return App{Fun: fun, Arg: arg}, nil
	}
	return nil, algorithmError("replace: unexpected term %T", t)
}
