package lambda

import (
	"fmt"
	"strings"
)

// printer renders terms back to parseable source.
type printer struct {
	b strings.Builder
	// Display names of the binders in scope, outermost first. A name gets one
	// prime per enclosing binder already using its letter.
	bound []string
	// Binders in scope per letter.
	active map[rune]int
}

// Display renders t so that parsing the result gives a term Equal to t.
//
// Bound variables print their binder's name, primed when an enclosing binder
// uses the same letter. A free variable prints its letter, prefixed with "_"
// when a binder with that letter is open at that point, so it can't be
// confused with the bound one.
func Display(t Term) string {
	p := &printer{active: make(map[rune]int)}
	p.term(t, true, false)
	return p.b.String()
}

// term writes t. head is true on the leftmost spine of a chain of
// abstractions (and at the top); assocParens is true for the right operand
// of an application.
func (p *printer) term(t Term, head, assocParens bool) {
	switch t := t.(type) {
	case Const:
		p.b.WriteString(t.Name)
	case Var:
		p.b.WriteString(p.varName(t))
	case Abs:
		parens := !head || assocParens
		if parens {
			p.b.WriteByte('(')
		}
		p.b.WriteString(p.bind(t.Name))
		p.b.WriteString(": ")
		p.term(t.Body, true, false)
		p.unbind(t.Name)
		if parens {
			p.b.WriteByte(')')
		}
	case App:
		if assocParens {
			p.b.WriteByte('(')
		}
		p.term(t.Fun, false, false)
		p.b.WriteByte(' ')
		p.term(t.Arg, false, true)
		if assocParens {
			p.b.WriteByte(')')
		}
	default:
		fmt.Fprintf(&p.b, "<%T>", t)
	}
}

func (p *printer) varName(v Var) string {
	cur := len(p.bound)
	if v.Depth < cur {
		return p.bound[cur-v.Depth-1]
	}
	if p.active[v.Name] > 0 {
		return "_" + string(v.Name)
	}
	return string(v.Name)
}

func (p *printer) bind(letter rune) string {
	name := string(letter) + strings.Repeat("'", p.active[letter])
	p.active[letter]++
	p.bound = append(p.bound, name)
	return name
}

func (p *printer) unbind(letter rune) {
	p.active[letter]--
	p.bound = p.bound[:len(p.bound)-1]
}

// DeBruijn renders t with raw indices, fully parenthesized. Meant for
// debugging.
func DeBruijn(t Term) string {
	switch t := t.(type) {
	case Const:
		return t.Name
	case Var:
		return fmt.Sprintf("%c%d", t.Name, t.Depth)
	case Abs:
		return fmt.Sprintf("(%c: %s)", t.Name, DeBruijn(t.Body))
	case App:
		return fmt.Sprintf("(%s %s)", DeBruijn(t.Fun), DeBruijn(t.Arg))
	}
	return fmt.Sprintf("<%T>", t)
}
