package lambda

import "fmt"

// ParseError is a structural error found while parsing. All of them are
// detected at the offending token.
type ParseError int

const (
	ErrFunctionInsideBody ParseError = iota + 1
	ErrExtraColon
	ErrMissingExpression
	ErrUnclosedParenthesis
	ErrExtraCloseParenthesis
)

func (e ParseError) Error() string {
	switch e {
	case ErrFunctionInsideBody:
		return "function must be first part of expression"
	case ErrExtraColon:
		return "extra ':' in the input"
	case ErrMissingExpression:
		return "some subexpression '()' is empty"
	case ErrUnclosedParenthesis:
		return "parenthesis is unclosed"
	case ErrExtraCloseParenthesis:
		return "extra close parenthesis"
	default:
		return fmt.Sprintf("parse error %d", int(e))
	}
}

// level is an unclosed parenthesis group: some enveloping functions
// ("a: b: c:" at its start) followed by a single term, which may be the
// application of several terms in a row.
type level struct {
	term    Term
	binders []Token
}

// merge adds t to the right of the level's term.
func (l *level) merge(t Term) {
	if l.term == nil {
		l.term = t
		return
	}
	l.term = App{Fun: l.term, Arg: t}
}

// Parser builds a Term out of a token sequence.
type Parser struct {
	tokens []Token
	pos    int
	levels []*level
	// Names of the binders in scope, outermost first.
	scope []string
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens, levels: []*level{{}}}
}

func (p *Parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) top() *level {
	return p.levels[len(p.levels)-1]
}

func (p *Parser) Parse() (Term, error) {
	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		p.pos++

		switch tok.Type {
		case TokenVariable:
			if next, ok := p.peek(); ok && next.Type == TokenColon {
				p.pos++
				if err := p.declare(tok); err != nil {
					return nil, err
				}
				continue
			}
			p.top().merge(p.resolve(tok))
		case TokenConstant:
			p.top().merge(Const{Name: tok.Literal})
		case TokenColon:
			return nil, ErrExtraColon
		case TokenLParen:
			p.levels = append(p.levels, &level{})
		case TokenRParen:
			if len(p.levels) == 1 {
				return nil, ErrExtraCloseParenthesis
			}
			last := p.top()
			p.levels = p.levels[:len(p.levels)-1]
			term, err := p.close(last)
			if err != nil {
				return nil, err
			}
			p.top().merge(term)
		case TokenEOF:
			p.pos = len(p.tokens)
		}
	}

	if len(p.levels) > 1 {
		return nil, ErrUnclosedParenthesis
	}
	return p.close(p.levels[0])
}

// declare registers a binder "v:" on the current level.
func (p *Parser) declare(tok Token) error {
	if p.top().term != nil {
		return ErrFunctionInsideBody
	}
	p.top().binders = append(p.top().binders, tok)
	p.scope = append(p.scope, tok.Literal)
	return nil
}

// resolve turns a variable token into a Var, looking for the nearest binder
// with the same name.
func (p *Parser) resolve(tok Token) Var {
	letter := tok.Letter()
	if tok.Literal[0] != '_' {
		for i := len(p.scope) - 1; i >= 0; i-- {
			if p.scope[i] == tok.Literal {
				return Var{Depth: len(p.scope) - 1 - i, Name: letter}
			}
		}
	}
	return Var{Depth: len(p.scope), Name: letter}
}

// close finishes a level, wrapping its term in the level's binders. Binders
// declared earlier enclose the ones declared later.
func (p *Parser) close(l *level) (Term, error) {
	if l.term == nil {
		return nil, ErrMissingExpression
	}
	term := l.term
	for i := len(l.binders) - 1; i >= 0; i-- {
		term = Abs{Name: l.binders[i].Letter(), Body: term}
	}
	p.scope = p.scope[:len(p.scope)-len(l.binders)]
	return term, nil
}

// ParseTokens parses a token sequence into a term.
func ParseTokens(tokens []Token) (Term, error) {
	return NewParser(tokens).Parse()
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// MustParse is like Parse but panics on error.
func MustParse(input string) Term {
	term, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("lambda: parsing %q: %v", input, err))
	}
	return term
}
