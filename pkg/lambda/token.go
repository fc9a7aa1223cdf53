package lambda

import (
	"fmt"
	"unicode"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenVariable
	TokenConstant
	TokenColon
	TokenLParen
	TokenRParen
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenVariable:
		return "Variable"
	case TokenConstant:
		return "Constant"
	case TokenColon:
		return "Colon"
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	default:
		return "Unknown"
	}
}

// Token is a lexical unit. For variables Literal is the letter, optionally
// followed by primes (x') or preceded by an underscore marking it free (_x).
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

func (t Token) String() string {
	if t.Literal == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Literal)
}

// Letter is the variable letter of a variable token.
func (t Token) Letter() rune {
	for _, c := range t.Literal {
		if c != '_' {
			return c
		}
	}
	return 0
}

// UnknownCharacterError reports a character outside the grammar.
type UnknownCharacterError struct {
	Char rune
	Pos  int
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("unknown character %q at position %d", e.Char, e.Pos)
}

// Lexer produces tokens on demand. It is finite: once the input is exhausted
// every call returns TokenEOF.
type Lexer struct {
	input []rune
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// Next returns the next token.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.pos}, nil
	}

	ch := l.input[l.pos]
	switch {
	case isWordChar(ch):
		start := l.pos
		for l.pos < len(l.input) && isWordChar(l.input[l.pos]) {
			l.pos++
		}
		return classifyWord(l.input[start:l.pos], start)
	case ch == ':':
		l.pos++
		return Token{Type: TokenColon, Literal: ":", Pos: l.pos - 1}, nil
	case ch == '(':
		l.pos++
		return Token{Type: TokenLParen, Literal: "(", Pos: l.pos - 1}, nil
	case ch == ')':
		l.pos++
		return Token{Type: TokenRParen, Literal: ")", Pos: l.pos - 1}, nil
	default:
		return Token{}, &UnknownCharacterError{Char: ch, Pos: l.pos}
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
}

// Tokenize splits the whole input into tokens, without the trailing EOF.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isLower(ch rune) bool {
	return ch >= 'a' && ch <= 'z'
}

func isWordChar(ch rune) bool {
	return isLetter(ch) || ch == '\'' || ch == '_'
}

// classifyWord turns a run of word characters into a Variable or a Constant.
// Primes and underscores are only valid around a single lowercase letter.
func classifyWord(word []rune, pos int) (Token, error) {
	lit := string(word)
	letters := 0
	for _, c := range word {
		if isLetter(c) {
			letters++
		}
	}
	if letters == len(word) {
		if len(word) == 1 && isLower(word[0]) {
			return Token{Type: TokenVariable, Literal: lit, Pos: pos}, nil
		}
		return Token{Type: TokenConstant, Literal: lit, Pos: pos}, nil
	}

	// _x
	if len(word) == 2 && word[0] == '_' && isLower(word[1]) {
		return Token{Type: TokenVariable, Literal: lit, Pos: pos}, nil
	}
	// x, x', x'' ...
	if isLower(word[0]) {
		primes := true
		for _, c := range word[1:] {
			if c != '\'' {
				primes = false
				break
			}
		}
		if primes {
			return Token{Type: TokenVariable, Literal: lit, Pos: pos}, nil
		}
	}

	for i, c := range word {
		if !isLetter(c) {
			return Token{}, &UnknownCharacterError{Char: c, Pos: pos + i}
		}
	}
	return Token{}, &UnknownCharacterError{Char: word[0], Pos: pos}
}
