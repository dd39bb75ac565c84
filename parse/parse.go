// Package parse turns the textual form of Abelian group equations and terms
// into their normal-form representation.
//
// The grammar is line-oriented and additive:
//
//	equation := term '=' term
//	term     := ['-'] factor (('+' | '-') factor)*
//	factor   := INT [ atom ] | atom
//	atom     := IDENT | '(' term ')'
//
// An integer on its own is a constant offset, so the literal 0 denotes the
// group identity. An integer directly before an identifier or parenthesized
// sub-term scales it. Identifiers are a letter followed by letters or
// digits, and must not start with the prefix reserved for generated
// variables.
package parse

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/dmcclean/agum/term"
)

// ParseError reports malformed input, with the rune offset at which parsing
// failed.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Pos, e.Msg)
}

type parser struct {
	src string
	cur int
}

// Equation parses a full `left = right` problem line.
func Equation(src string) (term.Equation, error) {
	p := &parser{src: src}
	left, err := p.term()
	if err != nil {
		return term.Equation{}, err
	}
	if !p.eat('=') {
		return term.Equation{}, p.err("expected '='")
	}
	right, err := p.term()
	if err != nil {
		return term.Equation{}, err
	}
	if p.peek() != 0 {
		return term.Equation{}, p.err("unexpected trailing input")
	}
	return term.Equation{Left: left, Right: right}, nil
}

// Term parses a single term with no equality sign.
func Term(src string) (term.Term, error) {
	p := &parser{src: src}
	t, err := p.term()
	if err != nil {
		return term.Term{}, err
	}
	if p.peek() != 0 {
		return term.Term{}, p.err("unexpected trailing input")
	}
	return t, nil
}

func (p *parser) err(msg string) error {
	return &ParseError{Pos: p.cur, Msg: msg}
}

func (p *parser) skipSpace() {
	for p.cur < len(p.src) && (p.src[p.cur] == ' ' || p.src[p.cur] == '\t') {
		p.cur++
	}
}

// peek returns the next meaningful rune without consuming it, or 0 at the
// end of input.
func (p *parser) peek() rune {
	p.skipSpace()
	if p.cur >= len(p.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.cur:])
	return r
}

func (p *parser) eat(r rune) bool {
	if p.peek() != r {
		return false
	}
	p.cur += utf8.RuneLen(r)
	return true
}

func (p *parser) term() (term.Term, error) {
	res := term.Identity()
	negated := p.eat('-')
	for {
		f, err := p.factor()
		if err != nil {
			return term.Term{}, err
		}
		if negated {
			f = f.Invert()
		}
		res = res.Add(f)
		if p.eat('+') {
			negated = false
		} else if p.eat('-') {
			negated = true
		} else {
			return res, nil
		}
		// a sign may be followed by another signed factor, as in `x + -x`
		if p.eat('-') {
			negated = !negated
		}
	}
}

func (p *parser) factor() (term.Term, error) {
	r := p.peek()
	switch {
	case unicode.IsDigit(r):
		n, err := p.integer()
		if err != nil {
			return term.Term{}, err
		}
		next := p.peek()
		if unicode.IsLetter(next) || next == '(' {
			atom, err := p.atom()
			if err != nil {
				return term.Term{}, err
			}
			return atom.Scale(n), nil
		}
		return term.Constant(n), nil
	case unicode.IsLetter(r) || r == '(':
		return p.atom()
	case r == 0:
		return term.Term{}, p.err("unexpected end of input")
	default:
		return term.Term{}, p.err(fmt.Sprintf("unexpected %q", r))
	}
}

func (p *parser) atom() (term.Term, error) {
	if p.eat('(') {
		t, err := p.term()
		if err != nil {
			return term.Term{}, err
		}
		if !p.eat(')') {
			return term.Term{}, p.err("expected ')'")
		}
		return t, nil
	}
	name, err := p.ident()
	if err != nil {
		return term.Term{}, err
	}
	return term.Variable(name), nil
}

func (p *parser) integer() (int, error) {
	p.skipSpace()
	start := p.cur
	for p.cur < len(p.src) && p.src[p.cur] >= '0' && p.src[p.cur] <= '9' {
		p.cur++
	}
	n, err := strconv.Atoi(p.src[start:p.cur])
	if err != nil {
		return 0, &ParseError{Pos: start, Msg: "malformed integer"}
	}
	return n, nil
}

func (p *parser) ident() (string, error) {
	p.skipSpace()
	start := p.cur
	r, size := utf8.DecodeRuneInString(p.src[p.cur:])
	if !unicode.IsLetter(r) {
		return "", p.err("expected identifier")
	}
	p.cur += size
	for p.cur < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.cur:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		p.cur += size
	}
	name := p.src[start:p.cur]
	if term.IsFresh(name) {
		return "", &ParseError{Pos: start, Msg: fmt.Sprintf("identifier %q starts with the reserved prefix %q", name, term.FreshPrefix)}
	}
	return name, nil
}
