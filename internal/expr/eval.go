// Package expr evaluates infix arithmetic expressions.
//
// Grammar:
//
//	expr   = term { ("+" | "-") term }
//	term   = unary { ("*" | "/" | "%") unary }
//	unary  = [ "+" | "-" ] unary | factor
//	factor = number | "(" expr ")"
//
// "%" is the floating point remainder. Division or remainder by zero, and any
// result that overflows to infinity, are reported as errors.
package expr

import (
	"math"
)

// Evaluate parses and computes src.
func Evaluate(src string) (float64, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	p := &parser{toks: toks}
	if p.peek().Type == TokenEOF {
		return 0, syntaxErr(0, "empty expression")
	}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		return 0, syntaxErr(tok.Pos, "unexpected %s", tok.Type)
	}
	return v, nil
}

// Evaluator is the default expression evaluator.
type Evaluator struct{}

// Evaluate implements calc.Evaluator.
func (Evaluator) Evaluate(src string) (float64, error) {
	return Evaluate(src)
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	tok := p.toks[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseExpr() (float64, error) {
	val, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op.Type != TokenPlus && op.Type != TokenMinus {
			return val, nil
		}
		p.next()
		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op.Type == TokenPlus {
			val += rhs
		} else {
			val -= rhs
		}
		if err := checkFinite(val, op.Pos); err != nil {
			return 0, err
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	val, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op.Type != TokenStar && op.Type != TokenSlash && op.Type != TokenPercent {
			return val, nil
		}
		p.next()
		rhs, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		switch op.Type {
		case TokenStar:
			val *= rhs
		case TokenSlash:
			if rhs == 0 {
				return 0, &Error{Kind: ErrDivisionByZero, Pos: op.Pos}
			}
			val /= rhs
		case TokenPercent:
			if rhs == 0 {
				return 0, &Error{Kind: ErrDivisionByZero, Pos: op.Pos}
			}
			val = math.Mod(val, rhs)
		}
		if err := checkFinite(val, op.Pos); err != nil {
			return 0, err
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	switch p.peek().Type {
	case TokenMinus:
		p.next()
		v, err := p.parseUnary()
		return -v, err
	case TokenPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parseFactor()
}

func (p *parser) parseFactor() (float64, error) {
	tok := p.next()
	switch tok.Type {
	case TokenNumber:
		return tok.Num, nil
	case TokenLParen:
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if closing := p.next(); closing.Type != TokenRParen {
			return 0, syntaxErr(closing.Pos, "expected ) but found %s", closing.Type)
		}
		return v, nil
	case TokenEOF:
		return 0, syntaxErr(tok.Pos, "unexpected end of expression")
	default:
		return 0, syntaxErr(tok.Pos, "unexpected %s", tok.Type)
	}
}

func checkFinite(v float64, pos int) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return &Error{Kind: ErrOverflow, Pos: pos}
	}
	return nil
}
