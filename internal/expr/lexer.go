package expr

import (
	"strconv"
)

// Tokenize splits an infix arithmetic expression into tokens. Whitespace is
// ignored. The returned slice always ends with a TokenEOF.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case isDigit(c) || c == '.':
			tok, n, err := lexNumber(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = n
		default:
			typ, ok := operatorTokens[c]
			if !ok {
				return nil, syntaxErr(i, "unexpected character %q", c)
			}
			toks = append(toks, Token{Type: typ, Value: string(c), Pos: i})
			i++
		}
	}
	toks = append(toks, Token{Type: TokenEOF, Pos: len(src)})
	return toks, nil
}

var operatorTokens = map[byte]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'%': TokenPercent,
	'(': TokenLParen,
	')': TokenRParen,
}

// lexNumber scans digits, an optional fraction and an optional exponent
// starting at src[start]. It returns the token and the offset after it.
func lexNumber(src string, start int) (Token, int, error) {
	i := start
	digits := 0
	for i < len(src) && isDigit(src[i]) {
		i++
		digits++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return Token{}, 0, syntaxErr(start, "malformed number")
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j >= len(src) || !isDigit(src[j]) {
			return Token{}, 0, syntaxErr(i, "malformed exponent")
		}
		for j < len(src) && isDigit(src[j]) {
			j++
		}
		i = j
	}

	text := src[start:i]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// ParseFloat only fails here on range errors.
		return Token{}, 0, &Error{Kind: ErrOverflow, Pos: start, Msg: text}
	}
	return Token{Type: TokenNumber, Value: text, Num: v, Pos: start}, i, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
