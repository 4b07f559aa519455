// Package calc implements the calculator's button-press state machine.
package calc

import (
	"math"
	"strconv"
	"strings"

	"circlecalc/internal/format"
	"circlecalc/internal/logging"
)

// Key labels with special meaning. Every other accepted key is a digit, "00",
// "." or an operator.
const (
	KeyClear   = "AC"
	KeySign    = "+/-"
	KeyPercent = "%"
	KeyEquals  = "="
)

// Evaluator computes an infix arithmetic expression using "*" for
// multiplication.
type Evaluator interface {
	Evaluate(expr string) (float64, error)
}

// State is the accumulator's complete state.
type State struct {
	Raw    string // canonical expression, never grouped
	Last   string // expression shown before the last successful "="
	Failed bool   // the last "=" could not be evaluated
}

// Accumulator applies key presses to a raw expression.
type Accumulator struct {
	state State
	eval  Evaluator
	strip func(string) string
}

// NewAccumulator creates an empty accumulator. strip removes display-only
// separators from the raw expression before it is extended; nil removes ",".
func NewAccumulator(eval Evaluator, strip func(string) string) *Accumulator {
	if strip == nil {
		strip = func(s string) string { return strings.ReplaceAll(s, ",", "") }
	}
	return &Accumulator{eval: eval, strip: strip}
}

// State returns the current state.
func (a *Accumulator) State() State {
	return a.state
}

// Restore replaces the current state, e.g. with one saved by a previous run.
func (a *Accumulator) Restore(s State) {
	a.state = s
}

// Apply handles one key press and returns the new state. Invalid presses
// leave the expression unchanged; evaluation failures clear it and set Failed.
func (a *Accumulator) Apply(key string) State {
	key = strings.TrimSpace(key)
	a.state.Failed = false

	switch key {
	case KeyClear:
		a.state = State{}
	case KeySign:
		a.transform(func(v float64) float64 { return -v })
	case KeyPercent:
		a.transform(func(v float64) float64 { return v / 100 })
	case KeyEquals:
		a.evaluate()
	default:
		if isNumberKey(key) {
			a.appendNumber(key)
		} else if op, ok := CanonicalOperator(key); ok {
			a.appendOperator(op)
		} else {
			logging.Debugf("ignoring unknown key %q", key)
		}
	}
	return a.state
}

// transform replaces a single-number expression with fn applied to it.
// Anything that is not one finite number is left alone.
func (a *Accumulator) transform(fn func(float64) float64) {
	v, err := strconv.ParseFloat(a.state.Raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return
	}
	a.state.Raw = format.Number(fn(v))
}

func (a *Accumulator) evaluate() {
	raw := a.state.Raw
	v, err := a.eval.Evaluate(strings.ReplaceAll(raw, "x", "*"))
	if err != nil {
		logging.Debugf("evaluate %q: %v", raw, err)
		a.state.Raw = ""
		a.state.Failed = true
		return
	}
	a.state.Last = raw
	a.state.Raw = format.Result(v)
}

func (a *Accumulator) appendNumber(key string) {
	raw := a.strip(a.state.Raw)
	if key == "." && strings.Contains(TrailingOperand(raw), ".") {
		return
	}
	a.state.Raw = raw + key
}

func (a *Accumulator) appendOperator(op string) {
	raw := a.strip(a.state.Raw)
	if raw == "" {
		return
	}
	if IsOperator(raw[len(raw)-1]) {
		raw = raw[:len(raw)-1]
	}
	a.state.Raw = raw + op
}

func isNumberKey(key string) bool {
	if key == "00" {
		return true
	}
	return len(key) == 1 && strings.Contains("0123456789.", key)
}

// CanonicalOperator maps a binary operator key to its raw form. All
// multiplication spellings become "x". The "%" key is the unary percent and
// is not an operator here.
func CanonicalOperator(key string) (string, bool) {
	switch k := strings.ToLower(key); k {
	case "+", "-", "/":
		return k, true
	case "x", "×", "*":
		return "x", true
	}
	return "", false
}

// IsOperator reports whether c is a raw operator character.
func IsOperator(c byte) bool {
	return strings.IndexByte(format.Operators, c) >= 0
}

// TrailingOperand returns the text after the last operator in raw, or raw
// itself when it has no operator.
func TrailingOperand(raw string) string {
	return raw[strings.LastIndexAny(raw, format.Operators)+1:]
}
