package calc

import (
	"strings"
	"time"

	"circlecalc/internal/format"
	"circlecalc/internal/model"
)

// ErrorText is shown in place of the expression after a failed evaluation.
const ErrorText = "Error"

// Screen is what a front end renders after each key press.
type Screen struct {
	Display string // grouped current entry, "0" when empty
	History string // previous expression followed by " =", or ""
}

// Calculator ties the accumulator to a display formatter and records every
// successful evaluation.
type Calculator struct {
	acc       *Accumulator
	formatter *format.Formatter

	// OnEntry, if set, receives one entry per successful "=".
	OnEntry func(model.Entry)

	now func() time.Time
}

// New creates a Calculator using eval for "=" and f for display. The raw
// expression stays canonical for every locale; f only shapes what is shown.
func New(eval Evaluator, f *format.Formatter) *Calculator {
	return &Calculator{
		acc:       NewAccumulator(eval, nil),
		formatter: f,
		now:       time.Now,
	}
}

// Press applies one key and returns the updated screen.
func (c *Calculator) Press(key string) Screen {
	s := c.acc.Apply(key)
	if strings.TrimSpace(key) == KeyEquals && !s.Failed && c.OnEntry != nil {
		c.OnEntry(model.Entry{
			Timestamp:  c.now(),
			Expression: s.Last,
			Result:     s.Raw,
		})
	}
	return c.Screen()
}

// Screen renders the current state.
func (c *Calculator) Screen() Screen {
	s := c.acc.State()

	var scr Screen
	switch {
	case s.Failed:
		scr.Display = ErrorText
	case s.Raw == "":
		scr.Display = "0"
	default:
		scr.Display = c.formatter.Render(s.Raw)
	}
	if s.Last != "" {
		scr.History = c.formatter.Render(s.Last) + " ="
	}
	return scr
}

// State returns the accumulator state.
func (c *Calculator) State() State {
	return c.acc.State()
}

// Restore replaces the accumulator state. A restored failure is dropped.
func (c *Calculator) Restore(s State) {
	s.Failed = false
	c.acc.Restore(s)
}
