// Package format renders calculator state for display.
//
// Raw expressions are canonical: digits, "." as the decimal point, and the
// operator characters in Operators. Grouping separators only ever appear in
// strings produced by a Formatter.
package format

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Operators lists the operator characters a raw expression may contain.
const Operators = "+-x/%"

// Formatter inserts locale grouping separators into raw expressions.
type Formatter struct {
	printer *message.Printer
	group   string
	decimal string
}

// NewFormatter creates a Formatter for the given locale.
func NewFormatter(tag language.Tag) *Formatter {
	p := message.NewPrinter(tag)
	group, decimal := separators(p)
	return &Formatter{printer: p, group: group, decimal: decimal}
}

// Separators returns the grouping and decimal symbols used by f.
func (f *Formatter) Separators() (group, decimal string) {
	return f.group, f.decimal
}

// separators derives the locale symbols by printing a probe value and reading
// back the non-digit runs. A locale without grouping yields one run.
func separators(p *message.Printer) (group, decimal string) {
	var runs []string
	var cur strings.Builder
	for _, r := range p.Sprintf("%.1f", 1234.5) {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	switch len(runs) {
	case 0:
		return "", "."
	case 1:
		return "", runs[0]
	default:
		return runs[0], runs[len(runs)-1]
	}
}

// Render formats a raw expression for display. Both sides of the last
// operator are grouped independently.
func (f *Formatter) Render(raw string) string {
	idx := strings.LastIndexAny(raw, Operators)
	if idx < 0 {
		return f.FormatNumber(raw)
	}
	return f.FormatNumber(raw[:idx]) + raw[idx:idx+1] + f.FormatNumber(raw[idx+1:])
}

// FormatNumber groups the integer part of s. The fractional part is kept
// verbatim. Input whose integer part is not a whole number is returned
// unchanged.
func (f *Formatter) FormatNumber(s string) string {
	if s == "" {
		return s
	}
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole, ok := f.groupWhole(s[:idx])
		if !ok {
			return s
		}
		return whole + f.decimal + s[idx+1:]
	}
	whole, ok := f.groupWhole(s)
	if !ok {
		return s
	}
	return whole
}

// StripSeparators turns display text back into canonical form: grouping
// separators are removed and the locale decimal symbol becomes ".".
func (f *Formatter) StripSeparators(s string) string {
	if f.group != "" {
		s = strings.ReplaceAll(s, f.group, "")
	}
	if f.decimal != "." {
		s = strings.ReplaceAll(s, f.decimal, ".")
	}
	return s
}

func (f *Formatter) groupWhole(s string) (string, bool) {
	if f.group != "" {
		s = strings.ReplaceAll(s, f.group, "")
	}
	sign := ""
	switch {
	case strings.HasPrefix(s, "-"):
		sign, s = "-", s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	// ParseUint rejects a second sign, so "--5" passes through.
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return "", false
	}
	return sign + f.printer.Sprintf("%d", n), true
}
