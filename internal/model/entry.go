package model

import "time"

// Entry is one evaluated calculation on the tape.
type Entry struct {
	Timestamp  time.Time
	Expression string // raw expression as entered, e.g. "2x3+4"
	Result     string // canonical formatted result, e.g. "10"
}

// Line returns the entry as "expression = result".
func (e *Entry) Line() string {
	return e.Expression + " = " + e.Result
}
