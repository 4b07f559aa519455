// Package logging wraps a package-level charmbracelet logger.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It writes to stderr at warn level until
// Configure is called.
var L = newLogger(os.Stderr, false)

func newLogger(w io.Writer, verbose bool) *clog.Logger {
	l := clog.NewWithOptions(w, clog.Options{Prefix: "calc"})
	if verbose {
		l.SetLevel(clog.DebugLevel)
	} else {
		l.SetLevel(clog.WarnLevel)
	}
	return l
}

// Configure replaces L with a logger writing to w.
func Configure(w io.Writer, verbose bool) {
	L = newLogger(w, verbose)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
