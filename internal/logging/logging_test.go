package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfigureVerbose(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	defer func() { L = prev }()

	Configure(&buf, true)
	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output: %s", want, out)
		}
	}
}

func TestConfigureQuiet(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	defer func() { L = prev }()

	Configure(&buf, false)
	Debugf("hidden")
	Infof("hidden too")
	Warnf("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug/info should be suppressed, got: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("missing warning, got: %s", out)
	}
}
