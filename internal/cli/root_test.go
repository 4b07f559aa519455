package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"circlecalc/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	noFrontend := func(config.Config) error { return errors.New("frontend started") }
	cmd := NewRootCommand(noFrontend, noFrontend)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootWithoutSubcommandStartsGUI(t *testing.T) {
	var got config.Config
	gui := func(cfg config.Config) error {
		got = cfg
		return nil
	}
	t.Chdir(t.TempDir())

	cmd := NewRootCommand(gui, nil)
	cmd.SetArgs([]string{"--locale", "de"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got.Locale != "de" {
		t.Errorf("gui received locale %q, want de", got.Locale)
	}
}

func TestTUISubcommand(t *testing.T) {
	_, err := execute(t, "tui")
	if err == nil || err.Error() != "frontend started" {
		t.Errorf("tui subcommand error = %v, want frontend started", err)
	}
}

func TestEvalCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"precedence", []string{"eval", "2x3+4"}, "10\n"},
		{"grouped", []string{"eval", "1000*1000"}, "1,000,000\n"},
		{"split args", []string{"eval", "1", "+", "1"}, "2\n"},
		{"scientific", []string{"eval", "99999*99999"}, "9.9998e+9\n"},
		{"german", []string{"eval", "--locale", "de", "1.000,5*2"}, "2.001\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestEvalCommandError(t *testing.T) {
	_, err := execute(t, "eval", "1/0")
	if err == nil {
		t.Fatal("expected error for division by zero")
	}
	if !strings.Contains(err.Error(), "division by zero") {
		t.Errorf("error = %v", err)
	}
}

func TestPressCommand(t *testing.T) {
	out, err := execute(t, "press", "1 2 3 4", "x", "2", "=")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "History:  1,234x2 =") {
		t.Errorf("missing history line: %q", out)
	}
	if !strings.Contains(out, "Display:  2,468") {
		t.Errorf("missing display line: %q", out)
	}
}

func TestPressCommandError(t *testing.T) {
	out, err := execute(t, "press", "5 / 0 =")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "Display:  Error") {
		t.Errorf("expected Error display, got %q", out)
	}
}

func TestPressCommandTape(t *testing.T) {
	tape := filepath.Join(t.TempDir(), "tapes", "tape.csv")
	_, err := execute(t, "press", "--tape", tape, "6 x 7 = AC 1 + 1 =")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	data, err := os.ReadFile(tape)
	if err != nil {
		t.Fatalf("read tape: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, ";6x7;42") || !strings.Contains(content, ";1+1;2") {
		t.Errorf("unexpected tape content: %q", content)
	}
}
