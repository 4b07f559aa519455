package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"golang.org/x/text/language"

	"circlecalc/internal/calc"
	"circlecalc/internal/expr"
	"circlecalc/internal/format"
	"circlecalc/internal/i18n"
	"circlecalc/internal/model"
)

func newTestKeypad(t *testing.T) (*Keypad, *Display, *TapeView) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	i18n.Init("en")

	c := calc.New(expr.Evaluator{}, format.NewFormatter(language.English))
	d := NewDisplay()
	tv := NewTapeView()
	return NewKeypad(c, d, tv), d, tv
}

func TestKeypadButtons(t *testing.T) {
	k, d, tv := newTestKeypad(t)

	if d.Text() != "0" {
		t.Fatalf("initial display = %q, want 0", d.Text())
	}
	for _, row := range calc.Keypad {
		for _, key := range row {
			if k.Button(key) == nil {
				t.Fatalf("missing button %q", key)
			}
		}
	}

	for _, key := range []string{"1", "2", "3", "4", "x", "2"} {
		k.Button(key).OnTapped()
	}
	if d.Text() != "1,234x2" {
		t.Errorf("display = %q, want 1,234x2", d.Text())
	}

	k.Button("=").OnTapped()
	if d.Text() != "2,468" {
		t.Errorf("display = %q, want 2,468", d.Text())
	}
	if d.HistoryText() != "1,234x2 =" {
		t.Errorf("history = %q, want \"1,234x2 =\"", d.HistoryText())
	}
	if n := len(tv.Entries()); n != 1 {
		t.Errorf("tape has %d entries, want 1", n)
	}
}

func TestKeypadTyping(t *testing.T) {
	k, d, tv := newTestKeypad(t)

	for _, r := range "12*3" {
		k.TypedRune(r)
	}
	k.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	if d.Text() != "36" {
		t.Errorf("display = %q, want 36", d.Text())
	}

	k.TypedRune('?')
	if d.Text() != "36" {
		t.Errorf("unmapped rune changed display to %q", d.Text())
	}

	k.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if d.Text() != "0" || d.HistoryText() != "" {
		t.Errorf("after escape display = %q history = %q", d.Text(), d.HistoryText())
	}
	if n := len(tv.Entries()); n != 1 {
		t.Errorf("tape has %d entries, want 1", n)
	}
}

func TestKeypadKeepsRecorder(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)

	c := calc.New(expr.Evaluator{}, format.NewFormatter(language.English))
	var recorded []model.Entry
	c.OnEntry = func(e model.Entry) { recorded = append(recorded, e) }

	tv := NewTapeView()
	k := NewKeypad(c, NewDisplay(), tv)
	for _, key := range []string{"2", "+", "2", "="} {
		k.Press(key)
	}

	if len(recorded) != 1 || len(tv.Entries()) != 1 {
		t.Errorf("recorded %d, tape %d, want 1 each", len(recorded), len(tv.Entries()))
	}
}

func TestKeypadErrorNotOnTape(t *testing.T) {
	k, d, tv := newTestKeypad(t)
	for _, key := range []string{"1", "/", "0", "="} {
		k.Press(key)
	}
	if d.Text() != calc.ErrorText {
		t.Errorf("display = %q, want %q", d.Text(), calc.ErrorText)
	}
	if n := len(tv.Entries()); n != 0 {
		t.Errorf("tape has %d entries, want 0", n)
	}
}

func TestExportTo(t *testing.T) {
	k, _, tv := newTestKeypad(t)
	for _, key := range []string{"6", "x", "7", "="} {
		k.Press(key)
	}

	path := filepath.Join(t.TempDir(), "tape.csv")
	k.exportTo(path, tv.Entries())

	csvData, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if !strings.Contains(string(csvData), "6x7;42") {
		t.Errorf("csv missing entry:\n%s", csvData)
	}

	txtPath := filepath.Join(filepath.Dir(path), "tape.txt")
	txtData, err := os.ReadFile(txtPath)
	if err != nil {
		t.Fatalf("read txt: %v", err)
	}
	if !strings.Contains(string(txtData), "6x7 = 42") {
		t.Errorf("txt missing entry:\n%s", txtData)
	}
	if !strings.Contains(k.status.Text, "Exported 1") {
		t.Errorf("status = %q", k.status.Text)
	}
}

func TestExportToPrecreatedFile(t *testing.T) {
	k, _, tv := newTestKeypad(t)
	for _, key := range []string{"6", "x", "7", "="} {
		k.Press(key)
	}

	path := filepath.Join(t.TempDir(), "tape.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	k.exportTo(path, tv.Entries())

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if !strings.HasPrefix(string(data), "date;time;expression;result\n") {
		t.Errorf("csv missing header:\n%s", data)
	}
}

func TestExportEmptyTape(t *testing.T) {
	k, _, _ := newTestKeypad(t)
	k.onExport()
	if k.status.Text != "No calculations to export." {
		t.Errorf("status = %q", k.status.Text)
	}
}

func TestClearTape(t *testing.T) {
	k, _, tv := newTestKeypad(t)
	tv.AddEntry(model.Entry{Expression: "1+1", Result: "2"})
	k.onClear()
	if n := len(tv.Entries()); n != 0 {
		t.Errorf("tape has %d entries after clear", n)
	}
}
