package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"circlecalc/internal/calc"
	"circlecalc/internal/export"
	"circlecalc/internal/i18n"
	"circlecalc/internal/logging"
	"circlecalc/internal/model"
)

// Keypad owns the calculator buttons and routes presses to the calculator,
// the display and the tape.
type Keypad struct {
	calc    *calc.Calculator
	display *Display
	tape    *TapeView

	buttons map[string]*CircleButton
	status  *widget.Label

	exportBtn *widget.Button
	clearBtn  *widget.Button

	container *fyne.Container
}

// NewKeypad creates the button grid for c. Every successful "=" is added to
// tape in addition to any recorder already set on c.
func NewKeypad(c *calc.Calculator, d *Display, tv *TapeView) *Keypad {
	k := &Keypad{
		calc:    c,
		display: d,
		tape:    tv,
		buttons: make(map[string]*CircleButton),
		status:  widget.NewLabel(""),
	}

	record := c.OnEntry
	c.OnEntry = func(e model.Entry) {
		if record != nil {
			record(e)
		}
		tv.AddEntry(e)
	}

	grid := container.NewGridWithColumns(len(calc.Keypad[0]))
	for _, row := range calc.Keypad {
		for _, key := range row {
			btn := NewKeyButton(key, k.Press)
			k.buttons[key] = btn
			grid.Add(btn)
		}
	}

	k.exportBtn = widget.NewButton(i18n.T("tape.export"), k.onExport)
	k.clearBtn = widget.NewButton(i18n.T("tape.clear"), k.onClear)
	k.status.Wrapping = fyne.TextWrapWord

	k.container = grid
	d.Show(c.Screen())
	return k
}

// Container returns the button grid.
func (k *Keypad) Container() *fyne.Container {
	return k.container
}

// TapeControls returns the export and clear buttons with the status line.
func (k *Keypad) TapeControls() fyne.CanvasObject {
	return container.NewVBox(
		container.NewGridWithColumns(2, k.exportBtn, k.clearBtn),
		k.status,
	)
}

// Button returns the button for key, or nil.
func (k *Keypad) Button(key string) *CircleButton {
	return k.buttons[key]
}

// Press applies key and refreshes the display. Must be called on the UI
// goroutine.
func (k *Keypad) Press(key string) {
	k.display.Show(k.calc.Press(key))
}

// TypedRune maps a typed character to a key press.
func (k *Keypad) TypedRune(r rune) {
	if key, ok := calc.KeyForRune(r); ok {
		k.Press(key)
	}
}

// TypedKey maps Enter to "=" and Escape to "AC".
func (k *Keypad) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		k.Press(calc.KeyEquals)
	case fyne.KeyEscape, fyne.KeyDelete:
		k.Press(calc.KeyClear)
	}
}

func (k *Keypad) onClear() {
	k.tape.Clear()
	k.status.SetText("")
}

func (k *Keypad) onExport() {
	entries := k.tape.Entries()
	if len(entries) == 0 {
		k.status.SetText(i18n.T("tape.empty"))
		return
	}

	win := fyne.CurrentApp().Driver().AllWindows()
	if len(win) == 0 {
		return
	}
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		k.exportTo(path, entries)
	}, win[0])
}

// exportTo writes entries as CSV to path and as text next to it.
func (k *Keypad) exportTo(path string, entries []model.Entry) {
	if err := export.WriteCSV(path, entries); err != nil {
		logging.Errorf("tape export: %v", err)
		k.status.SetText(i18n.Tf("tape.export_error", map[string]any{"Error": err}))
		return
	}

	txtPath := strings.TrimSuffix(path, ".csv") + ".txt"
	if err := export.WriteTXT(txtPath, entries); err != nil {
		logging.Errorf("tape export: %v", err)
		k.status.SetText(i18n.Tf("tape.export_error", map[string]any{"Error": err}))
		return
	}
	k.status.SetText(i18n.Tf("tape.exported", map[string]any{"Count": len(entries), "Path": txtPath}))
}
