package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"circlecalc/internal/i18n"
	"circlecalc/internal/model"
)

var tapeColumns = []string{"tape.time", "tape.expression", "tape.result"}

// TapeView displays a table of the calculations made this session.
type TapeView struct {
	mu      sync.Mutex
	entries []model.Entry
	table   *widget.Table
}

// NewTapeView creates an empty tape table.
func NewTapeView() *TapeView {
	tv := &TapeView{}

	tv.table = widget.NewTable(
		tv.tableSize,
		tv.createCell,
		tv.updateCell,
	)

	tv.table.SetColumnWidth(0, 90)  // Time
	tv.table.SetColumnWidth(1, 140) // Expression
	tv.table.SetColumnWidth(2, 100) // Result

	return tv
}

// Container returns the table widget.
func (tv *TapeView) Container() *widget.Table {
	return tv.table
}

// AddEntry appends a calculation to the tape.
func (tv *TapeView) AddEntry(e model.Entry) {
	tv.mu.Lock()
	tv.entries = append(tv.entries, e)
	tv.mu.Unlock()
	tv.table.Refresh()
}

// Entries returns a copy of all stored entries.
func (tv *TapeView) Entries() []model.Entry {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	out := make([]model.Entry, len(tv.entries))
	copy(out, tv.entries)
	return out
}

// Clear removes every entry.
func (tv *TapeView) Clear() {
	tv.mu.Lock()
	tv.entries = nil
	tv.mu.Unlock()
	tv.table.Refresh()
}

func (tv *TapeView) tableSize() (rows int, cols int) {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	return len(tv.entries) + 1, len(tapeColumns) // +1 for header
}

func (tv *TapeView) createCell() fyne.CanvasObject {
	return widget.NewLabel("")
}

func (tv *TapeView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)

	if id.Row == 0 {
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.SetText(i18n.T(tapeColumns[id.Col]))
		return
	}

	tv.mu.Lock()
	defer tv.mu.Unlock()

	idx := id.Row - 1
	if idx >= len(tv.entries) {
		label.SetText("")
		return
	}

	e := tv.entries[idx]
	label.TextStyle = fyne.TextStyle{}

	switch id.Col {
	case 0:
		label.SetText(e.Timestamp.Format("15:04:05"))
	case 1:
		label.SetText(e.Expression)
	case 2:
		label.SetText(e.Result)
	}
}
