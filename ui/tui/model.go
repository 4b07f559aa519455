// Package tui is a terminal front end for the calculator.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"circlecalc/internal/calc"
	"circlecalc/internal/i18n"
)

const displayWidth = 28

var (
	displayStyle = lipgloss.NewStyle().
			Width(displayWidth).
			Align(lipgloss.Right).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	historyStyle = lipgloss.NewStyle().
			Width(displayWidth+2).
			Align(lipgloss.Right).
			Faint(true)
	keyStyle    = lipgloss.NewStyle().Width(5).Align(lipgloss.Center)
	accentStyle = keyStyle.Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model wrapping a Calculator.
type Model struct {
	calc   *calc.Calculator
	screen calc.Screen
}

// NewModel creates a model showing c's current screen.
func NewModel(c *calc.Calculator) Model {
	return Model{calc: c, screen: c.Screen()}
}

// Screen returns the last rendered calculator screen.
func (m Model) Screen() calc.Screen {
	return m.screen
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.screen = m.calc.Press(calc.KeyEquals)
	case tea.KeyEsc:
		m.screen = m.calc.Press(calc.KeyClear)
	case tea.KeyRunes:
		for _, r := range key.Runes {
			if r == 'q' || r == 'Q' {
				return m, tea.Quit
			}
			if k, ok := calc.KeyForRune(r); ok {
				m.screen = m.calc.Press(k)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(historyStyle.Render(m.screen.History))
	b.WriteString("\n")
	b.WriteString(displayStyle.Render(m.screen.Display))
	b.WriteString("\n")
	for _, row := range calc.Keypad {
		cells := make([]string, len(row))
		for i, k := range row {
			if calc.IsAccentKey(k) {
				cells[i] = accentStyle.Render(k)
			} else {
				cells[i] = keyStyle.Render(k)
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(i18n.T("tui.help")))
	b.WriteString("\n")
	return b.String()
}

// Run starts the terminal calculator and blocks until the user quits.
func Run(c *calc.Calculator) error {
	_, err := tea.NewProgram(NewModel(c)).Run()
	return err
}
