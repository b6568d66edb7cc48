// Package tui is the single-screen terminal version of the game: the root
// word as the title, an input line, the accepted words with their letter
// counts, and the score. Rejected words pop up an alert until dismissed.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordscramble/internal/game"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#5A56E0"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(5)
	scoreStyle = lipgloss.NewStyle().Bold(true)
	alertStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("204")).Padding(0, 2)
)

// Model is the bubbletea model for one game session.
type Model struct {
	engine  *game.Engine
	session *game.Session
	input   textinput.Model
	alert   *game.Alert
	err     error
}

// New returns a Model playing session.
func New(engine *game.Engine, session *game.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "введи слово"
	ti.CharLimit = 64
	ti.Focus()
	return Model{engine: engine, session: session, input: ti}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.alert != nil {
		switch key.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.alert = nil
		}
		return m, nil
	}

	switch key.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlR:
		if err := m.engine.Start(m.session); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.input.Reset()
		return m, nil
	case tea.KeyEnter:
		res := m.engine.Submit(m.session, m.input.Value())
		switch res.Outcome {
		case game.OutcomeAccepted:
			m.input.Reset()
		case game.OutcomeRejected:
			m.alert = res.Alert
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.session.Root))
	b.WriteString("  ")
	b.WriteString(hintStyle.Render("ctrl+r: Сбросить игру · esc: выход"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	for _, w := range m.session.Accepted {
		b.WriteString(countStyle.Render(fmt.Sprintf("(%d)", len([]rune(w)))))
		b.WriteString(w)
		b.WriteString("\n")
	}
	if len(m.session.Accepted) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("Счет:  ")
	b.WriteString(scoreStyle.Render(fmt.Sprint(m.session.Score())))
	b.WriteString("\n")

	if m.alert != nil {
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(m.alert.Title + "\n\n" + m.alert.Message + "\n\n" + hintStyle.Render("OK (enter)")))
		b.WriteString("\n")
	}
	return b.String()
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error { return m.err }

// Run plays session in the terminal until the player quits or ctx ends.
func Run(ctx context.Context, engine *game.Engine, session *game.Session) error {
	p := tea.NewProgram(New(engine, session), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
