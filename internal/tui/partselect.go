package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// partSelectKeyMap defines key bindings for the part-select screen
type partSelectKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Run  key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k partSelectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Run, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k partSelectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Run},
		{k.Back, k.Quit},
	}
}

func newPartSelectKeyMap() partSelectKeyMap {
	return partSelectKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "part 1"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "part 2"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// updatePartSelect handles key events on the part-select screen. Any
// navigation key dismisses a previously shown result or error.
func (m AppModel) updatePartSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.PartKeys.Up), key.Matches(msg, m.PartKeys.Down):
		// Two entries, so up and down both toggle
		if m.PartCursor == Part1 {
			m.PartCursor = Part2
		} else {
			m.PartCursor = Part1
		}
		m.Result = ""
		m.ErrMsg = ""

	case key.Matches(msg, m.PartKeys.Run):
		return m, m.solveSelectedDay()

	case key.Matches(msg, m.PartKeys.Back):
		m.CurrentScreen = ScreenDayList
		m.SelectedDay = nil
		m.Result = ""
		m.ErrMsg = ""
		// DayCursor is left untouched so the list position is preserved
	}

	return m, nil
}

// viewPartSelect renders the part menu for the selected day plus any
// result or inline error from the last run.
func (m AppModel) viewPartSelect() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(AppName))
	b.WriteString("\n\n")

	if m.SelectedDay != nil {
		header := fmt.Sprintf("Day %d: %s", m.SelectedDay.Number, m.SelectedDay.Title)
		b.WriteString(DayHeaderStyle.Render(header))
		b.WriteString("\n")
		if !m.SelectedDay.HasInput {
			b.WriteString(SubtleStyle.Render("no default input file - run will fail unless input is piped"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	parts := []string{"Part 1", "Part 2"}
	for i, part := range parts {
		if i == m.PartCursor {
			b.WriteString(SelectedItemStyle.Render("▸ " + part))
		} else {
			b.WriteString(ItemStyle.Render("  " + part))
		}
		b.WriteString("\n")
	}

	if m.Result != "" {
		b.WriteString("\n")
		b.WriteString(ResultBoxStyle.Render(m.Result))
		b.WriteString("\n")
	}
	if m.ErrMsg != "" {
		b.WriteString("\n")
		b.WriteString(ErrorBoxStyle.Render("Error: " + m.ErrMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.Help.View(m.PartKeys))

	return b.String()
}
