package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dayListKeyMap defines key bindings for the day-list screen
type dayListKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k dayListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k dayListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Quit},
	}
}

func newDayListKeyMap() dayListKeyMap {
	return dayListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// updateDayList handles key events on the day list. The cursor clamps
// at both ends - no wraparound.
func (m AppModel) updateDayList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.DayListKeys.Up):
		if m.DayCursor > 0 {
			m.DayCursor--
		}

	case key.Matches(msg, m.DayListKeys.Down):
		if m.DayCursor < len(m.Days)-1 {
			m.DayCursor++
		}

	case key.Matches(msg, m.DayListKeys.Select):
		if len(m.Days) > 0 {
			day := m.Days[m.DayCursor]
			m.SelectedDay = &day
			m.CurrentScreen = ScreenPartSelect
			m.PartCursor = Part1
			m.Result = ""
			m.ErrMsg = ""
		}
	}

	return m, nil
}

// viewDayList renders the discovered days with cursor and
// input-availability markers.
func (m AppModel) viewDayList() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(AppName))
	b.WriteString("\n\n")

	if len(m.Days) == 0 {
		b.WriteString(SubtleStyle.Render("No solution modules found."))
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render("Expected day<N>.go files in the source directory."))
		b.WriteString("\n\n")
		b.WriteString(m.Help.View(m.DayListKeys))
		return b.String()
	}

	for i, day := range m.Days {
		marker := InputMissingStyle.Render("○")
		if day.HasInput {
			marker = InputReadyStyle.Render("●")
		}

		line := fmt.Sprintf("%s Day %2d: %s", marker, day.Number, day.Title)
		if i == m.DayCursor {
			b.WriteString(SelectedItemStyle.Render("▸ " + line))
		} else {
			b.WriteString(ItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("● input file found   ○ no input file"))
	b.WriteString("\n\n")
	b.WriteString(m.Help.View(m.DayListKeys))

	return b.String()
}
