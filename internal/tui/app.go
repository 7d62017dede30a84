package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"adventcode/internal/logging"
	"adventcode/internal/puzzle"
	"adventcode/internal/puzzleinput"
	"adventcode/internal/registry"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenDayList    Screen = "daylist"
	ScreenPartSelect Screen = "partselect"
)

// Part cursor positions on the part-select screen
const (
	Part1 = iota
	Part2
)

// solveResultMsg carries the outcome of a solve invocation back into
// the update loop.
type solveResultMsg struct {
	output string
	err    error
}

// AppModel is the top-level model driving the two-screen session:
// a day list and, once a day is chosen, a part selector that runs the
// solver and shows its result inline.
type AppModel struct {
	// Current screen state
	CurrentScreen Screen

	// Discovered days, sorted ascending (read-only scan result)
	Days []registry.Day

	// Navigation cursors. DayCursor indexes Days and is clamped to
	// [0, len(Days)-1]; PartCursor is Part1 or Part2.
	DayCursor  int
	PartCursor int

	// SelectedDay is set while on the part-select screen, cleared on
	// return to the day list
	SelectedDay *registry.Day

	// Last solve outcome, shown inline on the part-select screen
	Result string
	ErrMsg string

	// Resolver locates input for the selected day
	Resolver *puzzleinput.Resolver

	// UI state
	Width  int
	Height int

	// Help
	Help        help.Model
	DayListKeys dayListKeyMap
	PartKeys    partSelectKeyMap
}

// NewAppModel creates the session model positioned at the top of the
// day list.
func NewAppModel(days []registry.Day, resolver *puzzleinput.Resolver) AppModel {
	return AppModel{
		CurrentScreen: ScreenDayList,
		Days:          days,
		Resolver:      resolver,
		Help:          help.New(),
		DayListKeys:   newDayListKeyMap(),
		PartKeys:      newPartSelectKeyMap(),
	}
}

// Init implements tea.Model. The scan already happened; nothing to do.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages and routes key events to the active screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case solveResultMsg:
		if msg.err != nil {
			m.Result = ""
			m.ErrMsg = msg.err.Error()
		} else {
			m.Result = msg.output
			m.ErrMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}

		switch m.CurrentScreen {
		case ScreenDayList:
			return m.updateDayList(msg)
		case ScreenPartSelect:
			return m.updatePartSelect(msg)
		}
	}

	return m, nil
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenDayList:
		return m.viewDayList()
	case ScreenPartSelect:
		return m.viewPartSelect()
	default:
		return "Unknown screen"
	}
}

// solveSelectedDay resolves input for the selected day and dispatches
// to its solver. Failures come back as a solveResultMsg and are shown
// inline; the screen never changes and never crashes on a failed run.
func (m AppModel) solveSelectedDay() tea.Cmd {
	day := m.SelectedDay.Number
	part2 := m.PartCursor == Part2
	resolver := m.Resolver

	return func() tea.Msg {
		input, err := resolver.Resolve(day, "")
		if err != nil {
			return solveResultMsg{err: err}
		}

		output, err := puzzle.Dispatch(puzzle.Request{Day: day, Part2: part2, Input: input})
		if err != nil {
			return solveResultMsg{err: err}
		}

		logging.Debug("Interactive solve complete",
			zap.Int("day", day),
			zap.Bool("part2", part2),
		)
		return solveResultMsg{output: output}
	}
}
