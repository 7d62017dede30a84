package tui

import "github.com/charmbracelet/lipgloss"

// AppName is the banner shown at the top of every screen
const AppName = "ADVENT OF CODE RUNNER"

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF5F5F") // Red

	TextColor   = lipgloss.Color("#FFFFFF") // White
	SubtleColor = lipgloss.Color("#626262") // Gray
)

// Common styles
var (
	// Title style for the app banner
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Day header on the part-select screen
	DayHeaderStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Menu item (unselected)
	ItemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(TextColor)

	// Menu item (selected)
	SelectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(SecondaryColor).
				Bold(true)

	// Dim helper text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Input availability markers on the day list
	InputReadyStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	InputMissingStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// Result of a successful run
	ResultBoxStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor)

	// Inline error from a failed run
	ErrorBoxStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor)
)
