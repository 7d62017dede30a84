package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"adventcode/internal/config"
	"adventcode/internal/logging"
	"adventcode/internal/puzzle"
	"adventcode/internal/puzzleinput"
	"adventcode/internal/registry"
	"adventcode/internal/tui"
)

// Command flags
var (
	dayFlag       int
	part2Flag     bool
	fileFlag      string
	quietFlag     bool
	sourceDirFlag string
	inputDirFlag  string
)

func init() {
	rootCmd.Flags().IntVarP(&dayFlag, "day", "d", 0, "Day to run (e.g., 1, 2, 3...)")
	rootCmd.Flags().BoolVarP(&part2Flag, "part2", "2", false, "Run part 2 of the puzzle")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Input file path (if not provided, reads day<N>.txt or stdin)")
	rootCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Print the bare answer without decoration")

	rootCmd.PersistentFlags().StringVar(&sourceDirFlag, "source-dir", "", "Directory scanned for day<N>.go solution modules")
	rootCmd.PersistentFlags().StringVar(&inputDirFlag, "input-dir", "", "Directory checked for day<N>.txt input files")

	rootCmd.AddCommand(listCmd)
}

// directories returns the effective source and input directories:
// flags override the settings file, which falls back to defaults.
func directories() (sourceDir, inputDir string) {
	settings, err := config.Load()
	if err != nil {
		logging.Warn("Failed to load settings, using defaults", zap.Error(err))
		settings = config.NewSettings()
	}

	sourceDir = settings.SourceDir
	if sourceDirFlag != "" {
		sourceDir = sourceDirFlag
	}
	inputDir = settings.InputDir
	if inputDirFlag != "" {
		inputDir = inputDirFlag
	}
	return sourceDir, inputDir
}

func runRoot(cmd *cobra.Command, args []string) error {
	if dayFlag == 0 {
		if part2Flag || fileFlag != "" {
			return fmt.Errorf("--part2 and --file require --day")
		}
		return runInteractive()
	}
	return runDirect()
}

// runDirect resolves input for the requested day, dispatches its
// solver and prints the answer.
func runDirect() error {
	sourceDir, inputDir := directories()

	resolver := puzzleinput.New(inputDir)
	input, err := resolver.Resolve(dayFlag, fileFlag)
	if err != nil {
		return err
	}

	result, err := puzzle.Dispatch(puzzle.Request{
		Day:   dayFlag,
		Part2: part2Flag,
		Input: input,
	})
	if err != nil {
		return err
	}

	quiet := quietFlag
	if settings, err := config.Load(); err == nil && settings.Quiet {
		quiet = true
	}
	if quiet {
		fmt.Println(result)
		return nil
	}

	// Discovery metadata is best-effort here: direct mode still works
	// when the source directory is missing.
	title := registry.FallbackTitle(dayFlag)
	if days, err := registry.Scan(sourceDir, inputDir); err == nil {
		for _, day := range days {
			if day.Number == dayFlag {
				title = day.Title
				break
			}
		}
	}

	part := 1
	if part2Flag {
		part = 2
	}
	fmt.Println(tui.DayHeaderStyle.Render(fmt.Sprintf("Day %d: %s (part %d)", dayFlag, title, part)))
	fmt.Println(tui.ResultBoxStyle.Render(result))
	return nil
}

// runInteractive scans for solution modules and starts the picker TUI.
func runInteractive() error {
	sourceDir, inputDir := directories()

	days, err := registry.Scan(sourceDir, inputDir)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	model := tui.NewAppModel(days, puzzleinput.New(inputDir))
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("interactive session error: %w", err)
	}
	return nil
}

// listCmd prints the scan result without entering the TUI.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered solution modules",
	Long: `Scan the source directory for day<N>.go solution modules and print
each day's number, title, default-input availability and whether a
solver is registered for it.`,
	Example: `  # List days using configured directories
  adventcode list

  # List days from an explicit source tree
  adventcode list --source-dir ./solutions --input-dir ./inputs`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	sourceDir, inputDir := directories()

	days, err := registry.Scan(sourceDir, inputDir)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	if len(days) == 0 {
		fmt.Println("No solution modules found.")
		fmt.Printf("Expected day<N>.go files in %s\n", sourceDir)
		return nil
	}

	for _, day := range days {
		input := " - "
		if day.HasInput {
			input = "yes"
		}
		solver := " - "
		if puzzle.Registered(day.Number) {
			solver = "yes"
		}
		fmt.Printf("Day %2d  %-40s input: %s  solver: %s\n", day.Number, day.Title, input, solver)
	}

	return nil
}
