package config

// CurrentVersion is the settings schema version written by this build.
const CurrentVersion = 1

// Default locations, relative to the working directory. Both can be
// overridden in the settings file or by command-line flags.
const (
	// DefaultSourceDir is where day<N>.go solution modules are scanned for.
	DefaultSourceDir = "internal/puzzle"
	// DefaultInputDir is where day<N>.txt default input files live.
	DefaultInputDir = "."
)

// Settings holds user preferences for the runner.
type Settings struct {
	// Version is the schema version of this file
	Version int `yaml:"version"`

	// SourceDir is the directory scanned for day<N>.go solution modules
	SourceDir string `yaml:"source_dir"`

	// InputDir is the directory checked for day<N>.txt input files
	InputDir string `yaml:"input_dir"`

	// Quiet makes direct-mode output plain (answer only, no decoration)
	Quiet bool `yaml:"quiet"`
}

// NewSettings returns settings with defaults applied.
func NewSettings() *Settings {
	return &Settings{
		Version:   CurrentVersion,
		SourceDir: DefaultSourceDir,
		InputDir:  DefaultInputDir,
	}
}

// applyDefaults fills in zero-valued fields after a load, so that a
// hand-edited file with missing keys still behaves sensibly.
func (s *Settings) applyDefaults() {
	if s.SourceDir == "" {
		s.SourceDir = DefaultSourceDir
	}
	if s.InputDir == "" {
		s.InputDir = DefaultInputDir
	}
}
