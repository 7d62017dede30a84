// Package config provides user configuration for the adventcode runner.
//
// It manages a small YAML file holding the directories scanned for
// solution modules and input files, plus output preferences. The file
// lives in the platform-appropriate location:
//   - Linux: $XDG_CONFIG_HOME/adventcode/config.yaml or $HOME/.config/adventcode/config.yaml
//   - macOS: $HOME/.config/adventcode/config.yaml
//   - Windows: %LOCALAPPDATA%\adventcode\config.yaml
//
// Command-line flags always take precedence over file values. The file
// is optional; defaults are used when it does not exist.
//
// The global settings use sync.Once for safe lazy initialization, and
// saves are atomic (write to temp file, then rename).
package config
