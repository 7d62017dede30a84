package puzzleinput

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"adventcode/internal/logging"
	"adventcode/internal/registry"
)

// ErrInputNotFound reports that no input source could be resolved for
// a day: no explicit file, no default day<N>.txt, and nothing piped in.
var ErrInputNotFound = errors.New("no input found")

// Resolver locates puzzle input for a day. The zero value is not
// usable; construct with New, or fill the fields directly in tests.
type Resolver struct {
	// InputDir is checked for default day<N>.txt files
	InputDir string
	// Stdin is consumed in full when no file is resolvable
	Stdin io.Reader
	// Interactive reports whether Stdin is a terminal; piped input is
	// only consumed when it is not
	Interactive bool
}

// New returns a Resolver reading defaults from inputDir and falling
// back to the process's stdin when it is not an interactive terminal.
func New(inputDir string) *Resolver {
	return &Resolver{
		InputDir:    inputDir,
		Stdin:       os.Stdin,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// Resolve returns the input text for a day, trying in order: the
// explicit path (required if given - its absence is fatal for the
// request), the default day<N>.txt file, then piped stdin. Exactly one
// trailing newline is trimmed; interior line structure is preserved,
// since solutions are sensitive to it.
func (r *Resolver) Resolve(day int, explicitPath string) (string, error) {
	if explicitPath != "" {
		data, err := os.ReadFile(explicitPath)
		if err != nil {
			return "", fmt.Errorf("%w for day %d: cannot read %s: %v", ErrInputNotFound, day, explicitPath, err)
		}
		logging.Debug("Input resolved from explicit file",
			zap.Int("day", day),
			zap.String("path", explicitPath),
		)
		return trimTrailingNewline(string(data)), nil
	}

	defaultPath := registry.DefaultInputPath(r.InputDir, day)
	if data, err := os.ReadFile(defaultPath); err == nil {
		logging.Debug("Input resolved from default file",
			zap.Int("day", day),
			zap.String("path", defaultPath),
		)
		return trimTrailingNewline(string(data)), nil
	}

	if !r.Interactive && r.Stdin != nil {
		data, err := io.ReadAll(r.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w for day %d: reading stdin: %v", ErrInputNotFound, day, err)
		}
		logging.Debug("Input resolved from stdin",
			zap.Int("day", day),
			zap.Int("bytes", len(data)),
		)
		return trimTrailingNewline(string(data)), nil
	}

	return "", fmt.Errorf("%w for day %d: no --file given, %s does not exist and nothing piped to stdin", ErrInputNotFound, day, defaultPath)
}

// trimTrailingNewline removes exactly one trailing newline (LF or
// CRLF) if present.
func trimTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
