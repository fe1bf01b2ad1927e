// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how install progress is rendered.
type OutputMode int

const (
	// ModeAuto picks the mode based on the environment.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive renderer.
	ModeTUI
	// ModeLinear forces the line-oriented renderer for CI and pipes.
	ModeLinear
)

// DetectEnvironment recommends an output mode. Interactive terminals get the
// TUI, pipes and CI environments get linear output.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	if !isTTY || ci == "true" || ci == "1" {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the user's flag on top of auto-detection. Valid values
// are "auto", "tui", "linear" and "ci"; anything else keeps the detected mode.
func ResolveMode(detected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return detected
	}
}
