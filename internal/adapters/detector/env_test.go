package detector_test

import (
	"os"
	"testing"

	"go.trai.ch/wpmdb/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		isTTY    bool
		ci       string
		expected detector.OutputMode
	}{
		{
			name:     "TTY without CI gets the TUI",
			isTTY:    true,
			ci:       "",
			expected: detector.ModeTUI,
		},
		{
			name:     "pipe gets linear output",
			isTTY:    false,
			ci:       "",
			expected: detector.ModeLinear,
		},
		{
			name:     "CI=true forces linear even on a TTY",
			isTTY:    true,
			ci:       "true",
			expected: detector.ModeLinear,
		},
		{
			name:     "CI=1 forces linear even on a TTY",
			isTTY:    true,
			ci:       "1",
			expected: detector.ModeLinear,
		},
		{
			name:     "CI=false does not force linear",
			isTTY:    true,
			ci:       "false",
			expected: detector.ModeTUI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detector.Detect(tt.isTTY, tt.ci)
			if got != tt.expected {
				t.Errorf("detect(%v, %q) = %v, want %v", tt.isTTY, tt.ci, got, tt.expected)
			}
		})
	}
}

func TestDetectEnvironment_CIForcesLinear(t *testing.T) {
	t.Setenv("CI", "true")

	if mode := detector.DetectEnvironment(); mode != detector.ModeLinear {
		t.Errorf("expected ModeLinear with CI=true, got %v", mode)
	}
}

func TestDetectEnvironment_Pipe(t *testing.T) {
	t.Setenv("CI", "")
	_ = os.Unsetenv("CI")

	// Test binaries run with stdout attached to a pipe unless the runner
	// allocates a terminal, so only the linear outcome is asserted.
	if mode := detector.DetectEnvironment(); mode == detector.ModeAuto {
		t.Errorf("detection should never return ModeAuto, got %v", mode)
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		detected detector.OutputMode
		userFlag string
		expected detector.OutputMode
	}{
		{
			name:     "auto respects detection (TUI)",
			detected: detector.ModeTUI,
			userFlag: "auto",
			expected: detector.ModeTUI,
		},
		{
			name:     "auto respects detection (Linear)",
			detected: detector.ModeLinear,
			userFlag: "auto",
			expected: detector.ModeLinear,
		},
		{
			name:     "empty flag respects detection",
			detected: detector.ModeTUI,
			userFlag: "",
			expected: detector.ModeTUI,
		},
		{
			name:     "tui overrides detection",
			detected: detector.ModeLinear,
			userFlag: "tui",
			expected: detector.ModeTUI,
		},
		{
			name:     "linear overrides detection",
			detected: detector.ModeTUI,
			userFlag: "linear",
			expected: detector.ModeLinear,
		},
		{
			name:     "ci is an alias for linear",
			detected: detector.ModeTUI,
			userFlag: "ci",
			expected: detector.ModeLinear,
		},
		{
			name:     "unknown flag respects detection",
			detected: detector.ModeTUI,
			userFlag: "interactive",
			expected: detector.ModeTUI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detector.ResolveMode(tt.detected, tt.userFlag)
			if got != tt.expected {
				t.Errorf("ResolveMode(%v, %q) = %v, want %v",
					tt.detected, tt.userFlag, got, tt.expected)
			}
		})
	}
}
