package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for output rendering.
// It decouples telemetry collection from presentation logic,
// allowing the same event stream to drive either a rich TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and prepare for shutdown.
	// It should flush any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	// For synchronous renderers, this may return immediately.
	Wait() error

	// OnPlanEmit is called once the set of packages to install is known.
	// packages: list of all package names in manifest order
	OnPlanEmit(packages []string)

	// OnTaskStart is called when a package install begins.
	// spanID: unique identifier for this install
	// parentID: spanID of the parent span (empty if root)
	// name: human-readable package name
	// startTime: when the install started
	OnTaskStart(spanID, parentID, name string, startTime time.Time)

	// OnTaskLog is called when an install emits output.
	// spanID: identifier for the install
	// data: raw log bytes (may contain partial lines)
	OnTaskLog(spanID string, data []byte)

	// OnTaskComplete is called when a package install finishes.
	// spanID: identifier for the install
	// endTime: when the install completed
	// err: nil if successful, error otherwise
	OnTaskComplete(spanID string, endTime time.Time, err error)
}
