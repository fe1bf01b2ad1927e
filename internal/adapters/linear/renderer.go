// Package linear provides a synchronous, line-buffered renderer for CI environments.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/muesli/termenv"
	"go.trai.ch/wpmdb/internal/ui/output"
)

// Renderer implements ports.Renderer for CI and non-interactive environments.
// It prints chronological, package-prefixed lines as downloads progress.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu        sync.Mutex
	downloads map[string]*downloadState // spanID -> download state
	buffers   map[string]*bytes.Buffer
}

type downloadState struct {
	name      string
	startTime time.Time
}

// prefixColors is the palette packages are mapped onto. The mapping is
// stable across runs, so a package keeps its color between installs.
var prefixColors = []termenv.Color{
	termenv.ANSICyan,
	termenv.ANSIMagenta,
	termenv.ANSIBlue,
	termenv.ANSIYellow,
	termenv.ANSIGreen,
}

// NewRenderer creates a new Renderer. Nil writers default to the
// process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout:    stdout,
		stderr:    stderr,
		output:    output.NewWithProfile(stderr, output.ColorProfileANSI),
		downloads: make(map[string]*downloadState),
		buffers:   make(map[string]*bytes.Buffer),
	}
}

// Start is a no-op, the renderer is synchronous.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes all remaining buffers.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID := range r.buffers {
		r.flushBufferLocked(spanID)
	}

	return nil
}

// Wait is a no-op, the renderer is synchronous.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit prints the packages about to be installed.
func (r *Renderer) OnPlanEmit(packages []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Installing %d package(s): %s\n",
		len(packages), strings.Join(packages, ", "))
}

// OnTaskStart prints a download start message.
func (r *Renderer) OnTaskStart(spanID, _ /* parentID */, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.downloads[spanID] = &downloadState{
		name:      name,
		startTime: startTime,
	}
	r.buffers[spanID] = new(bytes.Buffer)

	_, _ = fmt.Fprintf(r.stderr, "%s Downloading...\n", r.prefixFor(name))
}

// OnTaskLog buffers log data and prints complete lines with package prefix.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	download, ok := r.downloads[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Incomplete line, keep it for the next write. ReadBytes
			// copies, so writing back into the drained buffer is safe.
			if len(line) > 0 {
				buf.Write(line)
			}
			break
		}
		r.printLineLocked(download.name, line)
	}
}

// OnTaskComplete flushes remaining buffer and prints the outcome.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	download, ok := r.downloads[spanID]
	if !ok {
		return
	}

	r.flushBufferLocked(spanID)

	duration := endTime.Sub(download.startTime).Round(time.Millisecond)
	prefix := r.prefixFor(download.name)

	if err != nil {
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n",
			prefix, symbol, duration, err)
	} else {
		symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Installed in %v\n",
			prefix, symbol, duration)
	}

	delete(r.downloads, spanID)
	delete(r.buffers, spanID)
}

// flushBufferLocked prints any partial line still buffered for a download.
// Must be called with r.mu held.
func (r *Renderer) flushBufferLocked(spanID string) {
	download, ok := r.downloads[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	if buf.Len() > 0 {
		r.printLineLocked(download.name, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked prints a line with the package name prefix.
// Must be called with r.mu held.
func (r *Renderer) printLineLocked(name string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))

	if len(line) == 0 {
		return
	}

	_, _ = fmt.Fprintf(r.stdout, "%s %s\n", r.prefixFor(name), string(line))
}

// prefixFor renders the bracketed package prefix in the package's color.
func (r *Renderer) prefixFor(name string) string {
	color := prefixColors[xxhash.Sum64String(name)%uint64(len(prefixColors))]
	return r.output.String("[" + name + "]").Foreground(color).String()
}
