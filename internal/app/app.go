// Package app implements the application layer for wpmdb.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/wpmdb/internal/adapters/detector"
	"go.trai.ch/wpmdb/internal/adapters/linear"
	"go.trai.ch/wpmdb/internal/adapters/telemetry"
	"go.trai.ch/wpmdb/internal/adapters/tui"
	"go.trai.ch/wpmdb/internal/adapters/watcher"
	"go.trai.ch/wpmdb/internal/core/domain"
	"go.trai.ch/wpmdb/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentDownloads bounds the install worker pool.
const maxConcurrentDownloads = 4

// App represents the main application logic.
type App struct {
	manifests  ports.ManifestLoader
	locks      ports.LockStore
	fetcher    ports.Fetcher
	creds      ports.CredentialSource
	hasher     ports.Hasher
	watcher    ports.Watcher
	logger     ports.Logger
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	manifests ports.ManifestLoader,
	locks ports.LockStore,
	fetcher ports.Fetcher,
	creds ports.CredentialSource,
	hasher ports.Hasher,
	watch ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		manifests: manifests,
		locks:     locks,
		fetcher:   fetcher,
		creds:     creds,
		hasher:    hasher,
		watcher:   watch,
		logger:    log,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	Watch bool
}

// Resolve pins the manifest's packages to canonical distribution URLs in
// the lockfile. With Watch set it keeps re-resolving on manifest changes
// until the context is canceled.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	if opts.Watch {
		return a.resolveWatch(ctx)
	}
	return a.resolveOnce()
}

func (a *App) resolveOnce() error {
	root, err := a.manifests.DiscoverRoot(".")
	if err != nil {
		return err
	}

	manifest, err := a.manifests.Load(".")
	if err != nil {
		return err
	}

	_, err = a.resolveLock(root, manifest)
	return err
}

// resolveLock builds the lockfile for the manifest, carrying digests
// forward from the previous lock for entries that did not change, and
// writes it to the project root.
func (a *App) resolveLock(root string, manifest *domain.Manifest) (*domain.Lockfile, error) {
	prev, err := a.locks.Load(root)
	if err != nil {
		return nil, err
	}

	lock := buildLock(manifest, prev)
	if err := a.locks.Save(root, lock); err != nil {
		return nil, err
	}

	for i := range lock.Packages {
		entry := &lock.Packages[i]
		a.logger.Info(fmt.Sprintf("resolved %s@%s (%s) -> %s", entry.Name, entry.Version, entry.Variant, entry.URL))
	}
	a.logger.Info(fmt.Sprintf("pinned %d packages in %s", len(lock.Packages), domain.LockFileName))

	return lock, nil
}

// buildLock maps manifest requests to lock entries in manifest order. The
// store sorts entries on write; in memory the manifest order is kept so
// installs process packages in the order the user declared them.
func buildLock(manifest *domain.Manifest, prev *domain.Lockfile) *domain.Lockfile {
	entries := make([]domain.LockEntry, 0, len(manifest.Packages))
	for _, req := range manifest.Packages {
		variant := domain.ClassifyVariant(req.Name)
		entry := domain.LockEntry{
			Name:    req.Name,
			Version: req.Version.DistLabel(),
			Variant: variant,
			URL:     domain.BuildDistURL(req.Version, variant),
		}

		if prev != nil {
			if prevEntry, ok := prev.Entry(req.Name); ok &&
				prevEntry.Version == entry.Version &&
				prevEntry.Variant == entry.Variant &&
				prevEntry.URL == entry.URL {
				entry.Digest = prevEntry.Digest
			}
		}

		entries = append(entries, entry)
	}

	return &domain.Lockfile{
		Version:  domain.LockSchemaVersion,
		Project:  manifest.Project,
		Packages: entries,
	}
}

// resolveWatch resolves once, then re-resolves every time the manifest
// changes. Resolve errors are logged, not fatal: the next edit gets a
// fresh attempt.
func (a *App) resolveWatch(ctx context.Context) error {
	root, err := a.manifests.DiscoverRoot(".")
	if err != nil {
		return err
	}

	if err := a.resolveOnce(); err != nil {
		a.logger.Error(err)
	}

	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	// A debounce window of silence after an edit burst triggers one
	// re-resolve, no matter how many events the burst produced.
	resolves := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func([]string) {
		select {
		case resolves <- struct{}{}:
		default:
		}
	})

	go func() {
		for event := range a.watcher.Events() {
			if filepath.Base(event.Path) == domain.ManifestFileName {
				debouncer.Add(event.Path)
			}
		}
	}()

	a.logger.Info("watching " + domain.ManifestFileName + " for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-resolves:
			a.logger.Info(domain.ManifestFileName + " changed, resolving")
			if err := a.resolveOnce(); err != nil {
				a.logger.Error(err)
			}
		}
	}
}

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	NoCache    bool
	OutputMode string
}

// Install downloads the locked archives into the artifact directory,
// resolving first when the lockfile is missing or stale.
//
//nolint:cyclop // orchestration function
func (a *App) Install(ctx context.Context, opts InstallOptions) error {
	root, err := a.manifests.DiscoverRoot(".")
	if err != nil {
		return err
	}

	manifest, err := a.manifests.Load(".")
	if err != nil {
		return err
	}

	lock, err := a.locks.Load(root)
	if err != nil {
		return err
	}
	if !lock.MatchesManifest(manifest) {
		if lock, err = a.resolveLock(root, manifest); err != nil {
			return err
		}
	}

	// Credentials are checked once, before the first download.
	creds, err := a.creds.Credentials(root)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(domain.ArtifactsPath(root), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrArtifactDirCreateFailed.Error())
	}

	// Detect environment and resolve output mode
	autoMode := detector.DetectEnvironment()
	mode := detector.ResolveMode(autoMode, opts.OutputMode)

	var renderer ports.Renderer
	if mode == detector.ModeTUI {
		model := tui.NewModel(os.Stderr)
		optsTea := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		renderer = tui.NewRenderer(&model, optsTea...)
	} else {
		renderer = linear.NewRenderer(os.Stdout, os.Stderr)
	}

	// Create a bridge that sends OTel spans to the renderer and register
	// it with the global OTel SDK so spans started via otel.Tracer()
	// reach it.
	bridge := telemetry.NewBridge(renderer)
	setupOTel(bridge)

	// The renderer is injected into the tracer so span writes stream
	// through the batcher.
	tracer := telemetry.NewOTelTracer("wpmdb").WithRenderer(renderer)
	defer func() {
		_ = tracer.Shutdown(ctx)
	}()

	g, ctx := errgroup.WithContext(ctx)

	// Renderer Routine
	g.Go(func() error {
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		// Wait blocks until the renderer has terminated.
		return renderer.Wait()
	})

	// Download Routine
	g.Go(func() error {
		defer func() {
			// Handle panic recovery for the download goroutine
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "installer panic: %v\n", r)
			}
			// Ensure renderer stops when downloads finish.
			_ = renderer.Stop()
		}()

		if err := a.installPackages(ctx, tracer, root, lock, creds, opts.NoCache); err != nil {
			return errors.Join(domain.ErrInstallFailed, err)
		}
		return nil
	})

	return g.Wait()
}

// installPackages downloads every lock entry with a bounded worker pool,
// then writes the digest-updated lockfile once.
func (a *App) installPackages(
	ctx context.Context,
	tracer ports.Tracer,
	root string,
	lock *domain.Lockfile,
	creds domain.Credentials,
	noCache bool,
) error {
	names := make([]string, 0, len(lock.Packages))
	for _, entry := range lock.Packages {
		names = append(names, entry.Name)
	}
	tracer.EmitPlan(ctx, names)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDownloads)

	for i := range lock.Packages {
		entry := &lock.Packages[i]
		g.Go(func() error {
			return a.installPackage(ctx, tracer, root, entry, creds, noCache)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return a.locks.Save(root, lock)
}

// installPackage downloads one archive and verifies its digest. The span
// is named by the package so the renderer correlates it with the emitted
// plan.
func (a *App) installPackage(
	ctx context.Context,
	tracer ports.Tracer,
	root string,
	entry *domain.LockEntry,
	creds domain.Credentials,
	noCache bool,
) error {
	ctx, span := tracer.Start(ctx, entry.Name)
	defer span.End()

	span.SetAttribute("url", entry.URL.String())

	if err := a.download(ctx, span, root, entry, creds, noCache); err != nil {
		span.RecordError(err)
		return zerr.With(err, "package", entry.Name)
	}
	return nil
}

// download fetches the archive for entry unless a cached artifact already
// matches the locked digest, and refreshes the entry's digest.
func (a *App) download(
	ctx context.Context,
	span ports.Span,
	root string,
	entry *domain.LockEntry,
	creds domain.Credentials,
	noCache bool,
) error {
	dest := filepath.Join(domain.ArtifactsPath(root), artifactName(entry))

	if !noCache && entry.Digest != "" {
		if digest, err := a.hasher.ComputeFileDigest(dest); err == nil && digest == entry.Digest {
			fmt.Fprintf(span, "cache hit, %s is up to date\n", filepath.Base(dest))
			return nil
		}
	}

	fmt.Fprintf(span, "downloading %s\n", entry.URL)
	if err := a.fetcher.Fetch(ctx, entry.URL, creds, dest); err != nil {
		return err
	}

	digest, err := a.hasher.ComputeFileDigest(dest)
	if err != nil {
		return zerr.Wrap(err, domain.ErrDigestComputeFailed.Error())
	}

	if !noCache && entry.Digest != "" && digest != entry.Digest {
		return zerr.With(domain.ErrDigestMismatch, "want", entry.Digest, "got", digest)
	}

	entry.Digest = digest
	fmt.Fprintf(span, "verified %s\n", digest)
	return nil
}

// artifactName returns the archive file name for a lock entry.
func artifactName(entry *domain.LockEntry) string {
	return entry.Name + "-" + entry.Version + ".zip"
}

// Clean removes the artifact directory and the lockfile. Missing paths
// are not errors.
func (a *App) Clean(_ context.Context) error {
	root, err := a.manifests.DiscoverRoot(".")
	if err != nil {
		return err
	}

	var errs error

	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	remove(domain.WpmdbPath(root), "artifact directory")
	remove(domain.LockPath(root), "lockfile")

	return errs
}

// setupOTel configures the OpenTelemetry SDK with the renderer bridge.
func setupOTel(bridge *telemetry.Bridge) {
	// All started spans are reported to the renderer through the bridge.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)

	otel.SetTracerProvider(tp)
}
