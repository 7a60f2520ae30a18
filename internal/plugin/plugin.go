// Package plugin wires the tracking engine to a host event stream and owns
// its lifecycle.
package plugin

import (
	"context"
	"log/slog"
	"time"

	"github.com/astradev123/obsidian-focus-time/internal/ports"
	"github.com/astradev123/obsidian-focus-time/internal/stats"
	"github.com/astradev123/obsidian-focus-time/internal/tracking"
)

// DefaultTickInterval is the accrual granularity when none is configured.
const DefaultTickInterval = time.Second

// Options configure a Plugin.
type Options struct {
	// SnapshotDir is the per-date file directory inside the file adapter.
	SnapshotDir string
	// TickInterval is the accrual granularity. Zero means one second.
	TickInterval time.Duration
	Logger       *slog.Logger
}

// Plugin owns the stores, the tracker, the reconciler and the aggregator.
// All mutation runs on the single goroutine inside Run, which serializes
// host events and ticks exactly the way the host's event loop would.
type Plugin struct {
	Store      *tracking.Store
	Daily      *tracking.DailyStore
	Tracker    *tracking.Tracker
	Reconciler *tracking.Reconciler
	Stats      *stats.Aggregator

	tickInterval time.Duration
	logger       *slog.Logger
}

// New loads the store and assembles the engine. A failed blob load starts
// empty rather than failing, per the fail-open error model.
func New(blob ports.BlobStore, files ports.FileAdapter, workspace ports.Workspace, opts Options) *Plugin {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tick := opts.TickInterval
	if tick <= 0 {
		tick = DefaultTickInterval
	}

	store := tracking.NewStore(blob, logger)
	_ = store.Load()
	daily := tracking.NewDailyStore(files, opts.SnapshotDir, logger)

	return &Plugin{
		Store:        store,
		Daily:        daily,
		Tracker:      tracking.NewTracker(store, daily),
		Reconciler:   tracking.NewReconciler(store, workspace),
		Stats:        stats.NewAggregator(store, daily, workspace),
		tickInterval: tick,
		logger:       logger,
	}
}

// Run consumes host events and drives the periodic tick until the context
// is cancelled or the event channel closes. Returning stops the ticker, so
// no tick fires after teardown. Callers hand events to the channel without
// awaiting their effects; Run applies them in order.
func (p *Plugin) Run(ctx context.Context, events <-chan ports.Event) {
	ticker := time.NewTicker(p.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Tracker.Tick(p.tickInterval)
		case ev, ok := <-events:
			if !ok {
				return
			}
			p.Handle(ev)
		}
	}
}

// Handle applies a single host event.
func (p *Plugin) Handle(ev ports.Event) {
	switch e := ev.(type) {
	case ports.ActiveDocumentChanged:
		p.Tracker.HandleActiveDocumentChanged(e.Path)
	case ports.WindowFocused:
		p.Tracker.HandleWindowFocused()
	case ports.WindowBlurred:
		p.Tracker.HandleWindowBlurred()
	case ports.DocumentRenamed:
		if err := p.Reconciler.HandleDocumentRenamed(e.NewPath, e.OldPath); err != nil {
			p.logger.Warn("document rename migration failed", "old", e.OldPath, "new", e.NewPath, "error", err)
		}
		// The host moved the file regardless of whether the store
		// migration succeeded, so tracking must follow it.
		p.Tracker.HandleDocumentMoved(e.NewPath, e.OldPath)
	case ports.FolderRenamed:
		if err := p.Reconciler.HandleFolderRenamed(e.NewPath, e.OldPath); err != nil {
			p.logger.Warn("folder rename migration failed", "old", e.OldPath, "new", e.NewPath, "error", err)
		}
		p.Tracker.HandleFolderMoved(e.NewPath, e.OldPath)
	}
}
