package editor

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rustyeddy/tradejournal/journal"
)

// Loader owns the active date-range filter and the stats snapshot that
// goes with it. A refresh fetches the entry list and the stats for the
// same filter as two concurrent requests and commits both together only
// after both resolve; if either fails, the previously displayed entries
// and stats stay untouched.
type Loader struct {
	remote Remote
	store  *Store

	mu      sync.Mutex
	filter  journal.Filter
	stats   *journal.TradingStats
	loading bool

	notify func()
}

// NewLoader creates a loader refreshing store through remote. onChange,
// if non-nil, is invoked after every state mutation, outside the lock.
func NewLoader(remote Remote, store *Store, onChange func()) *Loader {
	return &Loader{remote: remote, store: store, notify: onChange}
}

// Filter returns the currently applied filter. The zero value is the
// implicit current period.
func (l *Loader) Filter() journal.Filter {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filter
}

// Stats returns the last committed stats snapshot, if any.
func (l *Loader) Stats() (journal.TradingStats, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stats == nil {
		return journal.TradingStats{}, false
	}
	return *l.stats, true
}

// Loading reports whether a refresh pair is in flight. The flag spans
// both fetches.
func (l *Loader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// ApplyFilter makes f the active filter and refreshes entries and stats
// for it. A showAll filter ignores month and year; a filter missing
// either falls back to the implicit current period.
func (l *Loader) ApplyFilter(ctx context.Context, f journal.Filter) error {
	if f.ShowAll {
		f = journal.Filter{ShowAll: true}
	} else if f.IsDefault() {
		f = journal.Filter{}
	}
	return l.load(ctx, f)
}

// ClearFilter reloads the implicit current period, not an empty view.
func (l *Loader) ClearFilter(ctx context.Context) error {
	return l.load(ctx, journal.Filter{})
}

// Refresh re-runs the fetch pair for the filter already applied.
func (l *Loader) Refresh(ctx context.Context) error {
	return l.load(ctx, l.Filter())
}

func (l *Loader) load(ctx context.Context, f journal.Filter) error {
	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()
	l.store.setError("")
	l.changed()

	var (
		entries []journal.Entry
		stats   journal.TradingStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = l.remote.ListEntries(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = l.remote.Stats(gctx, f)
		return err
	})
	err := g.Wait()

	l.mu.Lock()
	l.loading = false
	if err != nil {
		l.mu.Unlock()
		l.store.setError("Failed to load journal data")
		l.changed()
		return fmt.Errorf("load journal data: %w", err)
	}
	l.filter = f
	l.stats = &stats
	l.mu.Unlock()

	l.store.Reset(entries)
	l.changed()
	return nil
}

func (l *Loader) changed() {
	if l.notify != nil {
		l.notify()
	}
}
