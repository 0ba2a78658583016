package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rustyeddy/tradejournal/journal"
)

// fakeRemote is an in-memory Remote that mimics the backend's
// canonicalization: updates apply the wire-encoded value and return the
// full record. Individual operations can be failed or blocked.
type fakeRemote struct {
	mu      sync.Mutex
	entries map[string]journal.Entry
	nextID  int

	// wire values received by UpdateEntry, in call order.
	updates []string

	failCreate bool
	failUpdate bool
	failDelete bool
	failList   bool
	failStats  bool

	// When non-nil, DeleteEntry blocks until the channel closes.
	deleteGate chan struct{}

	stats journal.TradingStats
	list  []journal.Entry
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{entries: make(map[string]journal.Entry), nextID: 1}
}

func (f *fakeRemote) put(e journal.Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[e.ID] = e
}

func (f *fakeRemote) ListEntries(ctx context.Context, _ journal.Filter) ([]journal.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return nil, errors.New("list failed")
	}
	return append([]journal.Entry(nil), f.list...), nil
}

func (f *fakeRemote) GetEntry(ctx context.Context, entryID string) (journal.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[entryID]
	if !ok {
		return journal.Entry{}, errors.New("entry not found")
	}
	return e, nil
}

func (f *fakeRemote) CreateEntry(ctx context.Context) (journal.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return journal.Entry{}, errors.New("create failed")
	}
	e := journal.DefaultWire().Decode()
	e.ID = fmt.Sprintf("%d", f.nextID)
	f.nextID++
	f.entries[e.ID] = e
	return e, nil
}

func (f *fakeRemote) UpdateEntry(ctx context.Context, entryID string, field journal.Field, value any) (journal.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return journal.Entry{}, errors.New("update failed")
	}

	wire := journal.ToWire(field, value)
	wireStr, _ := wire.(string)
	f.updates = append(f.updates, wireStr)

	e := f.entries[entryID]
	e.ID = entryID
	e.SetField(field, wire)
	f.entries[entryID] = e
	return e, nil
}

func (f *fakeRemote) DeleteEntry(ctx context.Context, entryID string) error {
	f.mu.Lock()
	gate := f.deleteGate
	fail := f.failDelete
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if fail {
		return errors.New("delete failed")
	}

	f.mu.Lock()
	delete(f.entries, entryID)
	f.mu.Unlock()
	return nil
}

func (f *fakeRemote) Stats(ctx context.Context, _ journal.Filter) (journal.TradingStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failStats {
		return journal.TradingStats{}, errors.New("stats failed")
	}
	return f.stats, nil
}

func (f *fakeRemote) receivedUpdates() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.updates...)
}
