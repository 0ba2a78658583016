package editor

import (
	"context"
	"fmt"
	"sync"

	"github.com/rustyeddy/tradejournal/journal"
)

// SavingCreate is the pending marker used while a create request is in
// flight, before the new entry has an id.
const SavingCreate = "creating"

// Remote is the REST surface the store persists through. *api.Client
// implements it; tests substitute fakes.
type Remote interface {
	ListEntries(ctx context.Context, f journal.Filter) ([]journal.Entry, error)
	GetEntry(ctx context.Context, entryID string) (journal.Entry, error)
	CreateEntry(ctx context.Context) (journal.Entry, error)
	UpdateEntry(ctx context.Context, entryID string, field journal.Field, value any) (journal.Entry, error)
	DeleteEntry(ctx context.Context, entryID string) error
	Stats(ctx context.Context, f journal.Filter) (journal.TradingStats, error)
}

// Store owns the in-memory entry list and applies the optimistic edit
// pipeline: UI-only mutations are synchronous and local, commits persist
// asynchronously and reconcile against the server's canonical record.
//
// The state mutex is released across every network call, so further
// edits (including on the same entry) proceed while a save is in
// flight. Commits for the same field issued in quick succession are not
// sequenced: whichever response returns last wins. That matches the
// at-least-once-visible consistency the UI was designed around; callers
// needing stronger guarantees must serialize their own commits.
type Store struct {
	remote Remote

	mu      sync.Mutex
	entries []journal.Entry
	saving  string
	errmsg  string

	notify func()
}

// NewStore creates an empty store persisting through remote. onChange,
// if non-nil, is invoked after every state mutation, outside the lock.
func NewStore(remote Remote, onChange func()) *Store {
	return &Store{remote: remote, notify: onChange}
}

// Entries returns a snapshot copy of the in-memory list in display
// order: load order, with created entries prepended.
func (s *Store) Entries() []journal.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]journal.Entry(nil), s.entries...)
}

// Entry returns the in-memory entry with the given id.
func (s *Store) Entry(entryID string) (journal.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == entryID {
			return e, true
		}
	}
	return journal.Entry{}, false
}

// Saving returns the pending marker: the id of the entry with a request
// in flight, SavingCreate during a create, or "" when idle.
func (s *Store) Saving() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// Err returns the process-wide error slot, "" when clear.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errmsg
}

// ClearError empties the error slot.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.errmsg = ""
	s.mu.Unlock()
	s.changed()
}

// Create requests a new entry with all fields at server defaults and
// prepends the canonical record to the list on success.
func (s *Store) Create(ctx context.Context) (journal.Entry, error) {
	s.begin(SavingCreate)

	entry, err := s.remote.CreateEntry(ctx)

	s.mu.Lock()
	s.saving = ""
	if err != nil {
		s.errmsg = "Failed to create new entry"
		s.mu.Unlock()
		s.changed()
		return journal.Entry{}, fmt.Errorf("create entry: %w", err)
	}
	s.entries = append([]journal.Entry{entry}, s.entries...)
	s.mu.Unlock()
	s.changed()
	return entry, nil
}

// UpdateUIOnly applies the codec-normalized value to the in-memory entry
// immediately and synchronously, with no network call and no pending
// state. This is what keeps typing responsive.
func (s *Store) UpdateUIOnly(entryID string, field journal.Field, value any) {
	s.mu.Lock()
	for i := range s.entries {
		if s.entries[i].ID == entryID {
			s.entries[i].SetField(field, value)
			break
		}
	}
	s.mu.Unlock()
	s.changed()
}

// Commit persists one field. While the request is in flight the entry is
// marked pending. On success the server's full canonical record replaces
// the in-memory entry; a partial merge would drift from the backend's
// own normalization. On failure the optimistic value stays visible (the
// user may still be typing in the field) and the error slot is set; the
// divergence lasts until the next successful commit or reload.
func (s *Store) Commit(ctx context.Context, entryID string, field journal.Field, value any) error {
	s.begin(entryID)

	entry, err := s.remote.UpdateEntry(ctx, entryID, field, value)

	s.mu.Lock()
	s.saving = ""
	if err != nil {
		s.errmsg = "Failed to update entry"
		s.mu.Unlock()
		s.changed()
		return fmt.Errorf("update entry %s: %w", entryID, err)
	}
	for i := range s.entries {
		if s.entries[i].ID == entryID {
			s.entries[i] = entry
			break
		}
	}
	s.mu.Unlock()
	s.changed()
	return nil
}

// Delete removes an entry. It stays in the list, marked pending, until
// the backend confirms; a failed delete leaves it untouched.
func (s *Store) Delete(ctx context.Context, entryID string) error {
	s.begin(entryID)

	err := s.remote.DeleteEntry(ctx, entryID)

	s.mu.Lock()
	s.saving = ""
	if err != nil {
		s.errmsg = "Failed to delete entry"
		s.mu.Unlock()
		s.changed()
		return fmt.Errorf("delete entry %s: %w", entryID, err)
	}
	for i := range s.entries {
		if s.entries[i].ID == entryID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.changed()
	return nil
}

// Reset replaces the whole list. Used by the filtered loader when a
// refresh commits.
func (s *Store) Reset(entries []journal.Entry) {
	s.mu.Lock()
	s.entries = append([]journal.Entry(nil), entries...)
	s.mu.Unlock()
	s.changed()
}

// begin marks an operation pending and clears the error slot, like every
// operation start does.
func (s *Store) begin(marker string) {
	s.mu.Lock()
	s.saving = marker
	s.errmsg = ""
	s.mu.Unlock()
	s.changed()
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	s.errmsg = msg
	s.mu.Unlock()
	s.changed()
}

func (s *Store) changed() {
	if s.notify != nil {
		s.notify()
	}
}
