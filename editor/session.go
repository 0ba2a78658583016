package editor

import (
	"context"

	"github.com/rustyeddy/tradejournal/journal"
)

// Session wires the editing pipeline together for one journal view:
// coordinator, selection buffer, optimistic store and filtered loader
// share a remote and a single change notification.
type Session struct {
	Store  *Store
	Loader *Loader
	Edits  *Coordinator
	Picker *Selection
}

// NewSession builds a session persisting through remote. place is the
// rendering layer's overlay placement capability (may be nil). onChange
// is invoked after every state mutation (may be nil).
func NewSession(remote Remote, place PlaceFunc, onChange func()) *Session {
	store := NewStore(remote, onChange)
	return &Session{
		Store:  store,
		Loader: NewLoader(remote, store, onChange),
		Edits:  NewCoordinator(),
		Picker: NewSelection(place),
	}
}

// OpenCell puts a cell into edit mode, displacing any other open cell.
func (s *Session) OpenCell(t Target) {
	s.Edits.Open(t)
}

// CloseCell takes the active cell out of edit mode without committing.
func (s *Session) CloseCell() {
	s.Edits.Close()
}

// BlurCell handles loss of focus on a single-line cell: exactly one
// commit attempt with the field's latest UI value, then the cell closes.
// The close is unconditional; a failed commit surfaces through the error
// slot while the optimistic value stays on screen.
func (s *Session) BlurCell(ctx context.Context, value any) error {
	t, ok := s.Edits.Active()
	s.Edits.Close()
	if !ok {
		return nil
	}
	s.Store.UpdateUIOnly(t.EntryID, t.Field, value)
	return s.Store.Commit(ctx, t.EntryID, t.Field, value)
}

// OpenPicker opens the multi-select editor for a tag cell, seeding the
// buffer from the entry's current value for the target field. The
// phase-emotion display fallback is deliberately not used as the seed:
// it must never flow back into a phase-specific write.
func (s *Session) OpenPicker(t Target, anchor Rect) {
	s.Edits.Open(t)
	var current []string
	if entry, ok := s.Store.Entry(t.EntryID); ok {
		if tags, ok := entry.FieldValue(t.Field).([]string); ok {
			current = tags
		}
	}
	s.Picker.Open(current, anchor)
}

// ToggleTag flips one tag in the open picker. Only the buffer changes;
// no entry mutation, no persistence.
func (s *Session) ToggleTag(tag string) {
	s.Picker.Toggle(tag)
}

// ApplyPicker commits the staged selection as one unit: optimistic UI
// update plus a single persistence request, then the cell closes.
func (s *Session) ApplyPicker(ctx context.Context) error {
	t, ok := s.Edits.Active()
	pending := s.Picker.Apply()
	s.Edits.Close()
	if !ok {
		return nil
	}
	s.Store.UpdateUIOnly(t.EntryID, t.Field, pending)
	return s.Store.Commit(ctx, t.EntryID, t.Field, pending)
}

// CancelPicker discards the staged selection and closes the cell. The
// entry was never mutated, so there is nothing to restore.
func (s *Session) CancelPicker() {
	s.Picker.Cancel()
	s.Edits.Close()
}

// DismissPicker handles a focus loss outside the picker. Equivalent to
// CancelPicker: an accidental outside click never persists a partial
// selection.
func (s *Session) DismissPicker() {
	s.Picker.Dismiss()
	s.Edits.Close()
}

// Tags reports the display tags for a cell, applying the phase-emotion
// read fallback where the field has one.
func (s *Session) Tags(entryID string, f journal.Field) []string {
	entry, ok := s.Store.Entry(entryID)
	if !ok {
		return nil
	}
	switch f {
	case journal.FieldBefore, journal.FieldInTrade, journal.FieldAfter:
		return entry.PhaseEmotions(f)
	}
	tags, _ := entry.FieldValue(f).([]string)
	return tags
}
