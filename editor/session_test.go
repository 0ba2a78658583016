package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradejournal/journal"
)

func newTestSession(remote *fakeRemote) *Session {
	return NewSession(remote, nil, nil)
}

func TestPickerToggleAndApply(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	remote.put(journal.Entry{ID: "1", Array: []string{"FVG", "OB"}})

	sess := newTestSession(remote)
	sess.Store.Reset([]journal.Entry{{ID: "1", Array: []string{"FVG", "OB"}}})

	target := Target{EntryID: "1", Field: journal.FieldArray}
	sess.OpenPicker(target, Rect{})
	require.True(t, sess.Edits.IsEditing(target))
	assert.Equal(t, []string{"FVG", "OB"}, sess.Picker.Pending())

	// Intermediate toggles touch neither the entry nor the network.
	sess.ToggleTag("FVG")
	entry, _ := sess.Store.Entry("1")
	assert.Equal(t, []string{"FVG", "OB"}, entry.Array)
	assert.Empty(t, remote.receivedUpdates())

	// Apply commits the staged set as one unit.
	require.NoError(t, sess.ApplyPicker(context.Background()))
	assert.Equal(t, []string{"OB"}, remote.receivedUpdates())

	entry, _ = sess.Store.Entry("1")
	assert.Equal(t, []string{"OB"}, entry.Array)

	_, open := sess.Edits.Active()
	assert.False(t, open)
	assert.False(t, sess.Picker.IsOpen())
}

func TestPickerCancelLeavesFieldUnchanged(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	sess := newTestSession(remote)
	sess.Store.Reset([]journal.Entry{{ID: "1", Results: []string{"Win"}}})

	sess.OpenPicker(Target{EntryID: "1", Field: journal.FieldResults}, Rect{})
	sess.ToggleTag("Win")
	sess.ToggleTag("Loss")
	sess.ToggleTag("News")
	sess.CancelPicker()

	entry, _ := sess.Store.Entry("1")
	assert.Equal(t, []string{"Win"}, entry.Results)
	assert.Empty(t, remote.receivedUpdates())

	_, open := sess.Edits.Active()
	assert.False(t, open)
}

func TestPickerDismissNeverPersists(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	sess := newTestSession(remote)
	sess.Store.Reset([]journal.Entry{{ID: "1"}})

	sess.OpenPicker(Target{EntryID: "1", Field: journal.FieldEmotions}, Rect{})
	sess.ToggleTag("Calm")
	sess.DismissPicker()

	entry, _ := sess.Store.Entry("1")
	assert.Empty(t, entry.Emotions)
	assert.Empty(t, remote.receivedUpdates())
}

func TestPickerSeedsPhaseFieldNotFallback(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	sess := newTestSession(remote)
	sess.Store.Reset([]journal.Entry{{
		ID:       "1",
		Emotions: []string{"Calm", "Patient"},
	}})

	// The cell displays the general emotions via the read fallback...
	assert.Equal(t, []string{"Calm", "Patient"}, sess.Tags("1", journal.FieldBefore))

	// ...but opening the phase panel seeds from the empty phase value,
	// so the fallback can never be written back as phase-specific data.
	sess.OpenPicker(Target{EntryID: "1", Field: journal.FieldBefore, Sub: "before"}, Rect{})
	assert.Empty(t, sess.Picker.Pending())
}

func TestBlurCellCommitsOnce(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	remote.put(journal.Entry{ID: "1"})
	sess := newTestSession(remote)
	sess.Store.Reset([]journal.Entry{{ID: "1"}})

	sess.OpenCell(Target{EntryID: "1", Field: journal.FieldPNL})
	require.NoError(t, sess.BlurCell(context.Background(), "150.25"))

	assert.Equal(t, []string{"150.25"}, remote.receivedUpdates())
	entry, _ := sess.Store.Entry("1")
	assert.Equal(t, 150.25, entry.PNL)

	_, open := sess.Edits.Active()
	assert.False(t, open)
}

func TestBlurWithoutActiveCellIsNoop(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	sess := newTestSession(remote)

	require.NoError(t, sess.BlurCell(context.Background(), "x"))
	assert.Empty(t, remote.receivedUpdates())
}

func TestTagsReadFallback(t *testing.T) {
	t.Parallel()

	sess := newTestSession(newFakeRemote())
	sess.Store.Reset([]journal.Entry{{
		ID:              "1",
		Array:           []string{"OB"},
		Emotions:        []string{"Calm"},
		InTradeEmotions: []string{"Anxious"},
	}})

	assert.Equal(t, []string{"OB"}, sess.Tags("1", journal.FieldArray))
	assert.Equal(t, []string{"Anxious"}, sess.Tags("1", journal.FieldInTrade))
	assert.Equal(t, []string{"Calm"}, sess.Tags("1", journal.FieldAfter))
	assert.Nil(t, sess.Tags("missing", journal.FieldArray))
}
