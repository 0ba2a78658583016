package editor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradejournal/journal"
)

func TestCreatePrependsDefaultEntry(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	store := NewStore(remote, nil)
	store.Reset([]journal.Entry{{ID: "old"}})

	entry, err := store.Create(context.Background())
	require.NoError(t, err)

	entries := store.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, "old", entries[1].ID)

	// Server defaults: zero pnl, null date, empty tag sequences.
	assert.Equal(t, 0.0, entries[0].PNL)
	assert.Nil(t, entries[0].Date)
	assert.Empty(t, entries[0].Array)
	assert.Empty(t, entries[0].Results)
	assert.Empty(t, entries[0].Emotions)

	assert.Equal(t, "", store.Saving())
	assert.Equal(t, "", store.Err())
}

func TestCreateFailureSetsErrorSlot(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	remote.failCreate = true
	store := NewStore(remote, nil)

	_, err := store.Create(context.Background())
	require.Error(t, err)
	assert.NotEmpty(t, store.Err())
	assert.Equal(t, "", store.Saving())
	assert.Empty(t, store.Entries())
}

func TestUpdateUIOnlyIsSynchronous(t *testing.T) {
	t.Parallel()

	store := NewStore(newFakeRemote(), nil)
	store.Reset([]journal.Entry{{ID: "1"}})

	store.UpdateUIOnly("1", journal.FieldReason, "liquidity grab")

	entry, ok := store.Entry("1")
	require.True(t, ok)
	assert.Equal(t, "liquidity grab", entry.Reason)
	// No network, no pending state.
	assert.Equal(t, "", store.Saving())
}

func TestUpdateUIOnlyNormalizesValue(t *testing.T) {
	t.Parallel()

	store := NewStore(newFakeRemote(), nil)
	store.Reset([]journal.Entry{{ID: "1"}})

	store.UpdateUIOnly("1", journal.FieldArray, "FVG, FVG, OB,")

	entry, _ := store.Entry("1")
	assert.Equal(t, []string{"FVG", "OB"}, entry.Array)
}

func TestCommitReplacesWholeEntry(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	remote.put(journal.Entry{ID: "1", Date: &day, Results: []string{"Win"}, PNL: 10})

	store := NewStore(remote, nil)
	// Local copy is stale: the commit response is authoritative for
	// every field, not just the committed one.
	store.Reset([]journal.Entry{{ID: "1", PNL: 10}})

	require.NoError(t, store.Commit(context.Background(), "1", journal.FieldPNL, 150.25))

	entry, _ := store.Entry("1")
	assert.Equal(t, 150.25, entry.PNL)
	assert.Equal(t, []string{"Win"}, entry.Results)
	require.NotNil(t, entry.Date)
	assert.Equal(t, "2024-03-05", journal.FormatDate(entry.Date))
}

func TestCommitFailureKeepsOptimisticValue(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	remote.failUpdate = true
	store := NewStore(remote, nil)
	store.Reset([]journal.Entry{{ID: "1", Reason: "original"}})

	store.UpdateUIOnly("1", journal.FieldReason, "edited")
	err := store.Commit(context.Background(), "1", journal.FieldReason, "edited")
	require.Error(t, err)

	// No rollback: the user may still be typing in the field.
	entry, _ := store.Entry("1")
	assert.Equal(t, "edited", entry.Reason)
	assert.NotEmpty(t, store.Err())
	assert.Equal(t, "", store.Saving())
}

func TestCommitCoercesBadNumberToZero(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	remote.put(journal.Entry{ID: "1"})
	store := NewStore(remote, nil)
	store.Reset([]journal.Entry{{ID: "1"}})

	require.NoError(t, store.Commit(context.Background(), "1", journal.FieldPNL, "abc"))
	assert.Equal(t, []string{"0"}, remote.receivedUpdates())
}

func TestDeletePendingThenRemoved(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	remote.put(journal.Entry{ID: "1"})
	remote.deleteGate = make(chan struct{})

	store := NewStore(remote, nil)
	store.Reset([]journal.Entry{{ID: "1"}})

	done := make(chan error, 1)
	go func() { done <- store.Delete(context.Background(), "1") }()

	// While the request is in flight the entry stays visible, marked
	// pending.
	require.Eventually(t, func() bool {
		return store.Saving() == "1"
	}, time.Second, time.Millisecond)
	_, present := store.Entry("1")
	assert.True(t, present)

	close(remote.deleteGate)
	require.NoError(t, <-done)

	_, present = store.Entry("1")
	assert.False(t, present)
	assert.Equal(t, "", store.Saving())
}

func TestDeleteFailureLeavesEntry(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	remote.failDelete = true
	store := NewStore(remote, nil)
	store.Reset([]journal.Entry{{ID: "1"}})

	require.Error(t, store.Delete(context.Background(), "1"))

	_, present := store.Entry("1")
	assert.True(t, present)
	assert.NotEmpty(t, store.Err())
}

func TestClearError(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	remote.failCreate = true
	store := NewStore(remote, nil)

	_, _ = store.Create(context.Background())
	require.NotEmpty(t, store.Err())

	store.ClearError()
	assert.Equal(t, "", store.Err())
}

func TestNotifyFiresOnMutation(t *testing.T) {
	t.Parallel()

	var calls int
	store := NewStore(newFakeRemote(), func() { calls++ })
	store.Reset([]journal.Entry{{ID: "1"}})
	before := calls

	store.UpdateUIOnly("1", journal.FieldReason, "x")
	assert.Greater(t, calls, before)
}
